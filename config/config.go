package config

import (
	"fmt"
	"io/ioutil"
	"reflect"

	"gopkg.in/yaml.v2"

	"github.com/s4mli/farola/logging/model"
)

type Log struct {
	Level      string `yaml:"level"`
	Detail     bool   `yaml:"detail"`
	Colored    bool   `yaml:"colored"`
	DateLayout string `yaml:"dateLayout"`
}

type Console struct {
	Enabled bool `yaml:"enabled"`
}

type File struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Rabbit struct {
	Enabled  bool   `yaml:"enabled"`
	Uri      string `yaml:"uri"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Exchange string `yaml:"exchange"`
	Topic    string `yaml:"topic"`
}

type Sql struct {
	Enabled  bool   `yaml:"enabled"`
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Db       string `yaml:"db"`
	Table    string `yaml:"table"`
}

type Queue struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
	Url     string `yaml:"url"`
}

type Config struct {
	Log     Log     `yaml:"log"`
	Console Console `yaml:"console"`
	File    File    `yaml:"file"`
	Rabbit  Rabbit  `yaml:"rabbit"`
	Sql     Sql     `yaml:"sql"`
	Queue   Queue   `yaml:"queue"`
}

func (c *Config) String() string     { return Stringify(*c) }
func (c *Config) Level() model.Level { return model.LevelFromString(c.Log.Level) }

// Validate walks a struct reflectively and flags zero valued string and
// numeric fields. Bools are configuration switches and always legal.
func Validate(v interface{}) []error {
	var errors []error
	gatherError := func(fieldIndex int, supported bool) []error {
		var e error
		if supported {
			e = fmt.Errorf("wrong %s[%s]", reflect.TypeOf(v).Name(),
				reflect.TypeOf(v).Field(fieldIndex).Name)
		} else {
			e = fmt.Errorf("unimplemented type %d for %s", reflect.ValueOf(v).Field(fieldIndex).Kind(),
				reflect.TypeOf(v).Field(fieldIndex).Name)
		}
		errors = append(errors, e)
		return errors
	}
	for i := 0; i < reflect.TypeOf(v).NumField(); i++ {
		switch reflect.ValueOf(v).Field(i).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			{
				if validate := reflect.ValueOf(v).Field(i).Int() > 0; !validate {
					gatherError(i, true)
				}
			}
		case reflect.String, reflect.Array, reflect.Slice, reflect.Map:
			{
				if validate := reflect.ValueOf(v).Field(i).Len() > 0; !validate {
					gatherError(i, true)
				}
			}
		case reflect.Bool:
		case reflect.Struct:
			errors = append(errors, Validate(reflect.ValueOf(v).Field(i).Interface())...)
		default:
			gatherError(i, false)
		}
	}
	return errors
}

func Stringify(v interface{}) string {
	s := "\n" + reflect.TypeOf(v).Name()
	for i := 0; i < reflect.TypeOf(v).NumField(); i++ {
		switch reflect.ValueOf(v).Field(i).Kind() {
		case reflect.Struct, reflect.Interface:
			s += Stringify(reflect.ValueOf(v).Field(i).Interface())
		default:
			s += fmt.Sprintf("\n\t%s: %v", reflect.TypeOf(v).Field(i).Name,
				reflect.ValueOf(v).Field(i).Interface())
		}
	}
	return s
}

// LoadConfig reads an app keyed, env nested yaml file.
func LoadConfig(app, env, configFile string) (*Config, error) {
	raw, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	var appConfigs map[string]map[string]*Config
	if err := yaml.Unmarshal(raw, &appConfigs); err != nil {
		return nil, err
	}
	configs, ok := appConfigs[app]
	if !ok {
		return nil, fmt.Errorf("ensure config is for %s", app)
	}
	c, ok := configs[env]
	if !ok {
		return nil, fmt.Errorf("missing config for %s", env)
	}
	return c, nil
}
