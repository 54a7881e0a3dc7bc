package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/s4mli/farola/logging/model"
	"github.com/stretchr/testify/assert"
)

const sampleYaml = `
farola:
  development:
    log:
      level: debug
      detail: true
      colored: false
      dateLayout: "2006-01-02 15:04:05.000"
    console:
      enabled: true
    file:
      enabled: true
      path: ./farola.log
    sql:
      enabled: false
      driver: mysql
`

func writeSample(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, ioutil.WriteFile(path, []byte(sampleYaml), 0666))
	return path
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("farola", "development", writeSample(t))
	assert.Nil(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, model.DEBUG, c.Level())
	assert.True(t, c.Log.Detail)
	assert.False(t, c.Log.Colored)
	assert.True(t, c.Console.Enabled)
	assert.Equal(t, "./farola.log", c.File.Path)
	assert.False(t, c.Sql.Enabled)
}

func TestLoadConfigMissing(t *testing.T) {
	path := writeSample(t)
	if _, err := LoadConfig("otra", "development", path); assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "otra")
	}
	if _, err := LoadConfig("farola", "production", path); assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "production")
	}
	_, err := LoadConfig("farola", "development", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	c, err := LoadConfig("farola", "development", writeSample(t))
	assert.Nil(t, err)
	assert.Empty(t, Validate(c.Log))
	assert.NotEmpty(t, Validate(Log{}))
}

func TestStringify(t *testing.T) {
	c, err := LoadConfig("farola", "development", writeSample(t))
	assert.Nil(t, err)
	assert.Contains(t, c.String(), "Level: debug")
}
