package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/s4mli/farola/cleaner"
	"github.com/s4mli/farola/config"
	"github.com/s4mli/farola/logging"
	"github.com/s4mli/farola/logging/format"
	"github.com/s4mli/farola/logging/handler"
	"github.com/s4mli/farola/logging/model"
)

const appName = "farola"

func record(lvl model.Level, message string) model.Record {
	pc, file, line, _ := runtime.Caller(1)
	function := ""
	if f := runtime.FuncForPC(pc); f != nil {
		function = f.Name()
	}
	return model.Record{
		Level:        lvl,
		Message:      message,
		WorkerName:   "main",
		SourcePath:   file,
		FunctionName: function,
		Line:         line,
	}
}

func newSqlHandler(c *config.Config, diagnostics logrus.FieldLogger) (model.Sink, error) {
	switch c.Sql.Driver {
	case "mysql":
		return handler.NewMySQLHandler(c.Sql.Host, c.Sql.Port, c.Sql.User,
			c.Sql.Password, c.Sql.Db, c.Sql.Table, diagnostics)
	case "postgres":
		return handler.NewPostgresHandler(c.Sql.Host, c.Sql.Port, c.Sql.User,
			c.Sql.Password, c.Sql.Db, c.Sql.Table, diagnostics)
	case "mssql":
		return handler.NewMsSQLHandler(c.Sql.Host, c.Sql.Port, c.Sql.User,
			c.Sql.Password, c.Sql.Db, c.Sql.Table, diagnostics)
	default:
		return nil, fmt.Errorf("unknown sql driver %s", c.Sql.Driver)
	}
}

func main() {
	env := os.Getenv(fmt.Sprintf("%s_env", appName))
	if env == "" {
		env = "development"
	}
	var configFile string
	flag.StringVar(&configFile, "config", "./config.yaml", "configuration file to load")
	flag.Parse()

	c, err := config.LoadConfig(appName, env, configFile)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	diagnostics := logrus.New()
	invalid := func(v interface{}) bool {
		errs := config.Validate(v)
		for _, e := range errs {
			diagnostics.Error(e.Error())
		}
		return len(errs) > 0
	}

	fc := format.DefaultConfig()
	fc.Detail = c.Log.Detail
	fc.Colored = c.Log.Colored
	if c.Log.DateLayout != "" {
		fc.DateLayout = c.Log.DateLayout
	}
	plain := fc
	plain.Colored = false

	var destinations []*logging.Destination
	addDestination := func(fc format.Config, sink model.Sink) {
		destinations = append(destinations,
			logging.NewDestination(c.Level(), fc, logging.LayoutFormatter{}, sink))
	}
	if c.Console.Enabled {
		addDestination(fc, handler.NewStdoutHandler())
	}
	if c.File.Enabled && !invalid(c.File) {
		if h, err := handler.NewFileHandler(c.File.Path, diagnostics); err != nil {
			diagnostics.Error("file handler: ", err)
		} else {
			addDestination(plain, h)
		}
	}
	if c.Rabbit.Enabled && !invalid(c.Rabbit) {
		if h, err := handler.NewRabbitHandler(ctx, c.Rabbit.Uri,
			c.Rabbit.User, c.Rabbit.Password, c.Rabbit.Exchange, c.Rabbit.Topic,
			diagnostics); err != nil {
			diagnostics.Error("rabbit handler: ", err)
		} else {
			addDestination(plain, h)
		}
	}
	if c.Sql.Enabled && !invalid(c.Sql) {
		if h, err := newSqlHandler(c, diagnostics); err != nil {
			diagnostics.Error("sql handler: ", err)
		} else {
			addDestination(plain, h)
		}
	}
	if c.Queue.Enabled && !invalid(c.Queue) {
		addDestination(plain, handler.NewSqsHandler(c.Queue.Region, c.Queue.Url, diagnostics))
	}

	for _, d := range destinations {
		cleaner.Register(d)
	}
	for _, d := range destinations {
		// startup chatter stays visible whatever level is configured,
		// scoped to this function so nothing else slips through
		d.AddRule(model.VERBOSE, "", "main.main")
		d.Log(record(model.INFO, "started"))
		d.Log(record(model.DEBUG, fmt.Sprintf("running with %s", c)))
	}
	cancel()
	cleaner.Run(ctx, diagnostics)
}
