package format

import (
	"strconv"
	"strings"

	"github.com/s4mli/farola/logging/model"
)

const (
	Escape = "\x1b["
	Reset  = "\x1b[;"
)

func DefaultLabels() map[model.Level]string {
	return map[model.Level]string{
		model.VERBOSE: "VERBOSE",
		model.DEBUG:   "DEBUG",
		model.INFO:    "INFO",
		model.WARNING: "WARNING",
		model.ERROR:   "ERROR",
	}
}

func DefaultColors() map[model.Level]string {
	return map[model.Level]string{
		model.VERBOSE: "fg200,200,200;",
		model.DEBUG:   "fg0,255,0;",
		model.INFO:    "fg0,150,255;",
		model.WARNING: "fg255,165,0;",
		model.ERROR:   "fg255,0,0;",
	}
}

// Config is owned by one destination and read only while rendering.
type Config struct {
	Detail     bool
	Colored    bool
	DateLayout string
	Labels     map[model.Level]string
	Colors     map[model.Level]string
}

func DefaultConfig() Config {
	return Config{
		Detail:     true,
		DateLayout: "2006-01-02 15:04:05.000",
		Labels:     DefaultLabels(),
		Colors:     DefaultColors(),
	}
}

// LevelTag renders the level label, wrapped in an escape pair when color
// is on. Unknown levels use the VERBOSE entry.
func LevelTag(lvl model.Level, c Config) string {
	label, ok := c.Labels[lvl]
	if !ok {
		label = c.Labels[model.VERBOSE]
	}
	if !c.Colored {
		return label
	}
	color, ok := c.Colors[lvl]
	if !ok {
		color = c.Colors[model.VERBOSE]
	}
	return Escape + color + label + Reset
}

// FileBase extracts the base file name, "/a/b/Foo.swift" gives "Foo".
// Paths without a separator or extension pass through unharmed.
func FileBase(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	return path
}

// Render builds the display line: optional [date], optional |worker| and
// call site detail, then level tag and message.
func Render(r model.Record, dateStr string, c Config) string {
	s := ""
	if dateStr != "" {
		s += "[" + dateStr + "] "
	}
	if c.Detail {
		if r.WorkerName != "" && r.WorkerName != "main" {
			s += "|" + r.WorkerName + "| "
		}
		s += FileBase(r.SourcePath) + "." + r.FunctionName + ":" + strconv.Itoa(r.Line) + " "
	}
	return s + LevelTag(r.Level, c) + ": " + r.Message
}
