package model

import (
	"strings"
)

// Level orders log severities, a lower rank is more verbose.
type Level int

const (
	VERBOSE Level = iota
	DEBUG
	INFO
	WARNING
	ERROR
)

func LevelFromString(s string) Level {
	switch strings.ToLower(s) {
	case "verbose":
		return VERBOSE
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warning", "warn":
		return WARNING
	case "error":
		return ERROR
	default:
		return VERBOSE
	}
}

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "VERBOSE"
	}
}
