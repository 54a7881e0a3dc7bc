package model

import (
	"time"
)

// Sink persists or displays one rendered line.
type Sink interface {
	Emit(line string)
}

// DateFormatter turns an instant into a string for a given layout.
type DateFormatter interface {
	Format(layout string, t time.Time) string
}
