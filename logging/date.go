package logging

import (
	"time"
)

// LayoutFormatter renders instants with time.Time.Format. An empty layout
// renders nothing, which suppresses the date segment entirely.
type LayoutFormatter struct{}

func (LayoutFormatter) Format(layout string, t time.Time) string {
	if layout == "" {
		return ""
	}
	return t.Format(layout)
}
