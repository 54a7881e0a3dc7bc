package filter

import (
	"strings"
	"sync"

	"github.com/s4mli/farola/logging/model"
)

// Rule permits logging below the global threshold for a path/function
// scope. An empty Path or Function matches everything, a non-empty one
// matches by equality or substring containment.
type Rule struct {
	Min      model.Level
	Path     string
	Function string
}

func (r Rule) matches(lvl model.Level, path, function string) bool {
	if r.Min > lvl {
		return false
	}
	if r.Path != "" && !strings.Contains(path, r.Path) {
		return false
	}
	if r.Function != "" && !strings.Contains(function, r.Function) {
		return false
	}
	return true
}

// Registry holds the global minimum level plus the scoped rules. Rules are
// append only for the lifetime of a destination, never removed or
// reordered.
type Registry struct {
	mutex sync.RWMutex
	min   model.Level
	rules []Rule
}

func NewRegistry(min model.Level) *Registry { return &Registry{min: min} }

func (g *Registry) Min() model.Level {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.min
}

func (g *Registry) SetMin(min model.Level) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.min = min
}

// Append adds a rule. Duplicate or contradictory rules are legal and all
// retained.
func (g *Registry) Append(min model.Level, path, function string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.rules = append(g.rules, Rule{min, path, function})
}

// ShouldLog decides whether a call site gets logged. The global minimum
// short-circuits every rule; otherwise rules are scanned in insertion
// order and the first full match permits. A later rule can never veto an
// earlier match.
func (g *Registry) ShouldLog(lvl model.Level, path, function string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	if g.min <= lvl {
		return true
	}
	for _, r := range g.rules {
		if r.matches(lvl, path, function) {
			return true
		}
	}
	return false
}
