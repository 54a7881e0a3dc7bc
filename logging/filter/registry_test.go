package filter

import (
	"fmt"
	"sync"
	"testing"

	"github.com/s4mli/farola/logging/model"
	"github.com/stretchr/testify/assert"
)

func TestShouldLogGlobalThreshold(t *testing.T) {
	g := NewRegistry(model.INFO)
	for _, lvl := range []model.Level{model.INFO, model.WARNING, model.ERROR} {
		assert.True(t, g.ShouldLog(lvl, "any/path", "anyFunction"))
	}
	for _, lvl := range []model.Level{model.VERBOSE, model.DEBUG} {
		assert.False(t, g.ShouldLog(lvl, "any/path", "anyFunction"))
	}
	// repeated lookups with unchanged state agree
	assert.False(t, g.ShouldLog(model.DEBUG, "any/path", "anyFunction"))
	assert.False(t, g.ShouldLog(model.DEBUG, "any/path", "anyFunction"))
}

func TestShouldLogPathRule(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.VERBOSE, "Networking", "")
	assert.True(t, g.ShouldLog(model.DEBUG, "App/Networking/Client", "fetch"))
	assert.False(t, g.ShouldLog(model.DEBUG, "App/UI/View", "fetch"))
	assert.True(t, g.ShouldLog(model.ERROR, "App/UI/View", "fetch"))
}

func TestShouldLogFunctionRule(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.DEBUG, "", "save")
	assert.True(t, g.ShouldLog(model.DEBUG, "anywhere", "saveDocument"))
	assert.False(t, g.ShouldLog(model.VERBOSE, "anywhere", "saveDocument"))
	assert.False(t, g.ShouldLog(model.DEBUG, "anywhere", "load"))
}

func TestShouldLogBothScopes(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.VERBOSE, "Store", "save")
	assert.True(t, g.ShouldLog(model.DEBUG, "App/Store/Disk", "saveAll"))
	assert.False(t, g.ShouldLog(model.DEBUG, "App/Store/Disk", "load"))
	assert.False(t, g.ShouldLog(model.DEBUG, "App/UI", "saveAll"))
}

func TestShouldLogRuleLevel(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.WARNING, "Store", "")
	assert.False(t, g.ShouldLog(model.DEBUG, "App/Store", ""))
	assert.True(t, g.ShouldLog(model.WARNING, "App/Store", ""))
}

// Any matching rule permits; a later, stricter rule never vetoes an
// earlier match even when it is more specific.
func TestShouldLogFirstMatchWins(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.VERBOSE, "Store", "")
	g.Append(model.ERROR, "Store", "save")
	assert.True(t, g.ShouldLog(model.DEBUG, "App/Store", "save"))
}

func TestShouldLogDuplicateRules(t *testing.T) {
	g := NewRegistry(model.ERROR)
	g.Append(model.DEBUG, "Store", "")
	g.Append(model.DEBUG, "Store", "")
	assert.True(t, g.ShouldLog(model.DEBUG, "App/Store", ""))
}

func TestAppendConcurrent(t *testing.T) {
	g := NewRegistry(model.ERROR)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			g.Append(model.VERBOSE, fmt.Sprintf("pkg%d", i), "")
		}(i)
		go func(i int) {
			defer wg.Done()
			g.ShouldLog(model.DEBUG, fmt.Sprintf("pkg%d/file", i), "fn")
		}(i)
	}
	wg.Wait()
	for i := 0; i < 16; i++ {
		assert.True(t, g.ShouldLog(model.DEBUG, fmt.Sprintf("pkg%d/file", i), "fn"))
	}
}
