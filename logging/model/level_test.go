package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	assert.True(t, VERBOSE < DEBUG)
	assert.True(t, DEBUG < INFO)
	assert.True(t, INFO < WARNING)
	assert.True(t, WARNING < ERROR)
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, VERBOSE, LevelFromString("verbose"))
	assert.Equal(t, DEBUG, LevelFromString("Debug"))
	assert.Equal(t, INFO, LevelFromString("INFO"))
	assert.Equal(t, WARNING, LevelFromString("warn"))
	assert.Equal(t, WARNING, LevelFromString("warning"))
	assert.Equal(t, ERROR, LevelFromString("error"))
	assert.Equal(t, VERBOSE, LevelFromString("whatever"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "VERBOSE", VERBOSE.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARNING", WARNING.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "VERBOSE", Level(42).String())
}
