// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelClassName(t *testing.T) {
	t.Parallel()

	tests := map[LogLevel]string{
		DEFAULT:      "info",
		DEBUG:        "debug",
		INFO:         "info",
		WARN:         "warn",
		ERROR:        "error",
		LogLevel(42): "info",
	}

	for level, expected := range tests {
		t.Run(level.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, expected, level.ClassName())
		})
	}
}

func TestLevelStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEFAULT", DEFAULT.String())
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "LogLevel(-1)", LogLevel(-1).String())

	assert.Equal(t, DEBUG, LevelFromString("debug"))
	assert.Equal(t, INFO, LevelFromString("Info"))
	assert.Equal(t, WARN, LevelFromString("WARNING"))
	assert.Equal(t, ERROR, LevelFromString(" error "))
	assert.Equal(t, DEFAULT, LevelFromString(""))
	assert.Equal(t, DEFAULT, LevelFromString("verbose"))
}
