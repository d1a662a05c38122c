// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input         string
		expected      *Config
		expectedError string
	}{
		"empty input returns defaults": {
			input:    "",
			expected: Default(),
		},
		"full configuration": {
			input: `
panel:
  show: false
  title: Kiosk logs
  levelLabels: true
  refresh: 30s
  template: "{{ .Level }} {{ .Text }}"
console:
  intercept: false
  output: stderr
`,
			expected: &Config{
				Panel:   PanelConfig{Show: false, Title: "Kiosk logs", LevelLabels: true, Refresh: 30 * time.Second, Template: "{{ .Level }} {{ .Text }}"},
				Console: ConsoleConfig{Intercept: false, Output: OutputStderr},
			},
		},
		"partial configuration keeps defaults": {
			input: `
panel:
  levelLabels: true
`,
			expected: &Config{
				Panel:   PanelConfig{Show: true, Title: "logpanel", LevelLabels: true, Refresh: 5 * time.Second},
				Console: ConsoleConfig{Intercept: true, Output: OutputLogger},
			},
		},
		"unknown fields are rejected": {
			input:         "panel:\n  color: red\n",
			expectedError: "field color not found",
		},
		"refresh can be disabled": {
			input: "panel:\n  refresh: 0s\n",
			expected: &Config{
				Panel:   PanelConfig{Show: true, Title: "logpanel", Refresh: 0},
				Console: ConsoleConfig{Intercept: true, Output: OutputLogger},
			},
		},
		"invalid refresh": {
			input:         "panel:\n  refresh: often\n",
			expectedError: "error parsing",
		},
		"empty output keeps the default": {
			input:    "console:\n  output: \"\"\n",
			expected: Default(),
		},
		"unknown console output": {
			input:         "console:\n  output: syslog\n",
			expectedError: `unknown console output "syslog"`,
		},
		"invalid yaml": {
			input:         "panel: [",
			expectedError: "error parsing",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			config, err := Parse(strings.NewReader(test.input))
			if test.expectedError != "" {
				require.ErrorIs(t, err, ErrParsing)
				assert.ErrorContains(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, config)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		config, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file on disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("panel:\n  title: From file\n"), 0o600))

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "From file", config.Panel.Title)
		assert.True(t, config.Panel.Show)
	})

	t.Run("invalid file reports its path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("console: [\n"), 0o600))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrParsing)
		assert.ErrorContains(t, err, path)
	})
}
