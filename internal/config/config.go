// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTitle   = "logpanel"
	defaultRefresh = 5 * time.Second

	// OutputLogger forwards the intercepted console calls to the application logger.
	OutputLogger = "logger"
	// OutputStderr forwards the intercepted console calls as plain lines on the standard error.
	OutputStderr = "stderr"
)

var (
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
)

// Config holds the behaviour of the log panel and of the console interception.
type Config struct {
	Panel   PanelConfig   `json:"panel" yaml:"panel"`
	Console ConsoleConfig `json:"console" yaml:"console"`
}

// PanelConfig configures the log panel.
type PanelConfig struct {
	// Show attaches the panel at startup.
	Show bool `json:"show" yaml:"show"`
	// Title is the title of the page hosting the panel.
	Title string `json:"title" yaml:"title"`
	// LevelLabels prefixes every rendered line with the level name.
	LevelLabels bool `json:"levelLabels" yaml:"levelLabels"`
	// Refresh is how often the served page reloads, zero disables the reload.
	Refresh time.Duration `json:"refresh" yaml:"refresh"`
	// Template is the Go template rendering every line, empty for the default rendering.
	Template string `json:"template" yaml:"template"`
}

// ConsoleConfig configures the console interception.
type ConsoleConfig struct {
	// Intercept forwards the captured calls to the native console too.
	Intercept bool `json:"intercept" yaml:"intercept"`
	// Output selects the native console receiving the intercepted calls.
	Output string `json:"output" yaml:"output"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Panel: PanelConfig{
			Show:    true,
			Title:   defaultTitle,
			Refresh: defaultRefresh,
		},
		Console: ConsoleConfig{
			Intercept: true,
			Output:    OutputLogger,
		},
	}
}

// Load reads the configuration at path, an empty path returns the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Parse decodes a YAML configuration from reader, missing fields keep their default value.
func Parse(reader io.Reader) (*Config, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	config := Default()
	if len(bytes.TrimSpace(content)) == 0 {
		return config, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	if config.Panel.Title == "" {
		config.Panel.Title = defaultTitle
	}

	switch config.Console.Output {
	case "":
		config.Console.Output = OutputLogger
	case OutputLogger, OutputStderr:
	default:
		return nil, fmt.Errorf("%w: unknown console output %q", ErrParsing, config.Console.Output)
	}

	return config, nil
}
