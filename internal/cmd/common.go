// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/logpanel/internal/config"
	"github.com/mia-platform/logpanel/internal/console"
	"github.com/mia-platform/logpanel/internal/decorator"
	"github.com/mia-platform/logpanel/internal/uilogger"
)

const (
	maxLineSize = 1024 * 1024
)

var (
	errReadingInput = errors.New("error reading input")

	levelPrefix = regexp.MustCompile(`(?i)^\s*(debug|info|warn|warning|error)\s*:\s?`)
)

// handleError prints err on the command error output and returns it.
func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(err)
	return err
}

// messageDecorator returns the decorator rendering the panel lines as configured.
func messageDecorator(cfg config.PanelConfig) (uilogger.MessageDecorator, error) {
	decorate := uilogger.DefaultDecorator
	if cfg.Template != "" {
		fromTemplate, err := decorator.New(cfg.Template)
		if err != nil {
			return nil, err
		}
		decorate = fromTemplate
	}

	if cfg.LevelLabels {
		decorate = uilogger.WithLevelLabel(decorate)
	}
	return decorate, nil
}

// pump writes every non blank line of reader on cons, using the console method selected
// by the line level prefix.
func pump(ctx context.Context, reader io.Reader, cons console.Console) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		level, data := parseLine(line)
		console.Method(cons, level)(data)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", errReadingInput, err)
	}
	return nil
}

// parseLine splits line in its level and payload. Lines without a level prefix get the DEFAULT level,
// payloads holding a JSON object or array are decoded, any other payload is kept as text.
func parseLine(line string) (uilogger.LogLevel, any) {
	level := uilogger.DEFAULT
	payload := line
	if match := levelPrefix.FindStringSubmatch(line); match != nil {
		level = uilogger.LevelFromString(match[1])
		payload = line[len(match[0]):]
	}

	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var data any
		if err := json.Unmarshal([]byte(trimmed), &data); err == nil {
			return level, data
		}
	}

	return level, payload
}
