// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MessageDecorator turns a LogEntry into the text displayed for it.
type MessageDecorator func(entry LogEntry) string

// DefaultDecorator formats an entry as " [H:MM:SS.mmm] message" using the local time of its timestamp.
func DefaultDecorator(entry LogEntry) string {
	ts := entry.Timestamp.Local()
	return fmt.Sprintf(" [%d:%02d:%02d.%03d] %s",
		ts.Hour(),
		ts.Minute(),
		ts.Second(),
		ts.Nanosecond()/int(time.Millisecond),
		FormatData(entry.Data),
	)
}

// WithLevelLabel returns a decorator that prefixes the output of next with the entry level name.
func WithLevelLabel(next MessageDecorator) MessageDecorator {
	if next == nil {
		next = DefaultDecorator
	}

	return func(entry LogEntry) string {
		return " " + entry.Level.String() + next(entry)
	}
}

// FormatData returns string data unchanged and the JSON serialization of anything else.
// Values that cannot be encoded as JSON are formatted with %v.
func FormatData(data any) string {
	if s, ok := data.(string); ok {
		return s
	}

	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return fmt.Sprintf("%v", data)
	}

	return strings.TrimSuffix(buffer.String(), "\n")
}
