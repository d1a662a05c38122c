// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

import "time"

// LogEntry is a single captured logging call.
type LogEntry struct {
	// ID uniquely identifies the entry, hosts use it to key rendered lines.
	ID string
	// Data is the value passed to the logging call, a string or any structured value.
	Data any
	// Level is the severity of the entry.
	Level LogLevel
	// Timestamp is the moment the logging call was made.
	Timestamp time.Time
}
