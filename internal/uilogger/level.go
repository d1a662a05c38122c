// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

import "strings"

//go:generate ${TOOLS_BIN}/stringer -type=LogLevel
type LogLevel int

// The zero value is DEFAULT, so an omitted level is always DEFAULT.
const (
	DEFAULT LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// Severity classes applied to rendered panel lines.
const (
	ClassDebug = "debug"
	ClassInfo  = "info"
	ClassWarn  = "warn"
	ClassError = "error"
)

// LevelFromString parses a level name, unknown names parse to DEFAULT.
func LevelFromString(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return DEFAULT
	}
}

// ClassName returns the style class used to render an entry of level l.
func (l LogLevel) ClassName() string {
	switch l {
	case DEBUG:
		return ClassDebug
	case WARN:
		return ClassWarn
	case ERROR:
		return ClassError
	default:
		return ClassInfo
	}
}
