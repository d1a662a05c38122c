// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"strings"

	"github.com/mia-platform/logpanel/internal/uilogger"
)

// Console is the set of logging entry points of a platform console.
type Console interface {
	Log(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// Sink receives the calls captured from a console.
type Sink interface {
	Log(data any, level ...uilogger.LogLevel)
	Debug(data any)
	Info(data any)
	Warn(data any)
	Error(data any)
}

var _ Sink = &uilogger.Logger{}

// Data folds console arguments into the single value stored for them: a lone argument is kept
// as is, several are formatted and joined with a space.
func Data(args []any) any {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return args[0]
	}

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, uilogger.FormatData(arg))
	}
	return strings.Join(parts, " ")
}

// Text returns the folded arguments as display text.
func Text(args []any) string {
	return uilogger.FormatData(Data(args))
}

// Method returns the entry point of cons matching level, Log for DEFAULT and unknown levels.
func Method(cons Console, level uilogger.LogLevel) func(args ...any) {
	switch level {
	case uilogger.DEBUG:
		return cons.Debug
	case uilogger.INFO:
		return cons.Info
	case uilogger.WARN:
		return cons.Warn
	case uilogger.ERROR:
		return cons.Error
	default:
		return cons.Log
	}
}
