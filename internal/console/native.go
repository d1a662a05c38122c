// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"github.com/mia-platform/logpanel/internal/logger"
)

var _ Console = &loggerConsole{}

// loggerConsole is the native console of the process, backed by the application logger.
type loggerConsole struct {
	log logger.Logger
}

// FromLogger returns a console writing on log, Log calls are emitted at the INFO level.
func FromLogger(log logger.Logger) Console {
	if log == nil {
		return nil
	}

	return &loggerConsole{log: log}
}

func (c *loggerConsole) Log(args ...any)   { c.write(logger.INFO, args) }
func (c *loggerConsole) Debug(args ...any) { c.write(logger.DEBUG, args) }
func (c *loggerConsole) Info(args ...any)  { c.write(logger.INFO, args) }
func (c *loggerConsole) Warn(args ...any)  { c.write(logger.WARN, args) }
func (c *loggerConsole) Error(args ...any) { c.write(logger.ERROR, args) }

func (c *loggerConsole) write(level logger.Level, args []any) {
	c.log.Log(level, Text(args))
}
