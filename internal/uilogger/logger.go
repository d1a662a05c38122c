// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mia-platform/logpanel/internal/logger"
)

const (
	loggerName = "logpanel:uilogger"
)

// Logger keeps every entry logged since its creation and mirrors them into the host panel
// while it is shown.
type Logger struct {
	log  logger.Logger
	host Host
	now  func() time.Time

	lock      sync.Mutex
	messages  []LogEntry
	decorator MessageDecorator
	// pending is set while a panel creation waits for the host to become ready.
	pending bool
}

// New returns a Logger rendering its panel into host. A nil host disables every panel operation.
func New(ctx context.Context, host Host) *Logger {
	return &Logger{
		log:       logger.Named(ctx, loggerName),
		host:      host,
		now:       time.Now,
		decorator: DefaultDecorator,
	}
}

// Log records data with the given level, DEFAULT when the level is omitted.
func (l *Logger) Log(data any, level ...LogLevel) {
	logLevel := DEFAULT
	if len(level) > 0 {
		logLevel = level[0]
	}

	l.record(data, logLevel)
}

// Debug records data at the DEBUG level.
func (l *Logger) Debug(data any) { l.record(data, DEBUG) }

// Info records data at the INFO level.
func (l *Logger) Info(data any) { l.record(data, INFO) }

// Warn records data at the WARN level.
func (l *Logger) Warn(data any) { l.record(data, WARN) }

// Error records data at the ERROR level.
func (l *Logger) Error(data any) { l.record(data, ERROR) }

func (l *Logger) record(data any, level LogLevel) {
	entry := LogEntry{
		ID:        uuid.NewString(),
		Data:      data,
		Level:     level,
		Timestamp: l.now(),
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.messages = append(l.messages, entry)
	if panel, ok := l.panel(); ok {
		l.render(panel, entry)
	}
}

// ShowLogPanel attaches the panel to the host and renders the whole history into it.
// When the host is not ready yet the creation is deferred until it is, and the history
// rendered is the one available at that moment.
func (l *Logger) ShowLogPanel() {
	if l.host == nil {
		return
	}

	if !l.showOrDefer() {
		return
	}

	l.log.Debug("host not ready, deferring log panel creation")
	l.host.OnReady(l.showDeferred)
}

// showOrDefer attaches the panel if the host is ready, otherwise it marks a creation as pending.
// It reports whether the caller has to subscribe to the host ready signal.
func (l *Logger) showOrDefer() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.host.Ready() {
		l.attach()
		return false
	}

	if l.pending {
		return false
	}

	l.pending = true
	return true
}

func (l *Logger) showDeferred() {
	l.lock.Lock()
	defer l.lock.Unlock()

	if !l.pending {
		l.log.Debug("deferred log panel creation cancelled")
		return
	}

	l.attach()
}

// attach must be called with the lock held.
func (l *Logger) attach() {
	l.pending = false
	if _, ok := l.host.Panel(); ok {
		return
	}

	panel := l.host.Attach(PanelID, PanelClass)
	l.populate(panel)
	l.log.Trace("log panel attached", "entries", len(l.messages))
}

// HideLogPanel removes the panel from the host, keeping the message history.
// A creation still waiting for the host to become ready is cancelled.
func (l *Logger) HideLogPanel() {
	if l.host == nil {
		return
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.pending = false
	if _, ok := l.host.Panel(); ok {
		l.host.Detach()
		l.log.Trace("log panel detached")
	}
}

// IsShowingLogPanel reports whether the host currently holds the panel.
func (l *Logger) IsShowingLogPanel() bool {
	_, ok := l.panel()
	return ok
}

// Clear drops every recorded entry and empties the panel if it is shown.
func (l *Logger) Clear() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.messages = nil
	if panel, ok := l.panel(); ok {
		l.populate(panel)
	}
}

// Messages returns a copy of the recorded entries in chronological order.
func (l *Logger) Messages() []LogEntry {
	l.lock.Lock()
	defer l.lock.Unlock()

	messages := make([]LogEntry, len(l.messages))
	copy(messages, l.messages)
	return messages
}

// MessageDecorator returns the decorator currently used to render entries.
func (l *Logger) MessageDecorator() MessageDecorator {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.decorator
}

// SetMessageDecorator replaces the decorator used for the next renders, nil restores DefaultDecorator.
// Lines already rendered are left untouched.
func (l *Logger) SetMessageDecorator(decorator MessageDecorator) {
	if decorator == nil {
		decorator = DefaultDecorator
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.decorator = decorator
}

// Decorate renders entry with the current decorator.
func (l *Logger) Decorate(entry LogEntry) string {
	return l.MessageDecorator()(entry)
}

func (l *Logger) panel() (Panel, bool) {
	if l.host == nil {
		return nil, false
	}

	return l.host.Panel()
}

// populate must be called with the lock held.
func (l *Logger) populate(panel Panel) {
	panel.Clear()
	for _, entry := range l.messages {
		l.render(panel, entry)
	}
}

// render must be called with the lock held.
func (l *Logger) render(panel Panel, entry LogEntry) {
	panel.Append(Line{
		ID:    entry.ID,
		Text:  l.decorator(entry),
		Class: entry.Level.ClassName(),
	})
	panel.ScrollToBottom()
}
