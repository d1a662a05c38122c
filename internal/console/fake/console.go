// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/logpanel/internal/console"
)

var _ console.Console = &FakeConsole{}

// Call is a single recorded console invocation.
type Call struct {
	Method string
	Args   []any
}

// FakeConsole records every call it receives.
type FakeConsole struct {
	tb testing.TB

	lock  sync.Mutex
	calls []Call
}

func NewFakeConsole(tb testing.TB) *FakeConsole {
	tb.Helper()
	return &FakeConsole{tb: tb}
}

func (f *FakeConsole) Log(args ...any)   { f.record("log", args) }
func (f *FakeConsole) Debug(args ...any) { f.record("debug", args) }
func (f *FakeConsole) Info(args ...any)  { f.record("info", args) }
func (f *FakeConsole) Warn(args ...any)  { f.record("warn", args) }
func (f *FakeConsole) Error(args ...any) { f.record("error", args) }

// Calls returns the recorded calls in order.
func (f *FakeConsole) Calls() []Call {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()

	calls := make([]Call, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *FakeConsole) record(method string, args []any) {
	f.tb.Helper()
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = append(f.calls, Call{Method: method, Args: args})
}
