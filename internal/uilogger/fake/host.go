// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"testing"

	"github.com/mia-platform/logpanel/internal/uilogger"
)

var _ uilogger.Host = &Host{}
var _ uilogger.Panel = &Panel{}

// Panel records every operation the Logger performs on it.
type Panel struct {
	ID    string
	Class string

	Lines   []uilogger.Line
	Clears  int
	Scrolls int
}

func (p *Panel) Append(line uilogger.Line) {
	p.Lines = append(p.Lines, line)
}

func (p *Panel) Clear() {
	p.Lines = nil
	p.Clears++
}

func (p *Panel) ScrollToBottom() {
	p.Scrolls++
}

// Texts returns the text of every line currently in the panel.
func (p *Panel) Texts() []string {
	texts := make([]string, 0, len(p.Lines))
	for _, line := range p.Lines {
		texts = append(texts, line.Text)
	}
	return texts
}

// Host is an in-memory host whose readiness is driven by the test.
type Host struct {
	tb testing.TB

	ready     bool
	listeners []func()
	panel     *Panel

	// Attached counts how many panels have been attached over the host lifetime.
	Attached int
}

// NewFakeHost returns a host, ready reports if it is already ready.
func NewFakeHost(tb testing.TB, ready bool) *Host {
	tb.Helper()
	return &Host{tb: tb, ready: ready}
}

func (h *Host) Ready() bool {
	h.tb.Helper()
	return h.ready
}

func (h *Host) OnReady(fn func()) {
	h.tb.Helper()
	if h.ready {
		fn()
		return
	}
	h.listeners = append(h.listeners, fn)
}

// MarkReady makes the host ready and fires the pending listeners once.
func (h *Host) MarkReady() {
	h.tb.Helper()
	if h.ready {
		return
	}

	h.ready = true
	listeners := h.listeners
	h.listeners = nil
	for _, fn := range listeners {
		fn()
	}
}

// Listeners returns how many listeners wait for the host to become ready.
func (h *Host) Listeners() int {
	h.tb.Helper()
	return len(h.listeners)
}

func (h *Host) Panel() (uilogger.Panel, bool) {
	h.tb.Helper()
	if h.panel == nil {
		return nil, false
	}
	return h.panel, true
}

func (h *Host) Attach(id, class string) uilogger.Panel {
	h.tb.Helper()
	h.panel = &Panel{ID: id, Class: class}
	h.Attached++
	return h.panel
}

func (h *Host) Detach() {
	h.tb.Helper()
	h.panel = nil
}

// CurrentPanel returns the attached panel or nil.
func (h *Host) CurrentPanel() *Panel {
	h.tb.Helper()
	return h.panel
}
