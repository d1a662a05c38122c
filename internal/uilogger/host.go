// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package uilogger

const (
	// PanelID identifies the panel element inside its host.
	PanelID = "logPanel"
	// PanelClass is the style class applied to the panel element.
	PanelClass = "logPanel"
)

// Line is the rendered form of a LogEntry.
type Line struct {
	ID    string
	Text  string
	Class string
}

// Panel is the list the Logger renders entries into.
type Panel interface {
	// Append adds line at the end of the panel.
	Append(line Line)
	// Clear removes every line from the panel.
	Clear()
	// ScrollToBottom brings the last line into view.
	ScrollToBottom()
}

// Host owns the page a Panel is attached to.
//
// Implementations must not call back into the Logger from any of these methods.
type Host interface {
	// Ready reports whether the attachment point for the panel is available.
	Ready() bool
	// OnReady registers fn to run once when the host becomes ready,
	// fn runs immediately if the host is already ready.
	OnReady(fn func())
	// Panel returns the attached panel and whether one exists.
	Panel() (Panel, bool)
	// Attach creates a new empty panel with the given id and class and attaches it.
	Attach(id, class string) Panel
	// Detach removes the attached panel, if any.
	Detach()
}
