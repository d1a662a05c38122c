// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mia-platform/logpanel/internal/uilogger"
)

var (
	_ uilogger.Host  = &Terminal{}
	_ uilogger.Panel = &panel{}
)

const ruleWidth = 40

// Terminal is always ready: the output stream is available as soon as it is created.
type Terminal struct {
	out    io.Writer
	styles map[string]lipgloss.Style
	muted  lipgloss.Style

	lock  sync.Mutex
	panel *panel
}

type panel struct {
	term  *Terminal
	id    string
	lines []uilogger.Line
}

// New returns a terminal host printing on out. Colors are enabled only when out supports them.
func New(out io.Writer) *Terminal {
	renderer := lipgloss.NewRenderer(out)
	return &Terminal{
		out: out,
		styles: map[string]lipgloss.Style{
			uilogger.ClassDebug: renderer.NewStyle().Foreground(lipgloss.Color("245")),
			uilogger.ClassInfo:  renderer.NewStyle(),
			uilogger.ClassWarn:  renderer.NewStyle().Foreground(lipgloss.Color("214")),
			uilogger.ClassError: renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
		muted: renderer.NewStyle().Faint(true),
	}
}

func (t *Terminal) Ready() bool { return true }

func (t *Terminal) OnReady(fn func()) { fn() }

func (t *Terminal) Panel() (uilogger.Panel, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.panel == nil {
		return nil, false
	}
	return t.panel, true
}

func (t *Terminal) Attach(id, class string) uilogger.Panel {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.panel = &panel{term: t, id: id}
	t.rule(fmt.Sprintf("%s (%s)", id, class))
	return t.panel
}

func (t *Terminal) Detach() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.panel == nil {
		return
	}
	t.rule(t.panel.id + " closed")
	t.panel = nil
}

// Lines returns a copy of the lines of the attached panel, nil when no panel is attached.
func (t *Terminal) Lines() []uilogger.Line {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.panel == nil {
		return nil
	}

	lines := make([]uilogger.Line, len(t.panel.lines))
	copy(lines, t.panel.lines)
	return lines
}

// rule must be called with the lock held.
func (t *Terminal) rule(label string) {
	fill := max(ruleWidth-len(label)-4, 2)
	fmt.Fprintln(t.out, t.muted.Render("── "+label+" "+strings.Repeat("─", fill)))
}

func (p *panel) Append(line uilogger.Line) {
	p.term.lock.Lock()
	defer p.term.lock.Unlock()

	p.lines = append(p.lines, line)
	style, ok := p.term.styles[line.Class]
	if !ok {
		style = p.term.styles[uilogger.ClassInfo]
	}
	fmt.Fprintln(p.term.out, style.Render(line.Text))
}

// Clear cannot erase what was already printed, it marks the reset with a rule instead.
func (p *panel) Clear() {
	p.term.lock.Lock()
	defer p.term.lock.Unlock()

	if len(p.lines) == 0 {
		return
	}
	p.lines = nil
	p.term.rule("cleared")
}

// ScrollToBottom is a no-op, the terminal always shows the last printed line.
func (p *panel) ScrollToBottom() {}
