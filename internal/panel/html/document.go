// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package html

import (
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/mia-platform/logpanel/internal/uilogger"
)

var (
	_ uilogger.Host  = &Document{}
	_ uilogger.Panel = &listElement{}
)

// DefaultRefresh is the interval between two reloads of the rendered page.
const DefaultRefresh = 5 * time.Second

// Document is the page hosting the log panel.
type Document struct {
	title   string
	refresh time.Duration

	lock      sync.Mutex
	ready     bool
	listeners []func()
	panel     *listElement
}

// listElement is the ordered list rendered for the panel.
type listElement struct {
	doc   *Document
	id    string
	class string
	items []uilogger.Line
	// scrollTop is the index of the line scrolled into view.
	scrollTop int
}

// Option customizes a Document.
type Option func(*Document)

// WithRefresh sets how often the rendered page reloads itself, zero or less disables the reload.
func WithRefresh(refresh time.Duration) Option {
	return func(d *Document) {
		d.refresh = refresh
	}
}

// NewDocument returns a document that is not ready yet.
func NewDocument(title string, opts ...Option) *Document {
	doc := &Document{title: title, refresh: DefaultRefresh}
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

func (d *Document) Ready() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.ready
}

func (d *Document) OnReady(fn func()) {
	d.lock.Lock()
	if !d.ready {
		d.listeners = append(d.listeners, fn)
		d.lock.Unlock()
		return
	}
	d.lock.Unlock()

	fn()
}

// MarkReady flags the document as ready and runs the registered listeners once.
func (d *Document) MarkReady() {
	d.lock.Lock()
	if d.ready {
		d.lock.Unlock()
		return
	}
	d.ready = true
	listeners := d.listeners
	d.listeners = nil
	d.lock.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (d *Document) Panel() (uilogger.Panel, bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.panel == nil {
		return nil, false
	}
	return d.panel, true
}

func (d *Document) Attach(id, class string) uilogger.Panel {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.panel = &listElement{doc: d, id: id, class: class}
	return d.panel
}

func (d *Document) Detach() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.panel = nil
}

// Lines returns a copy of the lines currently shown, nil when the panel is not attached.
func (d *Document) Lines() []uilogger.Line {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.panel == nil {
		return nil
	}

	lines := make([]uilogger.Line, len(d.panel.items))
	copy(lines, d.panel.items)
	return lines
}

func (e *listElement) Append(line uilogger.Line) {
	e.doc.lock.Lock()
	defer e.doc.lock.Unlock()
	e.items = append(e.items, line)
}

func (e *listElement) Clear() {
	e.doc.lock.Lock()
	defer e.doc.lock.Unlock()
	e.items = nil
	e.scrollTop = 0
}

func (e *listElement) ScrollToBottom() {
	e.doc.lock.Lock()
	defer e.doc.lock.Unlock()
	e.scrollTop = max(len(e.items)-1, 0)
}

type panelView struct {
	ID        string
	Class     string
	Items     []uilogger.Line
	ScrollTop int
}

type pageView struct {
	Title string
	// Refresh is the reload interval in seconds, 0 when disabled.
	Refresh int
	Panel   *panelView
}

// Render writes the whole page on w.
func (d *Document) Render(w io.Writer) error {
	d.lock.Lock()
	view := pageView{Title: d.title}
	if d.refresh > 0 {
		view.Refresh = max(int(d.refresh/time.Second), 1)
	}
	if d.panel != nil {
		items := make([]uilogger.Line, len(d.panel.items))
		copy(items, d.panel.items)
		view.Panel = &panelView{
			ID:        d.panel.id,
			Class:     d.panel.class,
			Items:     items,
			ScrollTop: d.panel.scrollTop,
		}
	}
	d.lock.Unlock()

	return pageTemplate.Execute(w, view)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
{{- if .Refresh }}
<meta http-equiv="refresh" content="{{ .Refresh }}">
{{- end }}
<title>{{ .Title }}</title>
<style>
.logPanel { font-family: monospace; max-height: 90vh; overflow-y: auto; margin: 0; padding: 0 0 0 3em; }
.logPanel .debug { color: #808080; }
.logPanel .info { color: #000000; }
.logPanel .warn { color: #c67a00; }
.logPanel .error { color: #cc0000; }
</style>
</head>
<body>
{{- with .Panel }}
<ol id="{{ .ID }}" class="{{ .Class }}" data-scroll-top="{{ .ScrollTop }}">
{{- range .Items }}
<li class="{{ .Class }}" data-id="{{ .ID }}">{{ .Text }}</li>
{{- end }}
</ol>
<script>
var logPanel = document.getElementById({{ .ID }});
var savedScroll = sessionStorage.getItem("logPanelScroll");
if (savedScroll === null || savedScroll === "bottom") {
  logPanel.scrollTop = logPanel.scrollHeight;
} else {
  logPanel.scrollTop = Number(savedScroll);
}
window.addEventListener("beforeunload", function () {
  var atBottom = logPanel.scrollTop + logPanel.clientHeight >= logPanel.scrollHeight - 2;
  sessionStorage.setItem("logPanelScroll", atBottom ? "bottom" : String(logPanel.scrollTop));
});
</script>
{{- end }}
</body>
</html>
`))
