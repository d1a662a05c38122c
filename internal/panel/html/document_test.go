// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package html

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logpanel/internal/uilogger"
)

func TestDocumentReadiness(t *testing.T) {
	t.Parallel()

	doc := NewDocument("test")
	assert.False(t, doc.Ready())

	calls := 0
	doc.OnReady(func() { calls++ })
	assert.Equal(t, 0, calls)

	doc.MarkReady()
	assert.True(t, doc.Ready())
	assert.Equal(t, 1, calls)

	doc.MarkReady()
	assert.Equal(t, 1, calls)

	doc.OnReady(func() { calls++ })
	assert.Equal(t, 2, calls)
}

func TestDocumentPanel(t *testing.T) {
	t.Parallel()

	doc := NewDocument("test")
	_, ok := doc.Panel()
	assert.False(t, ok)
	assert.Nil(t, doc.Lines())

	panel := doc.Attach(uilogger.PanelID, uilogger.PanelClass)
	attached, ok := doc.Panel()
	require.True(t, ok)
	assert.Same(t, panel, attached)

	panel.Append(uilogger.Line{ID: "1", Text: "first", Class: "info"})
	panel.Append(uilogger.Line{ID: "2", Text: "second", Class: "error"})
	panel.ScrollToBottom()
	assert.Equal(t, 1, doc.panel.scrollTop)
	assert.Len(t, doc.Lines(), 2)

	panel.Clear()
	assert.Empty(t, doc.Lines())
	assert.Equal(t, 0, doc.panel.scrollTop)

	doc.Detach()
	_, ok = doc.Panel()
	assert.False(t, ok)
}

func TestDocumentRender(t *testing.T) {
	t.Parallel()

	t.Run("without panel", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("Device <logs>")
		builder := new(strings.Builder)
		require.NoError(t, doc.Render(builder))

		page := builder.String()
		assert.Contains(t, page, "<title>Device &lt;logs&gt;</title>")
		assert.Contains(t, page, `<meta http-equiv="refresh" content="5">`)
		assert.NotContains(t, page, "<ol")
	})

	t.Run("refresh interval", func(t *testing.T) {
		t.Parallel()

		testCases := map[string]struct {
			refresh  time.Duration
			expected string
		}{
			"custom interval":           {refresh: 30 * time.Second, expected: `content="30"`},
			"sub second interval":       {refresh: 200 * time.Millisecond, expected: `content="1"`},
			"zero disables the reload":  {refresh: 0},
			"negative disables as well": {refresh: -time.Second},
		}

		for testName, test := range testCases {
			t.Run(testName, func(t *testing.T) {
				t.Parallel()

				builder := new(strings.Builder)
				require.NoError(t, NewDocument("logs", WithRefresh(test.refresh)).Render(builder))

				page := builder.String()
				if test.expected == "" {
					assert.NotContains(t, page, `http-equiv="refresh"`)
					return
				}
				assert.Contains(t, page, test.expected)
			})
		}
	})

	t.Run("with panel lines", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("logs")
		panel := doc.Attach(uilogger.PanelID, uilogger.PanelClass)
		panel.Append(uilogger.Line{ID: "a", Text: " [1:02:03.004] <b>hi</b>", Class: "warn"})
		panel.Append(uilogger.Line{ID: "b", Text: " [1:02:03.005] bye", Class: "info"})
		panel.ScrollToBottom()

		builder := new(strings.Builder)
		require.NoError(t, doc.Render(builder))

		page := builder.String()
		assert.Contains(t, page, `<ol id="logPanel" class="logPanel" data-scroll-top="1">`)
		assert.Contains(t, page, `<li class="warn" data-id="a"> [1:02:03.004] &lt;b&gt;hi&lt;/b&gt;</li>`)
		assert.Contains(t, page, `<li class="info" data-id="b"> [1:02:03.005] bye</li>`)
		assert.Less(t, strings.Index(page, `data-id="a"`), strings.Index(page, `data-id="b"`))
		assert.Contains(t, page, `document.getElementById("logPanel")`)
		assert.Contains(t, page, `sessionStorage.setItem("logPanelScroll"`)
	})
}

func TestDocumentWithLogger(t *testing.T) {
	t.Parallel()

	doc := NewDocument("logs")
	log := uilogger.New(t.Context(), doc)
	log.Warn("backlog")

	log.ShowLogPanel()
	assert.False(t, log.IsShowingLogPanel())

	log.Error("while loading")
	doc.MarkReady()

	require.True(t, log.IsShowingLogPanel())
	lines := doc.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0].Class)
	assert.Equal(t, "error", lines[1].Class)
	assert.True(t, strings.HasSuffix(lines[1].Text, "] while loading"))

	log.HideLogPanel()
	assert.Nil(t, doc.Lines())
}
