// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package decorator

import (
	"strings"
	"text/template"
	"time"

	"github.com/mia-platform/logpanel/internal/decorator/functions"
	"github.com/mia-platform/logpanel/internal/uilogger"
)

// entryData is the value a message template is executed with.
type entryData struct {
	ID    string
	Level string
	Class string
	Time  time.Time
	Data  any
	Text  string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"clock":      functions.Clock,
		"formatTime": functions.FormatTime,

		"quote":      functions.Quote,
		"trim":       functions.TrimSpace,
		"trimPrefix": functions.TrimPrefix,
		"trimSuffix": functions.TrimSuffix,
		"replace":    functions.Replace,
		"upper":      functions.ToUpper,
		"lower":      functions.ToLower,
		"truncate":   functions.Truncate,
		"pad":        functions.Pad,
		"split":      functions.Split,

		"join":  functions.Join,
		"first": functions.First,
		"last":  functions.Last,

		"toJSON": functions.ToJSON,
		"get":    functions.Get,
		"pick":   functions.Pick,
	}
}

// New compiles text into a MessageDecorator. Entries the template fails to render
// are formatted with uilogger.DefaultDecorator.
func New(text string) (uilogger.MessageDecorator, error) {
	tmpl, err := template.New("message").Funcs(funcMap()).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, NewParsingError(err)
	}

	return func(entry uilogger.LogEntry) string {
		builder := new(strings.Builder)
		if err := tmpl.Execute(builder, newEntryData(entry)); err != nil {
			return uilogger.DefaultDecorator(entry)
		}
		return builder.String()
	}, nil
}

func newEntryData(entry uilogger.LogEntry) entryData {
	return entryData{
		ID:    entry.ID,
		Level: entry.Level.String(),
		Class: entry.Level.ClassName(),
		Time:  entry.Timestamp.Local(),
		Data:  entry.Data,
		Text:  uilogger.FormatData(entry.Data),
	}
}
