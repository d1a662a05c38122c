// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package decorator builds message decorators from Go templates.
//
// A template is executed for every rendered entry with the following fields:
//
//	.ID     the entry unique identifier
//	.Level  the level name (DEFAULT, DEBUG, INFO, WARN, ERROR)
//	.Class  the severity class used to style the line
//	.Time   the entry timestamp in local time
//	.Data   the logged value
//	.Text   the logged value formatted as the default decorator does
//
// For example the template
//
//	{{ .Level | pad 5 }} {{ clock .Time }} {{ .Text | truncate 120 }}
//
// renders lines like "WARN  9:04:05.123 disk almost full".
package decorator
