// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"time"
)

// Clock formats t as H:MM:SS.mmm, the time layout of the default decorator.
func Clock(t time.Time) string {
	return fmt.Sprintf("%d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// FormatTime formats t with a Go time layout, "rfc3339" and "kitchen" are accepted as shorthands.
func FormatTime(layout string, t time.Time) string {
	switch layout {
	case "rfc3339":
		layout = time.RFC3339Nano
	case "kitchen":
		layout = time.Kitchen
	}

	return t.Format(layout)
}
