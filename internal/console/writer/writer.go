// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mia-platform/logpanel/internal/console"
)

var _ console.Console = &writerConsole{}

type writerConsole struct {
	writer io.Writer

	lock sync.Mutex
}

// NewConsole returns a console writing "LEVEL message" lines on w.
func NewConsole(w io.Writer) console.Console {
	return &writerConsole{
		writer: w,
	}
}

func (c *writerConsole) Log(args ...any)   { c.print("LOG", args) }
func (c *writerConsole) Debug(args ...any) { c.print("DEBUG", args) }
func (c *writerConsole) Info(args ...any)  { c.print("INFO", args) }
func (c *writerConsole) Warn(args ...any)  { c.print("WARN", args) }
func (c *writerConsole) Error(args ...any) { c.print("ERROR", args) }

func (c *writerConsole) print(method string, args []any) {
	builder := new(strings.Builder)
	builder.WriteString(method)
	builder.WriteString(" ")
	builder.WriteString(console.Text(args))
	builder.WriteString("\n")

	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprint(c.writer, builder.String())
}
