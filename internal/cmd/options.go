// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mia-platform/logpanel/internal/config"
	"github.com/mia-platform/logpanel/internal/console"
	"github.com/mia-platform/logpanel/internal/console/writer"
	"github.com/mia-platform/logpanel/internal/logger"
	"github.com/mia-platform/logpanel/internal/panel/html"
	"github.com/mia-platform/logpanel/internal/panel/terminal"
	"github.com/mia-platform/logpanel/internal/server"
	"github.com/mia-platform/logpanel/internal/uilogger"
)

const (
	consoleLoggerName = "logpanel:console"
)

// serverFactory builds the HTTP server publishing the log panel document.
type serverFactory func(context.Context, *uilogger.Logger, console.Console, *html.Document) (server.Server, error)

// options configures the serve and tail commands.
type options struct {
	config        *config.Config
	decorator     uilogger.MessageDecorator
	out           io.Writer
	errOut        io.Writer
	input         io.Reader
	inputPath     string
	serverFactory serverFactory

	lock sync.Mutex
}

// executeServe publishes the log panel over HTTP until ctx is cancelled or a termination signal arrives.
func (o *options) executeServe(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	input, closeInput, err := o.openInput()
	if err != nil {
		return err
	}
	defer closeInput()

	doc := html.NewDocument(o.config.Panel.Title, html.WithRefresh(o.config.Panel.Refresh))
	uiLogger := o.uiLogger(ctx, doc)
	cons := o.console(ctx, uiLogger)

	srv, err := o.serverFactory(ctx, uiLogger, cons, doc)
	if err != nil {
		return err
	}

	if o.config.Panel.Show {
		uiLogger.ShowLogPanel()
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	pumpErr := make(chan error, 1)
	if input != nil {
		// a read blocked on stdin is not interrupted by ctx, the goroutine ends with the process
		go func() {
			if err := pump(ctx, input, cons); err != nil {
				pumpErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		return srv.Stop()
	case err := <-serverErr:
		return err
	case err := <-pumpErr:
		_ = srv.Stop() // the read error is the one worth reporting
		return err
	}
}

// executeTail renders the log panel on the output until the end of the input.
func (o *options) executeTail(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	input, closeInput, err := o.openInput()
	if err != nil {
		return err
	}
	defer closeInput()

	uiLogger := o.uiLogger(ctx, terminal.New(o.out))
	cons := o.console(ctx, uiLogger)

	if o.config.Panel.Show {
		uiLogger.ShowLogPanel()
	}

	if input == nil {
		return nil
	}
	return pump(ctx, input, cons)
}

// uiLogger returns a Logger rendering into host with the configured decorator.
func (o *options) uiLogger(ctx context.Context, host uilogger.Host) *uilogger.Logger {
	uiLogger := uilogger.New(ctx, host)
	uiLogger.SetMessageDecorator(o.decorator)
	return uiLogger
}

// console returns the console whose calls are captured by uiLogger. When interception is enabled
// the calls are also forwarded to the configured native console.
func (o *options) console(ctx context.Context, uiLogger *uilogger.Logger) console.Console {
	if !o.config.Console.Intercept {
		return console.Capture(uiLogger)
	}

	var native console.Console
	switch o.config.Console.Output {
	case config.OutputStderr:
		native = writer.NewConsole(o.errOut)
	default:
		native = console.FromLogger(logger.Named(ctx, consoleLoggerName))
	}
	return console.Intercept(native, uiLogger)
}

// openInput returns the reader to pump lines from and the function releasing it.
// The reader is nil when no input has been configured.
func (o *options) openInput() (io.Reader, func(), error) {
	if o.inputPath == "" {
		return o.input, func() {}, nil
	}

	file, err := os.Open(o.inputPath)
	if err != nil {
		return nil, nil, err
	}

	return file, func() { _ = file.Close() }, nil
}
