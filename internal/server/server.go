// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/logpanel/internal/console"
	"github.com/mia-platform/logpanel/internal/info"
	"github.com/mia-platform/logpanel/internal/logger"
	"github.com/mia-platform/logpanel/internal/panel/html"
	"github.com/mia-platform/logpanel/internal/uilogger"
)

const (
	loggerName = "logpanel:server"
)

type Server interface {
	Start() error
	Stop() error
}

type impServer struct {
	config

	app *fiber.App
	doc *html.Document
	log logger.Logger
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer returns a server publishing doc and exposing the API to drive uiLogger.
// Messages posted on the API are written on cons.
func NewServer(ctx context.Context, uiLogger *uilogger.Logger, cons console.Console, doc *html.Document) (Server, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // request values are read by the request logger after the handlers returned
	})
	log := logger.Named(ctx, loggerName)
	app.Use(logger.RequestMiddlewareLogger(log, []string{"/-/"}))

	statusRoutes(app, doc, info.AppName, info.Version)
	pageRoutes(app, doc)
	apiRoutes(app, uiLogger, cons)

	return &impServer{
		config: *cfg,
		app:    app,
		doc:    doc,
		log:    log,
	}, nil
}

// Start opens the listener, marks the document as ready and serves until Stop is called.
func (s *impServer) Start() error {
	address := net.JoinHostPort(s.HTTPHost, strconv.Itoa(s.HTTPPort))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}

	s.log.Info("log panel listening", "address", listener.Addr().String())
	s.doc.MarkReady()

	if err := s.app.Listener(listener); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *impServer) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}
