// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/logpanel/internal/server"
)

var _ server.Server = &Server{}

// Server stands in for the HTTP server: Start runs the start hook and blocks
// until Stop is called.
type Server struct {
	tb      testing.TB
	onStart func()

	startedChan chan struct{}
	closedChan  chan struct{}
	stopOnce    sync.Once
}

// NewFakeServer returns a server running onStart when started, onStart may be nil.
func NewFakeServer(tb testing.TB, onStart func()) *Server {
	tb.Helper()

	return &Server{
		tb:          tb,
		onStart:     onStart,
		startedChan: make(chan struct{}),
		closedChan:  make(chan struct{}),
	}
}

func (s *Server) Start() error {
	s.tb.Helper()
	if s.onStart != nil {
		s.onStart()
	}
	close(s.startedChan)
	<-s.closedChan
	return nil
}

func (s *Server) Stop() error {
	s.tb.Helper()
	s.stopOnce.Do(func() { close(s.closedChan) })
	return nil
}

// StartedServer returns a channel closed once Start has been called.
func (s *Server) StartedServer() <-chan struct{} {
	s.tb.Helper()
	return s.startedChan
}

// Stopped returns a channel closed once Stop has been called.
func (s *Server) Stopped() <-chan struct{} {
	s.tb.Helper()
	return s.closedChan
}
