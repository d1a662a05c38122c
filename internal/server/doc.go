// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP server exposing the log panel page and its API.
// It sets up the HTTP server using the Fiber framework, configures middleware for logging,
// and marks the panel document as ready once the listener is open.
package server
