// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a console that prints every call as a plain text line on the
// given io.Writer instance.
// It is primarily useful for debugging purposes, or as the native console of hosts that
// only expose an output stream.
package writer
