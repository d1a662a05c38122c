// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package html implements a log panel host backed by an in-memory HTML document.
// The document becomes ready when the page can be served, and renders the panel as an
// ordered list whose items carry the severity class of their entry.
package html
