// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package terminal implements a log panel host that streams the panel lines on a terminal,
// coloring every line with the style of its severity class.
package terminal
