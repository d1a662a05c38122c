// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package uilogger buffers timestamped log entries in memory and optionally renders them
// into a log panel owned by a Host, for environments where no developer tools are available.
//
// A Logger is constructed explicitly and injected into its consumers. The panel is attached
// to the host on demand and always replays the whole message history, so hiding and showing
// it again never loses entries; only Clear drops them.
package uilogger
