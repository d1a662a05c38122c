// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package console defines the capability set of a platform console and the adapters
// used to capture what is written on it.
//
// Interception is an explicit wiring step: the application builds its console with
// Intercept and uses the returned value instead of the native one. Every call is first
// forwarded to the capturing Sink and then to the native console with the original
// arguments, so the native output is unchanged.
//
// A call with several arguments is recorded as a single entry whose data is every
// argument formatted and joined with a space. This differs from calling the Logger
// directly, where Log takes its second argument as the level and the leveled methods
// accept a single value.
package console
