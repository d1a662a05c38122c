// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package functions holds the helpers available to message templates.
// Helpers taking a piped value accept it as their last argument.
package functions
