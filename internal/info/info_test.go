// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package info

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	t.Parallel()

	t.Run("default values", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "DEV, Go Version: "+runtime.Version(), VersionString("DEV", ""))
	})

	t.Run("with version and build date", func(t *testing.T) {
		t.Parallel()
		expected := "1.0.0 (2023-10-27), Go Version: " + runtime.Version()
		assert.Equal(t, expected, VersionString("1.0.0", "2023-10-27"))
	})
}
