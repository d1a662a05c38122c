// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logpanel/internal/config"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExitWithErrorOutput(t *testing.T) {
	t.Parallel()

	invalidConfig := writeTestFile(t, "invalid.yaml", "panel:\n  unknown: true\n")
	missingFile := filepath.Join(t.TempDir(), "missing.log")

	testCases := map[string]struct {
		cmd                  *cobra.Command
		args                 []string
		expectedError        error
		expectedErrorMessage string
	}{
		"tail with a missing file": {
			cmd:                  TailCmd(),
			args:                 []string{missingFile},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("open %s: %s\n", missingFile, syscall.ENOENT),
		},
		"tail with a missing config file": {
			cmd:                  TailCmd(),
			args:                 []string{"--" + configFlagName, missingFile},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("open %s: %s\n", missingFile, syscall.ENOENT),
		},
		"serve with an invalid config file": {
			cmd:           ServeCmd(),
			args:          []string{"-" + configFlagShort, invalidConfig},
			expectedError: config.ErrParsing,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			errBuffer := new(bytes.Buffer)
			outBuffer := new(bytes.Buffer)
			test.cmd.SetOut(outBuffer)
			test.cmd.SetErr(errBuffer)
			test.cmd.SetIn(strings.NewReader(""))
			test.cmd.SetArgs(test.args)

			err := test.cmd.ExecuteContext(t.Context())
			require.ErrorIs(t, err, test.expectedError)
			if test.expectedErrorMessage != "" {
				assert.Equal(t, test.expectedErrorMessage, errBuffer.String())
			} else {
				assert.Equal(t, err.Error()+"\n", errBuffer.String())
			}
			assert.Empty(t, outBuffer)
		})
	}
}

func TestArgumentsValidation(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cmd  *cobra.Command
		args []string
	}{
		"serve accepts no arguments": {
			cmd:  ServeCmd(),
			args: []string{"file.log"},
		},
		"tail accepts a single file": {
			cmd:  TailCmd(),
			args: []string{"first.log", "second.log"},
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			test.cmd.SetOut(new(bytes.Buffer))
			test.cmd.SetErr(new(bytes.Buffer))
			test.cmd.SetArgs(test.args)

			require.Error(t, test.cmd.ExecuteContext(t.Context()))
		})
	}
}

func TestTailCommand(t *testing.T) {
	t.Parallel()

	content := "service started\n\nwarn: disk almost full\nerror: {\"code\":500}\n"
	labelsConfig := writeTestFile(t, "labels.yaml", "panel:\n  levelLabels: true\n")

	testCases := map[string]struct {
		args          []string
		stdin         string
		expectedLines []string
	}{
		"file input": {
			args:          []string{writeTestFile(t, "app.log", content)},
			expectedLines: []string{"] service started", "] disk almost full", `] {"code":500}`},
		},
		"standard input": {
			stdin:         content,
			expectedLines: []string{"] service started", "] disk almost full", `] {"code":500}`},
		},
		"level labels": {
			args:          []string{"--" + configFlagName, labelsConfig},
			stdin:         content,
			expectedLines: []string{"DEFAULT [", "WARN [", "ERROR ["},
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			cmd := TailCmd()
			outBuffer := new(bytes.Buffer)
			errBuffer := new(bytes.Buffer)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)
			cmd.SetIn(strings.NewReader(test.stdin))
			cmd.SetArgs(test.args)

			require.NoError(t, cmd.ExecuteContext(t.Context()))
			assert.Empty(t, errBuffer)

			output := outBuffer.String()
			assert.Contains(t, output, "logPanel")
			for _, line := range test.expectedLines {
				assert.Contains(t, output, line)
			}
		})
	}
}
