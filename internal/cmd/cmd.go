// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "serve the log panel page over HTTP"
	serveCmdLong  = `Serve the log panel as an HTML page.
	The panel lists every message captured since the start, colored by severity,
	and is created as soon as the HTTP listener is ready. Messages can be sent
	with the /api/messages endpoint or, with --stdin, one per line on the
	standard input.

	A line can start with a level prefix (debug:, info:, warn:, error:) and its
	payload is decoded as structured data when it is a JSON object or array.

	The listening address is read from the HTTP_HOST and HTTP_PORT environment
	variables.`

	serveCmdExample = `# Serve the panel and capture the output of a process
	my-process 2>&1 | logpanel serve --stdin

	# Serve the panel with a custom configuration
	logpanel serve --config logpanel.yaml`

	tailCmdUsage = "tail [FILE]"
	tailCmdShort = "render the log panel on the terminal"
	tailCmdLong  = `Render the log panel on the terminal.
	Every line read from FILE, or from the standard input when FILE is omitted,
	is captured as a message and printed with the style of its severity until
	the end of the input.`

	tailCmdExample = `# Render the messages written in a file
	logpanel tail app.log

	# Render the output of a process with level labels
	my-process | logpanel tail --config labels.yaml`
)

// ServeCmd returns the Cobra command that serves the log panel page.
func ServeCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.executeServe(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	flags.addServeFlags(cmd)
	return cmd
}

// TailCmd returns the Cobra command that renders the log panel on the terminal.
func TailCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     tailCmdUsage,
		Short:   heredoc.Doc(tailCmdShort),
		Long:    heredoc.Doc(tailCmdLong),
		Example: heredoc.Doc(tailCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.executeTail(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
