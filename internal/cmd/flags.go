// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/logpanel/internal/config"
	"github.com/mia-platform/logpanel/internal/server"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to a YAML file configuring the log panel and the console interception"

	stdinFlagName    = "stdin"
	stdinFlagUsage   = "If set, every line read from the standard input is captured as a message"
	defaultReadStdin = false
)

// flags collects the CLI options shared by the serve and tail commands.
type flags struct {
	configPath string
	readStdin  bool
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
}

// addServeFlags registers the flags only available to the serve command.
func (f *flags) addServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.readStdin, stdinFlagName, defaultReadStdin, stdinFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
func (f *flags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	decorator, err := messageDecorator(cfg.Panel)
	if err != nil {
		return nil, err
	}

	opts := &options{
		config:        cfg,
		decorator:     decorator,
		out:           cmd.OutOrStdout(),
		errOut:        cmd.ErrOrStderr(),
		serverFactory: server.NewServer,
	}

	switch {
	case len(args) > 0:
		opts.inputPath = args[0]
	case f.readStdin || cmd.Name() == "tail":
		opts.input = cmd.InOrStdin()
	}

	return opts, nil
}
