// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/logpanel/internal/cmd"
	"github.com/mia-platform/logpanel/internal/info"
	"github.com/mia-platform/logpanel/internal/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "logpanel captures console messages and shows them in a log panel"

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	logFormatFlagName = "log-format"
	logFormatAuto     = "auto"
	logFormatJSON     = "json"
	logFormatText     = "text"

	versionCmdName = "version"
)

var (
	allLoggerLevels = []string{
		logger.TRACE.String(),
		logger.DEBUG.String(),
		logger.INFO.String(),
		logger.WARN.String(),
		logger.ERROR.String(),
	}
	logLevelDefaultValue = logger.INFO.String()
	logLevelFlagUsage    = "set the logging level (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
	logFormatFlagUsage   = "set the logging format (possible values: auto, json, text), auto uses text on a terminal"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel  string
	logFormat string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.StringVar(&f.logFormat, logFormatFlagName, logFormatAuto, heredoc.Doc(logFormatFlagUsage))
}

func main() {
	cmd := rootCmd()
	log := logger.NewLogger(cmd.OutOrStderr())
	ctx := logger.WithContext(context.Background(), log)

	exitCode := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logger.FromContext(cmd.Context())
			if useTextLogger(flag.logFormat, cmd.ErrOrStderr()) {
				log = logger.NewTextLogger(cmd.ErrOrStderr())
				cmd.SetContext(logger.WithContext(cmd.Context(), log))
			}
			log.SetLevel(logger.LevelFromString(flag.logLevel))
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.ServeCmd(),
		internalcmd.TailCmd(),
		versionCmd(),
	)

	return cmd
}

// useTextLogger reports if the application logs must be human readable lines on out.
func useTextLogger(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case logFormatText:
		return true
	case logFormatJSON:
		return false
	default:
		file, ok := out.(*os.File)
		return ok && isatty.IsTerminal(file.Fd())
	}
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.VersionString(Version, BuildDate))
		},
	}
}
