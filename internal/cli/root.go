// Package cli implements the datazen command line tool: the same profiling
// and cleaning as the web UI, run against a local file.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/logging"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	lang     string
	logLevel string
	noColor  bool
}

// code resolves --lang, falling back to the LANG environment variable.
func (o *globalOptions) code() (i18n.Code, error) {
	if o.lang != "" {
		return i18n.ParseCode(o.lang)
	}
	return languageFromEnv(os.Getenv("LANG")), nil
}

// languageFromEnv maps a POSIX locale such as tr_TR.UTF-8 to a UI language.
func languageFromEnv(locale string) i18n.Code {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return i18n.DefaultCode
	}
	return i18n.Negotiate(strings.ReplaceAll(locale, "_", "-"))
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "datazen",
		Short: "Profile and clean CSV and Excel files",
		Long: `DataZen profiles a CSV or Excel file and applies the same cleaning
actions as the web app: drop rows with missing values, fill missing numbers
with the column mean and remove duplicate rows.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWriter(cmd.ErrOrStderr(), opts.logLevel, "text")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "label language: EN, TR, JA, KO, ZH (default from $LANG)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newProfileCommand(opts))
	rootCmd.AddCommand(newCleanCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "DataZen %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
