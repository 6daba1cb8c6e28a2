// Package cli implements the cobra-based command line of mkd.
//
// The root command is the directory creator itself; the only subcommand is
// "completion". This file defines the root command, its flags and the error
// to exit-code translation.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mkd/internal/manifest"
	"github.com/shinji-kodama/mkd/internal/mkdir"
	"github.com/shinji-kodama/mkd/internal/model"
	"github.com/shinji-kodama/mkd/internal/report"
)

// Global flag variables. These are bound to cobra persistent flags on the
// root command, so the completion subcommand sees them too.
var (
	// debug enables [debug] trace lines on stderr.
	debug bool

	// outputFormat is the raw --output value ("text", "json" or "yaml").
	// Errors are printed as JSON when it is "json".
	outputFormat string

	// colorChoice is the raw --color value ("auto", "always" or "never").
	colorChoice string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values that drive directory creation.
type rootFlags struct {
	parents  bool   // -p, --parents
	noError  bool   // -e, --no-error
	verbose  bool   // -v, --verbose
	mode     string // -m, --mode
	fromFile string // -f, --from-file
}

// request builds the immutable Request for one invocation.
func (f *rootFlags) request(paths []string) *model.Request {
	return &model.Request{
		Paths:   paths,
		Parents: f.parents,
		NoError: f.noError,
		Verbose: f.verbose,
		Mode:    f.mode,
	}
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "mkd [flags] DIRECTORY...",
		Short: "Modern replacement for mkdir",
		Long: `mkd creates directories and tells you plainly what happened.

Every path is attempted in order. Failures for one path (already exists,
missing parent, permission denied) are reported and the next path is
processed; the exit code stays 0. Only an unreadable working directory, an
invalid --mode or a mode that cannot be applied abort the run.

Examples:
  mkd build
  mkd -p build/bin build/obj
  mkd -pv -m 700 ~/.secrets
  mkd -e -f dirs.yaml
  mkd -o json a b/c`,

		// Any number of directories; the no-argument case shows help.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them (text or JSON based on --output).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Positional arguments complete as directories.
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkd(cmd, args, flags)
		},
	}

	// The default completion command only prints scripts; ours can also
	// install them.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVarP(&flags.parents, "parents", "p", false, "Create parent directories if they don't exist")
	rootCmd.Flags().BoolVarP(&flags.noError, "no-error", "e", false, "Ignore error if folder exists")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable output on success")
	rootCmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "Permission of new folders, as an octal number (e.g. 755)")
	rootCmd.Flags().StringVarP(&flags.fromFile, "from-file", "f", "", "Read additional directories from a JSON(C) or YAML file")
	_ = rootCmd.MarkFlagFilename("from-file", "json", "jsonc", "yaml", "yml")

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(report.FormatText), "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&colorChoice, "color", string(ColorAuto), "When to use colors: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug trace to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// runMkd gathers the paths, picks a reporter and runs the creation pipeline.
func runMkd(cmd *cobra.Command, args []string, flags *rootFlags) error {
	paths := append([]string(nil), args...)
	if flags.fromFile != "" {
		listed, err := manifest.Load(flags.fromFile)
		if err != nil {
			return err
		}
		DebugLog(cmd.ErrOrStderr(), "read %d path(s) from %s", len(listed), flags.fromFile)
		paths = append(paths, listed...)
	}

	if len(paths) == 0 {
		_ = cmd.Help()
		return &model.CLIError{Code: model.ExitUsage, Message: "no directories given", Silent: true}
	}

	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --output", err)
	}
	choice, err := ParseColorMode(colorChoice)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --color", err)
	}

	req := flags.request(paths)
	out := cmd.OutOrStdout()

	if !format.IsStructured() {
		reporter := report.NewTextReporter(out, report.Options{
			NoError: req.NoError,
			Verbose: req.Verbose,
			Color:   choice.Enabled(out),
		})
		return newRunner(cmd, reporter).Run(cmd.Context(), req)
	}

	reporter, err := report.NewStructuredReporter(out, format, req.Mode)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --output", err)
	}
	runErr := newRunner(cmd, reporter).Run(cmd.Context(), req)
	// Paths processed before a fatal error are still reported.
	if err := reporter.Flush(); err != nil && runErr == nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write report", err)
	}
	return runErr
}

func newRunner(cmd *cobra.Command, reporter mkdir.Reporter) *mkdir.Runner {
	runner := mkdir.NewRunner(reporter)
	stderr := cmd.ErrOrStderr()
	runner.Debugf = func(format string, args ...interface{}) {
		DebugLog(stderr, format, args...)
	}
	return runner
}

// Execute runs the root command and translates its error into the process
// exit code. This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors (including
// cobra's own flag parsing errors) map to ExitGeneralError.
func Execute(ctx context.Context, rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return model.ExitSuccess
	}

	stderr := rootCmd.ErrOrStderr()
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Silent {
			printError(stderr, cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}

	printError(stderr, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --output global flag.
func printError(w io.Writer, message string, underlying error) {
	if report.Format(strings.ToLower(outputFormat)) == report.FormatJSON {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// DebugLog prints a message to w only when --debug is set.
func DebugLog(w io.Writer, format string, args ...interface{}) {
	if debug {
		fmt.Fprintf(w, "[debug] "+format+"\n", args...)
	}
}
