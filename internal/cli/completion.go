package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mkd/internal/model"
)

// completionScripts maps each supported shell to the file name its
// completion loader expects inside a completion directory.
var completionScripts = map[string]string{
	"bash":       "mkd",
	"zsh":        "_mkd",
	"fish":       "mkd.fish",
	"powershell": "mkd.ps1",
}

// completionFlags holds the flag values for the completion command.
type completionFlags struct {
	install string // --install: target directory for the script
}

// NewCompletionCommand creates the "completion" cobra command. It never
// creates any of the directories the root command would.
func NewCompletionCommand() *cobra.Command {
	flags := &completionFlags{}

	cmd := &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate or install a shell completion script",
		Long: `Generate a shell completion script for mkd.

Without --install the script is printed to stdout. With --install the script
is written into the given directory, which is created if needed.

Examples:
  source <(mkd completion bash)
  mkd completion zsh --install ~/.zsh/completions
  mkd completion fish --install ~/.config/fish/completions`,

		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.install, "install", "", "Write the script into this directory instead of stdout")
	_ = cmd.MarkFlagDirname("install")

	return cmd
}

// runCompletion generates the script for shell and prints or installs it.
// A failure to install is reported as insufficient permissions with exit
// code 1.
func runCompletion(cmd *cobra.Command, shell string, flags *completionFlags) error {
	var buf bytes.Buffer
	if err := generateCompletion(cmd.Root(), shell, &buf); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to generate completion", err)
	}

	if flags.install == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	target := filepath.Join(flags.install, completionScripts[shell])
	DebugLog(cmd.ErrOrStderr(), "installing %s completion to %s", shell, target)

	if err := os.MkdirAll(flags.install, 0o755); err != nil {
		return installError(cmd, err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return installError(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s completion to %s\n", shell, target)
	return nil
}

func generateCompletion(root *cobra.Command, shell string, buf *bytes.Buffer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(buf, true)
	case "zsh":
		return root.GenZshCompletion(buf)
	case "fish":
		return root.GenFishCompletion(buf, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(buf)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}

func installError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Insufficient permissions: %v\n", err)
	return &model.CLIError{
		Code:    model.ExitGeneralError,
		Message: "Insufficient permissions",
		Err:     err,
		Silent:  true,
	}
}
