package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const rootLong = `pathed - inspect and edit the directories in PATH

Every editing command prints the new PATH to stdout and leaves the current
shell alone; apply the result by evaluating it. When an edit fails the
unmodified PATH is printed instead, so the assignment is always safe.

With no command, the directories are listed one per line.

CONFIG FORMAT:
    $XDG_CONFIG_HOME/pathed/config.yaml (config.toml also works):

        shell: zsh          # output mode for every command
        history: true       # always record the previous PATH
        history_file: ~/.local/state/pathed/history
        quiet: false`

const rootExample = `  pathed                                  # list PATH entries
  export PATH="$(pathed add ~/bin)"       # append a directory
  export PATH="$(pathed add -p ~/bin)"    # prepend it instead
  eval "$(pathed --shell zsh up /usr/local/bin 2)"
  pathed -n dn /usr/local/bin             # preview without printing
  export PATH="$(pathed -H clean)"        # dedupe, recording history
  export PATH="$(pathed revert)"          # undo the last recorded change`

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pathed version %s\n", version)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(pathed completion bash)

Zsh:
  $ pathed completion zsh > "${fpath[1]}/_pathed"

Fish:
  $ pathed completion fish | source

PowerShell:
  PS> pathed completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
