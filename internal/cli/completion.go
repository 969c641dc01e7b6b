package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metcollection/pkg/integrations"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for metcollection.

To load completions:

Bash:
  $ source <(metcollection completion bash)

Zsh:
  $ metcollection completion zsh > "${fpath[1]}/_metcollection"

Fish:
  $ metcollection completion fish | source

PowerShell:
  PS> metcollection completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}

// completeDepartments offers department IDs for --department, described by
// their display names. Lookup failures yield no suggestions.
func (c *CLI) completeDepartments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	depts, err := c.newClient().ListDepartments(ctx)
	if err != nil {
		status, _ := integrations.StatusCode(err)
		c.Logger.Debug("department completion failed", "status", status, "error", err)
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(depts))
	for _, d := range depts {
		out = append(out, strconv.Itoa(d.DepartmentID)+"\t"+d.DisplayName)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
