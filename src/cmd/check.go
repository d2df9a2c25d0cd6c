package cmd

import (
	"fmt"
	"os"

	"github.com/pipctl/pipctl/src/internal/pip"
	"github.com/pipctl/pipctl/src/internal/tui"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <requirement>",
	Short: "Check whether a requirement is satisfied",
	Long: `Check whether a package requirement is installed and satisfied in the
target environment. The exit code is 0 when satisfied and 1 otherwise.

Examples:
  pipctl check requests
  pipctl check "requests==2.28.1"
  pipctl check "numpy>=1.20"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requirement := args[0]

		cfg, err := resolveConfig(cmd.Context())
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

		label := ui.Highlight(requirement)
		if name, version := splitSpec(requirement); version != "" {
			label = ui.Highlight(name) + "==" + ui.HighlightVersion(version)
		}

		mgr := pip.NewManager(nil, nil, cliPrefs{})
		if mgr.IsInstalled(cmd.Context(), cfg, requirement) {
			fmt.Printf("%s %s is satisfied\n", tui.GetCheckMark(), label)
			return
		}
		fmt.Printf("%s %s is not satisfied\n", tui.GetCrossMark(), label)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
