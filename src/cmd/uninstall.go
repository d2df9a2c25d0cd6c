package cmd

import (
	"fmt"
	"os"

	"github.com/pipctl/pipctl/src/internal/pip"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	uninstallYesFlag     bool
	uninstallElevateFlag bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <package>",
	Short: "Uninstall a package from the environment",
	Long: `Uninstall a package with pip.

pip's own confirmation is suppressed; pipctl asks once up front instead.
Pass --yes to skip the prompt.

Examples:
  pipctl uninstall requests
  pipctl uninstall numpy --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		packageName := args[0]

		cfg, err := resolveConfig(cmd.Context())
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

		if !uninstallYesFlag {
			ok, err := consoleGate{}.Confirm(fmt.Sprintf("This will remove '%s' from %s.", packageName, cfg.Prefix))
			if err != nil {
				ui.Error("%v", err)
				os.Exit(1)
			}
			if !ok {
				ui.Info("Canceled")
				return
			}
		}

		mgr := pip.NewManager(nil, nil, cliPrefs{})
		ok, err := mgr.Uninstall(cmd.Context(), cfg, packageName, uninstallElevateFlag, ui.NewConsoleSink())
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
		ui.Success("%s was removed", ui.Highlight(packageName))
	},
}

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallYesFlag, "yes", "y", false, "Uninstall without prompting for confirmation")
	uninstallCmd.Flags().BoolVar(&uninstallElevateFlag, "elevate", false, "Run pip with escalated privileges")
	rootCmd.AddCommand(uninstallCmd)
}
