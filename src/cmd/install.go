package cmd

import (
	"errors"
	"os"

	"github.com/pipctl/pipctl/src/internal/pip"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	installYesFlag     bool
	installElevateFlag bool
)

var installCmd = &cobra.Command{
	Use:   "install <package>",
	Short: "Install a package into the environment",
	Long: `Install a package with pip.

If the package already satisfies its requirement nothing is installed. A
confirmation prompt is shown before installing; pass --yes to skip it.

Examples:
  pipctl install requests
  pipctl install "requests>=2.28" --yes
  pipctl install numpy --elevate`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		packageName := args[0]

		cfg, err := resolveConfig(cmd.Context())
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

		var gate pip.ConfirmationGate
		if !installYesFlag {
			gate = consoleGate{}
		}
		mgr := pip.NewManager(nil, gate, cliPrefs{})

		ok, err := mgr.QueryInstall(cmd.Context(), cfg, packageName, installElevateFlag, ui.NewConsoleSink())
		switch {
		case errors.Is(err, pip.ErrCanceled):
			ui.Info("Canceled")
		case err != nil:
			ui.Error("%v", err)
			os.Exit(1)
		case ok:
			ui.Success("%s is installed", ui.Highlight(packageName))
		default:
			os.Exit(1)
		}
	},
}

func init() {
	installCmd.Flags().BoolVarP(&installYesFlag, "yes", "y", false, "Install without prompting for confirmation")
	installCmd.Flags().BoolVar(&installElevateFlag, "elevate", false, "Run pip with escalated privileges")
	rootCmd.AddCommand(installCmd)
}
