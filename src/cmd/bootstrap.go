package cmd

import (
	"errors"
	"os"

	"github.com/pipctl/pipctl/src/internal/pip"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	bootstrapYesFlag     bool
	bootstrapElevateFlag bool
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Install pip itself into the environment",
	Long: `Install pip into an environment that does not have it.

The upstream bootstrap script (get-pip.py) is fetched and run through the
interpreter. Set ` + pip.EnvBootstrapSHA256 + ` to pin the script's checksum,
and ` + EnvElevateBootstrap + `=1 to always run the bootstrap elevated.

Examples:
  pipctl bootstrap
  pipctl bootstrap --elevate --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd.Context())
		if err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}

		var gate pip.ConfirmationGate
		if !bootstrapYesFlag {
			gate = consoleGate{}
		}
		mgr := pip.NewManager(nil, gate, cliPrefs{})

		ok, err := mgr.QueryInstallTool(cmd.Context(), cfg, bootstrapElevateFlag, ui.NewConsoleSink())
		switch {
		case errors.Is(err, pip.ErrCanceled):
			ui.Info("Canceled")
		case err != nil:
			ui.Error("%v", err)
			os.Exit(1)
		case ok:
			ui.Success("pip is available in %s", cfg.Prefix)
		default:
			os.Exit(1)
		}
	},
}

func init() {
	bootstrapCmd.Flags().BoolVarP(&bootstrapYesFlag, "yes", "y", false, "Bootstrap without prompting for confirmation")
	bootstrapCmd.Flags().BoolVar(&bootstrapElevateFlag, "elevate", false, "Run the bootstrap with escalated privileges")
	rootCmd.AddCommand(bootstrapCmd)
}
