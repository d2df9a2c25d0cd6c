package cmd

import (
	"fmt"
	"strings"

	"github.com/pipctl/pipctl/src/internal/pip"
	"github.com/pipctl/pipctl/src/internal/tui"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var freezeTableFlag bool

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "List installed packages in the environment",
	Long: `List the packages installed in the target Python environment.

The listing is taken from "pip freeze" when pip is available. When pip is
missing or broken, the site-packages directory is scanned instead, which
yields package names without versions.

Examples:
  pipctl freeze
  pipctl freeze --table
  pipctl freeze --interpreter /usr/bin/python3.11`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd.Context())
		if err != nil {
			ui.Error("%v", err)
			return
		}

		spinner := ui.NewSpinner("Enumerating installed packages...")
		spinner.Start()
		mgr := pip.NewManager(nil, nil, cliPrefs{})
		set := mgr.Freeze(cmd.Context(), cfg)
		spinner.Stop()

		if len(set) == 0 {
			ui.Warning("No packages found in %s", cfg.Prefix)
			return
		}

		if freezeTableFlag {
			table := tui.NewTable("Package", "Version")
			table.SetTitle(fmt.Sprintf("Packages in %s", cfg.Prefix))
			for _, spec := range set.Sorted() {
				name, version := splitSpec(spec)
				table.AddRow(tui.RenderPackage(name), tui.RenderVersion(version))
			}
			fmt.Println(table.Render())
			return
		}

		for _, spec := range set.Sorted() {
			fmt.Println(spec)
		}
	},
}

// splitSpec splits "name==version" into its parts; a bare name gets an empty
// version.
func splitSpec(spec string) (name, version string) {
	if i := strings.Index(spec, "=="); i >= 0 {
		return spec[:i], spec[i+2:]
	}
	return spec, ""
}

func init() {
	freezeCmd.Flags().BoolVar(&freezeTableFlag, "table", false, "Render the listing as a table")
	rootCmd.AddCommand(freezeCmd)
}
