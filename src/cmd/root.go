// Package cmd implements the CLI commands for pipctl
package cmd

import (
	"fmt"
	"os"

	"github.com/pipctl/pipctl/src/internal/tui"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pipctl",
	Short: "Python package tool front-end",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
	},
}

func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by Cobra, just exit with error code
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	addEnvFlags(rootCmd)

	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 90

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	headerTable.AddRow("pipctl locates and drives pip for a Python environment: list, install and")
	headerTable.AddRow("uninstall packages, check requirements, and bootstrap pip itself when absent.")

	fmt.Println(headerTable.Render())
	fmt.Println()

	table := tui.NewTable("Command", "Description")
	table.SetTitle("Available Commands")
	table.SetMinWidth(tableWidth)
	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		table.AddRow(sub.Use, sub.Short)
	}
	fmt.Println(table.Render())
	fmt.Println()
	fmt.Println(tui.RenderMuted("Run 'pipctl <command> --help' for details about a command."))
	return nil
}
