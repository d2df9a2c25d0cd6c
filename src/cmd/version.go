package cmd

import (
	"fmt"

	"github.com/pipctl/pipctl/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the pipctl version",
	Long:  `Display the current version of pipctl.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("%s %s", tui.RenderTitle("pipctl"), tui.RenderVersion(Version))
		fmt.Println(tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
