package cmd

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pipctl/pipctl/src/internal/interp"
	"github.com/pipctl/pipctl/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagInterpreter string
	flagPrefix      string
	flagLibrary     string
	flagShowOutput  bool
)

// EnvElevateBootstrap opts into elevated pip bootstraps without a flag.
const EnvElevateBootstrap = "PIPCTL_ELEVATE_BOOTSTRAP"

func addEnvFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagInterpreter, "interpreter", "", "Python interpreter executable (default: $PIPCTL_PYTHON, then PATH)")
	cmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "Override the environment's installation prefix")
	cmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "Override the environment's library directory")
	cmd.PersistentFlags().BoolVar(&flagShowOutput, "show-output", true, "Bring the output surface to the foreground for installs")
}

// resolveConfig builds the interpreter configuration for this invocation by
// interrogating the interpreter, then applying any explicit flag overrides.
func resolveConfig(ctx context.Context) (interp.Config, error) {
	exe := flagInterpreter
	if exe == "" {
		var err error
		exe, err = interp.DefaultExecutable()
		if err != nil {
			return interp.Config{}, err
		}
	}
	ui.Debug("Using interpreter: %s", exe)

	cfg, err := interp.FromExecutable(ctx, exe)
	if err != nil {
		return interp.Config{}, err
	}
	if flagPrefix != "" {
		cfg.Prefix = flagPrefix
	}
	if flagLibrary != "" {
		cfg.LibraryPath = flagLibrary
	}
	ui.Debug("Prefix: %s", cfg.Prefix)
	ui.Debug("Library: %s", cfg.LibraryPath)
	ui.Debug("Version: %s", cfg.Version)
	return cfg, nil
}

// cliPrefs adapts flags and environment variables to pip.Preferences. Values
// are read on every call so changes mid-process take effect.
type cliPrefs struct{}

func (cliPrefs) ShowOutputForInstalls() bool {
	return flagShowOutput
}

func (cliPrefs) ElevateToolInstalls() bool {
	switch strings.ToLower(os.Getenv(EnvElevateBootstrap)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// consoleGate asks for confirmation on the terminal. An empty or "n" answer
// cancels.
type consoleGate struct{}

func (consoleGate) Confirm(message string) (bool, error) {
	ui.Warning("%s", message)
	os.Stdout.WriteString("Proceed? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
