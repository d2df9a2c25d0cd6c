package interp

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/pipctl/pipctl/src/internal/procrun"
)

// EnvExecutable is the environment variable that overrides interpreter
// discovery with an explicit executable path.
const EnvExecutable = "PIPCTL_PYTHON"

// probeScript makes the interpreter describe its own layout, one line each:
// prefix, the library directory holding site-packages, and the version.
const probeScript = "import sys, sysconfig, os\n" +
	"print(sys.prefix)\n" +
	"print(os.path.dirname(sysconfig.get_paths()['purelib']))\n" +
	"print('%d.%d' % sys.version_info[:2])"

// FromExecutable builds a Config by interrogating the interpreter itself.
func FromExecutable(ctx context.Context, executable string) (Config, error) {
	var runner procrun.Runner
	res, err := runner.Run(ctx, procrun.Spec{
		Path: executable,
		Args: []string{"-c", probeScript},
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to interrogate interpreter %s: %w", executable, err)
	}
	if res.ExitCode != 0 || len(res.Stdout) < 3 {
		return Config{}, fmt.Errorf("interpreter %s did not report its layout (exit code %d)", executable, res.ExitCode)
	}
	return Config{
		Prefix:      res.Stdout[0],
		LibraryPath: res.Stdout[1],
		Executable:  executable,
		Version:     ParseVersion(res.Stdout[2]),
	}, nil
}

// DefaultExecutable locates an interpreter: the PIPCTL_PYTHON environment
// variable first, then PATH, then any platform-specific fallback.
func DefaultExecutable() (string, error) {
	if exe := os.Getenv(EnvExecutable); exe != "" {
		return exe, nil
	}
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	if path, ok := platformExecutable(); ok {
		return path, nil
	}
	return "", fmt.Errorf("no Python interpreter found; set %s or pass --interpreter", EnvExecutable)
}
