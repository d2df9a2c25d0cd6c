package pip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipctl/pipctl/src/internal/download"
	"github.com/pipctl/pipctl/src/internal/interp"
	"github.com/pipctl/pipctl/src/internal/procrun"
)

// getPipURL serves the upstream pip bootstrap script.
const getPipURL = "https://bootstrap.pypa.io/get-pip.py"

// EnvBootstrapSHA256 optionally pins the bootstrap script's checksum, for
// environments that mirror get-pip.py and want the fetch verified.
const EnvBootstrapSHA256 = "PIPCTL_GETPIP_SHA256"

func fetchBootstrapScript(destPath string) error {
	if sum := os.Getenv(EnvBootstrapSHA256); sum != "" {
		return download.FileVerified(getPipURL, destPath, sum)
	}
	return download.File(getPipURL, destPath)
}

// InstallTool bootstraps pip itself: it fetches get-pip.py and runs it
// through the interpreter directly, bypassing the locator since pip is by
// definition not available yet. Status reporting matches Install. The
// elevate-tool-installs preference is honored in addition to the explicit
// elevate argument.
func (m *Manager) InstallTool(ctx context.Context, cfg interp.Config, elevate bool, sink OutputSink) (bool, error) {
	sink = orNop(sink)
	if err := cfg.CheckRunnable(); err != nil {
		return false, err
	}

	sink.WriteLine("Installing 'pip'")
	m.raise(sink)

	tempDir, err := os.MkdirTemp("", "pipctl-bootstrap-")
	if err != nil {
		sink.WriteErrorLine(fmt.Sprintf("Failed to install pip: %v", err))
		m.raise(sink)
		return false, err
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	script := filepath.Join(tempDir, "get-pip.py")
	if err := fetchBootstrapScript(script); err != nil {
		sink.WriteErrorLine(fmt.Sprintf("Failed to fetch the pip bootstrap script: %v", err))
		m.raise(sink)
		return false, err
	}

	res, err := m.runner.Run(ctx, procrun.Spec{
		Path:    cfg.Executable,
		Args:    []string{script},
		Dir:     cfg.Prefix,
		Elevate: elevate || m.elevateToolInstalls(),
		Sink:    sink,
	})
	if err != nil {
		sink.WriteErrorLine(fmt.Sprintf("Failed to install pip: %v", err))
		m.raise(sink)
		return false, err
	}
	if res.ExitCode == 0 {
		sink.WriteLine("'pip' was installed successfully")
	} else {
		sink.WriteErrorLine(fmt.Sprintf("'pip' failed to install. Exit code: %d", res.ExitCode))
	}
	m.raise(sink)
	return res.ExitCode == 0, nil
}

// QueryInstallTool bootstraps pip after confirming with the user, unless a
// working pip is already present. Declining the prompt yields ErrCanceled and
// spawns no installer process.
func (m *Manager) QueryInstallTool(ctx context.Context, cfg interp.Config, elevate bool, sink OutputSink) (bool, error) {
	if m.toolPresent(ctx, cfg) {
		return true, nil
	}
	ok, err := m.confirm("pip is not installed in this environment. Install it now?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrCanceled
	}
	return m.InstallTool(ctx, cfg, elevate, sink)
}

// toolPresent probes for a working pip with "pip --version".
func (m *Manager) toolPresent(ctx context.Context, cfg interp.Config) bool {
	if !cfg.Runnable() {
		return false
	}
	inv := Locate(cfg)
	res, err := m.runner.Run(ctx, procrun.Spec{
		Path: inv.Executable,
		Args: inv.Args("--version"),
		Dir:  cfg.Prefix,
	})
	return err == nil && res.ExitCode == 0
}
