package pip

import (
	"context"
	"fmt"
	"strings"

	"github.com/pipctl/pipctl/src/internal/interp"
	"github.com/pipctl/pipctl/src/internal/procrun"
)

// IsInstalled reports whether packageSpec (a name or a "name==version" style
// requirement) is present and satisfied in cfg's environment. The check runs
// an inline script through the interpreter using the pkg_resources metadata
// library; exit code 0 means satisfied. Any inability to run the check —
// unrunnable interpreter, missing metadata library — yields false rather
// than an error.
func (m *Manager) IsInstalled(ctx context.Context, cfg interp.Config, packageSpec string) bool {
	if !cfg.Runnable() {
		return false
	}
	script := fmt.Sprintf("import pkg_resources; pkg_resources.require(%s)", pyQuote(packageSpec))
	res, err := m.runner.Run(ctx, procrun.Spec{
		Path: cfg.Executable,
		Args: []string{"-c", script},
		Dir:  cfg.Prefix,
	})
	return err == nil && res.ExitCode == 0
}

// pyQuote renders s as a Python single-quoted string literal.
func pyQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
