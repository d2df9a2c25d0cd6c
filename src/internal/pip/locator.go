// Package pip locates and drives the pip package tool for a given
// interpreter installation.
package pip

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pipctl/pipctl/src/internal/interp"
)

// Invocation describes how to run pip for one interpreter configuration.
// It is computed fresh per call and must not be reused across configurations.
type Invocation struct {
	Executable  string   // what to launch
	LeadingArgs []string // arguments that precede the pip subcommand
}

// Args returns the full argument list for running pip with extra arguments.
func (inv Invocation) Args(extra ...string) []string {
	args := make([]string, 0, len(inv.LeadingArgs)+len(extra))
	args = append(args, inv.LeadingArgs...)
	args = append(args, extra...)
	return args
}

// String renders the invocation for display, quoting paths with spaces.
func (inv Invocation) String() string {
	parts := append([]string{inv.Executable}, inv.LeadingArgs...)
	quoted := make([]string, len(parts))
	for i, p := range parts {
		if strings.ContainsAny(p, " \t") {
			p = `"` + p + `"`
		}
		quoted[i] = p
	}
	return strings.Join(quoted, " ")
}

type candidate struct {
	rel    []string // path components under the prefix
	script bool     // needs to run through the interpreter
}

// candidates returns the ordered probe list for a prefix. Script forms are
// preferred over native executables.
func candidates() []candidate {
	scriptsDir := "bin"
	exe := "pip"
	if runtime.GOOS == "windows" {
		scriptsDir = "Scripts"
		exe = "pip.exe"
	}
	return []candidate{
		{rel: []string{scriptsDir, "pip-script.py"}, script: true},
		{rel: []string{"pip-script.py"}, script: true},
		{rel: []string{scriptsDir, exe}},
		{rel: []string{exe}},
	}
}

// Locate resolves how to invoke pip for the given configuration: the first
// existing candidate under the prefix wins. A script candidate runs through
// the interpreter with the script path prepended; a native candidate runs
// directly. When nothing is installed, pip is invoked as a module through
// the interpreter ("-m pip"). Resolution itself never fails.
func Locate(cfg interp.Config) Invocation {
	for _, c := range candidates() {
		path := filepath.Join(append([]string{cfg.Prefix}, c.rel...)...)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if c.script {
			return Invocation{Executable: cfg.Executable, LeadingArgs: []string{path}}
		}
		return Invocation{Executable: path}
	}
	return Invocation{Executable: cfg.Executable, LeadingArgs: []string{"-m", "pip"}}
}
