package pip

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pipctl/pipctl/src/internal/interp"
	"github.com/pipctl/pipctl/src/internal/procrun"
)

// fakeRunner records every spec it is asked to run and answers from a
// caller-supplied handler. No processes are spawned.
type fakeRunner struct {
	calls   []procrun.Spec
	handler func(spec procrun.Spec) (*procrun.Result, error)
}

func (f *fakeRunner) Run(_ context.Context, spec procrun.Spec) (*procrun.Result, error) {
	f.calls = append(f.calls, spec)
	if f.handler == nil {
		return &procrun.Result{}, nil
	}
	return f.handler(spec)
}

// lastArg returns the final argument of a recorded spec, which for pip runs
// is the subcommand target.
func lastArg(spec procrun.Spec) string {
	if len(spec.Args) == 0 {
		return ""
	}
	return spec.Args[len(spec.Args)-1]
}

// hasArg reports whether the spec's argument list contains arg.
func hasArg(spec procrun.Spec, arg string) bool {
	for _, a := range spec.Args {
		if a == arg {
			return true
		}
	}
	return false
}

// recordingSink captures sink traffic for assertions. events keeps the
// interleaving of calls ("line", "error", "show", "activate").
type recordingSink struct {
	lines      []string
	errorLines []string
	shows      int
	activates  int
	events     []string
}

func (s *recordingSink) WriteLine(line string) {
	s.lines = append(s.lines, line)
	s.events = append(s.events, "line")
}

func (s *recordingSink) WriteErrorLine(line string) {
	s.errorLines = append(s.errorLines, line)
	s.events = append(s.events, "error")
}

func (s *recordingSink) Show() {
	s.shows++
	s.events = append(s.events, "show")
}

func (s *recordingSink) ShowAndActivate() {
	s.activates++
	s.events = append(s.events, "activate")
}

// staticGate answers every confirmation the same way.
type staticGate struct {
	answer bool
	asked  int
}

func (g *staticGate) Confirm(string) (bool, error) {
	g.asked++
	return g.answer, nil
}

// staticPrefs returns fixed preference values.
type staticPrefs struct {
	showOutput  bool
	elevateTool bool
}

func (p staticPrefs) ShowOutputForInstalls() bool { return p.showOutput }
func (p staticPrefs) ElevateToolInstalls() bool   { return p.elevateTool }

// testConfig builds a runnable configuration rooted in a temp directory.
func testConfig(t *testing.T) interp.Config {
	t.Helper()
	prefix := t.TempDir()
	exe := filepath.Join(prefix, "python")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	lib := filepath.Join(prefix, "lib", "python3.11")
	if err := os.MkdirAll(lib, 0o755); err != nil {
		t.Fatal(err)
	}
	return interp.Config{
		Prefix:      prefix,
		LibraryPath: lib,
		Executable:  exe,
		Version:     interp.ParseVersion("3.11"),
	}
}

// addSitePackages creates fake distribution directories under the config's
// site-packages.
func addSitePackages(t *testing.T, cfg interp.Config, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(cfg.SitePackages(), name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}
