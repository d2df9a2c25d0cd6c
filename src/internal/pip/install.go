package pip

import (
	"context"
	"fmt"

	"github.com/pipctl/pipctl/src/internal/interp"
)

// Interpreters at or below this version carry a pip without secure-transport
// support and need an explicit --insecure flag on installs.
var insecureThreshold = interp.Version{Major: 2, Minor: 5}

func needsInsecureFlag(v interp.Version) bool {
	return !v.IsZero() && v.AtMost(insecureThreshold.Major, insecureThreshold.Minor)
}

// Install installs packageName into cfg's environment. It reports start and
// terminal status to the sink and returns true iff pip exited with code 0.
// A NotRunnable condition or cancellation is returned as an error.
func (m *Manager) Install(ctx context.Context, cfg interp.Config, packageName string, elevate bool, sink OutputSink) (bool, error) {
	sink = orNop(sink)
	if err := cfg.CheckRunnable(); err != nil {
		return false, err
	}

	args := []string{"install"}
	if needsInsecureFlag(cfg.Version) {
		sink.WriteLine(fmt.Sprintf("pip on Python %s cannot verify secure downloads; adding --insecure", cfg.Version))
		args = append(args, "--insecure")
	}
	args = append(args, packageName)

	return m.reportedRun(ctx, cfg, Locate(cfg), elevate, sink, fmt.Sprintf("'%s'", packageName), "install", args...)
}

// Uninstall removes packageName from cfg's environment. pip's own prompt is
// suppressed with -y; any confirmation happens at our level beforehand.
func (m *Manager) Uninstall(ctx context.Context, cfg interp.Config, packageName string, elevate bool, sink OutputSink) (bool, error) {
	sink = orNop(sink)
	if err := cfg.CheckRunnable(); err != nil {
		return false, err
	}
	args := []string{"uninstall", "-y", packageName}
	return m.reportedRun(ctx, cfg, Locate(cfg), elevate, sink, fmt.Sprintf("'%s'", packageName), "uninstall", args...)
}

// reportedRun wraps a mutating pip run with the start/terminal status lines
// and the show-output policy. Each status line is followed by a raise so the
// output surface comes up as soon as the run starts, not only at the end.
// subject names what is being acted on, verb is "install"/"uninstall" style
// wording for the messages.
func (m *Manager) reportedRun(ctx context.Context, cfg interp.Config, inv Invocation, elevate bool, sink OutputSink, subject, verb string, args ...string) (bool, error) {
	sink.WriteLine(fmt.Sprintf("%sing %s", title(verb), subject))
	m.raise(sink)

	res, err := m.run(ctx, cfg, inv, sink, elevate, args...)
	if err != nil {
		sink.WriteErrorLine(fmt.Sprintf("Failed to %s %s: %v", verb, subject, err))
		m.raise(sink)
		return false, err
	}
	if res.ExitCode == 0 {
		sink.WriteLine(fmt.Sprintf("%s was %sed successfully", subject, verb))
	} else {
		sink.WriteErrorLine(fmt.Sprintf("%s failed to %s. Exit code: %d", subject, verb, res.ExitCode))
	}
	m.raise(sink)
	return res.ExitCode == 0, nil
}

// title uppercases the first letter of a verb ("install" -> "Install").
func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// QueryInstall installs packageName after checking presence and asking the
// confirmation gate. Declining yields ErrCanceled and spawns nothing. If the
// package already satisfies its specifier, no prompt is shown and the result
// is true.
func (m *Manager) QueryInstall(ctx context.Context, cfg interp.Config, packageName string, elevate bool, sink OutputSink) (bool, error) {
	if m.IsInstalled(ctx, cfg, packageName) {
		return true, nil
	}
	ok, err := m.confirm(fmt.Sprintf("Package '%s' is not installed. Install it now?", packageName))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrCanceled
	}
	return m.Install(ctx, cfg, packageName, elevate, sink)
}
