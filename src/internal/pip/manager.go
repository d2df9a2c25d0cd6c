package pip

import (
	"context"
	"errors"

	"github.com/pipctl/pipctl/src/internal/interp"
	"github.com/pipctl/pipctl/src/internal/procrun"
	"github.com/pipctl/pipctl/src/internal/ui"
)

// ErrCanceled is returned when the user declines a confirmation prompt. It is
// distinct from a failed operation: nothing was attempted.
var ErrCanceled = errors.New("operation canceled")

// Runner executes external processes. *procrun.Runner satisfies it; tests
// substitute fakes.
type Runner interface {
	Run(ctx context.Context, spec procrun.Spec) (*procrun.Result, error)
}

// OutputSink receives human-readable status and process output. Show and
// ShowAndActivate ask the owning surface to become visible or foreground;
// console sinks may treat both as no-ops.
type OutputSink interface {
	WriteLine(line string)
	WriteErrorLine(line string)
	Show()
	ShowAndActivate()
}

// ConfirmationGate asks the user to approve an installation. Returning false
// means the whole operation is canceled.
type ConfirmationGate interface {
	Confirm(message string) (bool, error)
}

// Preferences supplies user settings. They are read once per operation,
// never cached, so changes take effect on the next call.
type Preferences interface {
	ShowOutputForInstalls() bool
	ElevateToolInstalls() bool
}

// Manager drives pip against caller-supplied interpreter configurations.
// It holds no per-environment state; operations may run concurrently, and
// serializing mutations of the same environment is the caller's job.
type Manager struct {
	runner Runner
	gate   ConfirmationGate
	prefs  Preferences
}

// NewManager builds a Manager. A nil runner defaults to procrun. A nil gate
// means confirmations are auto-approved; a nil prefs means output surfaces
// are activated and tool installs are not elevated.
func NewManager(runner Runner, gate ConfirmationGate, prefs Preferences) *Manager {
	if runner == nil {
		runner = procrun.Runner{}
	}
	return &Manager{runner: runner, gate: gate, prefs: prefs}
}

// run executes pip (per the given invocation) with extra args against cfg.
func (m *Manager) run(ctx context.Context, cfg interp.Config, inv Invocation, sink OutputSink, elevate bool, extra ...string) (*procrun.Result, error) {
	ui.Debug("Running: %s %s", inv, procrun.QuoteArgs(extra))
	return m.runner.Run(ctx, procrun.Spec{
		Path:    inv.Executable,
		Args:    inv.Args(extra...),
		Dir:     cfg.Prefix,
		Elevate: elevate,
		Sink:    sink,
	})
}

func (m *Manager) confirm(message string) (bool, error) {
	if m.gate == nil {
		return true, nil
	}
	return m.gate.Confirm(message)
}

// raise applies the show-output preference to the sink after an operation.
func (m *Manager) raise(sink OutputSink) {
	if m.prefs == nil || m.prefs.ShowOutputForInstalls() {
		sink.ShowAndActivate()
		return
	}
	sink.Show()
}

func (m *Manager) elevateToolInstalls() bool {
	return m.prefs != nil && m.prefs.ElevateToolInstalls()
}

// nopSink discards everything, so operations never have to nil-check.
type nopSink struct{}

func (nopSink) WriteLine(string)      {}
func (nopSink) WriteErrorLine(string) {}
func (nopSink) Show()                 {}
func (nopSink) ShowAndActivate()      {}

func orNop(sink OutputSink) OutputSink {
	if sink == nil {
		return nopSink{}
	}
	return sink
}
