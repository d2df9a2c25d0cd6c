package procrun

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

type memorySink struct {
	lines      []string
	errorLines []string
}

func (s *memorySink) WriteLine(line string)      { s.lines = append(s.lines, line) }
func (s *memorySink) WriteErrorLine(line string) { s.errorLines = append(s.errorLines, line) }

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use /bin/sh")
	}
}

func TestRun_CapturesStdoutInOrder(t *testing.T) {
	requireShell(t)
	var r Runner
	sink := &memorySink{}

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "echo one; echo two; echo three"},
		Sink: sink,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}

	want := []string{"one", "two", "three"}
	if len(res.Stdout) != len(want) {
		t.Fatalf("Stdout = %v, want %v", res.Stdout, want)
	}
	for i := range want {
		if res.Stdout[i] != want[i] {
			t.Errorf("Stdout[%d] = %q, want %q", i, res.Stdout[i], want[i])
		}
		if sink.lines[i] != want[i] {
			t.Errorf("sink line %d = %q, want %q", i, sink.lines[i], want[i])
		}
	}
}

func TestRun_StderrGoesToSinkOnly(t *testing.T) {
	requireShell(t)
	var r Runner
	sink := &memorySink{}

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "echo oops >&2"},
		Sink: sink,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Stdout) != 0 {
		t.Errorf("Stdout = %v, want empty", res.Stdout)
	}
	if len(sink.errorLines) != 1 || sink.errorLines[0] != "oops" {
		t.Errorf("errorLines = %v, want [oops]", sink.errorLines)
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)
	var r Runner

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "exit 3"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestRun_MissingExecutableIsNotRunnable(t *testing.T) {
	var r Runner

	_, err := r.Run(context.Background(), Spec{Path: "/no/such/interpreter"})
	if !errors.Is(err, ErrNotRunnable) {
		t.Errorf("Run() error = %v, want ErrNotRunnable", err)
	}
}

func TestRun_Cancellation(t *testing.T) {
	requireShell(t)
	var r Runner
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, Spec{Path: "sh", Args: []string{"-c", "sleep 30"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancellation took %v, process was not killed", elapsed)
	}
}

func TestRun_EnvOverrides(t *testing.T) {
	requireShell(t)
	var r Runner

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "echo $PIPCTL_TEST_VALUE"},
		Env:  map[string]string{"PIPCTL_TEST_VALUE": "injected"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Stdout) != 1 || res.Stdout[0] != "injected" {
		t.Errorf("Stdout = %v, want [injected]", res.Stdout)
	}
}

func TestRun_WorkingDirectory(t *testing.T) {
	requireShell(t)
	var r Runner
	dir := t.TempDir()

	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "pwd"},
		Dir:  dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Resolve symlinks (macOS tempdirs live under /private).
	if len(res.Stdout) != 1 || !strings.HasSuffix(res.Stdout[0], strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %v, want %q", res.Stdout, dir)
	}
}

func TestMergeEnv(t *testing.T) {
	base := []string{"A=1", "B=2"}
	got := mergeEnv(base, map[string]string{"B": "patched", "C": "3"})

	want := map[string]string{"A": "1", "B": "patched", "C": "3"}
	if len(got) != len(want) {
		t.Fatalf("mergeEnv() = %v", got)
	}
	for _, kv := range got {
		parts := strings.SplitN(kv, "=", 2)
		if want[parts[0]] != parts[1] {
			t.Errorf("env %q = %q, want %q", parts[0], parts[1], want[parts[0]])
		}
	}

	if out := mergeEnv(base, nil); len(out) != len(base) {
		t.Errorf("mergeEnv with no overrides = %v, want base unchanged", out)
	}
}

func TestQuoteArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "plain", args: []string{"install", "requests"}, want: "install requests"},
		{name: "space in path", args: []string{"/opt/my python/pip-script.py", "freeze"}, want: `"/opt/my python/pip-script.py" freeze`},
		{name: "already quoted", args: []string{`"a b"`}, want: `"a b"`},
		{name: "empty", args: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteArgs(tt.args); got != tt.want {
				t.Errorf("QuoteArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
