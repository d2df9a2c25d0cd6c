// Package procrun launches external processes and captures their output line by line.
package procrun

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
)

// ErrNotRunnable is returned when the requested executable does not exist or
// cannot be launched. No process is spawned in that case.
var ErrNotRunnable = errors.New("executable is not runnable")

// OutputSink receives process output as it is produced. A nil sink is valid;
// output is still accumulated in the Result.
type OutputSink interface {
	WriteLine(line string)
	WriteErrorLine(line string)
}

// Spec describes a single process invocation.
type Spec struct {
	Path    string            // executable path (absolute, or resolved via PATH)
	Args    []string          // arguments, not including the executable itself
	Dir     string            // working directory ("" = inherit)
	Env     map[string]string // overrides merged over the current environment
	Elevate bool              // run with escalated privileges
	Sink    OutputSink        // optional live output receiver
}

// Result holds the outcome of a completed process.
type Result struct {
	ExitCode int
	Stdout   []string // stdout lines in order of arrival
}

// Runner executes process Specs. The zero value is ready to use; Runner holds
// no state, so a single value may be shared across concurrent calls.
type Runner struct{}

// Run launches the process described by spec and blocks until it exits or ctx
// is canceled. A non-zero exit code is not an error; it is reported in the
// Result. Cancellation kills the process and returns ctx.Err().
func (Runner) Run(ctx context.Context, spec Spec) (*Result, error) {
	if spec.Elevate {
		return runElevated(ctx, spec)
	}
	return run(ctx, spec)
}

func run(ctx context.Context, spec Spec) (*Result, error) {
	if _, err := exec.LookPath(spec.Path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRunnable, spec.Path)
	}

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = mergeEnv(os.Environ(), spec.Env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = stdout.Close()
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		// Pipes are owned by cmd but Wait must not be called after a failed
		// Start, so release them here.
		_ = stdout.Close()
		_ = stderr.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotRunnable, err)
	}

	res := &Result{}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			res.Stdout = append(res.Stdout, line)
			if spec.Sink != nil {
				spec.Sink.WriteLine(line)
			}
		}
	}()
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			if spec.Sink != nil {
				spec.Sink.WriteErrorLine(scanner.Text())
			}
		}
	}()

	// Drain both pipes before Wait closes them.
	wg.Wait()
	err = cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return res, nil
}

// mergeEnv applies overrides on top of a base "KEY=VALUE" environment.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(overrides))
	for _, kv := range base {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			merged[kv[:i]] = kv[i+1:]
		}
	}
	for k, v := range overrides {
		merged[k] = v
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env
}

// QuoteArgs renders args as a single command-line string, quoting any
// argument that contains spaces. Used for display and for platforms that
// take a single argument string.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = QuoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// QuoteArg wraps a single argument in double quotes if it contains spaces.
func QuoteArg(arg string) string {
	if strings.ContainsAny(arg, " \t") && !strings.HasPrefix(arg, `"`) {
		return `"` + arg + `"`
	}
	return arg
}
