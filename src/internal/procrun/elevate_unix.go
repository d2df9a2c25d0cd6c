//go:build !windows

package procrun

import (
	"context"
	"os/exec"
)

// runElevated re-invokes the command through sudo. Output capture works the
// same as an ordinary run since sudo inherits our pipes.
func runElevated(ctx context.Context, spec Spec) (*Result, error) {
	if spec.Sink != nil && !SudoCached() {
		spec.Sink.WriteLine("Elevated privileges required; sudo may prompt for a password.")
	}
	elevated := spec
	elevated.Path = "sudo"
	elevated.Args = append([]string{spec.Path}, spec.Args...)
	elevated.Elevate = false
	return run(ctx, elevated)
}

// SudoCached reports whether sudo credentials are already cached, i.e. sudo
// can run without prompting for a password.
func SudoCached() bool {
	return exec.Command("sudo", "-n", "true").Run() == nil
}
