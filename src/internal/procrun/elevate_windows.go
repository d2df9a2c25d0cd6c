//go:build windows

package procrun

import (
	"context"
	"fmt"
	"os/exec"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ShellExecuteExW is not wrapped by x/sys/windows, so it is bound here. The
// plain ShellExecute cannot hand back a process handle, which is needed to
// await the elevated child and read its exit code.
var (
	modshell32          = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteExW = modshell32.NewProc("ShellExecuteExW")
)

const seeMaskNoCloseProcess = 0x40

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
type shellExecuteInfo struct {
	cbSize     uint32
	fMask      uint32
	hwnd       windows.Handle
	verb       *uint16
	file       *uint16
	parameters *uint16
	directory  *uint16
	show       int32
	instApp    windows.Handle
	idList     uintptr
	class      *uint16
	keyClass   windows.Handle
	hotKey     uint32
	icon       windows.Handle
	process    windows.Handle
}

func shellExecuteEx(info *shellExecuteInfo) error {
	r1, _, e1 := procShellExecuteExW.Call(uintptr(unsafe.Pointer(info)))
	if r1 == 0 {
		return e1
	}
	return nil
}

// runElevated launches the command through the shell with the "runas" verb,
// which triggers the UAC elevation prompt. The elevated process runs in its
// own console, so its output cannot be captured or forwarded to the sink, but
// the process handle is kept so the call still blocks until termination and
// reports the real exit code.
func runElevated(ctx context.Context, spec Spec) (*Result, error) {
	if _, err := exec.LookPath(spec.Path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRunnable, spec.Path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return nil, err
	}
	file, err := windows.UTF16PtrFromString(spec.Path)
	if err != nil {
		return nil, err
	}
	args, err := windows.UTF16PtrFromString(QuoteArgs(spec.Args))
	if err != nil {
		return nil, err
	}
	var cwd *uint16
	if spec.Dir != "" {
		cwd, err = windows.UTF16PtrFromString(spec.Dir)
		if err != nil {
			return nil, err
		}
	}

	info := shellExecuteInfo{
		fMask:      seeMaskNoCloseProcess,
		verb:       verb,
		file:       file,
		parameters: args,
		directory:  cwd,
		show:       windows.SW_NORMAL,
	}
	info.cbSize = uint32(unsafe.Sizeof(info))
	if err := shellExecuteEx(&info); err != nil {
		return nil, fmt.Errorf("elevated launch failed: %w", err)
	}
	defer windows.CloseHandle(info.process)

	if spec.Sink != nil {
		spec.Sink.WriteLine("Running elevated; output appears in the elevated console.")
	}

	// Poll so a cancelled context still terminates the child, matching the
	// non-elevated path's behavior under cancellation.
	for {
		ev, err := windows.WaitForSingleObject(info.process, 200)
		if err != nil {
			return nil, fmt.Errorf("waiting for elevated process: %w", err)
		}
		if ev == windows.WAIT_OBJECT_0 {
			break
		}
		if err := ctx.Err(); err != nil {
			_ = windows.TerminateProcess(info.process, 1)
			return nil, err
		}
	}

	var code uint32
	if err := windows.GetExitCodeProcess(info.process, &code); err != nil {
		return nil, fmt.Errorf("reading elevated exit code: %w", err)
	}
	return &Result{ExitCode: int(code)}, nil
}
