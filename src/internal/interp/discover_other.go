//go:build !windows

package interp

// platformExecutable has no extra discovery sources on non-Windows systems;
// PATH lookup in DefaultExecutable is sufficient.
func platformExecutable() (string, bool) {
	return "", false
}
