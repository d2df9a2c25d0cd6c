//go:build windows

package interp

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// platformExecutable scans the PEP 514 registry keys for installed CPython
// distributions and returns the newest one found.
func platformExecutable() (string, bool) {
	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		if exe, ok := registryExecutable(root); ok {
			return exe, true
		}
	}
	return "", false
}

func registryExecutable(root registry.Key) (string, bool) {
	key, err := registry.OpenKey(root, `Software\Python\PythonCore`, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return "", false
	}
	defer func() { _ = key.Close() }()

	versions, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return "", false
	}

	// Subkey names sort ascending; walk backwards to prefer newer versions.
	for i := len(versions) - 1; i >= 0; i-- {
		installKey, err := registry.OpenKey(root, `Software\Python\PythonCore\`+versions[i]+`\InstallPath`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		installPath, _, err := installKey.GetStringValue("")
		_ = installKey.Close()
		if err != nil {
			continue
		}
		exe := filepath.Join(installPath, "python.exe")
		if info, err := os.Stat(exe); err == nil && !info.IsDir() {
			return exe, true
		}
	}
	return "", false
}
