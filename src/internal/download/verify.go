package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pipctl/pipctl/src/internal/ui"
)

// ErrChecksumMismatch is returned when the downloaded file's checksum doesn't match.
type ErrChecksumMismatch struct {
	Expected string
	Actual   string
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// FileVerified downloads a file from a URL and verifies its SHA256 checksum.
// If the checksum doesn't match, the file is deleted and an error is returned.
func FileVerified(url, destPath, expectedSHA256 string) error {
	ui.Debug("Starting verified download: %s", url)
	ui.Debug("Expected SHA256: %s", expectedSHA256)

	if err := File(url, destPath); err != nil {
		return err
	}
	if err := VerifyFile(destPath, expectedSHA256); err != nil {
		_ = os.Remove(destPath) // Remove the file with bad checksum
		return err
	}
	return nil
}

// VerifyFile checks if an existing file matches the expected SHA256 checksum.
func VerifyFile(filePath, expectedSHA256 string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return err
	}

	actual := hex.EncodeToString(hasher.Sum(nil))
	if !checksumEqual(expectedSHA256, actual) {
		return &ErrChecksumMismatch{Expected: expectedSHA256, Actual: actual}
	}
	return nil
}

func checksumEqual(expected, actual string) bool {
	return strings.ToLower(strings.TrimSpace(expected)) == strings.ToLower(actual)
}
