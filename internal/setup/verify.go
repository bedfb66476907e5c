package setup

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// VerifyChecksum compares a downloaded file against the published
// checksums file. The checksums file carries one "hash  filename" line
// per release asset.
func (i *Installer) VerifyChecksum(archivePath, checksumsPath string) error {
	fileName := filepath.Base(archivePath)

	expected, err := findChecksum(checksumsPath, fileName)
	if err != nil {
		return fmt.Errorf("read checksums: %w", err)
	}

	actual, err := hashFile(archivePath)
	if err != nil {
		return fmt.Errorf("hash archive: %w", err)
	}

	if !strings.EqualFold(expected, actual) {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", fileName, expected, actual)
	}

	i.log.Infow("checksum verified", "file", fileName)
	return nil
}

// findChecksum locates the SHA256 hash for a filename in a checksums
// file.
func findChecksum(checksumsPath, fileName string) (string, error) {
	f, err := os.Open(checksumsPath)
	if err != nil {
		return "", &FilesystemError{Path: checksumsPath, Op: "open", Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		// Some generators prefix the name with * for binary mode.
		name := strings.TrimPrefix(fields[1], "*")
		if name == fileName {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan checksums: %w", err)
	}

	return "", fmt.Errorf("no checksum entry for %s", fileName)
}

// hashFile computes the SHA256 digest of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FilesystemError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
