package setup

import (
	"context"
	"os"
	"path/filepath"
)

// ExtractArchive unpacks a zip archive into a destination directory by
// invoking the unzip tool checked earlier as a hard requirement.
func (i *Installer) ExtractArchive(ctx context.Context, archivePath, destDir string) error {
	i.log.Infow("extracting", "archive", archivePath, "dest", destDir)

	if err := EnsureDir(destDir); err != nil {
		return err
	}

	if err := i.runner.Run(ctx, "", "unzip", "-o", "-q", archivePath, "-d", destDir); err != nil {
		return &ExternalToolError{Tool: "unzip", Op: "extract", Err: err}
	}

	return nil
}

// SetExecutable marks the extracted backend binary as executable. Some
// unzip builds do not preserve the mode bits.
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return &FilesystemError{Path: path, Op: "chmod", Err: err}
	}
	return nil
}

// BackendBinaryPath returns the path of the extracted backend binary
// inside the install folder.
func BackendBinaryPath(installDir string) string {
	return filepath.Join(installDir, BackendDir, "pocketbase")
}
