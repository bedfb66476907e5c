package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// TargetExists reports whether the install folder already exists.
// Checked immediately before a destructive remove-and-reclone; the
// window between check and removal is inherently racy against external
// modification, which is acceptable for a single-user interactive run.
func TargetExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveTarget deletes an existing install folder after the user
// confirmed the reclone.
func (i *Installer) RemoveTarget(path string) error {
	i.log.Infow("removing existing install folder", "path", path)
	if err := os.RemoveAll(path); err != nil {
		return &FilesystemError{Path: path, Op: "remove", Err: err}
	}
	return nil
}

// CloneTemplate clones the application template into the install
// folder. The template's own history is not kept: the .git directory is
// removed after the clone so the user starts with a clean tree.
func (i *Installer) CloneTemplate(ctx context.Context, url, destPath string) error {
	i.log.Infow("cloning template", "url", url, "dest", destPath)

	_, err := gogit.PlainCloneContext(ctx, destPath, false, &gogit.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return &ExternalToolError{Tool: "git", Op: "clone", Err: err}
	}

	gitDir := filepath.Join(destPath, ".git")
	if err := os.RemoveAll(gitDir); err != nil {
		return &FilesystemError{Path: gitDir, Op: "remove", Err: err}
	}

	return nil
}

// EnsureDir creates a directory with standard permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return &FilesystemError{Path: path, Op: "create", Err: fmt.Errorf("mkdir: %w", err)}
	}
	return nil
}
