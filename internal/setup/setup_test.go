package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/tools"
)

// fakeRunner records invocations and returns scripted errors.
type fakeRunner struct {
	calls []recordedCall
	errs  map[string]error // keyed by tool name
}

type recordedCall struct {
	dir  string
	name string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, recordedCall{dir: dir, name: name, args: args})
	return f.errs[name]
}

// realExitError produces an *exec.ExitError with the given code by
// actually exiting a shell with it.
func realExitError(t *testing.T, code int) error {
	t.Helper()
	err := exec.Command("sh", "-c", fmt.Sprintf("exit %d", code)).Run()
	if err == nil {
		t.Fatalf("expected exit error for code %d", code)
	}
	return err
}

func TestDownloadInvokesSelectedTool(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		wantName string
		wantArg  string
	}{
		{"curl", tools.ToolCurl, "curl", "-fSL"},
		{"wget", tools.ToolWget, "wget", "-O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			installer := NewInstaller(runner, nil)

			err := installer.Download(context.Background(), tt.tool, "https://example.com/a.zip", "/tmp/a.zip")
			if err != nil {
				t.Fatalf("Download() error = %v", err)
			}
			if len(runner.calls) != 1 {
				t.Fatalf("runner called %d times, want 1", len(runner.calls))
			}
			call := runner.calls[0]
			if call.name != tt.wantName {
				t.Errorf("tool = %q, want %q", call.name, tt.wantName)
			}
			found := false
			for _, arg := range call.args {
				if arg == tt.wantArg {
					found = true
				}
			}
			if !found {
				t.Errorf("args %v missing %q", call.args, tt.wantArg)
			}
		})
	}
}

func TestDownloadUnknownTool(t *testing.T) {
	installer := NewInstaller(&fakeRunner{}, nil)
	if err := installer.Download(context.Background(), "ftp", "u", "d"); err == nil {
		t.Fatal("Download() error = nil for unknown tool")
	}
}

func TestClassifyDownloadError(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		exitCode int
		want     error
	}{
		{"curl http error is asset not found", tools.ToolCurl, 22, release.ErrAssetNotFound},
		{"curl resolve failure is network", tools.ToolCurl, 6, release.ErrNetworkUnavailable},
		{"curl connect failure is network", tools.ToolCurl, 7, release.ErrNetworkUnavailable},
		{"curl timeout is network", tools.ToolCurl, 28, release.ErrNetworkUnavailable},
		{"wget server error is asset not found", tools.ToolWget, 8, release.ErrAssetNotFound},
		{"wget network failure is network", tools.ToolWget, 4, release.ErrNetworkUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyDownloadError(tt.tool, "https://example.com/a.zip", realExitError(t, tt.exitCode))
			if !errors.Is(err, tt.want) {
				t.Errorf("classifyDownloadError() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClassifyDownloadErrorUnmappedCode(t *testing.T) {
	err := classifyDownloadError(tools.ToolCurl, "u", realExitError(t, 3))
	var toolErr *ExternalToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("classifyDownloadError() = %v, want ExternalToolError", err)
	}
	if toolErr.Tool != "curl" {
		t.Errorf("Tool = %q, want curl", toolErr.Tool)
	}
}

func TestVerifyChecksum(t *testing.T) {
	dir := t.TempDir()

	archivePath := filepath.Join(dir, "pocketbase_0.24.1_linux_amd64.zip")
	content := []byte("fake archive content")
	if err := os.WriteFile(archivePath, content, 0644); err != nil {
		t.Fatal(err)
	}

	// sha256 of "fake archive content"
	hash, err := hashFile(archivePath)
	if err != nil {
		t.Fatal(err)
	}

	checksums := strings.Join([]string{
		"deadbeef  pocketbase_0.24.1_darwin_arm64.zip",
		hash + "  pocketbase_0.24.1_linux_amd64.zip",
	}, "\n")
	checksumsPath := filepath.Join(dir, "checksums.txt")
	if err := os.WriteFile(checksumsPath, []byte(checksums), 0644); err != nil {
		t.Fatal(err)
	}

	installer := NewInstaller(&fakeRunner{}, nil)
	if err := installer.VerifyChecksum(archivePath, checksumsPath); err != nil {
		t.Errorf("VerifyChecksum() error = %v, want nil", err)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	dir := t.TempDir()

	archivePath := filepath.Join(dir, "pocketbase_0.24.1_linux_amd64.zip")
	if err := os.WriteFile(archivePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	checksumsPath := filepath.Join(dir, "checksums.txt")
	wrong := strings.Repeat("ab", 32) + "  pocketbase_0.24.1_linux_amd64.zip"
	if err := os.WriteFile(checksumsPath, []byte(wrong), 0644); err != nil {
		t.Fatal(err)
	}

	installer := NewInstaller(&fakeRunner{}, nil)
	err := installer.VerifyChecksum(archivePath, checksumsPath)
	if err == nil {
		t.Fatal("VerifyChecksum() error = nil, want mismatch")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("VerifyChecksum() error = %v, want mismatch message", err)
	}
}

func TestVerifyChecksumMissingEntry(t *testing.T) {
	dir := t.TempDir()

	archivePath := filepath.Join(dir, "pocketbase_0.24.1_linux_amd64.zip")
	if err := os.WriteFile(archivePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	checksumsPath := filepath.Join(dir, "checksums.txt")
	if err := os.WriteFile(checksumsPath, []byte("deadbeef  other.zip\n"), 0644); err != nil {
		t.Fatal(err)
	}

	installer := NewInstaller(&fakeRunner{}, nil)
	if err := installer.VerifyChecksum(archivePath, checksumsPath); err == nil {
		t.Fatal("VerifyChecksum() error = nil, want missing entry error")
	}
}

func TestVerifyChecksumBinaryModePrefix(t *testing.T) {
	dir := t.TempDir()

	archivePath := filepath.Join(dir, "pocketbase_0.24.1_linux_amd64.zip")
	if err := os.WriteFile(archivePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	hash, err := hashFile(archivePath)
	if err != nil {
		t.Fatal(err)
	}

	checksumsPath := filepath.Join(dir, "checksums.txt")
	line := hash + "  *pocketbase_0.24.1_linux_amd64.zip\n"
	if err := os.WriteFile(checksumsPath, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	installer := NewInstaller(&fakeRunner{}, nil)
	if err := installer.VerifyChecksum(archivePath, checksumsPath); err != nil {
		t.Errorf("VerifyChecksum() error = %v, want nil for *-prefixed entry", err)
	}
}

func TestExtractArchiveInvokesUnzip(t *testing.T) {
	runner := &fakeRunner{}
	installer := NewInstaller(runner, nil)
	dest := filepath.Join(t.TempDir(), "pocketbase")

	if err := installer.ExtractArchive(context.Background(), "/tmp/a.zip", dest); err != nil {
		t.Fatalf("ExtractArchive() error = %v", err)
	}

	if len(runner.calls) != 1 || runner.calls[0].name != "unzip" {
		t.Fatalf("calls = %+v, want single unzip invocation", runner.calls)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("destination directory not created: %v", err)
	}
}

func TestExtractArchiveFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"unzip": errors.New("boom")}}
	installer := NewInstaller(runner, nil)

	err := installer.ExtractArchive(context.Background(), "/tmp/a.zip", t.TempDir())
	var toolErr *ExternalToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("ExtractArchive() error = %v, want ExternalToolError", err)
	}
	if toolErr.Tool != "unzip" {
		t.Errorf("Tool = %q, want unzip", toolErr.Tool)
	}
}

func TestInstallFrontendDepsRunsInFrontendDir(t *testing.T) {
	runner := &fakeRunner{}
	installer := NewInstaller(runner, nil)

	if err := installer.InstallFrontendDeps(context.Background(), "/work/myapp"); err != nil {
		t.Fatalf("InstallFrontendDeps() error = %v", err)
	}

	call := runner.calls[0]
	if call.name != "npm" || call.args[0] != "install" {
		t.Errorf("call = %+v, want npm install", call)
	}
	if call.dir != filepath.Join("/work/myapp", FrontendDir) {
		t.Errorf("dir = %q, want frontend subdirectory", call.dir)
	}
}

func TestTargetExists(t *testing.T) {
	dir := t.TempDir()
	if !TargetExists(dir) {
		t.Error("TargetExists() = false for existing directory")
	}
	if TargetExists(filepath.Join(dir, "missing")) {
		t.Error("TargetExists() = true for missing path")
	}
}

func TestRemoveTarget(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	installer := NewInstaller(&fakeRunner{}, nil)
	if err := installer.RemoveTarget(dir); err != nil {
		t.Fatalf("RemoveTarget() error = %v", err)
	}
	if TargetExists(dir) {
		t.Error("target still exists after RemoveTarget()")
	}
}

func TestBackendBinaryPath(t *testing.T) {
	got := BackendBinaryPath("/work/myapp")
	want := filepath.Join("/work/myapp", "pocketbase", "pocketbase")
	if got != want {
		t.Errorf("BackendBinaryPath() = %q, want %q", got, want)
	}
}
