package plan

import (
	"fmt"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
)

// WindowsRemediation is printed when the host is native Windows: the
// installer targets Linux-compatible environments only.
const WindowsRemediation = "install the Windows Subsystem for Linux first: wsl --install"

// GenericPlatformRemediation is printed for platforms no backend
// binary is published for.
const GenericPlatformRemediation = "no PocketBase binary is published for this platform; see https://pocketbase.io/docs for supported targets"

// UnsupportedPlatformError means the probed platform cannot run the
// backend binary.
type UnsupportedPlatformError struct {
	Info        platform.Info
	Remediation string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: os=%s arch=%s", e.Info.OSFamily, e.Info.Arch)
}

// MissingToolError means a hard requirement is absent from the search
// path.
type MissingToolError struct {
	Tool        string
	Remediation string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("missing hard dependency: %s", e.Tool)
}

// VersionCheckError means a tool is present but its version does not
// meet the minimum, or its version could not be determined.
type VersionCheckError struct {
	Tool        string
	Version     string
	MinMajor    uint64
	Remediation string
}

func (e *VersionCheckError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("version check failed: %s reported no parseable version (need >= %d)", e.Tool, e.MinMajor)
	}
	return fmt.Sprintf("version check failed: %s %s does not meet minimum major version %d", e.Tool, e.Version, e.MinMajor)
}
