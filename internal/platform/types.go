// Package platform detects the host operating system family, CPU
// architecture, and applicable system package manager.
//
// Detection is split in two: a Signals capability that captures raw
// system facts (kernel name, kernel version, machine architecture,
// environment variables, marker files), and a pure Probe function that
// turns a captured snapshot into a normalized Info value. This keeps the
// decision logic testable without touching real OS state. Unsupported
// conditions map to enum values rather than errors; Probe never fails.
package platform

import "context"

// OSFamily identifies the operating system family a backend binary
// must be compatible with.
type OSFamily string

const (
	// OSDarwin is macOS.
	OSDarwin OSFamily = "darwin"
	// OSLinux is native Linux.
	OSLinux OSFamily = "linux"
	// OSWindows is native Windows (no Linux subsystem). Terminal
	// unsupported case for this installer.
	OSWindows OSFamily = "windows"
	// OSWSL is the Windows Subsystem for Linux. Inherits Linux binary
	// compatibility, so downloads target linux assets.
	OSWSL OSFamily = "wsl"
	// OSUnsupported is any other operating system.
	OSUnsupported OSFamily = "unsupported"
)

// String returns the string representation of the OS family.
func (o OSFamily) String() string {
	return string(o)
}

// BinaryTarget returns the OS name used in release asset filenames.
// WSL runs Linux binaries.
func (o OSFamily) BinaryTarget() OSFamily {
	if o == OSWSL {
		return OSLinux
	}
	return o
}

// Arch is a normalized CPU architecture.
type Arch string

const (
	ArchAMD64       Arch = "amd64"
	ArchARM64       Arch = "arm64"
	ArchARMv7       Arch = "armv7"
	ArchPPC64LE     Arch = "ppc64le"
	ArchS390X       Arch = "s390x"
	ArchUnsupported Arch = "unsupported"
)

// String returns the string representation of the architecture.
func (a Arch) String() string {
	return string(a)
}

// PackageManager identifies the system package manager used to build
// remediation commands for missing tools.
type PackageManager string

const (
	PkgApt    PackageManager = "apt"
	PkgDnf    PackageManager = "dnf"
	PkgPacman PackageManager = "pacman"
	PkgBrew   PackageManager = "brew"
	// PkgNone means no package manager was recognized. Remediation
	// falls back to a generic manual-install message.
	PkgNone PackageManager = "none"
)

// String returns the string representation of the package manager.
func (p PackageManager) String() string {
	return string(p)
}

// Info contains normalized platform detection results.
// Immutable once probed; created once per run.
type Info struct {
	OSFamily       OSFamily
	Arch           Arch
	PackageManager PackageManager
	// UnknownDistro is set when the host is Linux but no distro marker
	// file matched. The caller should ask the user to confirm before
	// proceeding best-effort.
	UnknownDistro bool
}

// Supported reports whether a backend binary exists for this platform.
func (i Info) Supported() bool {
	return i.OSFamily != OSUnsupported && i.OSFamily != OSWindows &&
		i.Arch != ArchUnsupported
}

// Prober is the interface for platform detection.
type Prober interface {
	Probe(ctx context.Context) Info
}
