package platform

import (
	"context"
	"strings"
)

// distroMarker associates a distribution marker file with its package
// manager. Checked in fixed priority order: Debian-family first, then
// Fedora-family, then Arch-family.
type distroMarker struct {
	path    string
	manager PackageManager
}

var distroMarkers = []distroMarker{
	{"/etc/debian_version", PkgApt},
	{"/etc/fedora-release", PkgDnf},
	{"/etc/arch-release", PkgPacman},
}

// RealProber implements Prober using captured system signals.
type RealProber struct {
	signals Signals
}

// NewProber creates a platform prober reading from the given signals.
func NewProber(signals Signals) *RealProber {
	return &RealProber{signals: signals}
}

// Probe inspects the captured signals and returns normalized platform
// information. It never fails: unsupported conditions map to the
// unsupported enum values.
//
// Signals are tested in fixed priority order:
//  1. kernel version contains a Windows-subsystem marker -> wsl
//  2. native Windows environment markers -> windows
//  3. kernel name darwin -> darwin (package manager brew)
//  4. kernel name linux -> linux, refined by distro marker files
//
// Anything else is unsupported.
func (p *RealProber) Probe(ctx context.Context) Info {
	info := Info{
		OSFamily:       OSUnsupported,
		Arch:           normalizeArch(p.signals.Machine()),
		PackageManager: PkgNone,
	}

	switch {
	case isWSL(p.signals):
		info.OSFamily = OSWSL
		info.PackageManager, info.UnknownDistro = probeLinuxPackageManager(p.signals)
	case isNativeWindows(p.signals):
		info.OSFamily = OSWindows
	case p.signals.KernelName() == "darwin":
		info.OSFamily = OSDarwin
		info.PackageManager = PkgBrew
	case p.signals.KernelName() == "linux":
		info.OSFamily = OSLinux
		info.PackageManager, info.UnknownDistro = probeLinuxPackageManager(p.signals)
	}

	return info
}

// isWSL reports whether the kernel version string carries the
// Windows-subsystem marker. Both WSL1 ("Microsoft") and WSL2
// ("microsoft-standard") embed it.
func isWSL(signals Signals) bool {
	version := strings.ToLower(signals.KernelVersion())
	return strings.Contains(version, "microsoft")
}

// isNativeWindows reports whether the environment indicates Windows
// outside of WSL. The OS variable is set to Windows_NT by cmd and
// PowerShell; the kernel name check covers a Windows build of this
// installer itself.
func isNativeWindows(signals Signals) bool {
	if signals.KernelName() == "windows" {
		return true
	}
	return signals.Getenv("OS") == "Windows_NT"
}

// probeLinuxPackageManager checks distro marker files in priority order.
// When none match, it returns PkgNone and flags the distribution as
// unknown so the caller can ask for a soft confirmation.
func probeLinuxPackageManager(signals Signals) (PackageManager, bool) {
	for _, marker := range distroMarkers {
		if signals.FileExists(marker.path) {
			return marker.manager, false
		}
	}
	return PkgNone, true
}
