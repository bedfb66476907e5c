package platform

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Signals is the raw system facts the probe decides from. Capturing
// them behind an interface keeps Probe a pure function of its inputs.
type Signals interface {
	// KernelName returns the OS kernel identifier ("linux", "darwin",
	// "windows" in GOOS form).
	KernelName() string
	// KernelVersion returns the kernel version string. On WSL this
	// contains a Microsoft marker.
	KernelVersion() string
	// Machine returns the raw machine architecture (uname -m form,
	// e.g. "x86_64", "aarch64").
	Machine() string
	// Getenv returns the value of an environment variable.
	Getenv(key string) string
	// FileExists reports whether a path exists on the host.
	FileExists(path string) bool
}

// SystemSignals reads signals from the running host. Kernel details come
// from gopsutil, which parses /proc on Linux and sysctl on macOS.
type SystemSignals struct {
	ctx context.Context
}

// NewSystemSignals creates a Signals implementation for the real host.
// The context bounds the gopsutil reads.
func NewSystemSignals(ctx context.Context) *SystemSignals {
	return &SystemSignals{ctx: ctx}
}

// KernelName returns runtime.GOOS.
func (s *SystemSignals) KernelName() string {
	return runtime.GOOS
}

// KernelVersion returns the host kernel version string, or empty if it
// cannot be read. An empty version simply means the WSL marker check
// cannot match.
func (s *SystemSignals) KernelVersion() string {
	version, err := host.KernelVersionWithContext(s.ctx)
	if err != nil {
		return ""
	}
	return version
}

// Machine returns the host machine architecture in uname -m form, or
// runtime.GOARCH if gopsutil cannot determine it.
func (s *SystemSignals) Machine() string {
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		return runtime.GOARCH
	}
	return arch
}

// Getenv returns the value of an environment variable.
func (s *SystemSignals) Getenv(key string) string {
	return os.Getenv(key)
}

// FileExists reports whether a path exists on the host.
func (s *SystemSignals) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
