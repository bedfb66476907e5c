// Package release resolves PocketBase release versions and constructs
// release asset names and download URLs.
package release

import (
	"errors"
	"fmt"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
)

// Default release endpoints and the pinned version known to work with
// the template. The pinned version is used whenever the latest release
// cannot be resolved or the user declines it.
const (
	PinnedVersion   = "0.24.1"
	DefaultIndexURL = "https://api.github.com/repos/pocketbase/pocketbase/releases/latest"
	downloadBase    = "https://github.com/pocketbase/pocketbase/releases/download"
	project         = "pocketbase"
	extension       = "zip"
)

// Distinguishable failure kinds for the download path. A 404 on a
// constructed URL usually means the upstream asset naming scheme
// drifted, which needs a different user message than an unreachable
// network.
var (
	// ErrAssetNotFound means the release index or a constructed asset
	// URL answered but the asset does not exist.
	ErrAssetNotFound = errors.New("release asset not found")
	// ErrNetworkUnavailable means the release endpoint could not be
	// reached at all.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrUnsupportedTarget means an asset was requested for a platform
	// no binary is published for.
	ErrUnsupportedTarget = errors.New("unsupported download target")
)

// Asset describes one downloadable release artifact. It is a derived
// value: recompute it when the version or platform changes.
type Asset struct {
	Version     string
	FileName    string
	DownloadURL string
}

// BuildAsset constructs the expected release asset for a version and
// platform. Deterministic and total over supported inputs; unsupported
// OS or architecture values are rejected rather than assembled into a
// URL that would 404 later.
//
// Filename pattern: pocketbase_{version}_{os}_{arch}.zip
func BuildAsset(version string, osFamily platform.OSFamily, arch platform.Arch) (Asset, error) {
	if version == "" {
		return Asset{}, fmt.Errorf("%w: empty version", ErrUnsupportedTarget)
	}
	if osFamily == platform.OSUnsupported || osFamily == platform.OSWindows {
		return Asset{}, fmt.Errorf("%w: os %s", ErrUnsupportedTarget, osFamily)
	}
	if arch == platform.ArchUnsupported {
		return Asset{}, fmt.Errorf("%w: arch %s", ErrUnsupportedTarget, arch)
	}

	fileName := fmt.Sprintf("%s_%s_%s_%s.%s",
		project, version, osFamily.BinaryTarget(), arch, extension)

	return Asset{
		Version:     version,
		FileName:    fileName,
		DownloadURL: fmt.Sprintf("%s/v%s/%s", downloadBase, version, fileName),
	}, nil
}

// ChecksumsURL returns the URL of the published checksums file for a
// release version.
func ChecksumsURL(version string) string {
	return fmt.Sprintf("%s/v%s/checksums.txt", downloadBase, version)
}
