// Package plan composes platform, tool, and version findings into a
// single ordered install plan.
//
// The planner is a sequential state machine. It either reaches Ready,
// the sole terminal state the execution layer acts on, or stops at the
// first failed transition with a typed reason and remediation text.
package plan

import (
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/tools"
)

// State is a stage of plan construction.
type State int

const (
	StateInit State = iota
	StatePlatformChecked
	StateToolsChecked
	StateVersionResolved
	StateAssetBuilt
	StateReady
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlatformChecked:
		return "platform-checked"
	case StateToolsChecked:
		return "tools-checked"
	case StateVersionResolved:
		return "version-resolved"
	case StateAssetBuilt:
		return "asset-built"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// VersionChoice carries the user's version decision together with the
// resolver outcome. When the user opted into the latest release but the
// resolver came back empty, the pinned supported version is used.
type VersionChoice struct {
	// UseLatest is true when the user asked for the latest release.
	UseLatest bool
	// Latest is the resolver output; empty when the release index was
	// unreachable or carried no tag.
	Latest string
	// Pinned overrides the built-in pinned version, e.g. from the
	// settings file. Empty means the built-in default.
	Pinned string
}

// Resolve returns the version the plan will install.
func (v VersionChoice) Resolve() string {
	if v.UseLatest && v.Latest != "" {
		return v.Latest
	}
	if v.Pinned != "" {
		return v.Pinned
	}
	return release.PinnedVersion
}

// Request is the planner input: immutable findings produced upstream.
type Request struct {
	Platform platform.Info
	Tools    []tools.Status
	// TransferTool is the selected download tool name, empty when
	// neither curl nor wget is available.
	TransferTool string
	Version      VersionChoice
}

// Plan is the terminal decision object consumed by the execution layer.
type Plan struct {
	Platform     platform.Info
	Tools        []tools.Status
	MissingHard  []string
	Remediation  map[string]string
	TransferTool string
	Version      string
	// Asset is nil unless the plan reached AssetBuilt.
	Asset *release.Asset
	State State
	// Err is the typed failure reason when State is StateFailed.
	Err error
}

// Executable reports whether the execution layer may act on this plan.
func (p *Plan) Executable() bool {
	return p.State == StateReady && len(p.MissingHard) == 0
}
