// Package tools checks the presence and versions of external
// executables the installer depends on.
//
// Requirements are checked in order and every probe is independent: a
// missing tool never prevents the remaining tools from being reported.
// Version minimums are compared with parsed semantic versions, and a
// version string that cannot be parsed counts as not meeting the
// minimum (fail-closed).
package tools

// Kind classifies how the absence of a tool is handled.
type Kind int

const (
	// Hard requirements abort the run when absent. The user must
	// install them with the detected package manager and re-run.
	Hard Kind = iota
	// Soft requirements get one interactive remediation attempt
	// before becoming hard failures.
	Soft
)

// String returns the string representation of the requirement kind.
func (k Kind) String() string {
	if k == Hard {
		return "hard"
	}
	return "soft"
}

// Requirement describes one external tool the installer needs.
type Requirement struct {
	// Name is the executable name looked up on the search path.
	Name string
	// Kind is the failure policy when the tool is absent.
	Kind Kind
	// MinMajor is the minimum required major version. Zero means no
	// version requirement and no version probe is attempted.
	MinMajor uint64
	// VersionArgs are the arguments that make the tool print its
	// version (e.g. --version).
	VersionArgs []string
}

// Status is the immutable result of probing one requirement.
type Status struct {
	Name  string
	Kind  Kind
	Found bool
	// Version is the tool's self-reported version, empty when the tool
	// is absent or no version was requested.
	Version string
	// MinimumChecked is true when the requirement carried a minimum
	// version and the tool was found.
	MinimumChecked bool
	// MeetsMinimum is only meaningful when MinimumChecked is true.
	MeetsMinimum bool
}

// Satisfied reports whether this tool needs no remediation.
func (s Status) Satisfied() bool {
	if !s.Found {
		return false
	}
	if s.MinimumChecked && !s.MeetsMinimum {
		return false
	}
	return true
}

// Default executable names used by the installer.
const (
	ToolUnzip = "unzip"
	ToolGit   = "git"
	ToolNode  = "node"
	ToolCurl  = "curl"
	ToolWget  = "wget"
	ToolNpm   = "npm"
)

// NodeMinMajor is the minimum supported major version of the node
// runtime.
const NodeMinMajor = 22

// DefaultRequirements returns the installer's requirement list in check
// order. unzip and git are hard; the node runtime is soft with an
// interactive remediation path.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{Name: ToolUnzip, Kind: Hard},
		{Name: ToolGit, Kind: Hard},
		{Name: ToolNode, Kind: Soft, MinMajor: NodeMinMajor, VersionArgs: []string{"--version"}},
	}
}
