package tools

import (
	"context"
	"os/exec"
	"strings"
)

// LookPathFunc locates an executable on the search path.
// exec.LookPath in production.
type LookPathFunc func(name string) (string, error)

// RunVersionFunc invokes a tool and returns its combined output.
// Used only for version probes; the call is bounded by the context.
type RunVersionFunc func(ctx context.Context, name string, args ...string) (string, error)

// Checker probes tool availability.
type Checker struct {
	lookPath   LookPathFunc
	runVersion RunVersionFunc
}

// NewChecker creates a checker using the real search path and real
// process execution.
func NewChecker() *Checker {
	return &Checker{
		lookPath:   exec.LookPath,
		runVersion: runVersionCommand,
	}
}

// NewCheckerWith creates a checker with injected probe functions.
func NewCheckerWith(lookPath LookPathFunc, runVersion RunVersionFunc) *Checker {
	return &Checker{lookPath: lookPath, runVersion: runVersion}
}

// Check probes each requirement and returns one status per requirement
// in input order. Probes are independent: a missing tool does not stop
// the remaining checks.
func (c *Checker) Check(ctx context.Context, requirements []Requirement) []Status {
	statuses := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		statuses = append(statuses, c.checkOne(ctx, req))
	}
	return statuses
}

// checkOne probes a single requirement.
func (c *Checker) checkOne(ctx context.Context, req Requirement) Status {
	status := Status{Name: req.Name, Kind: req.Kind}

	if _, err := c.lookPath(req.Name); err != nil {
		return status
	}
	status.Found = true

	if req.MinMajor == 0 {
		return status
	}

	status.MinimumChecked = true

	output, err := c.runVersion(ctx, req.Name, req.VersionArgs...)
	if err != nil {
		// Tool exists but won't report a version: fail closed.
		return status
	}

	version, ok := ExtractVersion(output)
	if !ok {
		return status
	}

	status.Version = version
	status.MeetsMinimum = meetsMinimum(version, req.MinMajor)
	return status
}

// SelectTransferTool returns the first available download tool in
// preference order: curl, then wget. ok is false when neither is on
// the search path, which is a hard failure for the run.
func (c *Checker) SelectTransferTool() (string, bool) {
	for _, name := range []string{ToolCurl, ToolWget} {
		if _, err := c.lookPath(name); err == nil {
			return name, true
		}
	}
	return "", false
}

// runVersionCommand executes a tool's version command and returns its
// combined output.
func runVersionCommand(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
