package plan

import (
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/tools"
)

// Planner builds install plans from upstream findings.
type Planner struct{}

// NewPlanner creates a planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan walks the transitions Init -> PlatformChecked -> ToolsChecked ->
// VersionResolved -> AssetBuilt -> Ready, stopping at the first guard
// that fails. The returned plan is terminal: Ready plans feed the
// execution layer, failed plans carry a typed reason plus remediation
// text and the run exits non-zero after printing it.
func (pl *Planner) Plan(req Request) *Plan {
	p := &Plan{
		Platform:     req.Platform,
		Tools:        req.Tools,
		Remediation:  make(map[string]string),
		TransferTool: req.TransferTool,
		State:        StateInit,
	}

	if !pl.checkPlatform(p) {
		return p
	}
	p.State = StatePlatformChecked

	if !pl.checkTools(p) {
		return p
	}
	p.State = StateToolsChecked

	p.Version = req.Version.Resolve()
	p.State = StateVersionResolved

	asset, err := release.BuildAsset(p.Version, p.Platform.OSFamily, p.Platform.Arch)
	if err != nil {
		p.fail(err)
		return p
	}
	p.Asset = &asset
	p.State = StateAssetBuilt

	p.State = StateReady
	return p
}

// checkPlatform guards the PlatformChecked transition. Native Windows
// gets a dedicated remediation pointing at the Linux subsystem.
func (pl *Planner) checkPlatform(p *Plan) bool {
	if p.Platform.Supported() {
		return true
	}

	remediation := GenericPlatformRemediation
	if p.Platform.OSFamily == platform.OSWindows {
		remediation = WindowsRemediation
	}
	p.Remediation["platform"] = remediation
	p.fail(&UnsupportedPlatformError{Info: p.Platform, Remediation: remediation})
	return false
}

// checkTools guards the ToolsChecked transition. All statuses were
// already collected upstream, so every missing tool lands in
// MissingHard with its remediation before the first failure is chosen.
// Soft requirements reaching the planner unsatisfied have exhausted
// their interactive remediation and are treated as hard.
func (pl *Planner) checkTools(p *Plan) bool {
	var firstErr error

	for _, status := range p.Tools {
		if status.Satisfied() {
			continue
		}

		p.MissingHard = append(p.MissingHard, status.Name)

		if !status.Found {
			remediation := tools.InstallCommand(p.Platform.PackageManager, status.Name)
			if status.Name == tools.ToolNode {
				remediation = tools.NodeRemediation
			}
			p.Remediation[status.Name] = remediation
			if firstErr == nil {
				firstErr = &MissingToolError{Tool: status.Name, Remediation: remediation}
			}
			continue
		}

		// Present but below minimum version.
		p.Remediation[status.Name] = tools.NodeRemediation
		if firstErr == nil {
			firstErr = &VersionCheckError{
				Tool:        status.Name,
				Version:     status.Version,
				MinMajor:    tools.NodeMinMajor,
				Remediation: tools.NodeRemediation,
			}
		}
	}

	if p.TransferTool == "" {
		remediation := tools.InstallCommand(p.Platform.PackageManager, tools.ToolCurl)
		p.MissingHard = append(p.MissingHard, tools.ToolCurl)
		p.Remediation[tools.ToolCurl] = remediation
		if firstErr == nil {
			firstErr = &MissingToolError{Tool: tools.ToolCurl, Remediation: remediation}
		}
	}

	if firstErr != nil {
		p.fail(firstErr)
		return false
	}
	return true
}

func (p *Plan) fail(err error) {
	p.State = StateFailed
	p.Err = err
}
