package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/config"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/plan"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/prompt"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/setup"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/tools"
)

// session bundles the installer's collaborators so the interactive
// flow can run against fakes in tests.
type session struct {
	prompter  prompt.Prompter
	prober    platform.Prober
	checker   *tools.Checker
	latest    func(ctx context.Context) (string, bool)
	installer *setup.Installer
	settings  config.Settings
	log       *zap.SugaredLogger
	out       io.Writer
}

// runInstall wires the real collaborators and runs the installer.
func runInstall() error {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	settings, err := config.Load(config.SettingsFileName)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	log := logger.Sugar()
	s := &session{
		prompter:  prompt.NewTerminal(),
		prober:    platform.NewProber(platform.NewSystemSignals(ctx)),
		checker:   tools.NewChecker(),
		latest:    release.NewResolver(settings.ReleaseIndex).Latest,
		installer: setup.NewInstaller(setup.NewExecRunner(), log),
		settings:  settings,
		log:       log,
		out:       os.Stdout,
	}

	return s.run(ctx)
}

// newLogger builds a console logger. The installer is interactive, so
// timestamps and caller info are noise.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

// run is the sequential install flow: probe, check, remediate, plan,
// then execute. Every step blocks; the first failure ends the run.
func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "install-svelte-app: Svelte + PocketBase project bootstrapper")
	fmt.Fprintln(s.out)

	// Phase 1: environment detection.
	info := s.prober.Probe(ctx)
	s.log.Infow("detected platform",
		"os", info.OSFamily, "arch", info.Arch, "pkg", info.PackageManager)

	if info.UnknownDistro {
		proceed, err := s.prompter.Confirm(
			"Your Linux distribution was not recognized. Continue without automatic install commands?")
		if err != nil {
			return err
		}
		if !proceed {
			return prompt.ErrCancelled
		}
	}

	// Phase 2: tool availability, with one interactive remediation
	// attempt for the node runtime before it becomes a hard failure.
	statuses := s.checker.Check(ctx, tools.DefaultRequirements())
	statuses, err := s.remediateNode(ctx, statuses)
	if err != nil {
		return err
	}
	transferTool, _ := s.checker.SelectTransferTool()

	// Phase 3: version choice.
	choice := plan.VersionChoice{Pinned: s.settings.PinnedVersion}
	useLatest, err := s.prompter.Confirm(fmt.Sprintf(
		"Install the latest PocketBase release? (No installs the tested version %s)",
		s.settings.PinnedVersion))
	if err != nil {
		return err
	}
	if useLatest {
		choice.UseLatest = true
		latest, ok := s.latest(ctx)
		if ok {
			choice.Latest = latest
		} else {
			s.log.Warnw("could not reach the release index, using the tested version",
				"version", s.settings.PinnedVersion)
		}
	}

	// Phase 4: the plan.
	p := plan.NewPlanner().Plan(plan.Request{
		Platform:     info,
		Tools:        statuses,
		TransferTool: transferTool,
		Version:      choice,
	})
	if !p.Executable() {
		s.printFailure(p)
		return p.Err
	}

	// Phase 5: project details and execution.
	projectName, err := s.prompter.Input("What is your project named?", "my-app")
	if err != nil {
		return err
	}
	installDir, err := s.prompter.Input("Where should it be created?", slugify(projectName))
	if err != nil {
		return err
	}

	if setup.TargetExists(installDir) {
		overwrite, err := s.prompter.Confirm(fmt.Sprintf(
			"Directory %s already exists. Remove it and start fresh?", installDir))
		if err != nil {
			return err
		}
		if !overwrite {
			return prompt.ErrCancelled
		}
		if err := s.installer.RemoveTarget(installDir); err != nil {
			return err
		}
	}

	if err := s.execute(ctx, p, installDir); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Done! Your project is ready in %s\n", installDir)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Next steps:")
	fmt.Fprintf(s.out, "  cd %s\n", installDir)
	fmt.Fprintf(s.out, "  ./%s/pocketbase serve   # start the backend\n", setup.BackendDir)
	fmt.Fprintf(s.out, "  cd %s && npm run dev    # start the frontend\n", setup.FrontendDir)
	return nil
}

// execute runs the I/O steps of a ready plan in order: clone, download,
// verify, extract, npm install.
func (s *session) execute(ctx context.Context, p *plan.Plan, installDir string) error {
	if err := s.installer.CloneTemplate(ctx, s.settings.TemplateURL, installDir); err != nil {
		return err
	}

	backendDir := filepath.Join(installDir, setup.BackendDir)
	if err := setup.EnsureDir(backendDir); err != nil {
		return err
	}

	archivePath := filepath.Join(backendDir, p.Asset.FileName)
	if err := s.installer.Download(ctx, p.TransferTool, p.Asset.DownloadURL, archivePath); err != nil {
		return describeDownloadFailure(err)
	}

	checksumsPath := filepath.Join(backendDir, "checksums.txt")
	if err := s.installer.Download(ctx, p.TransferTool, release.ChecksumsURL(p.Version), checksumsPath); err != nil {
		return describeDownloadFailure(err)
	}
	if err := s.installer.VerifyChecksum(archivePath, checksumsPath); err != nil {
		return err
	}

	if err := s.installer.ExtractArchive(ctx, archivePath, backendDir); err != nil {
		return err
	}
	if err := setup.SetExecutable(setup.BackendBinaryPath(installDir)); err != nil {
		return err
	}

	// The archive and checksums are not part of the project tree.
	for _, path := range []string{archivePath, checksumsPath} {
		if err := os.Remove(path); err != nil {
			s.log.Warnw("could not remove download artifact", "path", path, "err", err)
		}
	}

	return s.installer.InstallFrontendDeps(ctx, installDir)
}

// remediateNode offers the nvm install flow when the node runtime is
// missing or outdated, then re-checks it once. A declined or failed
// remediation leaves the unsatisfied status for the planner to reject.
func (s *session) remediateNode(ctx context.Context, statuses []tools.Status) ([]tools.Status, error) {
	idx := -1
	for i, status := range statuses {
		if status.Name == tools.ToolNode && !status.Satisfied() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return statuses, nil
	}

	accepted, err := s.prompter.Confirm(fmt.Sprintf(
		"node >= %d was not found. Install the latest LTS release with nvm now?", tools.NodeMinMajor))
	if err != nil {
		return nil, err
	}
	if !accepted {
		return statuses, nil
	}

	if err := s.installer.InstallNodeLTS(ctx); err != nil {
		s.log.Warnw("node LTS install failed", "err", err)
		return statuses, nil
	}

	rechecked := s.checker.Check(ctx, []tools.Requirement{{
		Name:        tools.ToolNode,
		Kind:        tools.Soft,
		MinMajor:    tools.NodeMinMajor,
		VersionArgs: []string{"--version"},
	}})
	statuses[idx] = rechecked[0]
	return statuses, nil
}

// printFailure prints the plan's failure and every collected
// remediation action before the run exits non-zero.
func (s *session) printFailure(p *plan.Plan) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Cannot continue: %v\n", p.Err)
	if len(p.Remediation) == 0 {
		return
	}
	fmt.Fprintln(s.out, "To fix this:")
	for _, name := range p.MissingHard {
		if cmd, ok := p.Remediation[name]; ok {
			fmt.Fprintf(s.out, "  %s: %s\n", name, cmd)
		}
	}
	if cmd, ok := p.Remediation["platform"]; ok {
		fmt.Fprintf(s.out, "  %s\n", cmd)
	}
}

// describeDownloadFailure attaches an actionable hint to the two
// distinguishable download failures.
func describeDownloadFailure(err error) error {
	switch {
	case errors.Is(err, release.ErrAssetNotFound):
		return fmt.Errorf("%w (the upstream release naming may have changed; try the tested version)", err)
	case errors.Is(err, release.ErrNetworkUnavailable):
		return fmt.Errorf("%w (check your connection and try again)", err)
	default:
		return err
	}
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)

// slugify turns a project name into a usable directory name.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "my-app"
	}
	return slug
}
