package setup

import (
	"context"
	"path/filepath"
)

// InstallFrontendDeps runs npm install in the template's frontend
// directory. npm prints its own progress, so output goes straight to
// the terminal.
func (i *Installer) InstallFrontendDeps(ctx context.Context, installDir string) error {
	frontendPath := filepath.Join(installDir, FrontendDir)
	i.log.Infow("installing frontend dependencies", "dir", frontendPath)

	if err := i.runner.Run(ctx, frontendPath, "npm", "install"); err != nil {
		return &ExternalToolError{Tool: "npm", Op: "install", Err: err}
	}

	return nil
}

// InstallNodeLTS runs the interactive soft-requirement remediation:
// install the latest long-term-support node release through nvm. nvm
// is a shell function, so it has to run inside a login shell.
func (i *Installer) InstallNodeLTS(ctx context.Context) error {
	i.log.Info("installing node LTS via nvm")

	script := `export NVM_DIR="$HOME/.nvm"; [ -s "$NVM_DIR/nvm.sh" ] && . "$NVM_DIR/nvm.sh"; nvm install --lts`
	if err := i.runner.Run(ctx, "", "bash", "-c", script); err != nil {
		return &ExternalToolError{Tool: "nvm", Op: "install --lts", Err: err}
	}

	return nil
}
