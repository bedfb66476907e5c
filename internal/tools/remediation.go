package tools

import (
	"fmt"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/platform"
)

// installCommandFormats maps each package manager to its install
// command template.
var installCommandFormats = map[platform.PackageManager]string{
	platform.PkgApt:    "sudo apt install -y %s",
	platform.PkgDnf:    "sudo dnf install -y %s",
	platform.PkgPacman: "sudo pacman -S --noconfirm %s",
	platform.PkgBrew:   "brew install %s",
}

// InstallCommand returns the remediation command for installing a tool
// with the given package manager. When no package manager was detected
// it returns a generic manual-install instruction instead of an empty
// string, so failure output always carries guidance.
func InstallCommand(manager platform.PackageManager, tool string) string {
	if format, ok := installCommandFormats[manager]; ok {
		return fmt.Sprintf(format, tool)
	}
	return fmt.Sprintf("install %s manually with your distribution's package manager", tool)
}

// NodeRemediation is the suggested interactive remediation for a
// missing or outdated node runtime: install nvm, then the current LTS
// release.
const NodeRemediation = "install nvm and run: nvm install --lts"
