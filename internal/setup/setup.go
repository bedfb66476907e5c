// Package setup executes a ready install plan: clones the template
// repository, downloads and verifies the backend archive, unpacks it,
// and installs frontend dependencies.
//
// All decisions were made by the planner; this layer is linear I/O
// against external collaborators. Every step is blocking and the run
// fails fast on the first error.
package setup

import (
	"go.uber.org/zap"
)

// DefaultTemplateURL is the Svelte application template cloned into
// the install folder.
const DefaultTemplateURL = "https://github.com/realJogicodes/svelte-app-fast.git"

// Directory names created under the install folder.
const (
	FrontendDir = "frontend"
	BackendDir  = "pocketbase"
)

// Installer runs the I/O steps of an executable plan.
type Installer struct {
	runner Runner
	log    *zap.SugaredLogger
}

// NewInstaller creates an installer. A nil logger disables logging.
func NewInstaller(runner Runner, log *zap.SugaredLogger) *Installer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Installer{runner: runner, log: log}
}
