package setup

import "fmt"

// ExternalToolError means an invoked collaborator (git, curl, unzip,
// npm, nvm) exited unsuccessfully.
type ExternalToolError struct {
	Tool string
	Op   string
	Err  error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Tool, e.Op, e.Err)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// FilesystemError means a local filesystem operation failed.
type FilesystemError struct {
	Path string
	Op   string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
