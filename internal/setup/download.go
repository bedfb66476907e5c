package setup

import (
	"context"
	"fmt"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/tools"
)

// curl/wget exit codes that distinguish "the server answered but the
// asset does not exist" from "the network is unreachable". A 404 on a
// constructed URL usually means the upstream release naming scheme
// drifted, which needs a different user message.
const (
	curlExitHTTPError      = 22 // -f turns HTTP >= 400 into this
	curlExitResolveFailure = 6
	curlExitConnectFailure = 7
	curlExitTimeout        = 28
	wgetExitNetworkFailure = 4
	wgetExitServerError    = 8
)

// Download fetches a URL to a local file using the plan's selected
// transfer tool. Failures are classified as release.ErrAssetNotFound or
// release.ErrNetworkUnavailable where the tool's exit code allows it.
func (i *Installer) Download(ctx context.Context, transferTool, url, destPath string) error {
	i.log.Infow("downloading", "tool", transferTool, "url", url)

	var err error
	switch transferTool {
	case tools.ToolCurl:
		err = i.runner.Run(ctx, "", "curl", "-fSL", "--output", destPath, url)
	case tools.ToolWget:
		err = i.runner.Run(ctx, "", "wget", "-q", "-O", destPath, url)
	default:
		return fmt.Errorf("unknown transfer tool: %s", transferTool)
	}

	if err == nil {
		return nil
	}
	return classifyDownloadError(transferTool, url, err)
}

// classifyDownloadError maps a transfer tool failure onto the download
// error taxonomy.
func classifyDownloadError(transferTool, url string, err error) error {
	code := exitCode(err)

	switch transferTool {
	case tools.ToolCurl:
		switch code {
		case curlExitHTTPError:
			return fmt.Errorf("%w: %s", release.ErrAssetNotFound, url)
		case curlExitResolveFailure, curlExitConnectFailure, curlExitTimeout:
			return fmt.Errorf("%w: %s", release.ErrNetworkUnavailable, url)
		}
	case tools.ToolWget:
		switch code {
		case wgetExitServerError:
			return fmt.Errorf("%w: %s", release.ErrAssetNotFound, url)
		case wgetExitNetworkFailure:
			return fmt.Errorf("%w: %s", release.ErrNetworkUnavailable, url)
		}
	}

	return &ExternalToolError{Tool: transferTool, Op: "download", Err: err}
}
