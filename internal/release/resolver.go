package release

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// DefaultIndexTimeout bounds the single release-index read so an
// unreachable endpoint cannot hang the run.
const DefaultIndexTimeout = 5 * time.Second

// Resolver queries a release index for the latest published version.
type Resolver struct {
	client   *http.Client
	indexURL string
}

// NewResolver creates a resolver for the given release index URL. An
// empty URL uses the default PocketBase index.
func NewResolver(indexURL string) *Resolver {
	if indexURL == "" {
		indexURL = DefaultIndexURL
	}
	return &Resolver{
		client:   &http.Client{Timeout: DefaultIndexTimeout},
		indexURL: indexURL,
	}
}

// releaseIndex is the subset of the release descriptor we read.
type releaseIndex struct {
	TagName string `json:"tag_name"`
}

// Latest performs a single read of the release index and returns the
// latest published version with any leading "v" stripped. It degrades
// gracefully: on network failure, timeout, non-200 response, or a
// missing tag field it returns ok=false and the caller falls back to
// the pinned supported version. It never hangs past the client timeout
// and never returns an error.
func (r *Resolver) Latest(ctx context.Context) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.indexURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var index releaseIndex
	if err := json.NewDecoder(resp.Body).Decode(&index); err != nil {
		return "", false
	}

	version := strings.TrimPrefix(strings.TrimSpace(index.TagName), "v")
	if version == "" {
		return "", false
	}

	return version, true
}
