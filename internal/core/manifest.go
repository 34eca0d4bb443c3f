// Package core implements the MaaCore acquisition pipeline: manifest
// retrieval, platform asset resolution, mirrored download with a
// size-validated cache, archive extraction and install/update
// orchestration.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// VersionManifest is the remote version document describing the latest
// MaaCore release on a channel.
type VersionManifest struct {
	Version string         `json:"version"`
	Details VersionDetails `json:"details"`
}

// VersionDetails holds the downloadable assets of a release.
type VersionDetails struct {
	Assets []Asset `json:"assets"`
}

// Asset is one platform-specific downloadable archive.
type Asset struct {
	Name               string   `json:"name"`
	Size               uint64   `json:"size"`
	BrowserDownloadURL string   `json:"browser_download_url"`
	Mirrors            []string `json:"mirrors"`
}

// FetchManifest downloads and parses the version manifest at url.
func FetchManifest(ctx context.Context, client *http.Client, url string) (*VersionManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch version manifest: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch version manifest from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch version manifest from %s: unexpected status code: %d", url, resp.StatusCode)
	}

	var manifest VersionManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("parse version manifest: %w", err)
	}

	return &manifest, nil
}

// SemVer parses the manifest version after stripping the leading "v".
// The manifest server is trusted, so a malformed version is a
// manifest-format error, not a recoverable condition.
func (m *VersionManifest) SemVer() (*semver.Version, error) {
	if len(m.Version) < 2 {
		return nil, fmt.Errorf("parse manifest version %q: too short", m.Version)
	}

	version, err := semver.StrictNewVersion(m.Version[1:])
	if err != nil {
		return nil, fmt.Errorf("parse manifest version %q: %w", m.Version, err)
	}
	return version, nil
}
