// Package selfupdate replaces the running maaget executable with the
// latest release for the configured channel. It follows the same
// channel-suffixed manifest scheme as the core pipeline, with a
// tag+name-addressed download URL.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/ZebulonRouseFrantzich/maaget/internal/config"
	"github.com/ZebulonRouseFrantzich/maaget/internal/dirs"
	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
)

// Manifest is the CLI version document.
type Manifest struct {
	Version string  `json:"version"`
	Details Details `json:"details"`
}

// Details carries the release tag and the per-platform asset names, keyed
// by "{os}-{arch}".
type Details struct {
	Tag    string            `json:"tag"`
	Assets map[string]string `json:"assets"`
}

// AssetName returns the CLI asset file name for the given platform.
func (m *Manifest) AssetName(info *platform.Info) (string, error) {
	key := fmt.Sprintf("%s-%s", info.OS, info.Arch)
	name, ok := m.Details.Assets[key]
	if !ok {
		return "", fmt.Errorf("no CLI asset for platform %s", key)
	}
	return name, nil
}

// Updater downloads and installs maaget releases over the running binary.
type Updater struct {
	cfg  *config.Config
	dirs *dirs.Dirs
	info *platform.Info
	log  *zap.Logger
}

// NewUpdater creates a self-updater.
func NewUpdater(cfg *config.Config, d *dirs.Dirs, info *platform.Info, log *zap.Logger) *Updater {
	return &Updater{cfg: cfg, dirs: d, info: info, log: log}
}

// ShouldUpdate reports whether remote is strictly newer than current.
// Unparseable current versions (dev builds) always update.
func ShouldUpdate(current string, remote *semver.Version) bool {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	return cur.Compare(remote) < 0
}

// Run checks the CLI manifest and, when a newer release exists, downloads
// it into the cache and renames it over the running executable.
func (u *Updater) Run(ctx context.Context, currentVersion string) error {
	manifest, err := fetchManifest(ctx, u.cfg.CLIManifestURL())
	if err != nil {
		return err
	}

	remote, err := semver.NewVersion(manifest.Version)
	if err != nil {
		return fmt.Errorf("parse CLI manifest version %q: %w", manifest.Version, err)
	}

	if !ShouldUpdate(currentVersion, remote) {
		u.log.Info("maaget is already up to date", zap.String("version", currentVersion))
		return nil
	}

	name, err := manifest.AssetName(u.info)
	if err != nil {
		return err
	}

	if err := dirs.Ensure(u.dirs.Cache()); err != nil {
		return err
	}

	url := u.cfg.CLIDownloadFor(manifest.Details.Tag, name)
	u.log.Info("downloading maaget release",
		zap.String("version", manifest.Version),
		zap.String("url", url))

	downloaded := filepath.Join(u.dirs.Cache(), name)
	if err := download(ctx, url, downloaded); err != nil {
		return err
	}

	return replaceExecutable(downloaded)
}

func fetchManifest(ctx context.Context, url string) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch CLI manifest: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch CLI manifest from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch CLI manifest from %s: unexpected status code: %d", url, resp.StatusCode)
	}

	var manifest Manifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("parse CLI manifest: %w", err)
	}
	return &manifest, nil
}

func download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download CLI release: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("download CLI release from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download CLI release from %s: unexpected status code: %d", url, resp.StatusCode)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("write file: %w", err)
	}
	return out.Close()
}

// replaceExecutable installs newBinary over the running executable by
// copying next to it and renaming, so the swap is atomic on the same
// filesystem.
func replaceExecutable(newBinary string) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate current executable: %w", err)
	}

	staging := self + ".new"
	if err := copyFile(newBinary, staging, 0o755); err != nil {
		return err
	}

	if err := os.Rename(staging, self); err != nil {
		os.Remove(staging)
		return fmt.Errorf("replace executable: %w", err)
	}
	return nil
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy to %s: %w", dest, err)
	}
	return out.Close()
}
