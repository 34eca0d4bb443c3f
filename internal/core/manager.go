package core

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ZebulonRouseFrantzich/maaget/internal/config"
	"github.com/ZebulonRouseFrantzich/maaget/internal/dirs"
	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
	"github.com/ZebulonRouseFrantzich/maaget/internal/run"
)

// Manager orchestrates MaaCore installation and updates: manifest fetch,
// asset resolution, mirrored download and extraction into the library and
// resource directories.
type Manager struct {
	cfg     *config.Config
	dirs    *dirs.Dirs
	info    *platform.Info
	querier run.VersionQuerier
	log     *zap.Logger
}

// ManagerConfig holds the collaborators of a Manager.
type ManagerConfig struct {
	Config   *config.Config
	Dirs     *dirs.Dirs
	Platform *platform.Info
	// Querier reports the installed MaaCore version. Defaults to spawning
	// maa-run against the library directory.
	Querier run.VersionQuerier
	Logger  *zap.Logger
}

// NewManager creates a manager after validating its collaborators.
func NewManager(mc ManagerConfig) (*Manager, error) {
	if mc.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if mc.Dirs == nil {
		return nil, fmt.Errorf("dirs is required")
	}
	if mc.Platform == nil {
		return nil, fmt.Errorf("platform info is required")
	}
	if mc.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	querier := mc.Querier
	if querier == nil {
		querier = run.NewCoreRunner(mc.Dirs.Library())
	}

	return &Manager{
		cfg:     mc.Config,
		dirs:    mc.Dirs,
		info:    mc.Platform,
		querier: querier,
		log:     mc.Logger,
	}, nil
}

// InstallOptions configures Install.
type InstallOptions struct {
	// Force reinstalls over an existing library file.
	Force bool
	// NoResource skips extraction of the resource tree.
	NoResource bool
	// Timeout bounds each download connection attempt.
	Timeout time.Duration
}

// UpdateOptions configures Update.
type UpdateOptions struct {
	NoResource bool
	Timeout    time.Duration
}

// LibraryPath returns the expected path of the installed MaaCore library.
func (m *Manager) LibraryPath() string {
	return filepath.Join(m.dirs.Library(), LibraryName(m.info.OS))
}

// IsInstalled reports whether the MaaCore library file is present.
func (m *Manager) IsInstalled() bool {
	info, err := os.Stat(m.LibraryPath())
	return err == nil && info.Mode().IsRegular()
}

// Install performs a fresh installation of the manifest's current version.
// No version comparison happens here; an existing install is refused unless
// opts.Force is set.
func (m *Manager) Install(ctx context.Context, opts InstallOptions) error {
	if m.IsInstalled() && !opts.Force {
		return fmt.Errorf("%w at %s: run `maaget update` to update it or `maaget install --force` to reinstall",
			ErrAlreadyInstalled, m.LibraryPath())
	}

	m.log.Info("installing MaaCore",
		zap.Stringer("channel", m.cfg.Channel),
		zap.String("os", m.info.OS),
		zap.String("arch", m.info.Arch))

	if err := dirs.Ensure(m.dirs.Library()); err != nil {
		return err
	}
	if err := dirs.Ensure(m.dirs.Cache()); err != nil {
		return err
	}
	if err := dirs.EnsureClean(m.dirs.Resource()); err != nil {
		return err
	}

	manifest, err := FetchManifest(ctx, http.DefaultClient, m.cfg.CoreManifestURL())
	if err != nil {
		return err
	}

	return m.fetchAndExtract(ctx, manifest, opts.NoResource, opts.Timeout)
}

// Update fetches the manifest, compares against the installed version and,
// when newer, downloads and re-extracts. Directories are cleaned only after
// a successful download so an interrupted transfer never destroys a working
// install.
func (m *Manager) Update(ctx context.Context, opts UpdateOptions) error {
	manifest, err := FetchManifest(ctx, http.DefaultClient, m.cfg.CoreManifestURL())
	if err != nil {
		return err
	}

	remote, err := manifest.SemVer()
	if err != nil {
		return err
	}

	installed, err := m.querier.InstalledVersion(ctx)
	if err != nil {
		return fmt.Errorf("query installed version: %w", err)
	}

	if installed.Compare(remote) >= 0 {
		m.log.Info("MaaCore is already up to date", zap.String("version", "v"+installed.String()))
		return nil
	}

	m.log.Info("updating MaaCore",
		zap.Stringer("channel", m.cfg.Channel),
		zap.String("current", "v"+installed.String()),
		zap.String("new", "v"+remote.String()))

	if err := dirs.Ensure(m.dirs.Cache()); err != nil {
		return err
	}

	asset, err := manifest.ResolveAsset(m.info)
	if err != nil {
		return err
	}

	downloader := NewDownloader(opts.Timeout, m.log)
	archivePath, err := downloader.Download(ctx, asset, m.dirs.Cache())
	if err != nil {
		return err
	}

	// Clean only after the download succeeded.
	if err := dirs.EnsureClean(m.dirs.Library()); err != nil {
		return err
	}
	if err := dirs.EnsureClean(m.dirs.Resource()); err != nil {
		return err
	}

	return m.extract(archivePath, opts.NoResource)
}

func (m *Manager) fetchAndExtract(ctx context.Context, manifest *VersionManifest, noResource bool, timeout time.Duration) error {
	asset, err := manifest.ResolveAsset(m.info)
	if err != nil {
		return err
	}

	downloader := NewDownloader(timeout, m.log)
	archivePath, err := downloader.Download(ctx, asset, m.dirs.Cache())
	if err != nil {
		return err
	}

	return m.extract(archivePath, noResource)
}

func (m *Manager) extract(archivePath string, noResource bool) error {
	archive, err := OpenArchive(archivePath)
	if err != nil {
		return err
	}

	mapper := NewExtractMapper(m.info.OS, m.dirs.Library(), m.dirs.Resource(), !noResource)
	if err := archive.Extract(mapper); err != nil {
		return err
	}

	m.log.Info("MaaCore installed", zap.String("library", m.LibraryPath()))
	return nil
}
