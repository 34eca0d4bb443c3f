package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ZebulonRouseFrantzich/maaget/internal/config"
	"github.com/ZebulonRouseFrantzich/maaget/internal/dirs"
	"github.com/ZebulonRouseFrantzich/maaget/internal/logger"
	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
)

// environment bundles the collaborators every subcommand needs.
type environment struct {
	cfg  *config.Config
	dirs *dirs.Dirs
	info *platform.Info
	log  *zap.Logger
}

// loadEnvironment resolves directories, loads configuration (applying the
// optional --channel override), builds the logger and detects the platform.
func loadEnvironment(ctx context.Context, channelFlag string) (*environment, error) {
	d, err := dirs.New()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(d.Config())
	if err != nil {
		return nil, err
	}

	if channelFlag != "" {
		channel, err := config.ParseChannel(channelFlag)
		if err != nil {
			return nil, err
		}
		cfg.Channel = channel
	}

	logger.SetLevel(cfg.LogLevel)
	log := logger.New()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}

	if info.IsLinux() && info.Platform != "" {
		log.Debug("detected platform",
			zap.String("distro", info.Platform),
			zap.String("family", info.Family),
			zap.String("version", info.Version))
	}

	return &environment{cfg: cfg, dirs: d, info: info, log: log}, nil
}
