package main

import (
	"context"
	"testing"

	"github.com/ZebulonRouseFrantzich/maaget/internal/config"
	"github.com/ZebulonRouseFrantzich/maaget/internal/testutil"
)

func TestLoadEnvironment(t *testing.T) {
	testutil.SetupTestEnv(t)

	env, err := loadEnvironment(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.cfg.Channel != config.ChannelStable {
		t.Errorf("default channel = %v, want stable", env.cfg.Channel)
	}
	// Endpoint overrides from the test environment must win over defaults.
	if env.cfg.CoreAPIURL == config.DefaultCoreAPIURL {
		t.Error("core API URL override was not applied")
	}
	if env.info.OS == "" || env.info.Arch == "" {
		t.Errorf("platform detection incomplete: %+v", env.info)
	}
}

func TestLoadEnvironmentChannelOverride(t *testing.T) {
	testutil.SetupTestEnv(t)

	env, err := loadEnvironment(context.Background(), "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.cfg.Channel != config.ChannelBeta {
		t.Errorf("channel = %v, want beta", env.cfg.Channel)
	}
}

func TestLoadEnvironmentRejectsUnknownChannel(t *testing.T) {
	testutil.SetupTestEnv(t)

	if _, err := loadEnvironment(context.Background(), "nightly"); err == nil {
		t.Error("expected error but got none")
	}
}
