// Package config loads maaget's configuration: the release channel and the
// base URLs for the MaaCore version manifest, the CLI version manifest and
// the CLI download endpoint.
//
// Configuration is read once at startup from an optional maaget.toml in the
// config directory, with environment overrides bound at load time. The
// resulting Config value is threaded through the pipeline; nothing reads the
// process environment after load.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default endpoints. All three are overridable via config file or
// environment.
const (
	DefaultCoreAPIURL     = "https://ota.maa.plus/MaaAssistantArknights/api/version/"
	DefaultCLIAPIURL      = "https://github.com/MaaAssistantArknights/maa-cli/raw/version/"
	DefaultCLIDownloadURL = "https://github.com/MaaAssistantArknights/maa-cli/releases/download/"
)

// Environment variable names bound as overrides.
const (
	EnvCoreAPIURL     = "MAA_API_URL"
	EnvCLIAPIURL      = "MAA_CLI_API"
	EnvCLIDownloadURL = "MAA_CLI_DOWNLOAD"
	EnvLogLevel       = "MAAGET_LOG_LEVEL"
)

// Config holds the resolved configuration for one invocation.
type Config struct {
	Channel        Channel
	CoreAPIURL     string
	CLIAPIURL      string
	CLIDownloadURL string
	LogLevel       string
}

// Load reads maaget.toml from configDir (if present) and applies environment
// overrides. A missing config file is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("maaget")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetDefault("channel", "stable")
	v.SetDefault("core_api_url", DefaultCoreAPIURL)
	v.SetDefault("cli_api_url", DefaultCLIAPIURL)
	v.SetDefault("cli_download_url", DefaultCLIDownloadURL)
	v.SetDefault("log_level", "info")

	if err := v.BindEnv("core_api_url", EnvCoreAPIURL); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("cli_api_url", EnvCLIAPIURL); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("cli_download_url", EnvCLIDownloadURL); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("log_level", EnvLogLevel); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	channel, err := ParseChannel(v.GetString("channel"))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return &Config{
		Channel:        channel,
		CoreAPIURL:     v.GetString("core_api_url"),
		CLIAPIURL:      v.GetString("cli_api_url"),
		CLIDownloadURL: v.GetString("cli_download_url"),
		LogLevel:       v.GetString("log_level"),
	}, nil
}

// CoreManifestURL returns the URL of the MaaCore version manifest for the
// configured channel.
func (c *Config) CoreManifestURL() string {
	return fmt.Sprintf("%s%s.json", normalizeURL(c.CoreAPIURL), c.Channel)
}

// CLIManifestURL returns the URL of the maaget version manifest for the
// configured channel.
func (c *Config) CLIManifestURL() string {
	return fmt.Sprintf("%s%s.json", normalizeURL(c.CLIAPIURL), c.Channel)
}

// CLIDownloadFor returns the download URL for a CLI release asset addressed
// by tag and file name.
func (c *Config) CLIDownloadFor(tag, name string) string {
	return fmt.Sprintf("%s%s/%s", normalizeURL(c.CLIDownloadURL), tag, name)
}

// normalizeURL guarantees exactly one trailing slash so joining is uniform
// whether or not the configured base carries one.
func normalizeURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}
