package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
)

func TestExpectedAssetName(t *testing.T) {
	version := semver.MustParse("5.0.0")

	tests := []struct {
		name    string
		os      string
		arch    string
		want    string
		wantErr bool
	}{
		{name: "macos_x86_64", os: "darwin", arch: "x86_64", want: "MAA-v5.0.0-macos-runtime-universal.zip"},
		{name: "macos_aarch64", os: "darwin", arch: "aarch64", want: "MAA-v5.0.0-macos-runtime-universal.zip"},
		{name: "linux_x86_64", os: "linux", arch: "x86_64", want: "MAA-v5.0.0-linux-x86_64.tar.gz"},
		{name: "linux_aarch64", os: "linux", arch: "aarch64", want: "MAA-v5.0.0-linux-aarch64.tar.gz"},
		{name: "windows_x86_64", os: "windows", arch: "x86_64", want: "MAA-v5.0.0-win-x64.zip"},
		{name: "windows_aarch64", os: "windows", arch: "aarch64", want: "MAA-v5.0.0-win-arm64.zip"},
		{name: "linux_riscv", os: "linux", arch: "riscv64", wantErr: true},
		{name: "freebsd", os: "freebsd", arch: "x86_64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &platform.Info{OS: tt.os, Arch: tt.arch, ArchRaw: tt.arch}
			got, err := ExpectedAssetName(info, version)
			if tt.wantErr {
				if !errors.Is(err, ErrPlatformUnsupported) {
					t.Errorf("expected ErrPlatformUnsupported, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpectedAssetName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveAsset(t *testing.T) {
	var manifest VersionManifest
	if err := json.Unmarshal([]byte(sampleManifest), &manifest); err != nil {
		t.Fatal(err)
	}

	t.Run("found", func(t *testing.T) {
		info := &platform.Info{OS: "linux", Arch: "x86_64"}
		asset, err := manifest.ResolveAsset(info)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if asset.Name != "MAA-v5.0.0-linux-x86_64.tar.gz" {
			t.Errorf("asset name = %q", asset.Name)
		}
		if asset.BrowserDownloadURL == "" {
			t.Error("asset should carry its download URL")
		}
	})

	t.Run("not_in_manifest", func(t *testing.T) {
		info := &platform.Info{OS: "windows", Arch: "x86_64"}
		_, err := manifest.ResolveAsset(info)
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("unsupported_platform", func(t *testing.T) {
		info := &platform.Info{OS: "plan9", Arch: "x86_64"}
		_, err := manifest.ResolveAsset(info)
		if !errors.Is(err, ErrPlatformUnsupported) {
			t.Errorf("expected ErrPlatformUnsupported, got %v", err)
		}
	})

	t.Run("first_match_wins", func(t *testing.T) {
		dup := VersionManifest{
			Version: "v5.0.0",
			Details: VersionDetails{Assets: []Asset{
				{Name: "MAA-v5.0.0-linux-x86_64.tar.gz", BrowserDownloadURL: "https://first.example"},
				{Name: "MAA-v5.0.0-linux-x86_64.tar.gz", BrowserDownloadURL: "https://second.example"},
			}},
		}
		asset, err := dup.ResolveAsset(&platform.Info{OS: "linux", Arch: "x86_64"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if asset.BrowserDownloadURL != "https://first.example" {
			t.Errorf("expected first matching asset, got %s", asset.BrowserDownloadURL)
		}
	})
}
