package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/ZebulonRouseFrantzich/maaget/internal/config"
	"github.com/ZebulonRouseFrantzich/maaget/internal/dirs"
	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
)

func TestShouldUpdate(t *testing.T) {
	remote := semver.MustParse("0.4.0")

	tests := []struct {
		name    string
		current string
		want    bool
	}{
		{name: "older", current: "v0.3.12", want: true},
		{name: "equal", current: "v0.4.0", want: false},
		{name: "newer", current: "v0.5.0", want: false},
		{name: "dev_build_always_updates", current: "dev", want: true},
		{name: "empty_always_updates", current: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldUpdate(tt.current, remote); got != tt.want {
				t.Errorf("ShouldUpdate(%q, %s) = %v, want %v", tt.current, remote, got, tt.want)
			}
		})
	}
}

func TestManifestAssetName(t *testing.T) {
	manifest := &Manifest{
		Version: "0.4.0",
		Details: Details{
			Tag: "v0.4.0",
			Assets: map[string]string{
				"linux-x86_64":     "maaget-v0.4.0-x86_64-unknown-linux-gnu.tar.gz",
				"darwin-universal": "maaget-v0.4.0-universal-apple-darwin.zip",
			},
		},
	}

	t.Run("known_platform", func(t *testing.T) {
		info := &platform.Info{OS: "linux", Arch: "x86_64"}
		name, err := manifest.AssetName(info)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "maaget-v0.4.0-x86_64-unknown-linux-gnu.tar.gz" {
			t.Errorf("name = %q", name)
		}
	})

	t.Run("unknown_platform", func(t *testing.T) {
		info := &platform.Info{OS: "freebsd", Arch: "x86_64"}
		if _, err := manifest.AssetName(info); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestRunSkipsWhenUpToDate(t *testing.T) {
	var downloads atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/cli/stable.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "0.4.0", "details": {"tag": "v0.4.0", "assets": {"linux-x86_64": "maaget.tar.gz"}}}`))
	})
	mux.HandleFunc("/download/", func(w http.ResponseWriter, r *http.Request) {
		downloads.Add(1)
		w.Write([]byte("binary"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	t.Setenv(dirs.EnvDataDir, t.TempDir())
	d, err := dirs.New()
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Channel:        config.ChannelStable,
		CLIAPIURL:      server.URL + "/cli/",
		CLIDownloadURL: server.URL + "/download/",
	}
	info := &platform.Info{OS: "linux", Arch: "x86_64"}

	updater := NewUpdater(cfg, d, info, zap.NewNop())
	if err := updater.Run(context.Background(), "v0.4.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if downloads.Load() != 0 {
		t.Errorf("up-to-date self-update made %d downloads, want 0", downloads.Load())
	}
}
