// Package run queries the installed MaaCore by spawning the maa-run helper
// with the library directory on the loader path.
package run

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionPrefix is the fixed prefix of maa-run's version output. Its byte
// length is what gets stripped; the content is not re-parsed.
const versionPrefix = "MaaCore v"

// VersionQuerier reports the version of the currently installed MaaCore.
type VersionQuerier interface {
	InstalledVersion(ctx context.Context) (*semver.Version, error)
}

// CoreRunner queries MaaCore through the maa-run executable.
type CoreRunner struct {
	command string
	libDir  string
}

// NewCoreRunner creates a querier spawning "maa-run" with libDir on the
// dynamic loader path.
func NewCoreRunner(libDir string) *CoreRunner {
	return &CoreRunner{command: "maa-run", libDir: libDir}
}

// InstalledVersion runs `maa-run version` and parses its self-reported
// version string.
func (r *CoreRunner) InstalledVersion(ctx context.Context) (*semver.Version, error) {
	cmd := exec.CommandContext(ctx, r.command, "version")
	cmd.Env = withLibraryPath(os.Environ(), r.libDir)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run %s version: %w", r.command, err)
	}

	return ParseVersionOutput(out)
}

// ParseVersionOutput parses stdout of `maa-run version`, expected to be
// "MaaCore v<semver>\n". The fixed 9-byte prefix and the trailing newline
// are stripped.
func ParseVersionOutput(out []byte) (*semver.Version, error) {
	if len(out) <= len(versionPrefix) {
		return nil, fmt.Errorf("parse version output %q: too short", out)
	}

	raw := strings.TrimSuffix(string(out[len(versionPrefix):]), "\n")
	version, err := semver.StrictNewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parse version output %q: %w", out, err)
	}
	return version, nil
}

// withLibraryPath prepends libDir to the dynamic loader search path of the
// target OS.
func withLibraryPath(env []string, libDir string) []string {
	var key string
	switch runtime.GOOS {
	case "darwin":
		key = "DYLD_FALLBACK_LIBRARY_PATH"
	case "windows":
		key = "PATH"
	default:
		key = "LD_LIBRARY_PATH"
	}

	prefix := key + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + libDir + string(os.PathListSeparator) + kv[len(prefix):]
			return env
		}
	}
	return append(env, prefix+libDir)
}
