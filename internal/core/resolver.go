package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/ZebulonRouseFrantzich/maaget/internal/platform"
)

// target is one supported (OS, architecture) combination.
type target struct {
	os   string
	arch string
}

// assetNameTemplates maps each supported target to its release asset name
// template. macOS ships a universal archive, so both architectures share
// one name.
var assetNameTemplates = map[target]string{
	{"darwin", "x86_64"}:   "MAA-v%s-macos-runtime-universal.zip",
	{"darwin", "aarch64"}:  "MAA-v%s-macos-runtime-universal.zip",
	{"linux", "x86_64"}:    "MAA-v%s-linux-x86_64.tar.gz",
	{"linux", "aarch64"}:   "MAA-v%s-linux-aarch64.tar.gz",
	{"windows", "x86_64"}:  "MAA-v%s-win-x64.zip",
	{"windows", "aarch64"}: "MAA-v%s-win-arm64.zip",
}

// ExpectedAssetName returns the release asset file name for the given
// platform and version. Returns ErrPlatformUnsupported when no naming rule
// exists for the platform.
func ExpectedAssetName(info *platform.Info, version *semver.Version) (string, error) {
	template, ok := assetNameTemplates[target{os: info.OS, arch: info.Arch}]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrPlatformUnsupported, info.OS, info.ArchRaw)
	}
	return fmt.Sprintf(template, version), nil
}

// ResolveAsset picks the manifest asset matching the given platform.
// The first asset with the expected name wins.
func (m *VersionManifest) ResolveAsset(info *platform.Info) (*Asset, error) {
	version, err := m.SemVer()
	if err != nil {
		return nil, err
	}

	name, err := ExpectedAssetName(info, version)
	if err != nil {
		return nil, err
	}

	for i := range m.Details.Assets {
		if m.Details.Assets[i].Name == name {
			return &m.Details.Assets[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
}
