package core

import "errors"

// Sentinel errors for the install pipeline. Callers match with errors.Is;
// wrapped messages carry the asset name, channel or URLs needed to retry
// manually.
var (
	// ErrAlreadyInstalled is returned by Install when the library file is
	// already present and force was not requested.
	ErrAlreadyInstalled = errors.New("MaaCore already installed")

	// ErrPlatformUnsupported is returned when no asset naming rule exists
	// for the host OS/architecture combination.
	ErrPlatformUnsupported = errors.New("unsupported platform")

	// ErrAssetNotFound is returned when the manifest has no asset with the
	// expected name for this platform.
	ErrAssetNotFound = errors.New("asset not found in version manifest")

	// ErrDownloadExhausted is returned when the primary URL and every
	// mirror failed.
	ErrDownloadExhausted = errors.New("all download sources failed")

	// ErrUnsupportedArchive is returned when a downloaded file has neither
	// a zip nor a tar.gz extension.
	ErrUnsupportedArchive = errors.New("unsupported archive format")
)
