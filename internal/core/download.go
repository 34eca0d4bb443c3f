package core

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// DefaultUserAgent is the User-Agent header sent with download requests.
const DefaultUserAgent = "maaget/1.0"

// Downloader fetches release assets into the cache directory, trying the
// primary URL first and falling back to mirrors in manifest order.
//
// A cached file is considered valid solely by byte-length equality with the
// asset's declared size. Failed transfers leave partial bytes at the final
// path on purpose: the next invocation's size check rejects them and
// re-downloads.
type Downloader struct {
	client    *http.Client
	userAgent string
	log       *zap.Logger
}

// NewDownloader creates a downloader whose connection attempts are bounded
// by connectTimeout. There is no overall transfer deadline.
func NewDownloader(connectTimeout time.Duration, log *zap.Logger) *Downloader {
	return &Downloader{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		log:       log,
	}
}

// Download materializes the asset's archive at cacheDir/<asset name> and
// returns that path. A pre-existing file of the declared size is reused
// without any network activity.
func (d *Downloader) Download(ctx context.Context, asset *Asset, cacheDir string) (string, error) {
	path := filepath.Join(cacheDir, asset.Name)

	// Size match is the only validity check; a stat error is a cache miss.
	if info, err := os.Stat(path); err == nil && info.Size() == int64(asset.Size) {
		d.log.Info("using cached archive", zap.String("asset", asset.Name), zap.String("path", path))
		return path, nil
	}

	sources := make([]string, 0, len(asset.Mirrors)+1)
	sources = append(sources, asset.BrowserDownloadURL)
	sources = append(sources, asset.Mirrors...)

	var lastErr error
	for _, url := range sources {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if err := d.downloadOnce(ctx, url, path); err != nil {
			d.log.Warn("download source failed",
				zap.String("asset", asset.Name),
				zap.String("url", url),
				zap.Error(err))
			lastErr = err
			continue
		}

		d.log.Info("downloaded archive", zap.String("asset", asset.Name), zap.String("url", url))
		return path, nil
	}

	return "", fmt.Errorf("%w: asset %s (%d sources tried): %v",
		ErrDownloadExhausted, asset.Name, len(sources), lastErr)
}

// downloadOnce performs a single fetch attempt, writing through to destPath
// as data arrives.
func (d *Downloader) downloadOnce(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("copy response body: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	return nil
}
