// Package updates checks the published release manifest and downloads the
// desktop build for this platform when a newer version exists.
package updates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lcarotenuto/questionario-ampasilava/internal/config"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
)

const (
	userAgent       = "Questionario-Updater"
	downloadTimeout = 120 * time.Second
	fetchRetries    = 3
)

// Manifest is the latest.json document.
type Manifest struct {
	Version string            `json:"version"`
	Assets  map[string]string `json:"assets"`
}

// Result describes one update check.
type Result struct {
	Local     string
	Remote    string
	Available bool
	AssetURL  string
	// Path is where the asset was saved; empty when nothing was downloaded.
	Path string
}

// Client talks to the release host.
type Client struct {
	manifestURL    string
	httpClient     *http.Client
	downloadClient *http.Client
	goos           string
	newBackOff     func() backoff.BackOff
	logger         *slog.Logger
	metrics        *observability.Metrics
}

// NewClient creates an update client for the configured manifest URL.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		manifestURL:    cfg.UpdateURL,
		httpClient:     &http.Client{Timeout: cfg.UpdateTimeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
		goos:           runtime.GOOS,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			return b
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Check fetches the manifest and reports whether it advertises a version
// newer than local.
func (c *Client) Check(ctx context.Context, local string) (Result, error) {
	res, err := c.check(ctx, local)
	if err != nil {
		c.metrics.UpdateChecks.WithLabelValues("error").Inc()
		return Result{}, err
	}
	if res.Available {
		c.metrics.UpdateChecks.WithLabelValues("available").Inc()
		c.logger.Info("update available", "local", res.Local, "remote", res.Remote)
	} else {
		c.metrics.UpdateChecks.WithLabelValues("current").Inc()
		c.logger.Info("no update", "local", res.Local, "remote", res.Remote)
	}
	return res, nil
}

func (c *Client) check(ctx context.Context, local string) (Result, error) {
	m, err := c.FetchManifest(ctx)
	if err != nil {
		return Result{}, err
	}
	remote, asset, err := PickAsset(m, c.goos)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Local:     local,
		Remote:    remote,
		Available: IsNewer(remote, local),
		AssetURL:  asset,
	}, nil
}

// CheckAndDownload runs Check and, when an update is available, saves the
// asset under dir as v<version>_<file name>.
func (c *Client) CheckAndDownload(ctx context.Context, local, dir string) (Result, error) {
	res, err := c.Check(ctx, local)
	if err != nil || !res.Available {
		return res, err
	}

	dest, err := DestPath(dir, res.Remote, res.AssetURL)
	if err != nil {
		return res, err
	}
	c.logger.Info("downloading update", "url", res.AssetURL, "dest", dest)
	if err := c.Download(ctx, res.AssetURL, dest); err != nil {
		return res, err
	}
	res.Path = dest
	return res, nil
}

// FetchManifest downloads and decodes the manifest. Network errors and 5xx
// responses are retried with exponential backoff.
func (c *Client) FetchManifest(ctx context.Context) (Manifest, error) {
	var m Manifest
	op := func() error {
		var err error
		m, err = c.fetchManifest(ctx)
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("manifest fetch failed, retrying", "error", err, "wait", wait)
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), fetchRetries), ctx)
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (c *Client) fetchManifest(ctx context.Context) (Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return Manifest{}, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Manifest{}, fmt.Errorf("network error fetching latest.json: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		err := fmt.Errorf("HTTP error %d fetching latest.json: %s", resp.StatusCode, c.manifestURL)
		if resp.StatusCode >= http.StatusInternalServerError {
			return Manifest{}, err
		}
		return Manifest{}, backoff.Permanent(err)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return Manifest{}, backoff.Permanent(fmt.Errorf("decode latest.json: %w", err))
	}
	return m, nil
}

// ErrInvalidManifest means latest.json lacks a version or an asset for
// this platform.
var ErrInvalidManifest = errors.New("latest.json has no valid version/assets")

// PickAsset returns the remote version and the asset URL for goos: the
// windows build on Windows, the macos build everywhere else.
func PickAsset(m Manifest, goos string) (version, assetURL string, err error) {
	version = strings.TrimSpace(m.Version)
	key := "macos"
	if goos == "windows" {
		key = "windows"
	}
	assetURL = strings.TrimSpace(m.Assets[key])
	if version == "" || assetURL == "" {
		return "", "", ErrInvalidManifest
	}
	return version, assetURL, nil
}

// DestPath is <dir>/v<version>_<asset file name>.
func DestPath(dir, version, assetURL string) (string, error) {
	u, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("parse asset URL %s: %w", assetURL, err)
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return "", fmt.Errorf("asset URL has no file name: %s", assetURL)
	}
	name := path.Base(u.Path)
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	return filepath.Join(dir, "v"+v+"_"+name), nil
}

// Download streams assetURL into dest. The file appears only once complete.
func (c *Client) Download(ctx context.Context, assetURL, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", assetURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error %d downloading %s", resp.StatusCode, assetURL)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("download %s: %w", assetURL, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}

	c.logger.Info("download complete", "dest", dest, "bytes", n)
	return nil
}
