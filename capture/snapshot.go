package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/icholy/digest"
	log "github.com/sirupsen/logrus"
)

// SnapshotConfig describes an IP camera that serves still JPEGs over HTTP,
// such as the image.cgi endpoint of Axis cameras.
type SnapshotConfig struct {
	URL      string
	Username string
	Password string
	// Resolution is sent as the "resolution" query parameter, e.g. "2048x1536".
	// Empty requests the camera's default, uncropped frame.
	Resolution string
	Timeout    time.Duration
	// MinInterval throttles requests; reads within it return the previous frame.
	MinInterval time.Duration
}

const defaultSnapshotTimeout = 10 * time.Second

// Snapshot fetches one image per Read from an HTTP camera.
type Snapshot struct {
	cfg    SnapshotConfig
	url    string
	client *http.Client
	last   image.Image
	lastAt time.Time
	now    func() time.Time
}

// OpenSnapshot prepares the client and fetches a first frame to prove the camera answers.
func OpenSnapshot(cfg SnapshotConfig) (*Snapshot, error) {
	target, err := snapshotURL(cfg)
	if err != nil {
		return nil, &DeviceError{Device: cfg.URL, Err: err}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSnapshotTimeout
	}
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.Username != "" {
		client.Transport = &digest.Transport{Username: cfg.Username, Password: cfg.Password}
	}
	s := &Snapshot{cfg: cfg, url: target, client: client, now: time.Now}
	if _, err := s.fetch(); err != nil {
		return nil, &DeviceError{Device: cfg.URL, Err: err}
	}
	return s, nil
}

func snapshotURL(cfg SnapshotConfig) (string, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if cfg.Resolution != "" {
		q := u.Query()
		q.Set("resolution", cfg.Resolution)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (s *Snapshot) Read() (image.Image, error) {
	if s.last != nil && s.cfg.MinInterval > 0 && s.now().Sub(s.lastAt) < s.cfg.MinInterval {
		return s.last, nil
	}
	img, err := s.fetch()
	if err != nil {
		return nil, &FrameReadError{Err: err}
	}
	return img, nil
}

func (s *Snapshot) fetch() (image.Image, error) {
	log.WithField("url", s.url).Debug("fetching snapshot")
	resp, err := s.client.Get(s.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("camera answered %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from camera response: %w", err)
	}
	s.last, s.lastAt = img, s.now()
	return img, nil
}

func (s *Snapshot) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// SaveImage writes img to path as PNG, creating parent directories and
// overwriting an existing file.
func SaveImage(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
