package capture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 9, A: 255})
		}
	}
	return img
}

func TestStill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images", "arena.png")
	require.NoError(t, SaveImage(testImage(8, 6), path))

	s, err := OpenStill(path)
	require.NoError(t, err)
	frame, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), frame.Bounds())

	require.NoError(t, s.Close())
	_, err = s.Read()
	var fre *FrameReadError
	assert.True(t, errors.As(err, &fre))
}

func TestOpenStillMissing(t *testing.T) {
	_, err := OpenStill(filepath.Join(t.TempDir(), "missing.png"))
	var de *DeviceError
	require.True(t, errors.As(err, &de))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func serveImage(t *testing.T, hits *int32, fail *atomic.Bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if fail.Load() {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "/axis-cgi/jpg/image.cgi", r.URL.Path)
		assert.Equal(t, "320x240", r.URL.Query().Get("resolution"))
		w.Header().Set("Content-Type", "image/png")
		assert.NoError(t, png.Encode(w, testImage(4, 3)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSnapshotReadsFrames(t *testing.T) {
	var hits int32
	var fail atomic.Bool
	srv := serveImage(t, &hits, &fail)

	s, err := OpenSnapshot(SnapshotConfig{URL: srv.URL + "/axis-cgi/jpg/image.cgi", Resolution: "320x240"})
	require.NoError(t, err)
	defer s.Close()

	frame, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), frame.Bounds())
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))

	fail.Store(true)
	_, err = s.Read()
	var fre *FrameReadError
	require.True(t, errors.As(err, &fre))
	assert.Contains(t, err.Error(), "503")
}

func TestSnapshotThrottles(t *testing.T) {
	var hits int32
	var fail atomic.Bool
	srv := serveImage(t, &hits, &fail)

	s, err := OpenSnapshot(SnapshotConfig{
		URL:         srv.URL + "/axis-cgi/jpg/image.cgi",
		Resolution:  "320x240",
		MinInterval: time.Second,
	})
	require.NoError(t, err)
	now := time.Now()
	s.now = func() time.Time { return now }

	_, err = s.Read()
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))

	now = now.Add(2 * time.Second)
	_, err = s.Read()
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestOpenSnapshotFailures(t *testing.T) {
	var hits int32
	var fail atomic.Bool
	fail.Store(true)
	srv := serveImage(t, &hits, &fail)

	for _, cfg := range []SnapshotConfig{
		{URL: srv.URL + "/axis-cgi/jpg/image.cgi"},
		{URL: "ftp://camera/image"},
		{URL: "http://%zz"},
	} {
		_, err := OpenSnapshot(cfg)
		var de *DeviceError
		assert.True(t, errors.As(err, &de), "%s: %v", cfg.URL, err)
	}
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	_, err := OpenSnapshot(SnapshotConfig{URL: srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
