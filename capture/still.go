package capture

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Still serves one decoded image as every frame. It stands in for a camera when
// authoring a grid against a saved snapshot of the arena.
type Still struct {
	path   string
	frame  image.Image
	closed bool
}

// OpenStill decodes the image at path once.
func OpenStill(path string) (*Still, error) {
	frame, err := DecodeFile(path)
	if err != nil {
		return nil, &DeviceError{Device: path, Err: err}
	}
	return &Still{path: path, frame: frame}, nil
}

// DecodeFile decodes a PNG, JPEG, BMP or TIFF file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func (s *Still) Read() (image.Image, error) {
	if s.closed {
		return nil, &FrameReadError{Err: errors.New(s.path + " is closed")}
	}
	return s.frame, nil
}

func (s *Still) Close() error {
	s.closed = true
	return nil
}
