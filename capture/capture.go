// Package capture provides the frame sources the editor draws its overlay on.
package capture

import (
	"fmt"
	"image"
)

// Source produces the frames of a live or recorded feed. Read blocks until a frame
// is available or the source fails; Close releases the underlying device.
type Source interface {
	Read() (image.Image, error)
	Close() error
}

// DeviceError means a source could not be opened. The editor cannot start without one.
type DeviceError struct {
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("could not access capture device %s: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// FrameReadError means a frame could not be read from an open source.
// The editor treats it as the end of the stream.
type FrameReadError struct {
	Err error
}

func (e *FrameReadError) Error() string {
	return fmt.Sprintf("failed to read frame: %v", e.Err)
}

func (e *FrameReadError) Unwrap() error {
	return e.Err
}
