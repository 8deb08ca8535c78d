package main

import (
	"fmt"
	"time"

	"github.com/zucenko/arena/capture"
	"github.com/zucenko/arena/capture/webcam"
)

type sourceOptions struct {
	kind       string
	device     int
	url        string
	user       string
	password   string
	resolution string
	image      string
	interval   time.Duration
}

func (o sourceOptions) snapshot() capture.SnapshotConfig {
	return capture.SnapshotConfig{
		URL:         o.url,
		Username:    o.user,
		Password:    o.password,
		Resolution:  o.resolution,
		MinInterval: o.interval,
	}
}

func openSource(o sourceOptions) (capture.Source, error) {
	switch o.kind {
	case "webcam":
		return webcam.Open(o.device)
	case "snapshot":
		if o.url == "" {
			return nil, &capture.DeviceError{Device: "snapshot", Err: fmt.Errorf("no camera URL, set --url or CAMERA_URL")}
		}
		return capture.OpenSnapshot(o.snapshot())
	case "still":
		return capture.OpenStill(o.image)
	}
	return nil, fmt.Errorf("unknown source %q, expected webcam, snapshot or still", o.kind)
}

// windowSize picks the window size: the flags when set, otherwise the size of a
// first frame from src.
func windowSize(src capture.Source, width, height int) (int, int, error) {
	if width > 0 && height > 0 {
		return width, height, nil
	}
	frame, err := src.Read()
	if err != nil {
		return 0, 0, err
	}
	b := frame.Bounds()
	return b.Dx(), b.Dy(), nil
}
