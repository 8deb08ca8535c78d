// Package webcam reads frames from a local camera through OpenCV.
package webcam

import (
	"errors"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/zucenko/arena/capture"
)

// Webcam is a capture.Source backed by an OpenCV VideoCapture.
type Webcam struct {
	id    int
	video *gocv.VideoCapture
	mat   gocv.Mat
}

// Open acquires the camera with the given index (0 is the default camera).
func Open(id int) (*Webcam, error) {
	device := fmt.Sprintf("webcam %d", id)
	video, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, &capture.DeviceError{Device: device, Err: err}
	}
	if !video.IsOpened() {
		video.Close()
		return nil, &capture.DeviceError{Device: device, Err: errors.New("check that a camera is connected")}
	}
	log.WithField("device", id).Info("webcam opened")
	return &Webcam{id: id, video: video, mat: gocv.NewMat()}, nil
}

func (w *Webcam) Read() (image.Image, error) {
	if ok := w.video.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, &capture.FrameReadError{Err: fmt.Errorf("webcam %d produced no frame", w.id)}
	}
	img, err := w.mat.ToImage()
	if err != nil {
		return nil, &capture.FrameReadError{Err: err}
	}
	return img, nil
}

func (w *Webcam) Close() error {
	log.WithField("device", w.id).Info("releasing webcam")
	matErr := w.mat.Close()
	return errors.Join(w.video.Close(), matErr)
}
