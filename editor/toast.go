package editor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toastHold = 1.2 // seconds at full opacity
	toastFade = 0.8
)

// Toast is a short confirmation message that stays visible for a moment and then fades out.
type Toast struct {
	Message string
	hold    float32
	fade    *gween.Tween
	alpha   float32
}

// Show replaces the current message and restarts the fade.
func (t *Toast) Show(message string) {
	t.Message = message
	t.hold = toastHold
	t.fade = gween.New(1, 0, toastFade, ease.InQuad)
	t.alpha = 1
}

// Update advances the toast by dt seconds and returns its opacity.
func (t *Toast) Update(dt float32) float32 {
	if t.fade == nil {
		return 0
	}
	if t.hold > 0 {
		t.hold -= dt
		if t.hold >= 0 {
			return t.alpha
		}
		dt = -t.hold
	}
	current, finished := t.fade.Update(dt)
	t.alpha = current
	if finished {
		t.fade = nil
		t.Message = ""
		t.alpha = 0
	}
	return t.alpha
}

// Visible reports whether a message is currently shown.
func (t *Toast) Visible() bool {
	return t.fade != nil
}

func (t *Toast) Alpha() float32 {
	return t.alpha
}
