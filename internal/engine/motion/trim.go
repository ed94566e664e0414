package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/nightreef/pkg/math"
)

// Trim is an eased vertical nudge applied to a model at draw time.
// Nudges retarget the tween from the current value, so repeated key
// presses accumulate smoothly.
type Trim struct {
	Value    float32
	Target   float32
	Step     float32
	Min, Max float32
	Duration float32 // seconds

	tween *gween.Tween
}

// NewTrim returns a trim clamped to [min, max].
func NewTrim(step, min, max, duration float32) *Trim {
	return &Trim{Step: step, Min: min, Max: max, Duration: duration}
}

// DefaultTrim returns the hammerhead draw trim.
func DefaultTrim() *Trim {
	return NewTrim(0.05, -1, 1, 0.25)
}

// Nudge moves the target by dir steps (dir is usually +1 or -1).
func (t *Trim) Nudge(dir float32) {
	t.Target = math.Clamp(t.Target+dir*t.Step, t.Min, t.Max)
	if t.Duration <= 0 {
		t.Value = t.Target
		t.tween = nil
		return
	}
	t.tween = gween.New(t.Value, t.Target, t.Duration, ease.OutQuad)
}

// Update advances the tween by dt seconds and returns the current value.
func (t *Trim) Update(dt float32) float32 {
	if t.tween == nil {
		return t.Value
	}
	val, done := t.tween.Update(dt)
	t.Value = val
	if done {
		t.Value = t.Target
		t.tween = nil
	}
	return t.Value
}

// Animating reports whether a nudge is still easing in.
func (t *Trim) Animating() bool {
	return t.tween != nil
}

// Matrix returns translate(0, Value, 0).
func (t *Trim) Matrix() math.Mat4 {
	return math.Translate(0, t.Value, 0)
}
