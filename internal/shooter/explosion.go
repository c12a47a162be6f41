package shooter

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/star-shooter/internal/core"
)

// Explosion is a short-lived marker left where a ship was destroyed or
// the player lost a life. It does not interact with anything.
type Explosion struct {
	Box core.RectF // Snapshot of the hull at the moment of the blast

	elapsed  float64
	duration float64

	// bloom eases the visual progress; expiry follows elapsed time only.
	bloom    *gween.Tween
	progress float32
}

// NewExplosion creates an explosion over box lasting duration seconds.
func NewExplosion(box core.RectF, duration float64) *Explosion {
	return &Explosion{
		Box:      box,
		duration: duration,
		bloom:    gween.New(0, 1, float32(duration), ease.OutQuad),
	}
}

// Advance accumulates elapsed time.
func (e *Explosion) Advance(dt float64) {
	e.elapsed += dt
	e.progress, _ = e.bloom.Update(float32(dt))
}

// Expired reports whether the explosion has run its full duration.
func (e *Explosion) Expired() bool {
	return e.elapsed >= e.duration
}

// Progress returns the eased animation position in [0, 1].
func (e *Explosion) Progress() float64 {
	return core.ClampF(float64(e.progress), 0, 1)
}

// Duration returns the total lifetime in seconds.
func (e *Explosion) Duration() float64 {
	return e.duration
}
