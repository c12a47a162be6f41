package shooter

import (
	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/core"
)

// Faction decides which way a laser travels and whom it can hit.
type Faction int

const (
	FactionPlayer Faction = iota // Lasers travel up and hit enemies
	FactionEnemy                 // Lasers travel down and hit the player
)

// Ship is the state shared by every combatant: hull, shield and gun.
// The box size never changes after construction and only the simulation
// moves it, through Translate.
type Ship struct {
	Box    core.RectF
	Speed  float64 // World units per second
	Shield int

	LaserWidth       float64
	LaserHeight      float64
	LaserSpeed       float64
	TimeBetweenShots float64

	timeSinceLastShot float64
}

// newShip builds a ship centred on (cx, cy).
func newShip(cfg config.ShipConfig, cx, cy float64) Ship {
	return Ship{
		Box:              core.CenteredRectF(cx, cy, cfg.Width, cfg.Height),
		Speed:            cfg.MovementSpeed,
		Shield:           cfg.Shield,
		LaserWidth:       cfg.LaserWidth,
		LaserHeight:      cfg.LaserHeight,
		LaserSpeed:       cfg.LaserSpeed,
		TimeBetweenShots: cfg.TimeBetweenShots,
	}
}

// Hull returns the shared ship state.
func (s *Ship) Hull() *Ship {
	return s
}

// Advance accumulates the firing cooldown.
func (s *Ship) Advance(dt float64) {
	s.timeSinceLastShot += dt
}

// CanFire reports whether the cooldown has elapsed.
func (s *Ship) CanFire() bool {
	return s.timeSinceLastShot >= s.TimeBetweenShots
}

// AbsorbHit takes one hit. A shielded ship loses one shield point and
// survives; an unshielded ship is destroyed.
func (s *Ship) AbsorbHit() (destroyed bool) {
	if s.Shield > 0 {
		s.Shield--
		return false
	}
	return true
}

// Translate moves the ship unconditionally.
func (s *Ship) Translate(dx, dy float64) {
	s.Box = s.Box.Translate(dx, dy)
}

// Intersects reports whether the hull overlaps r.
func (s *Ship) Intersects(r core.RectF) bool {
	return s.Box.Intersects(r)
}

// ShieldActive reports whether the shield overlay should be drawn.
func (s *Ship) ShieldActive() bool {
	return s.Shield > 0
}

// laserAt builds a laser from this ship's gun with the given centre x and bottom y.
func (s *Ship) laserAt(centerX, bottomY float64, f Faction) Laser {
	return Laser{
		Box:     core.NewRectF(centerX-s.LaserWidth/2, bottomY, s.LaserWidth, s.LaserHeight),
		Speed:   s.LaserSpeed,
		Faction: f,
	}
}

// Combatant is a ship that moves and fires. Player and Enemy share the
// Ship state and differ in gun placement and movement policy.
type Combatant interface {
	Hull() *Ship
	Advance(dt float64)
	CanFire() bool
	// Fire returns the two lasers of a volley and resets the cooldown.
	// Callers check CanFire first.
	Fire() [2]Laser
	AbsorbHit() (destroyed bool)
	Translate(dx, dy float64)
	Intersects(r core.RectF) bool
}

var (
	_ Combatant = (*Player)(nil)
	_ Combatant = (*Enemy)(nil)
)
