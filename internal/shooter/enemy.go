package shooter

import (
	"math"

	"github.com/vovakirdan/star-shooter/internal/config"
)

// Enemy drifts around the upper half of the arena on a heading that is
// re-rolled every DirectionChangeInterval seconds.
type Enemy struct {
	Ship

	// HeadingX, HeadingY is a unit vector.
	HeadingX, HeadingY float64

	sinceTurn float64
	rng       Rand
	destroyed bool
}

// NewEnemy creates an enemy centred on (cx, cy) heading straight down.
func NewEnemy(cfg config.ShipConfig, cx, cy float64, rng Rand) *Enemy {
	return &Enemy{
		Ship:     newShip(cfg, cx, cy),
		HeadingX: 0,
		HeadingY: -1,
		rng:      rng,
	}
}

// Advance accumulates the gun cooldown and the turn timer. Once the timer
// passes the interval a new heading is drawn and the interval is subtracted,
// keeping any overshoot.
func (e *Enemy) Advance(dt float64) {
	e.Ship.Advance(dt)

	e.sinceTurn += dt
	if e.sinceTurn > DirectionChangeInterval {
		e.randomizeHeading()
		e.sinceTurn -= DirectionChangeInterval
	}
}

func (e *Enemy) randomizeHeading() {
	bearing := e.rng.Float64() * 2 * math.Pi
	e.HeadingX = math.Sin(bearing)
	e.HeadingY = math.Cos(bearing)
}

// Fire returns two lasers at 30% and 70% of the hull width, starting just
// below the hull.
func (e *Enemy) Fire() [2]Laser {
	y := e.Box.Y - e.LaserHeight
	lasers := [2]Laser{
		e.laserAt(e.Box.X+e.Box.W*0.30, y, FactionEnemy),
		e.laserAt(e.Box.X+e.Box.W*0.70, y, FactionEnemy),
	}
	e.timeSinceLastShot = 0
	return lasers
}

// move steers the enemy along its heading, keeping it inside the upper half.
func (e *Enemy) move(dt float64) {
	dx := e.HeadingX * e.Speed * dt
	dy := e.HeadingY * e.Speed * dt * verticalScale
	dx, dy = clampMove(e.Box, dx, dy, enemyBounds)
	e.Translate(dx, dy)
}
