package shooter

import (
	"math"

	"github.com/vovakirdan/star-shooter/internal/config"
)

// Player is the ship controlled by input. It is never removed from play;
// only its lives counter goes down.
type Player struct {
	Ship
	Lives int
}

// NewPlayer creates the player ship centred on (cx, cy).
func NewPlayer(cfg config.ShipConfig, cx, cy float64) *Player {
	return &Player{
		Ship:  newShip(cfg, cx, cy),
		Lives: PlayerStartLives,
	}
}

// Fire returns two lasers from the wing guns at 18% and 82% of the hull width.
func (p *Player) Fire() [2]Laser {
	y := p.Box.Y + p.Box.H*0.45
	lasers := [2]Laser{
		p.laserAt(p.Box.X+p.Box.W*0.18, y, FactionPlayer),
		p.laserAt(p.Box.X+p.Box.W*0.82, y, FactionPlayer),
	}
	p.timeSinceLastShot = 0
	return lasers
}

// Intent is the normalized player input for one tick.
type Intent struct {
	Up, Down, Left, Right bool

	// Target is a pointer position in world units, if HasTarget is set.
	// The ship steers toward it at full speed.
	TargetX, TargetY float64
	HasTarget        bool
}

// applyIntent moves the player for one tick, keeping it inside the lower half.
func (p *Player) applyIntent(in Intent, dt float64) {
	step := p.Speed * dt
	vstep := step * verticalScale

	// Every move re-reads the remaining room, so combined inputs can never
	// push the ship past an edge.
	move := func(dx, dy float64) {
		dx, dy = clampMove(p.Box, dx, dy, playerBounds)
		p.Translate(dx, dy)
	}

	if in.Right {
		move(step, 0)
	}
	if in.Up {
		move(0, vstep)
	}
	if in.Left {
		move(-step, 0)
	}
	if in.Down {
		move(0, -vstep)
	}

	if !in.HasTarget {
		return
	}

	cx, cy := p.Box.Center()
	diffX := in.TargetX - cx
	diffY := in.TargetY - cy
	dist := math.Hypot(diffX, diffY)
	if dist <= TouchMovementThreshold {
		return
	}
	move(diffX/dist*step, diffY/dist*vstep)
}
