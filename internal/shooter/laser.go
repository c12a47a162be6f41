package shooter

import "github.com/vovakirdan/star-shooter/internal/core"

// Laser is a projectile. Its size and speed are fixed at creation; the
// simulation moves it in its faction's direction every tick.
type Laser struct {
	Box     core.RectF
	Speed   float64
	Faction Faction
}

// offWorld reports whether the laser has fully left the world in its
// direction of travel.
func (l Laser) offWorld() bool {
	if l.Faction == FactionPlayer {
		return l.Box.Y > WorldHeight
	}
	return l.Box.Top() < 0
}
