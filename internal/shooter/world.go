// Package shooter implements a vertically scrolling space shooter.
// The player holds the lower half of the arena and trades laser fire with
// enemies that spawn at the top and drift around the upper half.
package shooter

import (
	"github.com/vovakirdan/star-shooter/internal/core"
)

// World constants. These are fixed for every session.
const (
	WorldWidth  = 72.0
	WorldHeight = 128.0

	EnemySpawnInterval      = 3.0  // Seconds between enemy spawns
	DirectionChangeInterval = 0.75 // Seconds between enemy heading re-rolls
	TouchMovementThreshold  = 0.5  // Pointer dead zone around the ship centre

	ShieldRefill     = 6   // Player shield after losing a life
	ScoreIncrement   = 100 // Points per destroyed enemy
	PlayerStartLives = 3

	enemySpawnMargin = 5.0               // Enemy centre x stays this far from the side walls
	enemySpawnY      = WorldHeight - 5.0 // Enemy centre y at spawn
)

// verticalScale compensates for the tall world so that vertical movement
// feels as fast as horizontal movement.
const verticalScale = WorldHeight / WorldWidth

// Bounds is the region a ship's bounding box must stay inside.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

var (
	// playerBounds is the lower half of the world.
	playerBounds = Bounds{MinX: 0, MaxX: WorldWidth, MinY: 0, MaxY: WorldHeight / 2}

	// enemyBounds is the upper half of the world.
	enemyBounds = Bounds{MinX: 0, MaxX: WorldWidth, MinY: WorldHeight / 2, MaxY: WorldHeight}
)

// clampMove limits a movement delta so that box stays inside b.
// Each axis is clamped against the distance left to the bound it moves toward.
func clampMove(box core.RectF, dx, dy float64, b Bounds) (float64, float64) {
	left := b.MinX - box.X
	right := b.MaxX - box.Right()
	down := b.MinY - box.Y
	up := b.MaxY - box.Top()

	if dx > 0 {
		dx = min(dx, max(right, 0))
	} else {
		dx = max(dx, min(left, 0))
	}

	if dy > 0 {
		dy = min(dy, max(up, 0))
	} else {
		dy = max(dy, min(down, 0))
	}

	return dx, dy
}
