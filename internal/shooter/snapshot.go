package shooter

import "github.com/vovakirdan/star-shooter/internal/core"

// ShipView is the drawable state of one ship.
type ShipView struct {
	Box          core.RectF
	Shield       int
	ShieldActive bool
}

// ExplosionView is the drawable state of one explosion.
type ExplosionView struct {
	Box      core.RectF
	Progress float64 // 0 at the blast, 1 when it fades out
}

// Snapshot is a read-only copy of everything the renderer and HUD need
// after a tick. Mutating it does not affect the simulation.
type Snapshot struct {
	Background [backgroundLayers]float64

	Player       ShipView
	Enemies      []ShipView
	PlayerLasers []core.RectF
	EnemyLasers  []core.RectF
	Explosions   []ExplosionView

	Score  int
	Lives  int
	Shield int
	Stats  Stats
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Background:   s.background.Offsets,
		Player:       viewOf(&s.player.Ship),
		Enemies:      make([]ShipView, len(s.enemies)),
		PlayerLasers: laserBoxes(s.playerLasers),
		EnemyLasers:  laserBoxes(s.enemyLasers),
		Explosions:   make([]ExplosionView, len(s.explosions)),
		Score:        s.score,
		Lives:        s.player.Lives,
		Shield:       s.player.Shield,
		Stats:        s.stats,
	}

	for i, e := range s.enemies {
		snap.Enemies[i] = viewOf(&e.Ship)
	}
	for i, e := range s.explosions {
		snap.Explosions[i] = ExplosionView{Box: e.Box, Progress: e.Progress()}
	}

	return snap
}

func viewOf(ship *Ship) ShipView {
	return ShipView{
		Box:          ship.Box,
		Shield:       ship.Shield,
		ShieldActive: ship.ShieldActive(),
	}
}

func laserBoxes(lasers []Laser) []core.RectF {
	boxes := make([]core.RectF, len(lasers))
	for i, l := range lasers {
		boxes[i] = l.Box
	}
	return boxes
}
