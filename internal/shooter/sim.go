package shooter

import (
	"github.com/vovakirdan/star-shooter/internal/config"
)

// Stats are running totals for one session.
type Stats struct {
	EnemiesDestroyed int
	HitsTaken        int // Enemy lasers that reached the player
	LivesLost        int
	ShotsFired       int // Player lasers
	Elapsed          float64
}

// Simulation owns every live object of a session and advances them one
// tick at a time. It is the only writer of its collections.
type Simulation struct {
	cfg config.ShooterConfig
	rng Rand

	background   Background
	player       *Player
	enemies      []*Enemy
	playerLasers []Laser
	enemyLasers  []Laser
	explosions   []*Explosion

	spawnTimer float64
	score      int
	stats      Stats
}

// NewSimulation creates a session with the player centred in its half of
// the world and no enemies yet.
func NewSimulation(cfg config.ShooterConfig, rng Rand) *Simulation {
	return &Simulation{
		cfg:          cfg,
		rng:          rng,
		player:       NewPlayer(cfg.Player, WorldWidth/2, WorldHeight/4),
		enemies:      make([]*Enemy, 0, 8),
		playerLasers: make([]Laser, 0, 32),
		enemyLasers:  make([]Laser, 0, 32),
		explosions:   make([]*Explosion, 0, 4),
	}
}

// Tick advances the session by dt seconds. The step order is fixed:
// movement, timers, spawning, firing, laser travel, collisions, explosions.
func (s *Simulation) Tick(dt float64, in Intent) Snapshot {
	s.stats.Elapsed += dt
	s.background.Advance(dt)

	s.player.applyIntent(in, dt)
	for _, e := range s.enemies {
		e.move(dt)
	}

	s.player.Advance(dt)
	for _, e := range s.enemies {
		e.Advance(dt)
	}

	s.spawnEnemies(dt)
	s.fireVolleys()
	s.moveLasers(dt)

	s.resolvePlayerLaserHits()
	s.resolveEnemyLaserHits()

	s.advanceExplosions(dt)

	return s.Snapshot()
}

// spawnEnemies adds at most one enemy per tick once the spawn timer passes
// the interval. The interval is subtracted so overshoot carries over.
func (s *Simulation) spawnEnemies(dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer <= EnemySpawnInterval {
		return
	}

	x := s.rng.Float64()*(WorldWidth-2*enemySpawnMargin) + enemySpawnMargin
	s.enemies = append(s.enemies, NewEnemy(s.cfg.Enemy, x, enemySpawnY, s.rng))
	s.spawnTimer -= EnemySpawnInterval
}

// fireVolleys lets every ship whose gun is ready fire, player first.
func (s *Simulation) fireVolleys() {
	if s.player.CanFire() {
		volley := s.player.Fire()
		s.playerLasers = append(s.playerLasers, volley[:]...)
		s.stats.ShotsFired += len(volley)
	}

	for _, e := range s.enemies {
		if e.CanFire() {
			volley := e.Fire()
			s.enemyLasers = append(s.enemyLasers, volley[:]...)
		}
	}
}

// moveLasers advances every laser and drops the ones that left the world.
func (s *Simulation) moveLasers(dt float64) {
	s.playerLasers = advanceLasers(s.playerLasers, dt, 1)
	s.enemyLasers = advanceLasers(s.enemyLasers, dt, -1)
}

func advanceLasers(lasers []Laser, dt, dir float64) []Laser {
	kept := lasers[:0]
	for _, l := range lasers {
		l.Box.Y += dir * l.Speed * dt
		if l.offWorld() {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// resolvePlayerLaserHits checks each player laser against the enemies in
// order. The first enemy hit absorbs it and the laser is spent whether or
// not the enemy survives.
func (s *Simulation) resolvePlayerLaserHits() {
	kept := s.playerLasers[:0]
	for _, l := range s.playerLasers {
		target := s.firstEnemyHit(l)
		if target == nil {
			kept = append(kept, l)
			continue
		}

		if target.AbsorbHit() {
			target.destroyed = true
			s.explosions = append(s.explosions, NewExplosion(target.Box, s.cfg.Explosions.EnemyDuration))
			s.score += ScoreIncrement
			s.stats.EnemiesDestroyed++
		}
	}
	s.playerLasers = kept
	s.removeDestroyedEnemies()
}

func (s *Simulation) firstEnemyHit(l Laser) *Enemy {
	for _, e := range s.enemies {
		if !e.destroyed && e.Intersects(l.Box) {
			return e
		}
	}
	return nil
}

func (s *Simulation) removeDestroyedEnemies() {
	alive := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.destroyed {
			alive = append(alive, e)
		}
	}
	clear(s.enemies[len(alive):])
	s.enemies = alive
}

// resolveEnemyLaserHits spends every enemy laser touching the player. When
// the player has no shield left it loses a life and the shield is refilled.
// Lives are not floored; a negative count means the run is over.
func (s *Simulation) resolveEnemyLaserHits() {
	kept := s.enemyLasers[:0]
	for _, l := range s.enemyLasers {
		if !s.player.Intersects(l.Box) {
			kept = append(kept, l)
			continue
		}

		s.stats.HitsTaken++
		if s.player.AbsorbHit() {
			s.explosions = append(s.explosions, NewExplosion(s.player.Box, s.cfg.Explosions.PlayerDuration))
			s.player.Shield = ShieldRefill
			s.player.Lives--
			s.stats.LivesLost++
		}
	}
	s.enemyLasers = kept
}

func (s *Simulation) advanceExplosions(dt float64) {
	live := s.explosions[:0]
	for _, e := range s.explosions {
		e.Advance(dt)
		if !e.Expired() {
			live = append(live, e)
		}
	}
	clear(s.explosions[len(live):])
	s.explosions = live
}

// Score returns the running score.
func (s *Simulation) Score() int {
	return s.score
}

// Lives returns the player's remaining lives.
func (s *Simulation) Lives() int {
	return s.player.Lives
}

// Stats returns the running totals.
func (s *Simulation) Stats() Stats {
	return s.stats
}
