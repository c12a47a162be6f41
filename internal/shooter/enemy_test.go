package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-shooter/internal/config"
)

func TestEnemyStartsHeadingDown(t *testing.T) {
	e := NewEnemy(config.DefaultShooterConfig().Enemy, 36, 100, &seqRand{vals: []float64{0.3}})
	if e.HeadingX != 0 || e.HeadingY != -1 {
		t.Errorf("heading = (%v, %v), want (0, -1)", e.HeadingX, e.HeadingY)
	}
}

func TestEnemyHeadingIsUnitVector(t *testing.T) {
	rng := &seqRand{vals: []float64{0, 0.13, 0.25, 0.5, 0.77, 0.999}}
	e := NewEnemy(config.DefaultShooterConfig().Enemy, 36, 100, rng)

	for i := 0; i < 12; i++ {
		e.Advance(0.8)
		if got := math.Hypot(e.HeadingX, e.HeadingY); math.Abs(got-1) > eps {
			t.Fatalf("turn %d: |heading| = %v, want 1", i, got)
		}
	}
}

func TestEnemyTurnTimerKeepsOverflow(t *testing.T) {
	rng := &seqRand{vals: []float64{0.25, 0.5}}
	e := NewEnemy(config.DefaultShooterConfig().Enemy, 36, 100, rng)

	e.Advance(0.5)
	if e.HeadingX != 0 || e.HeadingY != -1 {
		t.Fatal("heading changed before the interval elapsed")
	}

	e.Advance(0.3)
	if !approx(e.sinceTurn, 0.05) {
		t.Errorf("sinceTurn = %v, want 0.05", e.sinceTurn)
	}
	// Bearing of a quarter turn points right.
	if !approx(e.HeadingX, 1) || !approx(e.HeadingY, 0) {
		t.Errorf("heading = (%v, %v), want (1, 0)", e.HeadingX, e.HeadingY)
	}

	// Exactly the interval is not enough to turn again.
	e.sinceTurn = 0
	e.Advance(DirectionChangeInterval)
	if !approx(e.HeadingX, 1) {
		t.Error("heading changed at exactly the interval")
	}
}

func TestEnemyStaysInUpperHalf(t *testing.T) {
	e := NewEnemy(config.DefaultShooterConfig().Enemy, 36, WorldHeight/2+6, &seqRand{vals: []float64{0}})

	for i := 0; i < 100; i++ {
		e.move(0.1)
	}

	if e.Box.Y < enemyBounds.MinY-eps {
		t.Errorf("enemy bottom %v below the upper half", e.Box.Y)
	}
	if !approx(e.Box.Y, enemyBounds.MinY) {
		t.Errorf("enemy should rest on the midline, bottom = %v", e.Box.Y)
	}
}
