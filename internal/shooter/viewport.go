package shooter

import (
	"math"

	"github.com/vovakirdan/star-shooter/internal/core"
)

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// viewport is the block of screen cells the world is drawn into.
// World y grows upward; screen rows grow downward.
type viewport struct {
	X, Y int // Top-left cell
	W, H int
}

// fitViewport finds the largest arena that keeps the world's aspect ratio
// and fits below the HUD, centred horizontally.
func fitViewport(screenW, screenH int) viewport {
	rows := max(screenH-hudRows, 1)
	cols := int(math.Round(float64(rows) * WorldWidth / WorldHeight * cellAspect))
	if cols > screenW {
		cols = max(screenW, 1)
		rows = max(int(math.Round(float64(cols)*WorldHeight/WorldWidth/cellAspect)), 1)
	}
	cols = max(cols, 1)

	return viewport{
		X: max((screenW-cols)/2, 0),
		Y: hudRows,
		W: cols,
		H: rows,
	}
}

func (v viewport) scaleX() float64 { return float64(v.W) / WorldWidth }
func (v viewport) scaleY() float64 { return float64(v.H) / WorldHeight }

// contains reports whether the screen cell lies inside the arena.
func (v viewport) contains(col, row int) bool {
	return col >= v.X && col < v.X+v.W && row >= v.Y && row < v.Y+v.H
}

// toCell maps a world point to the screen cell that covers it.
func (v viewport) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x * v.scaleX()))
	fromBottom := int(math.Floor(y * v.scaleY()))
	col = core.Clamp(col, 0, v.W-1)
	fromBottom = core.Clamp(fromBottom, 0, v.H-1)
	return v.X + col, v.Y + v.H - 1 - fromBottom
}

// toWorld maps the centre of a screen cell back to world units.
func (v viewport) toWorld(col, row int) (float64, float64) {
	x := (float64(col-v.X) + 0.5) / v.scaleX()
	y := (float64(v.Y+v.H-1-row) + 0.5) / v.scaleY()
	return x, y
}

// cells returns the screen rectangle covered by a world box, clipped to the
// arena. Every box that is at least partly inside covers one cell or more.
func (v viewport) cells(r core.RectF) (core.Rect, bool) {
	if r.Right() <= 0 || r.X >= WorldWidth || r.Top() <= 0 || r.Y >= WorldHeight {
		return core.Rect{}, false
	}

	left := int(math.Floor(r.X * v.scaleX()))
	right := int(math.Ceil(r.Right()*v.scaleX())) - 1
	bottom := int(math.Floor(r.Y * v.scaleY()))
	top := int(math.Ceil(r.Top()*v.scaleY())) - 1

	left = core.Clamp(left, 0, v.W-1)
	right = core.Clamp(max(right, left), 0, v.W-1)
	bottom = core.Clamp(bottom, 0, v.H-1)
	top = core.Clamp(max(top, bottom), 0, v.H-1)

	return core.NewRect(v.X+left, v.Y+v.H-1-top, right-left+1, top-bottom+1), true
}
