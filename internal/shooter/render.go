package shooter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/star-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	EnemyChar       = '▼'
	PlayerLaserChar = '│'
	EnemyLaserChar  = '¦'
	ShieldLeft      = '('
	ShieldRight     = ')'
	BorderChar      = '┊'
)

const starsPerLayer = 12

// Far layers are dim and sparse, near layers are bright.
var (
	starGlyphs = [backgroundLayers]rune{'.', '·', '+', '*'}
	starColors = [backgroundLayers]core.Color{core.ColorDarkGray, core.ColorGray, core.ColorWhite, core.ColorBrightWhite}
)

// explosionFrames are drawn in order as an explosion progresses.
var explosionFrames = []struct {
	glyph rune
	color core.Color
}{
	{'@', core.ColorBrightYellow},
	{'#', core.ColorOrange},
	{'*', core.ColorRed},
	{'.', core.ColorDarkGray},
}

// starField is a fixed set of stars per layer. Stars are purely visual, so
// they use their own generator and never touch the simulation's randomness.
type starField [backgroundLayers][starsPerLayer]struct{ X, Y float64 }

func newStarField(seed int64) starField {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	var f starField
	for layer := range f {
		for i := range f[layer] {
			f[layer][i].X = rng.Float64() * WorldWidth
			f[layer][i].Y = rng.Float64() * WorldHeight
		}
	}
	return f
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.view = fitViewport(dst.Width(), dst.Height())
	snap := g.snap

	g.drawBackground(dst, snap.Background)
	g.drawBorders(dst)

	for _, l := range snap.PlayerLasers {
		g.fill(dst, l, PlayerLaserChar, core.ColorBrightYellow)
	}
	for _, l := range snap.EnemyLasers {
		g.fill(dst, l, EnemyLaserChar, core.ColorRed)
	}

	for _, e := range snap.Enemies {
		g.drawShip(dst, e, EnemyChar, core.ColorBrightRed, core.ColorMagenta)
	}
	g.drawShip(dst, snap.Player, PlayerChar, core.ColorBrightCyan, core.ColorBlue)

	for _, e := range snap.Explosions {
		frame := explosionFrames[min(int(e.Progress*float64(len(explosionFrames))), len(explosionFrames)-1)]
		g.fill(dst, e.Box, frame.glyph, frame.color)
	}

	g.drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawBackground scrolls each star layer down by its offset, wrapping at
// the bottom of the world.
func (g *Game) drawBackground(dst *core.Screen, offsets [backgroundLayers]float64) {
	for layer, stars := range g.stars {
		for _, s := range stars {
			y := math.Mod(s.Y-offsets[layer]+WorldHeight, WorldHeight)
			col, row := g.view.toCell(s.X, y)
			dst.SetColored(col, row, starGlyphs[layer], starColors[layer])
		}
	}
}

func (g *Game) drawBorders(dst *core.Screen) {
	v := g.view
	for row := v.Y; row < v.Y+v.H; row++ {
		dst.SetColored(v.X-1, row, BorderChar, core.ColorDarkGray)
		dst.SetColored(v.X+v.W, row, BorderChar, core.ColorDarkGray)
	}
}

// drawShip fills the hull and brackets it while the shield holds.
func (g *Game) drawShip(dst *core.Screen, ship ShipView, glyph rune, color, shieldColor core.Color) {
	r, ok := g.view.cells(ship.Box)
	if !ok {
		return
	}
	g.fillCells(dst, r, glyph, color)

	if !ship.ShieldActive {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		if r.X > g.view.X {
			dst.SetColored(r.X-1, y, ShieldLeft, shieldColor)
		}
		if r.Right() < g.view.X+g.view.W {
			dst.SetColored(r.Right(), y, ShieldRight, shieldColor)
		}
	}
}

func (g *Game) fill(dst *core.Screen, box core.RectF, glyph rune, color core.Color) {
	if r, ok := g.view.cells(box); ok {
		g.fillCells(dst, r, glyph, color)
	}
}

func (g *Game) fillCells(dst *core.Screen, r core.Rect, glyph rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// drawHUD writes score, shield and lives across the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score %06d", snap.Score), core.ColorBrightWhite)

	shield := fmt.Sprintf("Shield %02d", snap.Shield)
	dst.DrawTextColored((dst.Width()-len(shield))/2, 0, shield, core.ColorCyan)

	lives := fmt.Sprintf("Lives %02d", max(snap.Lives, 0))
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
