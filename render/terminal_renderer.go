package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
)

const controlsHint = "←/→ steer  p pause  r restart  q quit"

// TerminalRenderer draws a top-down view of the slope with the skier near the bottom edge
// Downhill is up the screen; one row covers UnitsPerRow of slope
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for the current screen size
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize adopts the screen's new size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// camera maps world coordinates to screen cells for one frame
type camera struct {
	centerCol int
	playerRow int
	playerZ   float64
	shiftCols int
}

func (c camera) col(x float64) int {
	return c.centerCol + c.shiftCols + int(math.Round(x*constants.ColumnsPerUnit))
}

func (c camera) row(z float64) int {
	return c.playerRow + int(math.Round((z-c.playerZ)/constants.UnitsPerRow))
}

// RenderFrame draws one frame from the game state and the scene
func (r *TerminalRenderer) RenderFrame(g *engine.Game, scene *Scene) {
	base := tcell.StyleDefault.Background(RgbSnow).Foreground(RgbSnowTrack)
	r.screen.Fill(' ', base)

	cam := r.camera(g)
	r.drawSlope(g, cam, base)

	for _, v := range scene.Visuals() {
		if v.Player {
			continue
		}
		r.drawEntity(v, cam, base)
	}
	if v, ok := scene.Visual(g.Player.Visual); ok {
		r.drawPlayer(g, v, cam, base)
	}

	r.drawStatusBar(g)
	if g.State.Phase == engine.PhaseOver {
		r.drawBanner(g)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) camera(g *engine.Game) camera {
	cam := camera{
		centerCol: r.width / 2,
		playerRow: r.height - constants.PlayerRowFromBottom,
		playerZ:   g.Player.Position.Z,
	}
	// Pan toward the side the skier went down on
	if g.State.IsGameOver {
		progress := g.Death.Progress()
		cam.shiftCols = int(math.Round(float64(g.State.DeathSide*constants.DeathCameraShift) * progress))
	}
	return cam
}

func (r *TerminalRenderer) inPlayfield(col, row int) bool {
	return col >= 0 && col < r.width && row >= constants.HUDRows && row < r.height
}

// drawSlope draws the off-piste margins, groomer marks and lane fences
func (r *TerminalRenderer) drawSlope(g *engine.Game, cam camera, base tcell.Style) {
	half := g.Config.Lane.Width / 2
	left, right := cam.col(-half), cam.col(half)

	offPiste := base.Background(RgbOffPiste)
	fence := base.Foreground(RgbBorder)

	for row := constants.HUDRows; row < r.height; row++ {
		// Marks are pinned to slope distance so they scroll with the skier
		z := cam.playerZ + float64(row-cam.playerRow)*constants.UnitsPerRow
		stripe := int64(math.Floor(z / constants.UnitsPerRow))

		for col := 0; col < r.width; col++ {
			switch {
			case col < left || col > right:
				r.screen.SetContent(col, row, ' ', nil, offPiste)
			case col == left || col == right:
				r.screen.SetContent(col, row, constants.GlyphBorder, nil, fence)
			case snowMark(stripe, col-cam.shiftCols):
				r.screen.SetContent(col, row, constants.GlyphSnow, nil, base)
			}
		}
	}
}

// snowMark scatters groomer marks deterministically per slope row
func snowMark(stripe int64, col int) bool {
	h := uint64(stripe)*0x9E3779B97F4A7C15 ^ uint64(col)*0xBF58476D1CE4E5B9
	h ^= h >> 29
	return h%13 == 0
}

func (r *TerminalRenderer) drawEntity(v *Visual, cam camera, base tcell.Style) {
	col, row := cam.col(v.Position.X), cam.row(v.Position.Z)
	style := base.Foreground(KindColor(v.Kind))

	switch v.Kind {
	case core.KindJump:
		// Ramps span their full width
		halfCols := int(math.Round(v.Shape.Extent().X * constants.ColumnsPerUnit))
		for c := col - halfCols; c <= col+halfCols; c++ {
			if r.inPlayfield(c, row) {
				r.screen.SetContent(c, row, constants.GlyphJump, nil, style)
			}
		}
	case core.KindCoin:
		if r.inPlayfield(col, row) {
			r.screen.SetContent(col, row, CoinGlyph(v.Rotation.Y), nil, style.Bold(true))
		}
	default:
		if r.inPlayfield(col, row) {
			r.screen.SetContent(col, row, KindGlyph(v.Kind), nil, style)
		}
	}
}

func (r *TerminalRenderer) drawPlayer(g *engine.Game, v *Visual, cam camera, base tcell.Style) {
	col, row := cam.col(v.Position.X), cam.row(v.Position.Z)
	if !r.inPlayfield(col, row) {
		return
	}

	style := base.Foreground(RgbPlayer).Bold(true)
	glyph := PlayerGlyph(v.Rotation.Z)
	if g.State.IsGameOver {
		style = base.Foreground(RgbCrash).Bold(true)
		glyph = constants.GlyphCrash
	} else if v.Position.Y > g.Config.Player.Height+0.2 {
		// Airborne off a ramp
		style = style.Underline(true)
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *TerminalRenderer) drawStatusBar(g *engine.Game) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	for col := 0; col < r.width; col++ {
		r.screen.SetContent(col, 0, ' ', nil, style)
	}

	status := fmt.Sprintf(" DIST %dm  COINS %d ", int(g.State.DistanceTraveled), g.State.CoinsCollected)
	col := r.drawText(0, 0, status, style.Bold(true))

	if g.Clock.IsPaused() {
		col = r.drawText(col+1, 0, " PAUSED ", tcell.StyleDefault.Background(RgbPausedBg).Foreground(RgbStatusBg))
	}

	hintCol := r.width - len([]rune(controlsHint)) - 1
	if hintCol > col+1 {
		r.drawText(hintCol, 0, controlsHint, style.Foreground(RgbHintText))
	}
}

func (r *TerminalRenderer) drawBanner(g *engine.Game) {
	side := "right"
	if g.State.DeathSide < 0 {
		side = "left"
	}
	lines := []string{
		fmt.Sprintf(" WIPEOUT (%s) ", side),
		fmt.Sprintf(" %dm  %d coins ", int(g.State.DistanceTraveled), g.State.CoinsCollected),
		" r restart  q quit ",
	}

	style := tcell.StyleDefault.Background(RgbBannerBg).Foreground(RgbStatusText).Bold(true)
	top := r.height/2 - len(lines)/2
	for i, line := range lines {
		col := (r.width - len([]rune(line))) / 2
		r.drawText(col, top+i, line, style)
	}
}

// drawText writes text from col and returns the column after it
func (r *TerminalRenderer) drawText(col, row int, text string, style tcell.Style) int {
	for _, ch := range text {
		if col >= 0 && col < r.width && row >= 0 && row < r.height {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
	return col
}
