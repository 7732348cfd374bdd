package waverider

import (
	"fmt"
	"math"

	"github.com/vovakirdan/waverider/internal/core"
)

// Visual characters for rendering
const (
	DebrisChar  = '■'
	BorderHoriz = '─'
)

// Water glyphs from trough to crest
var waterGlyphs = []rune{' ', '·', '-', '~', '≈', '^', '▲'}

// Water colors from trough to crest
var waterColors = []core.Color{
	core.ColorAbyss,
	core.ColorBlue,
	core.ColorSwell,
	core.ColorCyan,
	core.ColorCrest,
	core.ColorFoam,
	core.ColorSpray,
}

// Boat arrows by heading relative to the view, clockwise from straight up
var boatArrows = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// view maps screen cells to world positions around the boat.
// Screen up is the camera's horizontal look direction.
type view struct {
	center  core.Vec2
	right   core.Vec2
	forward core.Vec2
	colUnit float64 // world units per column
	rowUnit float64 // world units per row
	cx, cy  int     // screen cell of the center
}

func (g *Game) newView(dst *core.Screen) view {
	zoom := 1.0
	if base := g.initialZoom(); base > 0 {
		zoom = g.orbit.Zoom / base
	}
	col := g.cfg.Render.UnitsPerColumn * zoom
	fwd := core.Heading(g.orbit.Yaw)

	area := playArea(dst)
	return view{
		center:  g.boat.Pos(),
		right:   core.Vec2{X: fwd.Z, Z: -fwd.X},
		forward: fwd,
		colUnit: col,
		rowUnit: col * g.cfg.Render.RowAspect,
		cx:      dst.Width() / 2,
		cy:      area.Y + area.H/2,
	}
}

// playArea is the part of the screen showing the sea, between the two HUD
// rows at the top and the two at the bottom.
func playArea(dst *core.Screen) core.Rect {
	return core.NewRect(0, 2, dst.Width(), dst.Height()-4)
}

func (g *Game) initialZoom() float64 {
	off := g.cfg.Camera.PositionOffset
	return core.ClampF(core.NewVec3(off[0], off[1], off[2]).Len(), g.cfg.Camera.MinZoom, g.cfg.Camera.MaxZoom)
}

// world returns the world position under screen cell (x, y).
func (v view) world(x, y int) core.Vec2 {
	dx := float64(x-v.cx) * v.colUnit
	dy := float64(v.cy-y) * v.rowUnit
	return v.center.Add(v.right.Scale(dx)).Add(v.forward.Scale(dy))
}

// cell returns the screen cell showing world position p.
func (v view) cell(p core.Vec2) (int, int) {
	rel := p.Sub(v.center)
	x := v.cx + int(math.Round(rel.Dot(v.right)/v.colUnit))
	y := v.cy - int(math.Round(rel.Dot(v.forward)/v.rowUnit))
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.newView(dst)
	g.renderWater(dst, v)
	g.renderDebris(dst, v)
	g.renderBoat(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderWater shades every cell of the play area by the wave height.
func (g *Game) renderWater(dst *core.Screen, v view) {
	t := g.Time()
	amp := g.field.AmplitudeSum()

	area := playArea(dst)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			p := v.world(x, y)
			h := g.field.HeightAt(p.X, p.Z, t)
			i := waterLevel(h, amp)
			dst.SetColored(x, y, waterGlyphs[i], waterColors[i])
		}
	}
}

// waterLevel maps a height in [-amp, amp] to a glyph index.
func waterLevel(h, amp float64) int {
	if amp <= 0 {
		return len(waterGlyphs) / 2
	}
	n := (h/amp + 1) / 2
	return core.Clamp(int(n*float64(len(waterGlyphs))), 0, len(waterGlyphs)-1)
}

func (g *Game) renderDebris(dst *core.Screen, v view) {
	area := playArea(dst)
	for _, d := range g.debris.Items() {
		x, y := v.cell(d.Pos())
		if !area.Contains(x, y) {
			continue
		}
		dst.SetColored(x, y, DebrisChar, core.ColorDebris)
	}
}

func (g *Game) renderBoat(dst *core.Screen, v view) {
	dst.SetColored(v.cx, v.cy, boatArrow(g.boat.Yaw-g.orbit.Yaw), core.ColorHull)
}

// boatArrow picks the arrow for a heading relative to screen up.
func boatArrow(rel float64) rune {
	return boatArrows[int((core.WrapDegrees(rel)+22.5)/45)%len(boatArrows)]
}

// renderHUD draws the score line on top and the instruments at the bottom.
func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	// Debris in center
	var debrisText string
	if g.mode == ModeEndless {
		debrisText = fmt.Sprintf("Debris: %d", g.debris.Collected())
	} else {
		debrisText = fmt.Sprintf("Debris: %d/%d", g.debris.Collected(), g.cfg.Spawner.MaxActive)
	}
	dst.DrawTextCentered(0, debrisText)

	// Sea state on right
	seaText := "Sea: " + g.sea.Title()
	dst.DrawText(w-len(seaText)-1, 0, seaText)

	// Clock and nearest debris on row 1
	clock := formatClock(g.Time())
	if left := g.TimeLeft(); left >= 0 {
		clock = formatClock(left) + " left"
	}
	dst.DrawText(1, 1, clock)
	if near := g.nearestText(); near != "" {
		dst.DrawText(w-len([]rune(near))-1, 1, near)
	}

	dst.DrawHLine(0, h-2, w, BorderHoriz, core.ColorDim)

	pitch, _, roll := g.boat.Euler()
	inst := fmt.Sprintf("Spd %4.1f  Hdg %03.0f°  Pitch %+3.0f°  Roll %+3.0f°  Cam %02.0f°/%.0fm  Horizon %03.0f°",
		g.boat.Speed, g.boat.Yaw, pitch, roll, g.orbit.Pitch, g.orbit.Zoom, g.backdrop.Heading)
	dst.DrawText(1, h-1, inst)

	if g.configErr != nil {
		dst.DrawTextColored(1, h-2, " config error, using defaults ", core.ColorWarning)
	}
}

// nearestText describes the closest debris item relative to the view.
func (g *Game) nearestText() string {
	items := g.debris.Items()
	if len(items) == 0 {
		return ""
	}

	boat := g.boat.Pos()
	best := items[0].Pos()
	for _, d := range items[1:] {
		if d.Pos().Dist(boat) < best.Dist(boat) {
			best = d.Pos()
		}
	}

	rel := best.Sub(boat)
	arrow := boatArrow(core.Bearing(rel) - g.orbit.Yaw)
	return fmt.Sprintf("Nearest %c %.0fm", arrow, rel.Len())
}

func formatClock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateTimeUp:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "TIME UP", subtitle)

	case StateComplete:
		subtitle := fmt.Sprintf("Final Score: %d (bonus %d)  |  Press R to restart", g.score, g.bonus)
		g.drawCenteredBox(dst, "ALL DEBRIS COLLECTED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
