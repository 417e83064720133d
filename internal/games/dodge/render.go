package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/dodgemaster/internal/core"
	"github.com/vovakirdan/dodgemaster/internal/games/dodge/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PursuerChar    = '▓'
	ProjectileChar = '•'
	ParticleChar   = '·'
	EmberChar      = '*'
	WellCoreChar   = '@'
	WellRingChar   = '○'
	BarFull        = '█'
	BarEmpty       = '░'
)

// Minimum screen size for a playable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Feedback returns the game-over message for a final score.
func Feedback(score int) string {
	switch {
	case score > 5000:
		return "Amazing! You're an AI training master!"
	case score > 2000:
		return "Great job! The AI had trouble predicting you!"
	default:
		return "The AI outsmarted you this time. Try again!"
	}
}

// viewport maps field units onto a rectangle of screen cells.
type viewport struct {
	area   core.Rect
	sx, sy float64
}

func newViewport(field core.Box, area core.Rect) viewport {
	return viewport{
		area: area,
		sx:   float64(area.W) / field.W,
		sy:   float64(area.H) / field.H,
	}
}

// cell returns the screen cell containing a field point.
func (v viewport) cell(p core.Vec2) (int, int) {
	return v.area.X + int(math.Floor(p.X*v.sx)), v.area.Y + int(math.Floor(p.Y*v.sy))
}

// rect returns the cells covered by a box, at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.cell(b.Pos)
	w := core.Max(1, int(math.Round(b.W*v.sx)))
	h := core.Max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x0, y0, w, h)
}

// set draws a rune only inside the field area.
func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.area.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			v.set(dst, x, y, ch, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2-1, "Terminal too small")
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.sim.Snapshot()
	frame := core.NewRect(0, 1, w, h-2)
	dst.DrawBoxColored(frame, warpColor(snap.TimeWarp))

	vp := newViewport(g.sim.Field(), core.NewRect(1, 2, w-2, h-4))
	drawParticles(dst, vp, snap.Particles)
	if snap.Well != nil {
		drawWell(dst, vp, *snap.Well)
	}
	for _, p := range snap.Pickups {
		drawPickup(dst, vp, p)
	}
	for _, p := range snap.Projectiles {
		x, y := vp.cell(p.Box.Center())
		vp.set(dst, x, y, ProjectileChar, core.ColorBrightRed)
	}
	drawPursuer(dst, vp, snap.Pursuer)
	drawPlayer(dst, vp, snap.Player, snap.Shielded)

	g.drawHUD(dst, snap)
	drawEventBanner(dst, snap.Event, g.runtime)
	if g.configErr != nil && snap.Event == nil {
		drawConfigWarning(dst)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "Game Over!",
			fmt.Sprintf("Final Score: %d  (%s)", snap.Score, g.reason),
			Feedback(snap.Score),
			"Press R to restart")
	}
}

// warpColor tints the field border while time runs at a different rate.
func warpColor(warp float64) core.Color {
	switch {
	case warp < 1:
		return core.ColorBlue
	case warp > 1:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

func drawParticles(dst *core.Screen, vp viewport, particles []sim.Particle) {
	for _, p := range particles {
		ch := ParticleChar
		color := p.Color
		if !p.Fade {
			ch = EmberChar
		} else if p.Life < 10 {
			color = core.ColorDarkGray
		}
		x, y := vp.cell(p.Pos)
		vp.set(dst, x, y, ch, color)
	}
}

func drawWell(dst *core.Screen, vp viewport, w sim.GravityWell) {
	cx, cy := vp.cell(w.Pos)
	rx := math.Max(1, w.Radius*vp.sx)
	ry := math.Max(1, w.Radius*vp.sy)

	// Ring at the visual radius, core at the center.
	for i := range 24 {
		a := float64(i) * 2 * math.Pi / 24
		x := cx + int(math.Round(math.Cos(a)*rx))
		y := cy + int(math.Round(math.Sin(a)*ry))
		vp.set(dst, x, y, WellRingChar, core.ColorMagenta)
	}
	vp.set(dst, cx, cy, WellCoreChar, core.ColorPurple)
}

func drawPickup(dst *core.Screen, vp viewport, p sim.Pickup) {
	color := p.Kind.Color()
	// Pulse between normal and bright.
	if (p.Phase/15)%2 == 1 {
		color = core.ColorBrightWhite
	}
	x, y := vp.cell(p.Box.Center())
	vp.set(dst, x, y, p.Kind.Glyph(), color)
}

func drawPursuer(dst *core.Screen, vp viewport, p sim.Pursuer) {
	r := vp.rect(p.Box)
	vp.fill(dst, r, PursuerChar, core.ColorRed)
	drawEye(dst, vp, r, p.Facing, core.ColorBrightYellow)
}

func drawPlayer(dst *core.Screen, vp viewport, p sim.Player, shielded bool) {
	r := vp.rect(p.Box)
	color := core.ColorBrightGreen
	if shielded {
		color = core.ColorBrightCyan
		vp.fill(dst, core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), '░', core.ColorCyan)
	}
	vp.fill(dst, r, PlayerChar, color)
	drawEye(dst, vp, r, p.Facing, core.ColorBrightWhite)
}

// drawEye marks the side of a body the entity is facing.
func drawEye(dst *core.Screen, vp viewport, body core.Rect, facing core.Vec2, c core.Color) {
	if facing == (core.Vec2{}) || body.W*body.H < 2 {
		return
	}
	cx, cy := body.Center()
	dir := facing.Normalize()
	x := core.Clamp(cx+int(math.Round(dir.X*float64(body.W-1)/2)), body.X, body.Right()-1)
	y := core.Clamp(cy+int(math.Round(dir.Y*float64(body.H-1)/2)), body.Y, body.Bottom()-1)
	vp.set(dst, x, y, '◉', c)
}

// drawHUD writes score, dodges, warp and the power-up bar on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf("Score: %d  Dodged: %d", snap.Score, snap.HitsAvoided)
	if snap.TimeWarp != 1 {
		left += fmt.Sprintf("  Warp: x%.1f", snap.TimeWarp)
	}
	dst.DrawText(1, 0, left)

	if snap.PowerUp == nil {
		return
	}
	const barW = 10
	filled := int(math.Ceil(snap.PowerUp.Fraction() * barW))
	bar := strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), barW-filled)
	label := snap.PowerUp.Kind.String() + " "
	x := dst.Width() - len([]rune(label)) - barW - 1
	dst.DrawTextColored(x, 0, label, snap.PowerUp.Kind.Color())
	dst.DrawTextColored(x+len([]rune(label)), 0, bar, snap.PowerUp.Kind.Color())
}

// drawEventBanner shows the running event and its remaining time on the
// bottom row, or the controls when nothing is happening.
func drawEventBanner(dst *core.Screen, ev *sim.ActiveEvent, rt core.RuntimeConfig) {
	y := dst.Height() - 1
	if ev == nil {
		dst.DrawTextCentered(y, "Arrows/WASD: move  P: pause  Q: quit")
		return
	}
	text := fmt.Sprintf("%s %.1fs", ev.Kind, rt.Seconds(ev.Remaining))
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, ev.Kind.Color())
}

// drawConfigWarning replaces the controls line when the session runs on
// default settings.
func drawConfigWarning(dst *core.Screen) {
	y := dst.Height() - 1
	for x := range dst.Width() {
		dst.Set(x, y, ' ')
	}
	text := "Config error: playing with defaults (see log)"
	dst.DrawTextColored((dst.Width()-len(text))/2, y, text, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
