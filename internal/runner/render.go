package runner

import (
	"fmt"

	"github.com/vovakirdan/roar-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerLeg1   = '╱'
	PlayerLeg2   = '╲'
	LogChar      = '▓'
	VineChar     = '~'
	BushChar     = '♣'
	SpeedChar    = '»'
	ShieldChar   = '◆'
	GroundChar   = '═'
	ScenerySpeck = '.'
)

// meterWidth is the signal bar width in cells.
const meterWidth = 16

// Render draws the current state into the screen buffer. The simulation's
// 800x400 world is scaled to the cell grid; row 0 carries the HUD and the
// bottom row the ground line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	groundY := dst.Height() - 1
	sx := float64(dst.Width()) / g.cfg.Field.Width
	sy := float64(groundY-1) / g.cfg.Field.Height

	groundColor := core.ColorGreen
	if !snap.IsDay {
		groundColor = core.ColorGray
	}
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, groundColor)

	g.drawScenery(dst, snap, groundY, sx)

	for _, o := range snap.Obstacles {
		g.drawEntity(dst, o, sx, sy)
	}
	for _, u := range snap.PowerUps {
		g.drawEntity(dst, u, sx, sy)
	}

	if !snap.Player.FlickerHidden {
		g.drawPlayer(dst, snap, sx, sy)
	}

	g.drawHUD(dst, snap)

	switch snap.Phase {
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "R to resume, Q to quit")
	case PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Best: %d  |  R to restart", snap.Score, snap.HighScore)
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	case PhaseLeaderboard:
		g.drawLeaderboard(dst, snap)
	}
}

// drawScenery scatters ground specks shifted by the scroll offset so the
// floor visibly slides under the player.
func (g *Game) drawScenery(dst *core.Screen, snap Snapshot, groundY int, sx float64) {
	color := core.ColorGreen
	if !snap.IsDay {
		color = core.ColorGray
	}

	const spacing = 7
	offset := int(-snap.ScrollX*sx) % spacing
	for x := -offset; x < dst.Width(); x += spacing {
		dst.SetCell(x, groundY-1, ScenerySpeck, color)
	}
}

// drawPlayer renders the runner with animated legs while grounded.
func (g *Game) drawPlayer(dst *core.Screen, snap Snapshot, sx, sy float64) {
	r := cellRect(snap.Player.X, snap.Player.Y, snap.Player.W, snap.Player.H, sx, sy)

	color := core.ColorCyan
	if snap.Player.Invincible {
		color = core.ColorBrightYellow
	}

	// Body fills all but the last row; legs animate underneath.
	body := core.NewRect(r.X, r.Y, r.W, core.Max(r.H-1, 1))
	dst.DrawRect(body, PlayerBody, color)

	if r.H > 1 {
		legY := r.Bottom() - 1
		if !snap.Player.OnGround || snap.Player.SpriteFrame%2 == 0 {
			dst.SetCell(r.X, legY, PlayerLeg1, color)
			dst.SetCell(r.Right()-1, legY, PlayerLeg2, color)
		} else {
			dst.SetCell(r.X, legY, PlayerLeg2, color)
			dst.SetCell(r.Right()-1, legY, PlayerLeg1, color)
		}
	}
}

// drawEntity renders one obstacle or power-up by kind.
func (g *Game) drawEntity(dst *core.Screen, e EntityView, sx, sy float64) {
	r := cellRect(e.X, e.Y, e.W, e.H, sx, sy)

	var glyph rune
	var color core.Color
	switch e.Kind {
	case "log":
		glyph, color = LogChar, core.ColorOrange
	case "vine":
		glyph, color = VineChar, core.ColorGreen
	case "bush":
		glyph, color = BushChar, core.ColorGreen
	case "speed_boost":
		glyph, color = SpeedChar, core.ColorBrightYellow
	case "invincibility":
		glyph, color = ShieldChar, core.ColorBrightYellow
	default:
		glyph, color = '?', core.ColorDefault
	}

	dst.DrawRect(r, glyph, color)
}

// drawHUD renders score, multiplier, day phase, power-up countdowns, and
// the loudness meter.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	phaseIcon := '☀'
	if !snap.IsDay {
		phaseIcon = '☾'
	}
	left := fmt.Sprintf(" %c Score: %d  x%.1f ", phaseIcon, snap.Score, snap.Multiplier)
	dst.DrawText(1, 0, left)

	g.drawMeter(dst, snap)

	tickRate := core.Max(g.runtime.TickRate, 1)
	timerY := dst.Height() - 2
	if snap.Player.SpeedBoostTicks > 0 {
		text := fmt.Sprintf(" Speed: %ds ", snap.Player.SpeedBoostTicks/tickRate)
		dst.DrawTextColor(1, timerY, text, core.ColorBrightYellow)
		timerY--
	}
	if snap.Player.InvincibleTicks > 0 {
		text := fmt.Sprintf(" Shield: %ds ", snap.Player.InvincibleTicks/tickRate)
		dst.DrawTextColor(1, timerY, text, core.ColorBrightYellow)
	}
}

// drawMeter renders the loudness bar on the right of the HUD row.
func (g *Game) drawMeter(dst *core.Screen, snap Snapshot) {
	x := dst.Width() - meterWidth - 3
	if x < 0 {
		return
	}

	filled := int(snap.Signal / g.cfg.Signal.Clamp * meterWidth)
	filled = core.Clamp(filled, 0, meterWidth)

	dst.Set(x, 0, '[')
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			dst.SetCell(x+1+i, 0, '█', core.ColorBrightGreen)
		} else {
			dst.SetCell(x+1+i, 0, ' ', core.ColorDefault)
		}
	}
	dst.Set(x+1+meterWidth, 0, ']')
}

// drawLeaderboard renders the frozen-run leaderboard overlay.
func (g *Game) drawLeaderboard(dst *core.Screen, snap Snapshot) {
	lines := make([]string, 0, len(snap.TopScores)+1)
	for i, score := range snap.TopScores {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, score))
	}
	lines = append(lines, "B to go back")

	boxW := len("LEADERBOARD") + 8
	for _, l := range lines {
		boxW = core.Max(boxW, len(l)+4)
	}
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len("LEADERBOARD"))/2, boxY+1, "LEADERBOARD")

	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+2+i, l)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// cellRect scales a world-space box to screen cells, keeping at least one
// cell so small entities stay visible. Row 0 is reserved for the HUD.
func cellRect(x, y, w, h, sx, sy float64) core.Rect {
	cx := int(x * sx)
	cy := 1 + int(y*sy)
	cw := core.Max(int(w*sx), 1)
	ch := core.Max(int(h*sy), 1)
	return core.NewRect(cx, cy, cw, ch)
}
