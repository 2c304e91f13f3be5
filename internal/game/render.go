package game

import (
	"fmt"
	"math"

	"github.com/tverd/dashrun/internal/core"
)

// Render draws the current state into the screen buffer. Everything is
// drawn from primitive cells; there are no image assets.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawGround(dst)

	for _, o := range g.spawner.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.drawRunner(dst)

	switch g.phase {
	case core.PhaseIdle:
		g.drawCenteredMessage(dst, "DASH RUNNER", "Press Space to start")
	case core.PhaseGameOver:
		g.drawHUD(dst)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	default:
		g.drawHUD(dst)
	}
}

// drawGround renders the ground line with its scrolling dash marks.
func (g *Game) drawGround(dst *core.Screen) {
	period := g.cfg.Ground.DashPeriod
	offset := int(math.Floor(g.groundOffset))
	for x := 0; x < dst.Width(); x++ {
		if ((x+offset)%period+period)%period < g.cfg.Ground.DashWidth {
			dst.SetCell(x, g.groundY, GroundDash, core.ColorGray)
		} else {
			dst.SetCell(x, g.groundY, GroundFiller, core.ColorGray)
		}
	}
}

// drawObstacle renders a single obstacle block above the ground line.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	left := int(math.Round(o.X))
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			dst.SetCell(left+dx, g.groundY-o.Height+dy, ObstacleChar, core.ColorGreen)
		}
	}
}

// drawRunner renders the player sprite: head, body, and legs that
// alternate with distance traveled while on the ground.
func (g *Game) drawRunner(dst *core.Screen) {
	x := g.cfg.Player.X
	top := g.groundY - g.cfg.Player.Height - int(math.Round(-g.playerY))

	dst.SetCell(x+1, top, RunnerHead, core.ColorYellow)
	dst.SetCell(x+2, top, RunnerBody, core.ColorYellow)

	for dx := 0; dx < g.cfg.Player.Width; dx++ {
		dst.SetCell(x+dx, top+1, RunnerBody, core.ColorYellow)
	}

	legY := top + 2
	if g.grounded && int(g.distance/2)%2 == 0 {
		dst.SetCell(x, legY, RunnerLegL, core.ColorYellow)
		dst.SetCell(x+2, legY, RunnerLegR, core.ColorYellow)
	} else {
		dst.SetCell(x+1, legY, RunnerLegL, core.ColorYellow)
		dst.SetCell(x+2, legY, RunnerLegR, core.ColorYellow)
	}
}

// drawHUD renders the current score and the best score.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	best := fmt.Sprintf(" Best: %d ", core.Max(g.best, g.score))
	dst.DrawText(dst.Width()-len(best)-2, 0, best)
}

// drawCenteredMessage draws a boxed prompt in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
