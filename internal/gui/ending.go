package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/game"
)

const (
	particleCount = 160
	revealDelay   = 2500 * time.Millisecond
)

type particle struct {
	pos  rl.Vector2
	vel  rl.Vector2
	tint rl.Color
	life float32
}

type endingState struct {
	particles []particle
	elapsed   time.Duration
	stats     game.Stats
}

var confettiColors = []rl.Color{
	rl.NewColor(248, 81, 73, 255),
	rl.NewColor(63, 185, 80, 255),
	rl.NewColor(88, 166, 255, 255),
	rl.NewColor(255, 198, 96, 255),
	rl.NewColor(188, 140, 255, 255),
}

func (ui *gameUI) beginEnding() {
	ui.discord = nil
	ui.phone = nil
	ui.ending.stats = ui.state.Stats(time.Now())
	ui.ending.elapsed = 0
	ui.ending.particles = make([]particle, 0, particleCount)
	for i := 0; i < particleCount; i++ {
		ui.ending.particles = append(ui.ending.particles, particle{
			pos: rl.NewVector2(ui.schedRNG.Float32()*float32(ui.width), -ui.schedRNG.Float32()*float32(ui.height)),
			vel: rl.NewVector2((ui.schedRNG.Float32()-0.5)*60, 90+ui.schedRNG.Float32()*140),
			tint: confettiColors[i%len(confettiColors)],
			life: 1,
		})
	}
	ui.sounds.Play("milestone")
}

func (ui *gameUI) updateEnding(delta time.Duration) {
	ui.ending.elapsed += delta
	dt := float32(delta.Seconds())
	for i := range ui.ending.particles {
		p := &ui.ending.particles[i]
		p.pos.X += p.vel.X * dt
		p.pos.Y += p.vel.Y * dt
		if p.pos.Y > float32(ui.height)+10 {
			p.pos.Y = -10
			p.pos.X = ui.schedRNG.Float32() * float32(ui.width)
		}
	}
	// The exit key only works once the day is over.
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape) {
		ui.quit = true
	}
}

func (ui *gameUI) drawEnding(time.Time) {
	for _, p := range ui.ending.particles {
		rl.DrawRectangle(int32(p.pos.X), int32(p.pos.Y), 6, 10, rl.Fade(p.tint, 0.9))
	}

	panel := rl.NewRectangle(float32(ui.width)/2-330, float32(ui.height)/2-240, 660, 480)
	drawPanel(panel, "")
	drawTextCentered("PROJECT SHIPPED!", panel, 26, 40, colorGood)
	drawTextCentered("What a day. Look at everything you achieved:", panel, 86, 18, colorText)

	s := ui.ending.stats
	rows := []string{
		fmt.Sprintf("Items shuffled between windows: %d", s.ItemsMoved),
		fmt.Sprintf("Interruptions survived: %d", s.InterruptionsDismissed),
		fmt.Sprintf("Replies sent: %d", s.RepliesSent),
		fmt.Sprintf("Time on the clock: %s", s.Elapsed.Round(time.Second)),
	}
	y := int32(panel.Y) + 130
	for _, row := range rows {
		rl.DrawText(row, int32(panel.X)+48, y, 19, colorText)
		y += 32
	}

	if ui.ending.elapsed >= revealDelay {
		y += 14
		rl.DrawText(fmt.Sprintf("Your contribution to the project: %.0f%%", s.ActualWorkDone), int32(panel.X)+48, y, 19, colorDanger)
		y += 32
		rl.DrawText(fmt.Sprintf("Louie Calvelli's contribution: %.0f%%", s.CalvelliWorkDone), int32(panel.X)+48, y, 19, colorGood)
		y += 44
		drawWrappedText("The project finished itself while you dragged a stapler around. Great hustle.",
			rl.NewRectangle(panel.X+34, panel.Y, panel.Width-68, panel.Height), y-int32(panel.Y), 17, colorDim)
	}

	drawTextCentered("Press Enter to clock out", panel, int32(panel.Height)-44, 18, colorAccent)
}
