package gui

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/menu-sim/internal/update"
)

func (ui *gameUI) updateStart(now time.Time) {
	if ui.needsUpdateCheck {
		ui.needsUpdateCheck = false
		ui.triggerUpdateCheck()
	}
	ui.pollUpdateResult()

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		ui.state.BeginRun(now)
		ui.spawnDesktop()
		ui.log.Info("run started")
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) triggerUpdateCheck() {
	ui.updateBusy = true
	ui.updateStatus = "Checking for updates..."
	go func() {
		res, err := update.Check(context.Background(), ui.cfg.Version)
		ui.updateResultCh <- updateResult{res: res, err: err}
	}()
}

func (ui *gameUI) pollUpdateResult() {
	select {
	case r := <-ui.updateResultCh:
		ui.updateBusy = false
		if r.err != nil {
			ui.updateStatus = ""
			ui.log.Warn("update check failed", zap.Error(r.err))
			return
		}
		ui.updateStatus = r.res.String()
	default:
	}
}

func (ui *gameUI) drawStart() {
	titleRect := rl.NewRectangle(20, float32(ui.height)/2-200, float32(ui.width-40), 160)
	drawTextCentered("ANOTHER DAY AT THE DESK", titleRect, 20, 52, colorText)
	drawTextCentered("a productivity experience", titleRect, 86, 22, colorDim)
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 120, 16, colorDim)

	promptRect := rl.NewRectangle(20, float32(ui.height)/2+10, float32(ui.width-40), 60)
	blinkOn := int(time.Now().UnixMilli()/600)%2 == 0
	if blinkOn {
		drawTextCentered("Click anywhere to clock in", promptRect, 10, 26, colorAccent)
	}

	if ui.updateBusy || ui.updateStatus != "" {
		statusRect := rl.NewRectangle(20, float32(ui.height)-70, float32(ui.width-40), 40)
		drawTextCentered(ui.updateStatus, statusRect, 6, 17, colorDim)
	}
}
