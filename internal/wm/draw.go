package wm

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	chromeBody       = rl.NewColor(250, 250, 250, 255)
	chromeTitleBar   = rl.NewColor(208, 212, 218, 255)
	chromeTitleFocus = rl.NewColor(176, 196, 222, 255)
	chromeBorder     = rl.NewColor(150, 150, 150, 255)
	chromeTitleText  = rl.NewColor(30, 30, 30, 255)
	chromeCloseGlyph = rl.NewColor(90, 90, 90, 255)
)

// DrawAll paints windows bottom to front so later draws overlay earlier
// ones, then the carried-item ghost on top of everything.
func (m *Manager) DrawAll() {
	for _, w := range m.windows {
		w.draw(w.handle == m.focused)
	}
	if item, pos, ok := m.CarriedItem(); ok {
		ghost := rl.NewRectangle(pos.X-18, pos.Y-18, 36, 36)
		rl.DrawRectangleRounded(ghost, 0.25, 6, rl.Fade(item.Tint, 0.85))
		rl.DrawRectangleRoundedLinesEx(ghost, 0.25, 6, 2, rl.Fade(chromeBorder, 0.9))
	}
}

func (w *Window) draw(focused bool) {
	if w.frameless {
		w.content.Draw(w.rect)
		return
	}

	rl.DrawRectangleRec(w.rect, chromeBody)

	tb := w.TitleBarRect()
	barColor := chromeTitleBar
	if focused {
		barColor = chromeTitleFocus
	}
	rl.DrawRectangleRec(tb, barColor)
	rl.DrawText(w.title, int32(tb.X)+10, int32(tb.Y)+9, 18, chromeTitleText)

	cb := w.CloseButtonRect()
	rl.DrawRectangleRec(cb, rl.Fade(chromeBody, 0.6))
	rl.DrawLineEx(rl.NewVector2(cb.X+5, cb.Y+5), rl.NewVector2(cb.X+cb.Width-5, cb.Y+cb.Height-5), 2, chromeCloseGlyph)
	rl.DrawLineEx(rl.NewVector2(cb.X+cb.Width-5, cb.Y+5), rl.NewVector2(cb.X+5, cb.Y+cb.Height-5), 2, chromeCloseGlyph)

	w.content.Draw(w.ContentArea())

	rl.DrawRectangleLinesEx(w.rect, 2, chromeBorder)
}
