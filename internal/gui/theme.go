package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorDesktop  = rl.NewColor(16, 42, 66, 255)
	colorPanel    = rl.NewColor(28, 32, 38, 255)
	colorBorder   = rl.NewColor(70, 80, 92, 255)
	colorText     = rl.NewColor(225, 228, 232, 255)
	colorDim      = rl.NewColor(140, 148, 158, 255)
	colorAccent   = rl.NewColor(88, 166, 255, 255)
	colorGood     = rl.NewColor(63, 185, 80, 255)
	colorWarn     = rl.NewColor(255, 198, 96, 255)
	colorDanger   = rl.NewColor(248, 81, 73, 255)
	colorOutlook  = rl.NewColor(0, 114, 198, 255)
	colorDiscord  = rl.NewColor(88, 101, 242, 255)
	colorSlack    = rl.NewColor(74, 21, 75, 255)
	colorProgress = rl.NewColor(63, 185, 80, 255)
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawWrappedText(text string, rect rl.Rectangle, y int32, size int32, clr rl.Color) int32 {
	maxWidth := int32(rect.Width) - 26
	lines := wrapText(text, size, maxWidth)
	for i, line := range lines {
		rl.DrawText(line, int32(rect.X)+14, int32(rect.Y)+y+int32(i)*(size+6), size, clr)
	}
	return int32(len(lines)) * (size + 6)
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if rl.MeasureText(candidate, size) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func drawProgressBar(rect rl.Rectangle, percent float64, fill rl.Color) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	rl.DrawRectangleRec(rect, rl.Fade(colorPanel, 0.9))
	inner := rl.NewRectangle(rect.X+1, rect.Y+1, (rect.Width-2)*float32(percent)/100.0, rect.Height-2)
	if inner.Width > 0 {
		rl.DrawRectangleRec(inner, fill)
	}
	rl.DrawRectangleLinesEx(rect, 1, colorBorder)
}
