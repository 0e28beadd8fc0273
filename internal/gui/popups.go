package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/content"
	"github.com/appengine-ltd/menu-sim/internal/wm"
)

// toastContent is a corner notification. It expires on its own; clicking it
// runs the open action (open the email, raise the chat window) and dismisses
// the toast.
type toastContent struct {
	header    string
	line1     string
	line2     string
	accent    rl.Color
	remaining time.Duration
	opened    bool
	onOpen    func()
}

func newToastContent(header, line1, line2 string, accent rl.Color, lifetime time.Duration, onOpen func()) *toastContent {
	return &toastContent{
		header:    header,
		line1:     line1,
		line2:     line2,
		accent:    accent,
		remaining: lifetime,
		onOpen:    onOpen,
	}
}

func newEmailToast(email content.EmailTemplate, lifetime time.Duration, onOpen func(email content.EmailTemplate)) *toastContent {
	return newToastContent("New mail", email.Sender, email.Subject, colorOutlook, lifetime, func() {
		if onOpen != nil {
			onOpen(email)
		}
	})
}

func (c *toastContent) Kind() wm.Kind { return wm.KindPopup }

func (c *toastContent) Update(delta time.Duration) {
	c.remaining -= delta
}

func (c *toastContent) CloseRequested() bool {
	return c.opened || c.remaining <= 0
}

func (c *toastContent) Click(rl.Vector2, rl.Rectangle) bool {
	c.opened = true
	if c.onOpen != nil {
		c.onOpen()
	}
	return true
}

func (c *toastContent) Draw(area rl.Rectangle) {
	rl.DrawRectangleRounded(area, 0.12, 6, rl.Fade(colorPanel, 0.95))
	rl.DrawRectangleRoundedLinesEx(area, 0.12, 6, 1.5, c.accent)
	rl.DrawText(c.header, int32(area.X)+12, int32(area.Y)+8, 14, c.accent)
	rl.DrawText(c.line1, int32(area.X)+12, int32(area.Y)+28, 15, colorText)
	line2 := c.line2
	if len(line2) > 34 {
		line2 = line2[:34] + "..."
	}
	rl.DrawText(line2, int32(area.X)+12, int32(area.Y)+50, 14, colorDim)
}

// bannerQueue shows milestone messages one at a time across the top of the
// desktop.
type bannerQueue struct {
	pending   []string
	current   string
	remaining time.Duration
}

const bannerLifetime = 4 * time.Second

func (q *bannerQueue) Push(text string) {
	q.pending = append(q.pending, text)
}

func (q *bannerQueue) Advance(delta time.Duration) {
	if q.current != "" {
		q.remaining -= delta
		if q.remaining > 0 {
			return
		}
		q.current = ""
	}
	if len(q.pending) > 0 {
		q.current = q.pending[0]
		q.pending = q.pending[1:]
		q.remaining = bannerLifetime
	}
}

func (q *bannerQueue) Active() (string, bool) {
	return q.current, q.current != ""
}

func (q *bannerQueue) draw(width int32) {
	if q.current == "" {
		return
	}
	rect := rl.NewRectangle(float32(width)/2-320, 16, 640, 54)
	rl.DrawRectangleRounded(rect, 0.2, 8, rl.Fade(colorGood, 0.25))
	rl.DrawRectangleRoundedLinesEx(rect, 0.2, 8, 2, colorGood)
	drawTextCentered(q.current, rect, 16, 20, colorText)
}
