package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/content"
)

// ---------------------------------------------------------------------------
// Discord takeover. Fullscreen, blocks every other surface until dismissed.
// ---------------------------------------------------------------------------

type discordOverlay struct {
	lines     []content.ChatLine
	elapsed   time.Duration
	dismissed bool
}

func newDiscordOverlay(lines []content.ChatLine) *discordOverlay {
	return &discordOverlay{lines: lines}
}

func (o *discordOverlay) Advance(delta time.Duration) {
	o.elapsed += delta
}

func (o *discordOverlay) dismissButton(width, height int32) rl.Rectangle {
	return rl.NewRectangle(float32(width)/2-90, float32(height)/2+160, 180, 44)
}

// ClickAt dismisses on the button and reports whether the overlay is done.
func (o *discordOverlay) ClickAt(p rl.Vector2, width, height int32) bool {
	b := o.dismissButton(width, height)
	if p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height {
		o.dismissed = true
	}
	return o.dismissed
}

func (o *discordOverlay) draw(width, height int32) {
	rl.DrawRectangle(0, 0, width, height, rl.Fade(colorDiscord, 0.92))
	panel := rl.NewRectangle(float32(width)/2-340, float32(height)/2-200, 680, 330)
	rl.DrawRectangleRounded(panel, 0.06, 8, rl.Fade(rl.Black, 0.55))
	drawTextCentered("DISCORD", panel, 18, 34, colorText)
	y := int32(panel.Y) + 74
	for _, line := range o.lines {
		rl.DrawText(line.From+": "+line.Text, int32(panel.X)+28, y, 18, colorText)
		y += 30
	}
	pulse := float32(0.6 + 0.4*math.Abs(math.Sin(o.elapsed.Seconds()*3)))
	b := o.dismissButton(width, height)
	rl.DrawRectangleRounded(b, 0.3, 8, rl.Fade(colorText, 0.2*pulse))
	rl.DrawRectangleRoundedLinesEx(b, 0.3, 8, 2, colorText)
	drawTextCentered("Back to work", b, 12, 18, colorText)
}

// ---------------------------------------------------------------------------
// Phone call. The conversation types itself out turn by turn while audio
// bars wiggle; the player only answers, listens, and hangs up.
// ---------------------------------------------------------------------------

const (
	charDelay = 50 * time.Millisecond
	turnPause = 800 * time.Millisecond
)

type visibleTurn struct {
	Speaker string
	Text    string
	Partial bool
}

// phoneCall drives the typewriter reveal, independent of rendering.
type phoneCall struct {
	turns   []content.Turn
	turn    int
	shown   int // runes revealed of the current turn
	typing  time.Duration
	pausing time.Duration
}

func newPhoneCall(turns []content.Turn) *phoneCall {
	return &phoneCall{turns: turns}
}

func (c *phoneCall) Advance(delta time.Duration) {
	if c.Done() {
		return
	}
	if c.pausing > 0 {
		c.pausing -= delta
		if c.pausing > 0 {
			return
		}
		delta = -c.pausing
		c.pausing = 0
	}
	current := []rune(c.turns[c.turn].Text)
	c.typing += delta
	for c.typing >= charDelay && c.shown < len(current) {
		c.typing -= charDelay
		c.shown++
	}
	if c.shown >= len(current) {
		c.turn++
		c.shown = 0
		c.typing = 0
		if !c.Done() {
			c.pausing = turnPause
		}
	}
}

func (c *phoneCall) Done() bool {
	return c.turn >= len(c.turns)
}

// VisibleTurns returns every fully revealed turn plus the partially typed
// current one.
func (c *phoneCall) VisibleTurns() []visibleTurn {
	out := make([]visibleTurn, 0, c.turn+1)
	for i := 0; i < c.turn && i < len(c.turns); i++ {
		out = append(out, visibleTurn{Speaker: c.turns[i].Speaker, Text: c.turns[i].Text})
	}
	if !c.Done() && c.shown > 0 {
		runes := []rune(c.turns[c.turn].Text)
		out = append(out, visibleTurn{
			Speaker: c.turns[c.turn].Speaker,
			Text:    string(runes[:c.shown]),
			Partial: true,
		})
	}
	return out
}

type phoneStage int

const (
	phoneRinging phoneStage = iota
	phoneTalking
	phoneOver
)

type phoneOverlay struct {
	script   content.PhoneScript
	stage    phoneStage
	call     *phoneCall
	elapsed  time.Duration
	linger   time.Duration
	answered bool
	closed   bool
}

func newPhoneOverlay(script content.PhoneScript) *phoneOverlay {
	return &phoneOverlay{script: script}
}

func (o *phoneOverlay) Advance(delta time.Duration) {
	o.elapsed += delta
	switch o.stage {
	case phoneTalking:
		o.call.Advance(delta)
		if o.call.Done() {
			o.stage = phoneOver
			o.linger = 1500 * time.Millisecond
		}
	case phoneOver:
		o.linger -= delta
		if o.linger <= 0 {
			o.closed = true
		}
	}
}

func (o *phoneOverlay) Closed() bool { return o.closed }

func (o *phoneOverlay) Answered() bool { return o.answered }

func (o *phoneOverlay) answerButton(width, height int32) rl.Rectangle {
	return rl.NewRectangle(float32(width)/2-170, float32(height)/2+70, 150, 44)
}

func (o *phoneOverlay) declineButton(width, height int32) rl.Rectangle {
	return rl.NewRectangle(float32(width)/2+20, float32(height)/2+70, 150, 44)
}

func (o *phoneOverlay) hangUpButton(width, height int32) rl.Rectangle {
	return rl.NewRectangle(float32(width)/2-75, float32(height)/2+190, 150, 40)
}

func (o *phoneOverlay) ClickAt(p rl.Vector2, width, height int32) {
	hit := func(b rl.Rectangle) bool {
		return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
	}
	switch o.stage {
	case phoneRinging:
		if hit(o.answerButton(width, height)) {
			o.answered = true
			o.stage = phoneTalking
			o.call = newPhoneCall(o.script.Turns)
		}
		if hit(o.declineButton(width, height)) {
			o.closed = true
		}
	case phoneTalking:
		if hit(o.hangUpButton(width, height)) {
			o.closed = true
		}
	}
}

func (o *phoneOverlay) draw(width, height int32) {
	rl.DrawRectangle(0, 0, width, height, rl.Fade(rl.Black, 0.6))
	switch o.stage {
	case phoneRinging:
		panel := rl.NewRectangle(float32(width)/2-220, float32(height)/2-130, 440, 260)
		drawPanel(panel, "Incoming call")
		wobble := int32(math.Sin(o.elapsed.Seconds()*18) * 4)
		drawTextCentered(o.script.Caller, panel, 70+wobble, 26, colorText)
		drawTextCentered(o.script.Number, panel, 110, 18, colorDim)
		a := o.answerButton(width, height)
		rl.DrawRectangleRounded(a, 0.3, 8, rl.Fade(colorGood, 0.3))
		rl.DrawRectangleRoundedLinesEx(a, 0.3, 8, 2, colorGood)
		drawTextCentered("Answer", a, 12, 18, colorGood)
		d := o.declineButton(width, height)
		rl.DrawRectangleRounded(d, 0.3, 8, rl.Fade(colorDanger, 0.3))
		rl.DrawRectangleRoundedLinesEx(d, 0.3, 8, 2, colorDanger)
		drawTextCentered("Decline", d, 12, 18, colorDanger)
	case phoneTalking, phoneOver:
		panel := rl.NewRectangle(float32(width)/2-320, float32(height)/2-220, 640, 400)
		drawPanel(panel, fmt.Sprintf("On call with %s", o.script.Caller))
		o.drawAudioBars(panel)
		y := int32(panel.Y) + 96
		for _, t := range o.call.VisibleTurns() {
			clr := colorText
			if t.Speaker == "player" {
				clr = colorAccent
			}
			cursor := ""
			if t.Partial {
				cursor = "_"
			}
			rl.DrawText(t.Speaker+": "+t.Text+cursor, int32(panel.X)+24, y, 16, clr)
			y += 24
		}
		if o.stage == phoneTalking {
			b := o.hangUpButton(width, height)
			rl.DrawRectangleRounded(b, 0.3, 8, rl.Fade(colorDanger, 0.3))
			rl.DrawRectangleRoundedLinesEx(b, 0.3, 8, 2, colorDanger)
			drawTextCentered("Hang up", b, 10, 16, colorDanger)
		} else {
			drawTextCentered("Call ended", panel, int32(panel.Height)-36, 16, colorDim)
		}
	}
}

func (o *phoneOverlay) drawAudioBars(panel rl.Rectangle) {
	baseY := panel.Y + 76
	for i := 0; i < 12; i++ {
		h := float32(6 + 18*math.Abs(math.Sin(o.elapsed.Seconds()*7+float64(i)*0.9)))
		if o.stage == phoneOver {
			h = 4
		}
		x := panel.X + 24 + float32(i)*14
		rl.DrawRectangleRec(rl.NewRectangle(x, baseY-h, 9, h), rl.Fade(colorGood, 0.8))
	}
}
