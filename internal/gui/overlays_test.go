package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/content"
)

func testScript() content.PhoneScript {
	return content.PhoneScript{
		Caller: "Ted from Accounts",
		Number: "0151 496 0000",
		Turns: []content.Turn{
			{Speaker: "caller", Text: "Hello?"},
			{Speaker: "player", Text: "Hi Ted."},
		},
	}
}

func TestPhoneCallTypesOneCharacterPerDelay(t *testing.T) {
	c := newPhoneCall(testScript().Turns)
	c.Advance(3 * charDelay)
	turns := c.VisibleTurns()
	if len(turns) != 1 {
		t.Fatalf("visible turns = %d, want 1", len(turns))
	}
	if !turns[0].Partial || turns[0].Text != "Hel" {
		t.Fatalf("partial turn = %+v, want Hel in progress", turns[0])
	}
}

func TestPhoneCallPausesBetweenTurns(t *testing.T) {
	c := newPhoneCall(testScript().Turns)
	c.Advance(time.Duration(len("Hello?")) * charDelay)
	if c.turn != 1 {
		t.Fatalf("turn = %d after first line, want 1", c.turn)
	}
	// Pause eats time before the next line starts typing.
	c.Advance(turnPause / 2)
	if len(c.VisibleTurns()) != 1 {
		t.Fatalf("expected only the finished line during the pause, got %d", len(c.VisibleTurns()))
	}
	c.Advance(turnPause/2 + time.Duration(len("Hi Ted."))*charDelay)
	if !c.Done() {
		t.Fatal("expected conversation done")
	}
	if got := len(c.VisibleTurns()); got != 2 {
		t.Fatalf("visible turns = %d, want 2", got)
	}
}

func TestPhoneOverlayAnswerStartsConversation(t *testing.T) {
	o := newPhoneOverlay(testScript())
	b := o.answerButton(1920, 1080)
	o.ClickAt(rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2), 1920, 1080)
	if o.stage != phoneTalking || !o.Answered() {
		t.Fatalf("stage=%v answered=%v after answer click", o.stage, o.Answered())
	}
}

func TestPhoneOverlayDeclineCloses(t *testing.T) {
	o := newPhoneOverlay(testScript())
	b := o.declineButton(1920, 1080)
	o.ClickAt(rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2), 1920, 1080)
	if !o.Closed() || o.Answered() {
		t.Fatalf("closed=%v answered=%v after decline", o.Closed(), o.Answered())
	}
}

func TestPhoneOverlayClosesAfterConversationEnds(t *testing.T) {
	o := newPhoneOverlay(testScript())
	o.answered = true
	o.stage = phoneTalking
	o.call = newPhoneCall(testScript().Turns)
	o.Advance(time.Minute)
	if o.stage != phoneOver {
		t.Fatalf("stage = %v, want phoneOver", o.stage)
	}
	o.Advance(2 * time.Second)
	if !o.Closed() {
		t.Fatal("expected overlay closed after linger")
	}
}

func TestDiscordOverlayDismissOnlyOnButton(t *testing.T) {
	o := newDiscordOverlay([]content.ChatLine{{From: "server", Text: "@everyone"}})
	if o.ClickAt(rl.NewVector2(5, 5), 1920, 1080) {
		t.Fatal("stray click dismissed the overlay")
	}
	b := o.dismissButton(1920, 1080)
	if !o.ClickAt(rl.NewVector2(b.X+10, b.Y+10), 1920, 1080) {
		t.Fatal("button click did not dismiss")
	}
}
