package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/content"
)

func TestToastExpiresOnItsOwn(t *testing.T) {
	toast := newEmailToast(content.EmailTemplate{Sender: "Boss"}, 10*time.Second, nil)
	toast.Update(9 * time.Second)
	if toast.CloseRequested() {
		t.Fatal("toast closed early")
	}
	toast.Update(2 * time.Second)
	if !toast.CloseRequested() {
		t.Fatal("expired toast still open")
	}
}

func TestToastClickOpensAndDismisses(t *testing.T) {
	var opened *content.EmailTemplate
	email := content.EmailTemplate{Sender: "Boss", Subject: "Status?"}
	toast := newEmailToast(email, 10*time.Second, func(e content.EmailTemplate) { opened = &e })
	toast.Click(rl.NewVector2(0, 0), rl.NewRectangle(0, 0, 300, 78))
	if opened == nil || opened.Subject != "Status?" {
		t.Fatalf("open callback got %+v", opened)
	}
	if !toast.CloseRequested() {
		t.Fatal("clicked toast should request close")
	}
}

func TestBannerQueueShowsOneAtATime(t *testing.T) {
	var q bannerQueue
	q.Push("first")
	q.Push("second")

	q.Advance(time.Millisecond)
	if msg, ok := q.Active(); !ok || msg != "first" {
		t.Fatalf("active = %q %v, want first", msg, ok)
	}
	q.Advance(bannerLifetime / 2)
	if msg, _ := q.Active(); msg != "first" {
		t.Fatalf("banner rotated early to %q", msg)
	}
	q.Advance(bannerLifetime)
	if msg, ok := q.Active(); !ok || msg != "second" {
		t.Fatalf("active = %q %v, want second", msg, ok)
	}
	q.Advance(2 * bannerLifetime)
	if _, ok := q.Active(); ok {
		t.Fatal("queue should drain")
	}
}
