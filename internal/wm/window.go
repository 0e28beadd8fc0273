package wm

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Handle int

// Kind tags the content variant behind a window. The window chrome is shared;
// everything inside the content area is supplied by the variant.
type Kind string

const (
	KindInventory   Kind = "inventory"
	KindFTL         Kind = "ftl"
	KindZomboid     Kind = "zomboid"
	KindOutlook     Kind = "outlook"
	KindMessages    Kind = "messages"
	KindSlack       Kind = "slack"
	KindActivityLog Kind = "activity_log"
	KindEmailView   Kind = "email_view"
	KindReply       Kind = "reply"
	KindPhone       Kind = "phone"
	KindPopup       Kind = "popup"
)

const (
	TitleBarHeight  = 36
	closeButtonSize = 20
)

// Item is a draggable unit that lives inside exactly one container content at
// a time. Transfers between containers go through the manager and are atomic.
type Item struct {
	ID   string
	Name string
	Tint rl.Color
}

// Content is the behavior a window variant plugs into the shared chrome.
// Draw receives the content area in screen coordinates every frame.
type Content interface {
	Kind() Kind
	Update(delta time.Duration)
	Draw(area rl.Rectangle)
	Click(p rl.Vector2, area rl.Rectangle) bool
}

// Container is the optional capability for contents that hold draggable
// items. Remove is only called after the destination accepted the item, so an
// item is never in flight without a home.
type Container interface {
	ItemAt(p rl.Vector2, area rl.Rectangle) (Item, bool)
	Accepts(item Item) bool
	Insert(item Item)
	Remove(id string) (Item, bool)
}

// Closable lets a content ask the manager to close its window during the
// update pass (reply sent, popup expired).
type Closable interface {
	CloseRequested() bool
}

type Window struct {
	handle    Handle
	rect      rl.Rectangle
	title     string
	content   Content
	frameless bool

	dragging   bool
	dragOffset rl.Vector2
}

func (w *Window) Handle() Handle { return w.handle }

func (w *Window) Rect() rl.Rectangle { return w.rect }

func (w *Window) Title() string { return w.title }

func (w *Window) Content() Content { return w.content }

func (w *Window) Kind() Kind { return w.content.Kind() }

func (w *Window) Frameless() bool { return w.frameless }

func (w *Window) Dragging() bool { return w.dragging }

func (w *Window) MoveTo(x, y float32) {
	w.rect.X = x
	w.rect.Y = y
}

func (w *Window) HitTest(p rl.Vector2) bool {
	return pointInRect(p, w.rect)
}

func (w *Window) TitleBarRect() rl.Rectangle {
	if w.frameless {
		return rl.Rectangle{}
	}
	return rl.NewRectangle(w.rect.X, w.rect.Y, w.rect.Width, TitleBarHeight)
}

func (w *Window) CloseButtonRect() rl.Rectangle {
	if w.frameless {
		return rl.Rectangle{}
	}
	return rl.NewRectangle(w.rect.X+w.rect.Width-closeButtonSize-8, w.rect.Y+8, closeButtonSize, closeButtonSize)
}

// ContentArea is the window rect minus the title bar; frameless popups are
// all content.
func (w *Window) ContentArea() rl.Rectangle {
	if w.frameless {
		return w.rect
	}
	return rl.NewRectangle(w.rect.X, w.rect.Y+TitleBarHeight, w.rect.Width, w.rect.Height-TitleBarHeight)
}

func pointInRect(p rl.Vector2, r rl.Rectangle) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
