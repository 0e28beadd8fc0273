package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/menu-sim/internal/config"
	"github.com/appengine-ltd/menu-sim/internal/content"
	"github.com/appengine-ltd/menu-sim/internal/game"
	"github.com/appengine-ltd/menu-sim/internal/wm"
)

func testUI(t *testing.T) *gameUI {
	t.Helper()
	conf := config.Default()
	conf.Seed = 4242
	return newGameUI(AppConfig{Version: "test", NoUpdate: true}, conf, zap.NewNop())
}

func TestSpawnDesktopCreatesPermanentWindows(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()

	if ui.mgr.Len() != 7 {
		t.Fatalf("window count = %d, want 7", ui.mgr.Len())
	}
	for _, kind := range []wm.Kind{
		wm.KindInventory, wm.KindZomboid, wm.KindFTL, wm.KindOutlook,
		wm.KindMessages, wm.KindSlack, wm.KindActivityLog,
	} {
		if ui.mgr.FindKind(kind) == nil {
			t.Fatalf("missing %s window", kind)
		}
	}
	if ui.ftl.field.Active() == 0 {
		t.Fatal("expected an opening circle wave")
	}
}

func TestRecordActivityBurstsProgressAndQueuesCongratulations(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()

	before := ui.state.Progress.Value()
	ui.recordActivity(0)

	if got := ui.state.Progress.Value(); got <= before {
		t.Fatalf("progress %v did not rise", got)
	}
	if len(ui.activity.lines) != 1 || len(ui.activity.bursts) != 1 {
		t.Fatalf("activity lines=%d bursts=%d, want 1 and 1", len(ui.activity.lines), len(ui.activity.bursts))
	}
	if len(ui.pendingCongrats) != 1 {
		t.Fatalf("pending congratulations = %d, want 1", len(ui.pendingCongrats))
	}
}

func TestCongratulatoryToastArrivesAfterDelay(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()
	ui.recordActivity(0)

	// Delays are between one and three seconds.
	ui.tickWorld(time.Now(), 4*time.Second)

	if len(ui.pendingCongrats) != 0 {
		t.Fatalf("pending congratulations = %d after delay, want 0", len(ui.pendingCongrats))
	}
	if ui.mgr.FindKind(wm.KindPopup) == nil {
		t.Fatal("expected a congratulatory toast window")
	}
}

func TestMilestoneCrossingQueuesBanner(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())

	ui.state.Progress.Add(30)
	ui.banners.Advance(time.Millisecond)
	if msg, ok := ui.banners.Active(); !ok || msg == "" {
		t.Fatalf("expected milestone banner, got %q %v", msg, ok)
	}
}

func TestDayCompletionEntersEndingWithFrozenStats(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()
	ui.state.OnItemMoved()
	ui.state.OnItemMoved()

	ui.state.Progress.Add(200)
	ui.tickWorld(time.Now(), time.Millisecond)

	if ui.state.Phase != game.PhaseEnding {
		t.Fatalf("phase = %v, want ending", ui.state.Phase)
	}
	if len(ui.ending.particles) == 0 {
		t.Fatal("expected confetti particles")
	}
	if ui.ending.stats.ItemsMoved != 2 {
		t.Fatalf("frozen items moved = %d, want 2", ui.ending.stats.ItemsMoved)
	}
	if ui.ending.stats.ActualWorkDone != 0 || ui.ending.stats.CalvelliWorkDone != 100 {
		t.Fatalf("work split = %v/%v, want 0/100", ui.ending.stats.ActualWorkDone, ui.ending.stats.CalvelliWorkDone)
	}
}

func TestOutlookReplyFlowMarksEntry(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()

	email, _ := ui.store.NextEmail(content.ChannelRegular)
	ui.outlook.Push(email, false)
	opened := ui.outlook.entries[0]
	ui.openInboxEmail(opened)

	view := ui.mgr.FindKind(wm.KindEmailView)
	if view == nil {
		t.Fatal("expected an opened email window")
	}
	ui.openReply(view.Content().(*emailViewContent))

	rw := ui.mgr.FindKind(wm.KindReply)
	if rw == nil {
		t.Fatal("expected a reply window")
	}
	rc := rw.Content().(*replyContent)
	rc.Keystroke('x')

	// New mail lands while the reply is being typed, shifting the inbox.
	later, _ := ui.store.NextEmail(content.ChannelRegular)
	ui.outlook.Push(later, false)

	rc.Send()

	if !rc.CloseRequested() {
		t.Fatal("sent reply should close its window")
	}
	if !opened.replied {
		t.Fatal("opened entry not marked replied")
	}
	if ui.outlook.entries[0].replied {
		t.Fatal("newer mail wrongly marked replied")
	}
	if ui.outlook.entries[1] != opened {
		t.Fatal("opened entry no longer second after newer mail")
	}
	stats := ui.state.Stats(time.Now())
	if stats.RepliesSent != 1 {
		t.Fatalf("replies sent = %d, want 1", stats.RepliesSent)
	}
}

func TestOutlookClickSkipsHeaderAndHiddenRows(t *testing.T) {
	c := newOutlookContent()
	opened := 0
	c.onOpen = func(*inboxEntry) { opened++ }
	for i := 0; i < 10; i++ {
		c.Push(content.EmailTemplate{Sender: "Dana", Subject: "minutes"}, false)
	}
	// Room for three rows below the header.
	area := rl.NewRectangle(0, 0, 520, 34+3*inboxRow+10)

	if !c.Click(rl.NewVector2(outlookSidebar+20, 10), area) {
		t.Fatal("header click should be consumed")
	}
	if opened != 0 || !c.entries[0].unread {
		t.Fatalf("header click opened a row: opened=%d unread=%v", opened, c.entries[0].unread)
	}

	if c.Click(rl.NewVector2(outlookSidebar+20, 34+3*inboxRow+5), area) {
		t.Fatal("click below the last drawn row should not land")
	}

	if !c.Click(rl.NewVector2(outlookSidebar+20, 34+inboxRow+5), area) {
		t.Fatal("row click should be consumed")
	}
	if opened != 1 || c.entries[1].unread {
		t.Fatalf("second row not opened: opened=%d unread=%v", opened, c.entries[1].unread)
	}
}

func TestInterruptionDismissalsCount(t *testing.T) {
	ui := testUI(t)
	ui.state.BeginRun(time.Now())
	ui.spawnDesktop()

	ui.discord = newDiscordOverlay(ui.discordLines())
	ui.discord.dismissed = true
	if ui.discord.ClickAt(rl.NewVector2(0, 0), ui.width, ui.height) {
		ui.state.OnInterruptionDismissed()
		ui.discord = nil
	}
	if ui.discord != nil {
		t.Fatal("overlay should be gone")
	}
	if ui.state.Stats(time.Now()).InterruptionsDismissed != 1 {
		t.Fatalf("dismissals = %d, want 1", ui.state.Stats(time.Now()).InterruptionsDismissed)
	}
}
