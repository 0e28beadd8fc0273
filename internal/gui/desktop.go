package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/menu-sim/internal/content"
	"github.com/appengine-ltd/menu-sim/internal/game"
	"github.com/appengine-ltd/menu-sim/internal/wm"
)

const (
	toastWidth    = 300
	toastHeight   = 78
	toastLifetime = 10 * time.Second
)

func starterItems() (inventory, loot []wm.Item) {
	inventory = []wm.Item{
		{ID: "stapler", Name: "Stapler", Tint: rl.NewColor(214, 93, 93, 255)},
		{ID: "mug", Name: "Mug", Tint: rl.NewColor(222, 165, 75, 255)},
		{ID: "report-q3", Name: "Q3 report", Tint: rl.NewColor(96, 148, 222, 255)},
		{ID: "charger", Name: "Charger", Tint: rl.NewColor(150, 150, 158, 255)},
		{ID: "plant", Name: "Plant", Tint: rl.NewColor(97, 186, 106, 255)},
	}
	loot = []wm.Item{
		{ID: "beans", Name: "Beans", Tint: rl.NewColor(170, 120, 70, 255)},
		{ID: "bandage", Name: "Bandage", Tint: rl.NewColor(226, 226, 226, 255)},
		{ID: "hammer", Name: "Hammer", Tint: rl.NewColor(120, 120, 130, 255)},
	}
	return inventory, loot
}

// spawnDesktop lays out the permanent overlapping windows once, when the
// player clocks in.
func (ui *gameUI) spawnDesktop() {
	w := float32(ui.width)
	h := float32(ui.height)
	invItems, lootItems := starterItems()

	ui.inv = newInventoryContent(invItems)
	ui.loot = newLootContent(lootItems)
	ui.ftl = newFTLContent(newCircleField(ui.schedRNG))
	ui.ftl.onPop = func() { ui.sounds.Play("pop") }
	ui.outlook = newOutlookContent()
	ui.outlook.onOpen = ui.openInboxEmail
	ui.activity = newActivityContent(ui.state)
	ui.messages = newMessagesContent(func(string) { ui.state.OnReplySent(); ui.sounds.Play("send") })
	ui.slack = newSlackContent(ui.store.SlackChannels(3))

	ui.mgr.Spawn("My Stuff", rl.NewRectangle(w*0.03, h*0.10, 380, 420), ui.inv)
	ui.mgr.Spawn("Project Zomboid", rl.NewRectangle(w*0.24, h*0.14, 420, 390), ui.loot)
	ui.mgr.Spawn("FTL: Faster Than Light", rl.NewRectangle(w*0.48, h*0.09, 520, 400), ui.ftl)
	ui.mgr.Spawn("Outlook", rl.NewRectangle(w*0.10, h*0.50, 560, 430), ui.outlook)
	ui.mgr.Spawn("Messages", rl.NewRectangle(w*0.42, h*0.54, 460, 360), ui.messages)
	ui.mgr.Spawn("Slack", rl.NewRectangle(w*0.66, h*0.50, 480, 380), ui.slack)
	ui.mgr.Spawn("Calvelli - Activity", rl.NewRectangle(w*0.74, h*0.07, 440, 380), ui.activity)

	// A first wave so the game windows are not empty at clock-in.
	ui.ftl.field.SpawnWave(3)
}

func (ui *gameUI) updateDesktop(now time.Time, delta time.Duration) {
	// Fullscreen interruptions swallow every input until dismissed.
	if ui.discord != nil {
		ui.discord.Advance(delta)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if ui.discord.ClickAt(rl.GetMousePosition(), ui.width, ui.height) {
				ui.state.OnInterruptionDismissed()
				ui.discord = nil
			}
		}
		ui.tickWorld(now, delta)
		return
	}
	if ui.phone != nil {
		ui.phone.Advance(delta)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			ui.phone.ClickAt(rl.GetMousePosition(), ui.width, ui.height)
		}
		if ui.phone.Closed() {
			ui.state.OnInterruptionDismissed()
			ui.phone = nil
		}
		ui.tickWorld(now, delta)
		return
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		ui.mgr.CycleFocus()
	}
	ui.handleTyping()

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		ui.mgr.DispatchPointerDown(mouse)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		ui.mgr.DispatchPointerMove(mouse)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		ui.mgr.DispatchPointerUp(mouse)
	}

	ui.runSchedulers(delta)
	ui.tickWorld(now, delta)
}

// tickWorld advances everything that keeps moving even under a modal
// interruption: window contents, banners, delayed emails, hidden progress.
func (ui *gameUI) tickWorld(now time.Time, delta time.Duration) {
	kept := ui.pendingCongrats[:0]
	for _, o := range ui.pendingCongrats {
		if o.Advance(delta) {
			if email, ok := ui.store.RandomEmail(content.ChannelCongratulatory); ok {
				ui.spawnToast(email)
			}
			continue
		}
		if o.Pending() {
			kept = append(kept, o)
		}
	}
	ui.pendingCongrats = kept

	ui.banners.Advance(delta)
	ui.mgr.Update(delta)

	if ui.state.Tick(now, delta) {
		ui.log.Info("day complete", zap.Duration("elapsed", ui.state.Stats(now).Elapsed))
		ui.beginEnding()
	}
}

func (ui *gameUI) runSchedulers(delta time.Duration) {
	for i := ui.emailToastSched.Advance(delta); i > 0; i-- {
		if email, ok := ui.store.RandomEmail(content.ChannelRegular); ok {
			ui.spawnToast(email)
		}
	}
	for i := ui.outlookSched.Advance(delta); i > 0; i-- {
		channel := content.ChannelRegular
		if ui.schedRNG.Float64() < 0.3 {
			channel = content.ChannelCongratulatory
		}
		email, ok := ui.store.NextEmail(channel)
		if !ok {
			email, _ = ui.store.RandomEmail(channel)
		}
		ui.outlook.Push(email, ui.schedRNG.Float64() < 0.3)
		ui.sounds.Play("notify")
	}
	for i := ui.messagesSched.Advance(delta); i > 0; i-- {
		line := ui.store.RandomChatLine()
		ui.messages.Push(line)
		ui.spawnChatToast("Messages", line, colorAccent, wm.KindMessages)
	}
	for i := ui.slackSched.Advance(delta); i > 0; i-- {
		line := ui.store.RandomDiscordLine()
		channel := ui.slack.channels[ui.schedRNG.IntN(len(ui.slack.channels))]
		ui.slack.Push(channel, line)
		ui.spawnChatToast(channel, line, colorDiscord, wm.KindSlack)
	}
	for i := ui.activitySched.Advance(delta); i > 0; i-- {
		ui.recordActivity(delta)
	}
	for i := ui.circleSched.Advance(delta); i > 0; i-- {
		ui.ftl.field.SpawnWave(2 + ui.schedRNG.IntN(3))
	}
	if ui.interruptSched.Advance(delta) > 0 {
		ui.discord = newDiscordOverlay(ui.discordLines())
		ui.sounds.Play("notify")
	}
	if ui.discord == nil && ui.phoneSched.Advance(delta) > 0 {
		ui.phone = newPhoneOverlay(ui.store.RandomPhoneScript())
		ui.sounds.Play("ring")
	}
}

// recordActivity is Calvelli actually doing the work: a log line, a visible
// burst on the hidden meter, and a congratulatory email a moment later.
func (ui *gameUI) recordActivity(time.Duration) {
	line := ui.store.RandomActivity()
	ui.activity.Push(line)
	burst := 5 + ui.schedRNG.Float64()*7.5
	applied := ui.state.Progress.Add(burst)
	if applied > 0 {
		ui.activity.PushBurst(applied)
	}
	delay := time.Second + time.Duration(ui.schedRNG.Float64()*2*float64(time.Second))
	ui.pendingCongrats = append(ui.pendingCongrats, game.NewOneShot(delay))
	ui.log.Debug("activity recorded", zap.String("line", line), zap.Float64("burst", applied))
}

func (ui *gameUI) discordLines() []content.ChatLine {
	lines := []content.ChatLine{{From: "server", Text: ui.store.RandomInterrupt()}}
	for i := 0; i < 3; i++ {
		lines = append(lines, ui.store.RandomDiscordLine())
	}
	return lines
}

func (ui *gameUI) toastRect() rl.Rectangle {
	stack := 0
	for _, w := range ui.mgr.Windows() {
		if w.Kind() == wm.KindPopup {
			stack++
		}
	}
	x := float32(ui.width) - toastWidth - 24
	y := float32(ui.height) - float32(stack+1)*(toastHeight+12) - 24
	return rl.NewRectangle(x, y, toastWidth, toastHeight)
}

func (ui *gameUI) spawnToast(email content.EmailTemplate) {
	ui.mgr.SpawnPopup(ui.toastRect(), newEmailToast(email, toastLifetime, ui.openEmail))
	ui.sounds.Play("notify")
}

// spawnChatToast pings the corner; clicking it raises the chat window.
func (ui *gameUI) spawnChatToast(header string, line content.ChatLine, accent rl.Color, raises wm.Kind) {
	toast := newToastContent(header, line.From, line.Text, accent, toastLifetime, func() {
		if w := ui.mgr.FindKind(raises); w != nil {
			ui.mgr.Raise(w.Handle())
		}
	})
	ui.mgr.SpawnPopup(ui.toastRect(), toast)
	ui.sounds.Play("notify")
}

// openInboxEmail opens a mail clicked inside Outlook, keeping its entry so a
// reply can mark it even after newer mail shifts the list.
func (ui *gameUI) openInboxEmail(e *inboxEntry) {
	if e == nil {
		return
	}
	ui.openEmailAt(e.email, e)
}

// openEmail opens a mail that has no inbox row (toast clicks).
func (ui *gameUI) openEmail(email content.EmailTemplate) {
	ui.openEmailAt(email, nil)
}

func (ui *gameUI) openEmailAt(email content.EmailTemplate, entry *inboxEntry) {
	view := newEmailViewContent(email, entry, ui.openReply)
	x := float32(ui.width)/2 - 230 + float32(ui.mgr.Len()%5)*18
	y := float32(ui.height)/2 - 180 + float32(ui.mgr.Len()%5)*18
	ui.mgr.Spawn(email.Subject, rl.NewRectangle(x, y, 460, 360), view)
}

func (ui *gameUI) openReply(view *emailViewContent) {
	rc := newReplyContent(view.email, func(string) {
		ui.state.OnReplySent()
		if view.entry != nil {
			view.entry.replied = true
		}
		ui.sounds.Play("send")
	})
	x := float32(ui.width)/2 - 200
	y := float32(ui.height)/2 - 140
	ui.mgr.Spawn("RE: "+view.email.Subject, rl.NewRectangle(x, y, 440, 300), rc)
}

// handleTyping routes the keyboard to whichever focused window takes text.
func (ui *gameUI) handleTyping() {
	w := ui.mgr.Window(ui.mgr.Focused())
	if w == nil {
		return
	}
	switch c := w.Content().(type) {
	case *replyContent:
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			if ch >= 32 && ch <= 126 {
				c.Keystroke(rune(ch))
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			c.Backspace()
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			c.Send()
		}
	case *messagesContent:
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			if ch >= 32 && ch <= 126 {
				c.Keystroke(rune(ch))
			}
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			c.Backspace()
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			c.Send()
		}
	}
}

func (ui *gameUI) drawDesktop() {
	// Desktop wallpaper gradient.
	rl.DrawRectangleGradientV(0, 0, ui.width, ui.height, colorDesktop, rl.NewColor(8, 20, 34, 255))
	ui.mgr.DrawAll()
	ui.banners.draw(ui.width)
	if ui.phone != nil {
		ui.phone.draw(ui.width, ui.height)
	}
	if ui.discord != nil {
		ui.discord.draw(ui.width, ui.height)
	}
}
