package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/menu-sim/internal/content"
	"github.com/appengine-ltd/menu-sim/internal/game"
	"github.com/appengine-ltd/menu-sim/internal/reply"
	"github.com/appengine-ltd/menu-sim/internal/wm"
)

const (
	gridCell    = 72
	gridPadding = 10
	inboxRow    = 56
)

// itemGrid is the shared drag-and-drop surface behind the inventory and the
// loot window. Items sit in a left-to-right, top-to-bottom grid.
type itemGrid struct {
	items []wm.Item
}

func (g *itemGrid) cols(area rl.Rectangle) int {
	c := int((area.Width - gridPadding) / (gridCell + gridPadding))
	if c < 1 {
		c = 1
	}
	return c
}

func (g *itemGrid) cellRect(area rl.Rectangle, i int) rl.Rectangle {
	cols := g.cols(area)
	col := i % cols
	row := i / cols
	x := area.X + gridPadding + float32(col)*(gridCell+gridPadding)
	y := area.Y + 40 + float32(row)*(gridCell+gridPadding)
	return rl.NewRectangle(x, y, gridCell, gridCell)
}

func (g *itemGrid) ItemAt(p rl.Vector2, area rl.Rectangle) (wm.Item, bool) {
	for i, item := range g.items {
		r := g.cellRect(area, i)
		if p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height {
			return item, true
		}
	}
	return wm.Item{}, false
}

func (g *itemGrid) Accepts(wm.Item) bool { return true }

func (g *itemGrid) Insert(item wm.Item) { g.items = append(g.items, item) }

func (g *itemGrid) Remove(id string) (wm.Item, bool) {
	for i, item := range g.items {
		if item.ID == id {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return item, true
		}
	}
	return wm.Item{}, false
}

func (g *itemGrid) Len() int { return len(g.items) }

func (g *itemGrid) draw(area rl.Rectangle) {
	for i, item := range g.items {
		r := g.cellRect(area, i)
		rl.DrawRectangleRounded(r, 0.15, 6, rl.Fade(item.Tint, 0.35))
		rl.DrawRectangleRoundedLinesEx(r, 0.15, 6, 1.5, item.Tint)
		label := item.Name
		if len(label) > 8 {
			label = label[:8]
		}
		rl.DrawText(label, int32(r.X)+6, int32(r.Y+r.Height)-22, 14, colorText)
	}
}

// ---------------------------------------------------------------------------
// Inventory
// ---------------------------------------------------------------------------

type inventoryContent struct {
	itemGrid
}

func newInventoryContent(items []wm.Item) *inventoryContent {
	c := &inventoryContent{}
	c.items = append(c.items, items...)
	return c
}

func (c *inventoryContent) Kind() wm.Kind { return wm.KindInventory }

func (c *inventoryContent) Update(time.Duration) {}

func (c *inventoryContent) Click(rl.Vector2, rl.Rectangle) bool { return false }

func (c *inventoryContent) Draw(area rl.Rectangle) {
	rl.DrawText(fmt.Sprintf("%d items", len(c.items)), int32(area.X)+12, int32(area.Y)+12, 16, colorDim)
	c.itemGrid.draw(area)
}

// ---------------------------------------------------------------------------
// Project Zomboid loot window
// ---------------------------------------------------------------------------

type lootContent struct {
	itemGrid
	scene   int
	elapsed time.Duration
}

var zomboidScenes = []string{
	"You hear a distant groan.",
	"Rain hammers the roof.",
	"Something shuffles past the window.",
	"The power flickers.",
}

func newLootContent(items []wm.Item) *lootContent {
	c := &lootContent{}
	c.items = append(c.items, items...)
	return c
}

func (c *lootContent) Kind() wm.Kind { return wm.KindZomboid }

// Update cycles the scene line so the window looks alive.
func (c *lootContent) Update(delta time.Duration) {
	c.elapsed += delta
	if c.elapsed >= 6*time.Second {
		c.elapsed = 0
		c.scene = (c.scene + 1) % len(zomboidScenes)
	}
}

func (c *lootContent) Click(rl.Vector2, rl.Rectangle) bool { return false }

func (c *lootContent) Draw(area rl.Rectangle) {
	rl.DrawText("Kitchen counter", int32(area.X)+12, int32(area.Y)+12, 16, colorDim)
	c.itemGrid.draw(area)
	rl.DrawText(zomboidScenes[c.scene], int32(area.X)+12, int32(area.Y+area.Height)-26, 14, rl.Fade(colorDanger, 0.8))
}

// ---------------------------------------------------------------------------
// FTL window with the click-the-circles busywork
// ---------------------------------------------------------------------------

type ftlContent struct {
	field *circleField
	onPop func()
}

func newFTLContent(field *circleField) *ftlContent {
	return &ftlContent{field: field}
}

func (c *ftlContent) Kind() wm.Kind { return wm.KindFTL }

func (c *ftlContent) Update(delta time.Duration) {
	c.field.Advance(delta)
}

func (c *ftlContent) Click(p rl.Vector2, area rl.Rectangle) bool {
	if c.field.ClickAt(p, area) {
		if c.onPop != nil {
			c.onPop()
		}
		return true
	}
	return false
}

func (c *ftlContent) Draw(area rl.Rectangle) {
	rl.DrawRectangleRec(area, rl.NewColor(10, 14, 24, 255))
	rl.DrawText("Shields online. Crew awaiting orders.", int32(area.X)+12, int32(area.Y)+12, 15, colorDim)
	c.field.draw(area, colorAccent)
	rl.DrawText(fmt.Sprintf("tasks handled: %d", c.field.Popped()), int32(area.X)+12, int32(area.Y+area.Height)-24, 14, colorDim)
}

// ---------------------------------------------------------------------------
// Outlook
// ---------------------------------------------------------------------------

type inboxEntry struct {
	email   content.EmailTemplate
	unread  bool
	urgent  bool
	replied bool
}

type outlookContent struct {
	entries []*inboxEntry
	blink   time.Duration
	onOpen  func(e *inboxEntry)
}

func newOutlookContent() *outlookContent {
	return &outlookContent{}
}

func (c *outlookContent) Kind() wm.Kind { return wm.KindOutlook }

func (c *outlookContent) Update(delta time.Duration) {
	c.blink += delta
}

// Push prepends so the newest mail sits at the top like a real inbox. Rows
// are held by pointer: an opened mail keeps its entry while newer mail
// shifts the list under it.
func (c *outlookContent) Push(email content.EmailTemplate, urgent bool) {
	c.entries = append([]*inboxEntry{{email: email, unread: true, urgent: urgent}}, c.entries...)
}

func (c *outlookContent) Unread() int {
	n := 0
	for _, e := range c.entries {
		if e.unread {
			n++
		}
	}
	return n
}

const outlookSidebar = 110

func (c *outlookContent) Click(p rl.Vector2, area rl.Rectangle) bool {
	if p.X < area.X+outlookSidebar {
		// Only the inbox folder does anything; the rest is set dressing.
		return true
	}
	if p.Y < area.Y+34 {
		// Header strip above the first row.
		return true
	}
	idx := int((p.Y - area.Y - 34) / inboxRow)
	if idx < 0 || idx >= len(c.entries) {
		return false
	}
	// Rows that scroll off the bottom are not drawn and not clickable.
	if area.Y+34+float32(idx+1)*inboxRow > area.Y+area.Height {
		return false
	}
	e := c.entries[idx]
	e.unread = false
	if c.onOpen != nil {
		c.onOpen(e)
	}
	return true
}

func (c *outlookContent) Draw(area rl.Rectangle) {
	rl.DrawRectangleRec(rl.NewRectangle(area.X, area.Y, area.Width, 30), rl.Fade(colorOutlook, 0.55))
	rl.DrawText(fmt.Sprintf("Inbox (%d unread)", c.Unread()), int32(area.X)+12, int32(area.Y)+7, 16, colorText)

	side := rl.NewRectangle(area.X, area.Y+30, outlookSidebar, area.Height-30)
	rl.DrawRectangleRec(side, rl.Fade(colorPanel, 0.7))
	for i, folder := range []string{"Inbox", "Sent", "Junk", "Archive"} {
		clr := colorDim
		if i == 0 {
			clr = colorText
			rl.DrawRectangleRec(rl.NewRectangle(side.X, side.Y+8+float32(i)*26-3, side.Width, 24), rl.Fade(colorOutlook, 0.3))
		}
		rl.DrawText(folder, int32(side.X)+10, int32(side.Y)+8+int32(i)*26, 14, clr)
	}

	blinkOn := int(c.blink/(400*time.Millisecond))%2 == 0
	for i, e := range c.entries {
		y := area.Y + 34 + float32(i)*inboxRow
		if y+inboxRow > area.Y+area.Height {
			break
		}
		row := rl.NewRectangle(area.X+outlookSidebar+4, y, area.Width-outlookSidebar-8, inboxRow-4)
		bg := rl.Fade(colorPanel, 0.6)
		if e.unread {
			bg = rl.Fade(colorOutlook, 0.25)
		}
		rl.DrawRectangleRec(row, bg)
		sender := e.email.Sender
		if e.urgent && blinkOn {
			rl.DrawText("URGENT", int32(row.X+row.Width)-84, int32(y)+6, 14, colorDanger)
		}
		if e.replied {
			rl.DrawText("replied", int32(row.X+row.Width)-84, int32(y)+30, 13, colorGood)
		}
		rl.DrawText(sender, int32(row.X)+10, int32(y)+6, 16, colorText)
		rl.DrawText(e.email.Subject, int32(row.X)+10, int32(y)+28, 14, colorDim)
	}
}

// ---------------------------------------------------------------------------
// Opened email
// ---------------------------------------------------------------------------

type emailViewContent struct {
	email   content.EmailTemplate
	entry   *inboxEntry // nil when opened from a toast, not an inbox row
	onReply func(v *emailViewContent)
}

func newEmailViewContent(email content.EmailTemplate, entry *inboxEntry, onReply func(v *emailViewContent)) *emailViewContent {
	return &emailViewContent{email: email, entry: entry, onReply: onReply}
}

func (c *emailViewContent) Kind() wm.Kind { return wm.KindEmailView }

func (c *emailViewContent) Update(time.Duration) {}

func (c *emailViewContent) replyButton(area rl.Rectangle) rl.Rectangle {
	return rl.NewRectangle(area.X+14, area.Y+area.Height-48, 110, 34)
}

func (c *emailViewContent) Click(p rl.Vector2, area rl.Rectangle) bool {
	b := c.replyButton(area)
	if p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height {
		if c.onReply != nil {
			c.onReply(c)
		}
		return true
	}
	return false
}

func (c *emailViewContent) Draw(area rl.Rectangle) {
	rl.DrawText("From: "+c.email.Sender, int32(area.X)+14, int32(area.Y)+10, 16, colorText)
	rl.DrawText("Subject: "+c.email.Subject, int32(area.X)+14, int32(area.Y)+34, 16, colorDim)
	drawWrappedText(c.email.Message, area, 66, 15, colorText)
	b := c.replyButton(area)
	rl.DrawRectangleRounded(b, 0.3, 6, rl.Fade(colorAccent, 0.25))
	rl.DrawRectangleRoundedLinesEx(b, 0.3, 6, 1.5, colorAccent)
	drawTextCentered("Reply", b, 8, 16, colorAccent)
}

// ---------------------------------------------------------------------------
// Reply compose window. Whatever the player types comes out as one of the
// canned responses, one character per keystroke.
// ---------------------------------------------------------------------------

type replyContent struct {
	composer *reply.Composer
	to       string
	subject  string
	sent     bool
	onSend   func(message string)
}

func newReplyContent(email content.EmailTemplate, onSend func(message string)) *replyContent {
	options := email.Responses
	if len(options) == 0 {
		options = content.ReplyOptions()
	}
	return &replyContent{
		composer: reply.NewComposer(options),
		to:       email.Sender,
		subject:  "RE: " + email.Subject,
		onSend:   onSend,
	}
}

func (c *replyContent) Kind() wm.Kind { return wm.KindReply }

func (c *replyContent) Update(time.Duration) {}

func (c *replyContent) Click(rl.Vector2, rl.Rectangle) bool { return false }

func (c *replyContent) CloseRequested() bool { return c.sent }

// Keystroke feeds the composer while the window has focus.
func (c *replyContent) Keystroke(r rune) { c.composer.Keystroke(r) }

func (c *replyContent) Backspace() { c.composer.Backspace() }

// Send fires once; Enter with no progress does nothing.
func (c *replyContent) Send() {
	if c.sent || c.composer.Text() == "" {
		return
	}
	c.sent = true
	if c.onSend != nil {
		c.onSend(c.composer.Message())
	}
}

func (c *replyContent) Draw(area rl.Rectangle) {
	rl.DrawText("To: "+c.to, int32(area.X)+14, int32(area.Y)+10, 15, colorDim)
	rl.DrawText(c.subject, int32(area.X)+14, int32(area.Y)+32, 15, colorDim)
	box := rl.NewRectangle(area.X+14, area.Y+58, area.Width-28, area.Height-112)
	rl.DrawRectangleRec(box, rl.Fade(colorDesktop, 0.5))
	rl.DrawRectangleLinesEx(box, 1, colorBorder)
	rl.DrawText(c.composer.Text()+"_", int32(box.X)+8, int32(box.Y)+8, 16, colorText)
	hint := "type anything, Enter to send"
	if c.composer.Done() {
		hint = "Enter to send"
	}
	rl.DrawText(hint, int32(area.X)+14, int32(area.Y+area.Height)-40, 14, colorDim)
}

// ---------------------------------------------------------------------------
// Calvelli activity log: the only window where real progress shows up.
// ---------------------------------------------------------------------------

type activityBurst struct {
	label     string
	remaining time.Duration
}

type activityContent struct {
	state  *game.State
	lines  []string
	bursts []activityBurst
}

func newActivityContent(state *game.State) *activityContent {
	return &activityContent{state: state}
}

func (c *activityContent) Kind() wm.Kind { return wm.KindActivityLog }

func (c *activityContent) Update(delta time.Duration) {
	kept := c.bursts[:0]
	for _, b := range c.bursts {
		b.remaining -= delta
		if b.remaining > 0 {
			kept = append(kept, b)
		}
	}
	c.bursts = kept
}

func (c *activityContent) Push(line string) {
	c.lines = append(c.lines, line)
	if len(c.lines) > 12 {
		c.lines = c.lines[len(c.lines)-12:]
	}
}

func (c *activityContent) PushBurst(pct float64) {
	c.bursts = append(c.bursts, activityBurst{
		label:     fmt.Sprintf("+%.1f%%", pct),
		remaining: 2 * time.Second,
	})
}

func (c *activityContent) Click(rl.Vector2, rl.Rectangle) bool { return false }

func (c *activityContent) Draw(area rl.Rectangle) {
	rl.DrawText("Sprint burn-up", int32(area.X)+12, int32(area.Y)+10, 16, colorDim)
	bar := rl.NewRectangle(area.X+12, area.Y+34, area.Width-24, 14)
	drawProgressBar(bar, c.state.Progress.Percent(), colorProgress)
	rl.DrawText(fmt.Sprintf("%.1f%%", c.state.Progress.Percent()), int32(bar.X+bar.Width)-52, int32(bar.Y)-2, 14, colorGood)

	y := int32(area.Y) + 62
	for _, line := range c.lines {
		rl.DrawText("* "+line, int32(area.X)+12, y, 14, colorText)
		y += 20
	}
	for i, b := range c.bursts {
		rl.DrawText(b.label, int32(area.X+area.Width)-70, int32(area.Y)+62+int32(i)*20, 16, colorGood)
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type messagesContent struct {
	lines    []content.ChatLine
	composer *reply.Composer
	onSend   func(message string)
}

func newMessagesContent(onSend func(message string)) *messagesContent {
	return &messagesContent{
		composer: reply.NewComposer(content.ReplyOptions()),
		onSend:   onSend,
	}
}

func (c *messagesContent) Kind() wm.Kind { return wm.KindMessages }

func (c *messagesContent) Update(time.Duration) {}

func (c *messagesContent) Push(line content.ChatLine) {
	c.lines = append(c.lines, line)
	if len(c.lines) > 14 {
		c.lines = c.lines[len(c.lines)-14:]
	}
}

func (c *messagesContent) Keystroke(r rune) { c.composer.Keystroke(r) }

func (c *messagesContent) Backspace() { c.composer.Backspace() }

func (c *messagesContent) Send() {
	msg := c.composer.Text()
	if msg == "" {
		return
	}
	c.Push(content.ChatLine{From: "you", Text: msg})
	c.composer.Reset()
	if c.onSend != nil {
		c.onSend(msg)
	}
}

func (c *messagesContent) Click(rl.Vector2, rl.Rectangle) bool { return false }

func (c *messagesContent) Draw(area rl.Rectangle) {
	y := int32(area.Y) + 10
	for _, line := range c.lines {
		clr := colorText
		if line.From == "you" {
			clr = colorAccent
		}
		rl.DrawText(line.From+": "+line.Text, int32(area.X)+12, y, 15, clr)
		y += 22
	}
	box := rl.NewRectangle(area.X+10, area.Y+area.Height-40, area.Width-20, 30)
	rl.DrawRectangleRec(box, rl.Fade(colorDesktop, 0.5))
	rl.DrawRectangleLinesEx(box, 1, colorBorder)
	rl.DrawText(c.composer.Text()+"_", int32(box.X)+8, int32(box.Y)+6, 15, colorText)
}

// ---------------------------------------------------------------------------
// Slack
// ---------------------------------------------------------------------------

type slackContent struct {
	channels []string
	active   int
	lines    map[string][]content.ChatLine
	unread   map[string]int
}

func newSlackContent(channels []string) *slackContent {
	if len(channels) == 0 {
		channels = []string{"#general"}
	}
	return &slackContent{
		channels: channels,
		lines:    make(map[string][]content.ChatLine),
		unread:   make(map[string]int),
	}
}

func (c *slackContent) Kind() wm.Kind { return wm.KindSlack }

func (c *slackContent) Update(time.Duration) {}

func (c *slackContent) Push(channel string, line content.ChatLine) {
	c.lines[channel] = append(c.lines[channel], line)
	if len(c.lines[channel]) > 12 {
		c.lines[channel] = c.lines[channel][len(c.lines[channel])-12:]
	}
	if c.channels[c.active] != channel {
		c.unread[channel]++
	}
}

func (c *slackContent) Channel() string { return c.channels[c.active] }

func (c *slackContent) tabRect(area rl.Rectangle, i int) rl.Rectangle {
	return rl.NewRectangle(area.X+8+float32(i)*118, area.Y+6, 112, 26)
}

func (c *slackContent) Click(p rl.Vector2, area rl.Rectangle) bool {
	for i := range c.channels {
		r := c.tabRect(area, i)
		if p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height {
			c.active = i
			c.unread[c.channels[i]] = 0
			return true
		}
	}
	return false
}

func (c *slackContent) Draw(area rl.Rectangle) {
	rl.DrawRectangleRec(rl.NewRectangle(area.X, area.Y, area.Width, 38), rl.Fade(colorSlack, 0.75))
	for i, ch := range c.channels {
		r := c.tabRect(area, i)
		bg := rl.Fade(colorPanel, 0.4)
		if i == c.active {
			bg = rl.Fade(colorAccent, 0.3)
		}
		rl.DrawRectangleRounded(r, 0.3, 6, bg)
		label := ch
		clr := colorText
		if n := c.unread[ch]; n > 0 {
			label = fmt.Sprintf("%s (%d)", ch, n)
			clr = colorWarn
		}
		rl.DrawText(label, int32(r.X)+8, int32(r.Y)+6, 14, clr)
	}
	y := int32(area.Y) + 48
	for _, line := range c.lines[c.Channel()] {
		rl.DrawText(line.From+": "+line.Text, int32(area.X)+12, y, 15, colorText)
		y += 22
	}
}
