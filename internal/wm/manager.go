package wm

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager owns every live window. Z-order is slice position, back to front.
// Focus follows clicks and Tab-cycling; at most one drag (window move or
// carried item) exists at a time. All mutation happens synchronously inside
// the frame loop, so there is no locking anywhere.
type Manager struct {
	windows []*Window
	spawned []Handle // insertion order, drives CycleFocus
	focused Handle
	next    Handle

	draggingWin Handle
	carry       *carriedItem

	// Optional observers, wired to the run stats.
	OnItemMoved    func(item Item, from, to Handle)
	OnWindowClosed func(h Handle, k Kind)
}

type carriedItem struct {
	item   Item
	source Handle
	pos    rl.Vector2
}

func NewManager() *Manager {
	return &Manager{}
}

// Spawn inserts a framed window at the top of the z-order and focuses it.
func (m *Manager) Spawn(title string, rect rl.Rectangle, content Content) Handle {
	return m.spawn(title, rect, content, false)
}

// SpawnPopup inserts a frameless transient window: no title bar, not
// draggable, dismissed by its own content (click or timeout). Popups sit on
// top but never steal focus and stay out of the Tab cycle.
func (m *Manager) SpawnPopup(rect rl.Rectangle, content Content) Handle {
	return m.spawn("", rect, content, true)
}

func (m *Manager) spawn(title string, rect rl.Rectangle, content Content, frameless bool) Handle {
	m.next++
	w := &Window{handle: m.next, rect: rect, title: title, content: content, frameless: frameless}
	m.windows = append(m.windows, w)
	if !frameless {
		m.spawned = append(m.spawned, w.handle)
		m.focused = w.handle
	}
	return w.handle
}

func (m *Manager) Focused() Handle { return m.focused }

func (m *Manager) Len() int { return len(m.windows) }

// Window returns the live window for h, or nil after it closed.
func (m *Manager) Window(h Handle) *Window {
	for _, w := range m.windows {
		if w.handle == h {
			return w
		}
	}
	return nil
}

// Windows yields the live windows back to front.
func (m *Manager) Windows() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	return out
}

// Topmost returns the front window, or nil when the collection is empty.
func (m *Manager) Topmost() *Window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[len(m.windows)-1]
}

// FindKind returns the topmost window whose content has the given kind.
func (m *Manager) FindKind(k Kind) *Window {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if m.windows[i].Kind() == k {
			return m.windows[i]
		}
	}
	return nil
}

// Raise moves h to the top of the z-order without changing focus.
func (m *Manager) Raise(h Handle) {
	for i, w := range m.windows {
		if w.handle != h {
			continue
		}
		m.windows = append(m.windows[:i], m.windows[i+1:]...)
		m.windows = append(m.windows, w)
		return
	}
}

func (m *Manager) focus(w *Window) {
	m.focused = w.handle
	m.Raise(w.handle)
}

// Close removes h. If it was focused, focus falls to the topmost framed
// window, or to none when no framed window remains. An active drag on h is
// dropped.
func (m *Manager) Close(h Handle) {
	idx := -1
	for i, w := range m.windows {
		if w.handle == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	w := m.windows[idx]
	m.windows = append(m.windows[:idx], m.windows[idx+1:]...)
	for i, sh := range m.spawned {
		if sh == h {
			m.spawned = append(m.spawned[:i], m.spawned[i+1:]...)
			break
		}
	}
	if m.draggingWin == h {
		m.draggingWin = 0
	}
	if m.carry != nil && m.carry.source == h {
		m.carry = nil
	}
	if m.focused == h {
		// Popups sit topmost but never hold focus, so skip them.
		m.focused = 0
		for i := len(m.windows) - 1; i >= 0; i-- {
			if !m.windows[i].frameless {
				m.focused = m.windows[i].handle
				break
			}
		}
	}
	if m.OnWindowClosed != nil {
		m.OnWindowClosed(h, w.Kind())
	}
}

// DispatchPointerDown hit-tests topmost first. Title-bar capture outranks
// content capture; within content, an item under the pointer starts an item
// drag, anything else is a plain content click. Reports whether any window
// consumed the press.
func (m *Manager) DispatchPointerDown(p rl.Vector2) bool {
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.HitTest(p) {
			continue
		}
		if !w.frameless {
			if pointInRect(p, w.CloseButtonRect()) {
				m.Close(w.handle)
				return true
			}
			if pointInRect(p, w.TitleBarRect()) {
				m.focus(w)
				w.dragging = true
				w.dragOffset = rl.NewVector2(p.X-w.rect.X, p.Y-w.rect.Y)
				m.draggingWin = w.handle
				return true
			}
		}
		if !w.frameless {
			m.focus(w)
		}
		if c, ok := w.content.(Container); ok {
			if item, found := c.ItemAt(p, w.ContentArea()); found {
				m.carry = &carriedItem{item: item, source: w.handle, pos: p}
				return true
			}
		}
		w.content.Click(p, w.ContentArea())
		return true
	}
	return false
}

// DispatchPointerMove updates whichever drag is live; a no-op otherwise.
func (m *Manager) DispatchPointerMove(p rl.Vector2) {
	if m.carry != nil {
		m.carry.pos = p
		return
	}
	if m.draggingWin == 0 {
		return
	}
	if w := m.Window(m.draggingWin); w != nil && w.dragging {
		w.MoveTo(p.X-w.dragOffset.X, p.Y-w.dragOffset.Y)
	}
}

// DispatchPointerUp finishes the drag. A carried item dropped on another
// window's accepting container moves atomically: it is removed from the
// source only after the destination accepted it, so it can be neither lost
// nor duplicated. Any other drop snaps back by doing nothing.
func (m *Manager) DispatchPointerUp(p rl.Vector2) {
	if m.carry != nil {
		m.dropCarriedItem(p)
		m.carry = nil
	}
	if m.draggingWin != 0 {
		if w := m.Window(m.draggingWin); w != nil {
			w.dragging = false
		}
		m.draggingWin = 0
	}
}

func (m *Manager) dropCarriedItem(p rl.Vector2) {
	// Topmost window under the pointer wins outright; a covered container
	// never receives the drop.
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.HitTest(p) {
			continue
		}
		if w.handle == m.carry.source || !pointInRect(p, w.ContentArea()) {
			return
		}
		dst, ok := w.content.(Container)
		if !ok || !dst.Accepts(m.carry.item) {
			return
		}
		src := m.Window(m.carry.source)
		if src == nil {
			return
		}
		sc, ok := src.content.(Container)
		if !ok {
			return
		}
		item, removed := sc.Remove(m.carry.item.ID)
		if !removed {
			return
		}
		dst.Insert(item)
		if m.OnItemMoved != nil {
			m.OnItemMoved(item, src.handle, w.handle)
		}
		return
	}
}

// CarriedItem exposes the in-flight item for ghost rendering.
func (m *Manager) CarriedItem() (Item, rl.Vector2, bool) {
	if m.carry == nil {
		return Item{}, rl.Vector2{}, false
	}
	return m.carry.item, m.carry.pos, true
}

// CycleFocus advances focus through windows in insertion order, which stays
// stable while clicks reshuffle the z-order, and raises the newly focused
// window to the top.
func (m *Manager) CycleFocus() {
	if len(m.spawned) == 0 {
		return
	}
	idx := -1
	for i, h := range m.spawned {
		if h == m.focused {
			idx = i
			break
		}
	}
	next := m.spawned[(idx+1)%len(m.spawned)]
	if w := m.Window(next); w != nil {
		m.focus(w)
	}
}

// Update advances every content by the frame delta, then closes windows
// whose content requested it.
func (m *Manager) Update(delta time.Duration) {
	live := m.Windows()
	for _, w := range live {
		w.content.Update(delta)
	}
	for _, w := range live {
		if c, ok := w.content.(Closable); ok && c.CloseRequested() {
			m.Close(w.handle)
		}
	}
}
