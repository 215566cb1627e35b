// Package notify manages the ephemeral notification stack: a capped set of
// visible notifications with auto-dismiss timers and an overflow queue.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/barleyrp/overlay/internal/model"
	"github.com/barleyrp/overlay/internal/queue"
	"github.com/barleyrp/overlay/internal/render"
)

// Manager owns the notification display queue. At most maxVisible
// notifications are shown at once; later arrivals wait in the overflow
// queue and are promoted as slots free up.
type Manager struct {
	mu       sync.Mutex
	visible  []model.Notification
	pending  *queue.Queue[model.Notification]
	timers   map[string]*time.Timer
	renderer render.Renderer
	logger   *slog.Logger

	maxVisible   int
	defaultDelay time.Duration
}

// NewManager creates a notification manager.
func NewManager(renderer render.Renderer, logger *slog.Logger, maxVisible int, defaultDelay time.Duration) *Manager {
	if maxVisible <= 0 {
		maxVisible = 5
	}
	if defaultDelay <= 0 {
		defaultDelay = 5 * time.Second
	}
	return &Manager{
		pending:      queue.New[model.Notification](),
		timers:       make(map[string]*time.Timer),
		renderer:     renderer,
		logger:       logger,
		maxVisible:   maxVisible,
		defaultDelay: defaultDelay,
	}
}

// Push assigns an ID and inserts the notification into the display queue.
// Returns the assigned ID.
func (m *Manager) Push(n model.Notification) string {
	n.ID = uuid.NewString()
	if n.AutoHide && n.Delay <= 0 {
		n.Delay = m.defaultDelay
	}

	m.mu.Lock()
	if len(m.visible) >= m.maxVisible {
		m.pending.Push(n)
		m.mu.Unlock()
		return n.ID
	}
	m.show(n)
	m.mu.Unlock()

	m.rerender()
	return n.ID
}

// show adds n to the visible set and arms its auto-dismiss timer.
// Caller holds the lock.
func (m *Manager) show(n model.Notification) {
	m.visible = append(m.visible, n)
	if n.AutoHide {
		id := n.ID
		m.timers[id] = time.AfterFunc(n.Delay, func() {
			m.Dismiss(id)
		})
	}
}

// Dismiss removes a notification by ID, whether expired or user-dismissed,
// and promotes the next pending notification if one is waiting.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	idx := -1
	for i, n := range m.visible {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return
	}

	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
	m.visible = append(m.visible[:idx], m.visible[idx+1:]...)

	if !m.pending.Empty() {
		m.show(m.pending.Pop())
	}
	m.mu.Unlock()

	m.rerender()
}

// Visible returns a copy of the currently displayed notifications.
func (m *Manager) Visible() []model.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Notification, len(m.visible))
	copy(out, m.visible)
	return out
}

// Clear removes all visible and pending notifications.
func (m *Manager) Clear() {
	m.mu.Lock()
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
	m.visible = nil
	m.pending.Clear()
	m.mu.Unlock()

	m.rerender()
}

// rerender pushes the whole notification stack as one fragment patch.
func (m *Manager) rerender() {
	m.renderer.Apply(render.Patch{
		Fragment: render.FragmentNotifications,
		Op:       render.OpSet,
		Data:     m.Visible(),
	})
}
