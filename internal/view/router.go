// Package view owns top-level screen visibility. Exactly one screen is
// active at any observation point; overlay panels are orthogonal.
package view

import (
	"log/slog"
	"sync"

	"github.com/barleyrp/overlay/internal/model"
	"github.com/barleyrp/overlay/internal/render"
)

// Router is the single source of truth for which top-level screen is
// displayed.
type Router struct {
	mu       sync.Mutex
	active   model.Screen
	overlays map[model.Overlay]bool
	renderer render.Renderer
	logger   *slog.Logger
}

// New creates a router showing the initial screen. An absent or unrecognized
// initial screen defaults to login.
func New(renderer render.Renderer, logger *slog.Logger, initial model.Screen) *Router {
	if !model.KnownScreen(initial) {
		if initial != "" {
			logger.Warn("Unrecognized startup screen, defaulting to login", "screen", string(initial))
		}
		initial = model.ScreenLogin
	}
	r := &Router{
		active:   initial,
		overlays: make(map[model.Overlay]bool),
		renderer: renderer,
		logger:   logger,
	}
	r.renderer.Apply(render.Patch{Fragment: render.FragmentScreen, Op: render.OpShow, Data: string(initial)})
	return r
}

// Activate switches the visible top-level screen. Re-activating the current
// screen is a no-op. An unknown identifier is logged and ignored; the active
// screen is never cleared.
func (r *Router) Activate(screen model.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !model.KnownScreen(screen) {
		r.logger.Warn("Activate called with unknown screen", "screen", string(screen))
		return
	}
	if screen == r.active {
		return
	}

	r.renderer.Apply(render.Patch{Fragment: render.FragmentScreen, Op: render.OpHide, Data: string(r.active)})
	r.active = screen
	r.renderer.Apply(render.Patch{Fragment: render.FragmentScreen, Op: render.OpShow, Data: string(screen)})
}

// Active returns the currently active screen.
func (r *Router) Active() model.Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// ShowOverlay makes an overlay panel visible. Overlays coexist with any
// screen and with each other.
func (r *Router) ShowOverlay(o model.Overlay) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlays[o] {
		return
	}
	r.overlays[o] = true
	r.renderer.Apply(render.Patch{Fragment: render.FragmentScreen, Op: render.OpShow, Data: "overlay:" + string(o)})
}

// HideOverlay hides an overlay panel.
func (r *Router) HideOverlay(o model.Overlay) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.overlays[o] {
		return
	}
	delete(r.overlays, o)
	r.renderer.Apply(render.Patch{Fragment: render.FragmentScreen, Op: render.OpHide, Data: "overlay:" + string(o)})
}

// OverlayVisible reports whether an overlay panel is currently shown.
func (r *Router) OverlayVisible(o model.Overlay) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlays[o]
}
