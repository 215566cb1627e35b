package render

import "log/slog"

// PatchEvent is the outbound event carrying render patches to the browser
// surface.
const PatchEvent = "render:patch"

// BridgeRenderer forwards patches to the host bridge as render:patch events.
type BridgeRenderer struct {
	sender Sender
	logger *slog.Logger
}

// NewBridgeRenderer creates a renderer that emits patches over the bridge.
func NewBridgeRenderer(sender Sender, logger *slog.Logger) *BridgeRenderer {
	return &BridgeRenderer{sender: sender, logger: logger}
}

// Apply sends the patch. Delivery failures are logged, not surfaced; a lost
// patch is repaired by the next update to the same fragment.
func (r *BridgeRenderer) Apply(p Patch) {
	if err := r.sender.Send(PatchEvent, p); err != nil {
		r.logger.Warn("Failed to send render patch", "fragment", p.Fragment, "error", err)
	}
}
