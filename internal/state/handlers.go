package state

import (
	"github.com/barleyrp/overlay/internal/dispatcher"
)

// RegisterHandlers registers every catalog event with the dispatcher.
// All handlers are synchronous: the snapshot must see events strictly in
// arrival order, and last-write-wins only holds if nothing is buffered
// per event name.
func (s *Synchronizer) RegisterHandlers(d *dispatcher.Dispatcher) {
	register := func(name string) {
		d.Register(name, func(e dispatcher.Event) (any, error) {
			return nil, s.ApplyEvent(e.Name, e.Payload)
		}, dispatcher.Logged())
	}

	// auth and navigation
	register("auth:mode")
	register("auth:response")
	register("ui:show")

	// player state
	register("player:vitals")
	register("player:zone")
	register("player:timers")
	register("player:position")
	register("vehicle:state")

	// economy
	register("bank:info")
	register("money:update")
	register("bank:update")

	// notifications
	register("notify")

	// spawn screen
	register("spawn:info")
	register("spawn:lock")

	// job and quest frames
	register("job:frame")
	register("quest:frame")

	// inventory
	register("inventory:data")
	register("inventory:playerData")
	register("inventory:shopData")
}
