package state

import (
	"errors"

	"github.com/barleyrp/overlay/internal/bridge"
	"github.com/barleyrp/overlay/internal/form"
	"github.com/barleyrp/overlay/internal/model"
	"github.com/barleyrp/overlay/internal/parser"
)

// ErrSubmissionLocked is returned when a submit arrives while a previous
// submission is still awaiting the host. Entering the loading screen
// disables the forms; this is the programmatic equivalent.
var ErrSubmissionLocked = errors.New("submission locked while awaiting host response")

// Submit validates user-entered fields and, on success, forwards exactly the
// contract fields outbound and switches to the loading screen. Advancement
// past loading is entirely host-driven; there is no timeout.
func (s *Synchronizer) Submit(kind form.Kind, f form.Fields) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrSubmissionLocked
	}
	locks := s.deps.Snapshot.SpawnLocks
	s.mu.Unlock()

	if verr := form.Validate(kind, f, s.deps.Rules); verr != nil {
		s.deps.Notifier.Push(model.Notification{
			Severity: model.SeverityError,
			Header:   "Check your input",
			Text:     verr.Reason,
			AutoHide: true,
		})
		return verr
	}

	if kind == form.KindSpawn {
		if verr := spawnAllowed(f.SpawnType, locks); verr != nil {
			s.deps.Notifier.Push(model.Notification{
				Severity: model.SeverityError,
				Header:   "Spawn unavailable",
				Text:     verr.Reason,
				AutoHide: true,
			})
			return verr
		}
	}

	event, payload := serializeSubmission(kind, f)
	if err := s.deps.Sender.Send(event, payload); err != nil {
		if errors.Is(err, bridge.ErrBridgeUnavailable) {
			// Blocking alert: no progress is possible, so the notification
			// stays until the user dismisses it.
			s.deps.Notifier.Push(model.Notification{
				Severity: model.SeverityError,
				Header:   "Connection lost",
				Text:     "The game connection is unavailable. Please restart the client.",
				AutoHide: false,
			})
		}
		return err
	}

	s.mu.Lock()
	s.loading = true
	s.pendingAction = kind
	s.mu.Unlock()

	s.deps.Router.Activate(model.ScreenLoading)
	return nil
}

// serializeSubmission maps a form kind to its outbound event name and the
// exact contract fields, nothing more.
func serializeSubmission(kind form.Kind, f form.Fields) (string, any) {
	switch kind {
	case form.KindLogin:
		return "login", []any{f.Password}
	case form.KindRegister:
		return "register", []any{f.Password, f.ConfirmPassword}
	case form.KindGender:
		return "selectGender", []any{f.Gender}
	case form.KindSpawn:
		return "selectSpawn", []any{f.SpawnType}
	default:
		return string(kind), nil
	}
}

// spawnAllowed rejects spawn options the host has locked out. A false lock
// hides the option, so selecting it is a local validation failure.
func spawnAllowed(spawnType int, locks model.SpawnLocks) *form.ValidationError {
	switch spawnType {
	case parser.SpawnFraction:
		if !locks.Member {
			return &form.ValidationError{Field: "spawnType", Reason: "fraction spawn is not available"}
		}
	case parser.SpawnHouse:
		if !locks.FamilyMember {
			return &form.ValidationError{Field: "spawnType", Reason: "house spawn is not available"}
		}
	case parser.SpawnLastPosition:
		if !locks.Location {
			return &form.ValidationError{Field: "spawnType", Reason: "last position spawn is not available"}
		}
	}
	return nil
}

// Close asks the host to tear the overlay down.
func (s *Synchronizer) Close() error {
	return s.deps.Sender.Send("close", nil)
}

// Allowed app-open signals.
var appEvents = map[string]bool{
	"Taxi:app":    true,
	"Bank:app":    true,
	"Clicked:app": true,
}

// OpenApp forwards a phone app-open signal.
func (s *Synchronizer) OpenApp(event string) error {
	if !appEvents[event] {
		return errors.New("unknown app signal: " + event)
	}
	return s.deps.Sender.Send(event, nil)
}

type itemOp struct {
	Slot   int `json:"slot"`
	ItemID int `json:"itemId"`
}

type buyOp struct {
	ItemID int   `json:"itemId"`
	Price  int64 `json:"price"`
}

// UseItem validates the slot against the inventory cache and forwards the
// use operation.
func (s *Synchronizer) UseItem(slot, itemID int) error {
	if err := s.deps.Inventory.ValidateUse(slot, itemID); err != nil {
		return err
	}
	return s.deps.Sender.Send("inventory:useItem", itemOp{Slot: slot, ItemID: itemID})
}

// DropItem validates the slot against the inventory cache and forwards the
// drop operation.
func (s *Synchronizer) DropItem(slot, itemID int) error {
	if err := s.deps.Inventory.ValidateUse(slot, itemID); err != nil {
		return err
	}
	return s.deps.Sender.Send("inventory:dropItem", itemOp{Slot: slot, ItemID: itemID})
}

// BuyItem validates the purchase against the shop catalog and forwards it.
func (s *Synchronizer) BuyItem(itemID int, price int64) error {
	if err := s.deps.Inventory.ValidateBuy(itemID, price); err != nil {
		return err
	}
	return s.deps.Sender.Send("inventory:buyItem", buyOp{ItemID: itemID, Price: price})
}

// RequestInventory asks the host for a fresh item grid.
func (s *Synchronizer) RequestInventory() error {
	return s.deps.Sender.Send("inventory:getInventory", nil)
}

// RequestStats asks the host for fresh equipment stats.
func (s *Synchronizer) RequestStats() error {
	return s.deps.Sender.Send("inventory:getStats", nil)
}

// CloseInventory tells the host the inventory screen was closed.
func (s *Synchronizer) CloseInventory() error {
	return s.deps.Sender.Send("inventory:close", nil)
}
