// Package state owns the session snapshot. All inbound events funnel through
// the Synchronizer, which merges partial updates and re-renders only the
// fragments whose backing fields changed.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/barleyrp/overlay/internal/form"
	"github.com/barleyrp/overlay/internal/inventory"
	"github.com/barleyrp/overlay/internal/model"
	"github.com/barleyrp/overlay/internal/notify"
	"github.com/barleyrp/overlay/internal/parser"
	"github.com/barleyrp/overlay/internal/render"
	"github.com/barleyrp/overlay/internal/util"
	"github.com/barleyrp/overlay/internal/view"
	"github.com/barleyrp/overlay/internal/zone"
)

// ErrUnknownEvent is returned for event names outside the catalog. The
// caller logs and ignores it; no user-visible error is raised.
var ErrUnknownEvent = errors.New("unknown event")

// Sender forwards outbound events to the host.
type Sender interface {
	Send(event string, payload any) error
}

// Dependencies holds everything the synchronizer needs.
type Dependencies struct {
	Snapshot  *model.Snapshot
	Inventory *inventory.State
	Router    *view.Router
	Renderer  render.Renderer
	Notifier  *notify.Manager
	Parser    *parser.Parser
	Sender    Sender
	Zones     *zone.Resolver // optional
	Logger    *slog.Logger
	Rules     form.Rules
}

// Synchronizer applies inbound events to the snapshot and triggers the
// minimal re-render. It is the snapshot's only writer.
type Synchronizer struct {
	mu   sync.Mutex
	deps Dependencies

	// loading is true between an outbound submission and the host's
	// response; further submissions are refused while it is set.
	loading       bool
	pendingAction form.Kind
}

// New creates a synchronizer around an explicitly owned snapshot.
func New(deps Dependencies) *Synchronizer {
	return &Synchronizer{deps: deps}
}

// Snapshot returns a copy of the current snapshot for readers.
func (s *Synchronizer) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := *s.deps.Snapshot
	if s.deps.Snapshot.Vehicle != nil {
		v := *s.deps.Snapshot.Vehicle
		snap.Vehicle = &v
	}
	return snap
}

// Loading reports whether a submission is awaiting a host response.
func (s *Synchronizer) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Reset restores the session to defaults: snapshot, inventory and
// notifications cleared, router back on login.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	s.deps.Snapshot.Reset()
	s.loading = false
	s.pendingAction = ""
	s.mu.Unlock()

	s.deps.Inventory.Reset()
	s.deps.Notifier.Clear()
	s.deps.Router.Activate(model.ScreenLogin)
}

// ApplyEvent applies one inbound event to the snapshot. Payload shapes
// follow the event catalog; malformed payloads are dropped with an error
// and no snapshot mutation.
func (s *Synchronizer) ApplyEvent(name string, payload json.RawMessage) error {
	switch name {
	case "auth:mode":
		return s.applyAuthMode(payload)
	case "auth:response":
		return s.applyAuthResponse(payload)
	case "ui:show":
		return s.applyShowScreen(payload)
	case "player:vitals":
		return s.applyVitals(payload)
	case "player:zone":
		return s.applyZoneFlag(payload)
	case "player:timers":
		return s.applyTimers(payload)
	case "player:position":
		return s.applyPosition(payload)
	case "vehicle:state":
		return s.applyVehicle(payload)
	case "notify":
		return s.applyNotify(payload)
	case "bank:info":
		return s.applyBankInfo(payload)
	case "money:update":
		return s.applyMoneyUpdate(payload)
	case "bank:update":
		return s.applyBankUpdate(payload)
	case "spawn:info":
		return s.applySpawnInfo(payload)
	case "spawn:lock":
		return s.applySpawnLock(payload)
	case "job:frame":
		return s.applyFrame(model.ScreenJob, payload)
	case "quest:frame":
		return s.applyFrame(model.ScreenQuest, payload)
	case "inventory:data":
		return s.applyInventoryData(payload)
	case "inventory:playerData":
		return s.applyPlayerData(payload)
	case "inventory:shopData":
		return s.applyShopData(payload)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
}

func (s *Synchronizer) patch(f render.Fragment, data any) {
	s.deps.Renderer.Apply(render.Patch{Fragment: f, Op: render.OpSet, Data: data})
}

// clampMoney floors balances at zero. Balances are non-negative throughout
// the model; a negative amount from the host is stored and rendered as zero.
func clampMoney(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func (s *Synchronizer) applyVitals(payload json.RawMessage) error {
	upd, err := s.deps.Parser.ParseVitals(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	snap := s.deps.Snapshot
	dirty := make([]func(), 0, 8)

	if upd.Health != nil {
		v := model.Clamp(*upd.Health, 0, 100)
		if v != snap.Health {
			snap.Health = v
			dirty = append(dirty, func() { s.patch(render.FragmentHealth, v) })
		}
	}
	if upd.Armor != nil {
		v := model.Clamp(*upd.Armor, 0, 100)
		if v != snap.Armor {
			snap.Armor = v
			dirty = append(dirty, func() { s.patch(render.FragmentArmor, v) })
		}
	}
	if upd.Level != nil && *upd.Level != snap.Level {
		v := *upd.Level
		snap.Level = v
		dirty = append(dirty, func() { s.patch(render.FragmentLevel, v) })
	}
	if upd.Money != nil {
		v := clampMoney(*upd.Money)
		if v != snap.Cash {
			snap.Cash = v
			dirty = append(dirty, func() { s.patch(render.FragmentMoney, util.FormatMoney(v)) })
		}
	}
	if upd.Bank != nil {
		v := clampMoney(*upd.Bank)
		if v != snap.Bank {
			snap.Bank = v
			dirty = append(dirty, func() { s.patch(render.FragmentBank, util.FormatMoney(v)) })
		}
	}
	if upd.Zone != nil && *upd.Zone != snap.Zone {
		snap.Zone = *upd.Zone
		label, danger := snap.Zone, snap.ZoneDanger
		dirty = append(dirty, func() {
			s.patch(render.FragmentZone, map[string]any{"label": label, "danger": danger})
		})
	}
	if upd.Weapon != nil && *upd.Weapon != snap.Weapon {
		snap.Weapon = *upd.Weapon
		weapon, ammo := snap.Weapon, snap.Ammo
		dirty = append(dirty, func() {
			s.patch(render.FragmentWeapon, map[string]any{"weapon": weapon, "ammo": ammo})
		})
	}
	if upd.Ammo != nil && *upd.Ammo != snap.Ammo {
		snap.Ammo = *upd.Ammo
		weapon, ammo := snap.Weapon, snap.Ammo
		dirty = append(dirty, func() {
			s.patch(render.FragmentWeapon, map[string]any{"weapon": weapon, "ammo": ammo})
		})
	}
	if upd.Wanted != nil {
		v := *upd.Wanted
		if v < 0 {
			v = 0
		}
		if v != snap.Wanted {
			snap.Wanted = v
			dirty = append(dirty, func() { s.patch(render.FragmentWanted, v) })
		}
	}
	s.mu.Unlock()

	for _, flush := range dirty {
		flush()
	}
	return nil
}

func (s *Synchronizer) applyZoneFlag(payload json.RawMessage) error {
	flag, err := s.deps.Parser.ParseScalarInt(payload)
	if err != nil {
		return err
	}
	if flag != 0 && flag != 1 {
		return fmt.Errorf("zone flag %d is not 0 or 1", flag)
	}

	s.mu.Lock()
	danger := flag == 1
	changed := danger != s.deps.Snapshot.ZoneDanger
	s.deps.Snapshot.ZoneDanger = danger
	label := s.deps.Snapshot.Zone
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentZone, map[string]any{"label": label, "danger": danger})
	}
	return nil
}

func (s *Synchronizer) applyTimers(payload json.RawMessage) error {
	upd, err := s.deps.Parser.ParseTimers(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	t := &s.deps.Snapshot.Timers
	changed := false
	if upd.JailTime != nil && *upd.JailTime != t.JailTime {
		t.JailTime = *upd.JailTime
		changed = true
	}
	if upd.TaxiTime != nil && *upd.TaxiTime != t.TaxiTime {
		t.TaxiTime = *upd.TaxiTime
		changed = true
	}
	if upd.Admin != nil && *upd.Admin != t.Admin {
		t.Admin = *upd.Admin
		changed = true
	}
	timers := *t
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentTimers, map[string]any{
			"jail": util.FormatSeconds(timers.JailTime),
			"taxi": util.FormatSeconds(timers.TaxiTime),
			"admin": timers.Admin,
		})
	}
	return nil
}

func (s *Synchronizer) applyPosition(payload json.RawMessage) error {
	if s.deps.Zones == nil {
		return nil
	}
	x, y, err := s.deps.Parser.ParsePosition(payload)
	if err != nil {
		return err
	}
	label, danger, ok := s.deps.Zones.Locate(x, y)
	if !ok {
		return nil
	}

	s.mu.Lock()
	snap := s.deps.Snapshot
	changed := label != snap.Zone || danger != snap.ZoneDanger
	snap.Zone = label
	snap.ZoneDanger = danger
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentZone, map[string]any{"label": label, "danger": danger})
	}
	return nil
}

func (s *Synchronizer) applyVehicle(payload json.RawMessage) error {
	upd, err := s.deps.Parser.ParseVehicleState(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	snap := s.deps.Snapshot
	entered := snap.Vehicle == nil
	if entered {
		// The event itself reports vehicle occupancy; create the sub-record.
		snap.Vehicle = &model.VehicleState{}
	}
	v := snap.Vehicle
	if upd.Engine != nil {
		v.Engine = *upd.Engine
	}
	if upd.Locked != nil {
		v.Locked = *upd.Locked
	}
	if upd.Lights != nil {
		v.Lights = *upd.Lights
	}
	if upd.Fuel != nil {
		v.Fuel = model.Clamp(*upd.Fuel, 0, 100)
	}
	if upd.Health != nil {
		v.Health = model.Clamp(*upd.Health, 0, 1000)
	}
	vehicle := *v
	s.mu.Unlock()

	if entered {
		s.deps.Renderer.Apply(render.Patch{Fragment: render.FragmentVehicle, Op: render.OpShow})
	}
	s.patch(render.FragmentVehicle, vehicle)
	return nil
}

// LeaveVehicle drops the vehicle sub-record. Absence means "not in a
// vehicle", not zeroed stats.
func (s *Synchronizer) LeaveVehicle() {
	s.mu.Lock()
	had := s.deps.Snapshot.Vehicle != nil
	s.deps.Snapshot.Vehicle = nil
	s.mu.Unlock()

	if had {
		s.deps.Renderer.Apply(render.Patch{Fragment: render.FragmentVehicle, Op: render.OpHide})
	}
}

func (s *Synchronizer) applyNotify(payload json.RawMessage) error {
	n, err := s.deps.Parser.ParseNotify(payload)
	if err != nil {
		return err
	}
	s.deps.Notifier.Push(n)
	return nil
}

func (s *Synchronizer) applyBankInfo(payload json.RawMessage) error {
	upd, err := s.deps.Parser.ParseBankInfo(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	snap := s.deps.Snapshot
	changed := false
	if upd.Cash != nil {
		if v := clampMoney(*upd.Cash); v != snap.Cash {
			snap.Cash = v
			changed = true
		}
	}
	if upd.RouletteMoney != nil {
		if v := clampMoney(*upd.RouletteMoney); v != snap.RouletteMoney {
			snap.RouletteMoney = v
			changed = true
		}
	}
	cash, roulette := snap.Cash, snap.RouletteMoney
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentBankPanel, map[string]any{
			"cash":     util.FormatMoney(cash),
			"roulette": util.FormatMoney(roulette),
		})
	}
	return nil
}

func (s *Synchronizer) applyMoneyUpdate(payload json.RawMessage) error {
	v, err := s.deps.Parser.ParseScalarInt64(payload)
	if err != nil {
		return err
	}
	v = clampMoney(v)

	s.mu.Lock()
	changed := v != s.deps.Snapshot.Cash
	s.deps.Snapshot.Cash = v
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentMoney, util.FormatMoney(v))
	}
	return nil
}

func (s *Synchronizer) applyBankUpdate(payload json.RawMessage) error {
	v, err := s.deps.Parser.ParseScalarInt64(payload)
	if err != nil {
		return err
	}
	v = clampMoney(v)

	s.mu.Lock()
	changed := v != s.deps.Snapshot.Bank
	s.deps.Snapshot.Bank = v
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentBank, util.FormatMoney(v))
	}
	return nil
}

func (s *Synchronizer) applyAuthMode(payload json.RawMessage) error {
	screen, err := s.deps.Parser.ParseAuthMode(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.pendingAction = ""
	s.mu.Unlock()

	s.deps.Router.Activate(screen)
	return nil
}

func (s *Synchronizer) applyAuthResponse(payload json.RawMessage) error {
	resp, err := s.deps.Parser.ParseAuthResponse(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.pendingAction = ""
	s.mu.Unlock()

	if resp.Success {
		if resp.Message != "" {
			s.deps.Notifier.Push(model.Notification{
				Severity: model.SeveritySuccess,
				Header:   "Success",
				Text:     resp.Message,
				AutoHide: true,
			})
		}
		// Advancement past loading stays host-driven; the next ui:show or
		// auth:mode event names the follow-up screen.
		return nil
	}

	// Back to the originating form with the host's message.
	if resp.Action == "register" {
		s.deps.Router.Activate(model.ScreenRegister)
	} else {
		s.deps.Router.Activate(model.ScreenLogin)
	}
	s.deps.Notifier.Push(model.Notification{
		Severity: model.SeverityError,
		Header:   "Error",
		Text:     resp.Message,
		AutoHide: true,
	})
	return nil
}

func (s *Synchronizer) applyShowScreen(payload json.RawMessage) error {
	screen, err := s.deps.Parser.ParseShowScreen(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.pendingAction = ""
	switch screen {
	case model.ScreenGender:
		s.deps.Snapshot.Stage = model.StageAwaitingGender
	case model.ScreenSpawn:
		s.deps.Snapshot.Stage = model.StageAwaitingSpawn
	case model.ScreenSuccess, model.ScreenHUD:
		s.deps.Snapshot.Stage = model.StageInWorld
	}
	s.mu.Unlock()

	s.deps.Router.Activate(screen)
	return nil
}

func (s *Synchronizer) applySpawnInfo(payload json.RawMessage) error {
	level, err := s.deps.Parser.ParseSpawnInfo(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := level != s.deps.Snapshot.SpawnLevel
	s.deps.Snapshot.SpawnLevel = level
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentSpawnLevel, level)
	}
	return nil
}

func (s *Synchronizer) applySpawnLock(payload json.RawMessage) error {
	locks, err := s.deps.Parser.ParseSpawnLock(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := locks != s.deps.Snapshot.SpawnLocks
	s.deps.Snapshot.SpawnLocks = locks
	s.mu.Unlock()

	if changed {
		s.patch(render.FragmentSpawnOptions, locks)
	}
	return nil
}

func (s *Synchronizer) applyFrame(screen model.Screen, payload json.RawMessage) error {
	idx, err := s.deps.Parser.ParseScalarInt(payload)
	if err != nil {
		return err
	}

	s.deps.Router.Activate(screen)
	if screen == model.ScreenJob {
		s.patch(render.FragmentJobFrame, idx)
	} else {
		s.patch(render.FragmentQuestFrame, idx)
	}
	return nil
}

func (s *Synchronizer) applyInventoryData(payload json.RawMessage) error {
	items, err := s.deps.Parser.ParseInventoryData(payload)
	if err != nil {
		return err
	}
	s.deps.Inventory.SetItems(items)
	s.patch(render.FragmentInventory, s.deps.Inventory.Items())
	return nil
}

func (s *Synchronizer) applyPlayerData(payload json.RawMessage) error {
	stats, err := s.deps.Parser.ParsePlayerData(payload)
	if err != nil {
		return err
	}
	s.deps.Inventory.MergeStats(stats)
	s.patch(render.FragmentPlayerStats, s.deps.Inventory.Stats())
	return nil
}

func (s *Synchronizer) applyShopData(payload json.RawMessage) error {
	catalog, err := s.deps.Parser.ParseShopData(payload)
	if err != nil {
		return err
	}
	s.deps.Inventory.SetShop(catalog)
	s.patch(render.FragmentShop, s.deps.Inventory.Shop())
	return nil
}
