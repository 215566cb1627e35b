// Package render defines the fragment patch sink between the state core and
// the browser surface. The DOM is external; the core only emits patches
// naming the fragment that changed.
package render

// Fragment identifies a view fragment backed by snapshot fields.
type Fragment string

const (
	FragmentScreen        Fragment = "screen"
	FragmentHealth        Fragment = "hud.health"
	FragmentArmor         Fragment = "hud.armor"
	FragmentLevel         Fragment = "hud.level"
	FragmentMoney         Fragment = "hud.money"
	FragmentBank          Fragment = "hud.bank"
	FragmentZone          Fragment = "hud.zone"
	FragmentWanted        Fragment = "hud.wanted"
	FragmentWeapon        Fragment = "hud.weapon"
	FragmentTimers        Fragment = "hud.timers"
	FragmentClock         Fragment = "hud.clock"
	FragmentVehicle       Fragment = "hud.vehicle"
	FragmentBankPanel     Fragment = "bank.panel"
	FragmentSpawnLevel    Fragment = "spawn.level"
	FragmentSpawnOptions  Fragment = "spawn.options"
	FragmentJobFrame      Fragment = "job.frame"
	FragmentQuestFrame    Fragment = "quest.frame"
	FragmentInventory     Fragment = "inventory.items"
	FragmentPlayerStats   Fragment = "inventory.stats"
	FragmentShop          Fragment = "inventory.shop"
	FragmentNotifications Fragment = "notifications"
)

// Op is the patch operation kind.
type Op string

const (
	OpSet  Op = "set"
	OpShow Op = "show"
	OpHide Op = "hide"
)

// Patch is one render instruction for a single fragment. A field update
// never triggers a full-document render; only the dirty fragments receive
// patches.
type Patch struct {
	Fragment Fragment `json:"fragment"`
	Op       Op       `json:"op"`
	Data     any      `json:"data,omitempty"`
}

// Renderer receives fragment patches.
type Renderer interface {
	Apply(Patch)
}

// Sender forwards an outbound event to the host. Satisfied by the bridge.
type Sender interface {
	Send(event string, payload any) error
}
