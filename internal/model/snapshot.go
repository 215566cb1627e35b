// Package model defines the session snapshot and the value objects shared
// between the synchronizer, router and render layers.
package model

// AuthStage is the player's position in the authentication flow.
// Exactly one stage is active at a time.
type AuthStage int

const (
	StageUnauthenticated AuthStage = iota
	StageAwaitingGender
	StageAwaitingSpawn
	StageInWorld
)

func (s AuthStage) String() string {
	switch s {
	case StageUnauthenticated:
		return "unauthenticated"
	case StageAwaitingGender:
		return "awaiting-gender"
	case StageAwaitingSpawn:
		return "awaiting-spawn"
	case StageInWorld:
		return "in-world"
	default:
		return "unknown"
	}
}

// VehicleState is the vehicle sub-record. It exists only while the player
// is reported as a vehicle occupant; absence means "not in a vehicle".
type VehicleState struct {
	Engine bool `json:"engine"`
	Locked bool `json:"doors"`
	Lights bool `json:"lights"`
	Fuel   int  `json:"fuel"`   // 0-100
	Health int  `json:"health"` // 0-1000
}

// Timers holds the active timed states, each as remaining seconds.
type Timers struct {
	JailTime int `json:"jailTime"`
	TaxiTime int `json:"taxiTime"`
	Admin    int `json:"admin"`
}

// SpawnLocks controls which spawn options are offered. A false lock hides
// the corresponding option on the spawn screen.
type SpawnLocks struct {
	Member       bool `json:"member"`
	FamilyMember bool `json:"familyMember"`
	Location     bool `json:"location"`
}

// Snapshot is the single mutable record of player/vehicle/session state for
// the active session. It is owned by the synchronizer; render functions only
// read copies of it.
type Snapshot struct {
	// identity
	Name  string    `json:"name"`
	Stage AuthStage `json:"stage"`

	// vitals
	Health int `json:"health"` // 0-100
	Armor  int `json:"armor"`  // 0-100
	Level  int `json:"level"`

	// economy
	Cash          int64 `json:"cash"`
	Bank          int64 `json:"bank"`
	RouletteMoney int64 `json:"rouletteMoney"`

	// world
	Zone       string `json:"zone"`
	ZoneDanger bool   `json:"zoneDanger"`
	Wanted     int    `json:"wanted"`
	Weapon     string `json:"weapon"`
	Ammo       int    `json:"ammo"`

	// vehicle, present only while occupying one
	Vehicle *VehicleState `json:"vehicle,omitempty"`

	// transient indicators
	Timers Timers `json:"timers"`

	// spawn screen
	SpawnLevel int        `json:"spawnLevel"`
	SpawnLocks SpawnLocks `json:"spawnLocks"`
}

// NewSnapshot returns a snapshot at session defaults.
func NewSnapshot(name string) *Snapshot {
	return &Snapshot{
		Name:   name,
		Stage:  StageUnauthenticated,
		Health: 100,
	}
}

// Reset restores session defaults, keeping the display name.
func (s *Snapshot) Reset() {
	name := s.Name
	*s = Snapshot{}
	s.Name = name
	s.Health = 100
}

// Clamp clamps v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRanges enforces the declared display ranges on the snapshot.
func (s *Snapshot) ClampRanges() {
	s.Health = Clamp(s.Health, 0, 100)
	s.Armor = Clamp(s.Armor, 0, 100)
	if s.Wanted < 0 {
		s.Wanted = 0
	}
	if s.Cash < 0 {
		s.Cash = 0
	}
	if s.Bank < 0 {
		s.Bank = 0
	}
	if s.Vehicle != nil {
		s.Vehicle.Fuel = Clamp(s.Vehicle.Fuel, 0, 100)
		s.Vehicle.Health = Clamp(s.Vehicle.Health, 0, 1000)
	}
}
