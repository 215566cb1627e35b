package model

// Partial update records. A nil field means "not present in the payload,
// leave the snapshot value unchanged".

// VitalsUpdate is a partial update to the player's vitals, economy and world
// fields.
type VitalsUpdate struct {
	Health *int    `json:"health"`
	Armor  *int    `json:"armor"`
	Level  *int    `json:"level"`
	Money  *int64  `json:"money"`
	Bank   *int64  `json:"bank"`
	Zone   *string `json:"zone"`
	Weapon *string `json:"weapon"`
	Ammo   *int    `json:"ammo"`
	Wanted *int    `json:"wanted"`
}

// VehicleUpdate is a partial update to the vehicle sub-record.
type VehicleUpdate struct {
	Engine *bool `json:"engine"`
	Locked *bool `json:"doors"`
	Lights *bool `json:"lights"`
	Fuel   *int  `json:"fuel"`
	Health *int  `json:"health"`
}

// BankUpdate is a partial update to the bank panel figures.
type BankUpdate struct {
	Cash          *int64 `json:"cash"`
	RouletteMoney *int64 `json:"rouletteMoney"`
}

// TimersUpdate is a partial update to the timed-state indicators.
type TimersUpdate struct {
	JailTime *int `json:"jailTime"`
	TaxiTime *int `json:"taxiTime"`
	Admin    *int `json:"admin"`
}

// AuthResponse is the host's verdict on a login or register submission.
type AuthResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Message string `json:"message"`
}
