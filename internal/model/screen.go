package model

// Screen identifies a mutually exclusive top-level view.
type Screen string

const (
	ScreenLogin       Screen = "login"
	ScreenRegister    Screen = "register"
	ScreenGender      Screen = "gender-select"
	ScreenSpawn       Screen = "spawn-select"
	ScreenLoading     Screen = "loading"
	ScreenSuccess     Screen = "success"
	ScreenHUD         Screen = "hud"
	ScreenPhone       Screen = "phone"
	ScreenBank        Screen = "bank"
	ScreenInventory   Screen = "inventory"
	ScreenShop        Screen = "shop"
	ScreenJob         Screen = "job"
	ScreenQuest       Screen = "quest"
)

// screens is the closed set of valid top-level screens.
var screens = map[Screen]bool{
	ScreenLogin:     true,
	ScreenRegister:  true,
	ScreenGender:    true,
	ScreenSpawn:     true,
	ScreenLoading:   true,
	ScreenSuccess:   true,
	ScreenHUD:       true,
	ScreenPhone:     true,
	ScreenBank:      true,
	ScreenInventory: true,
	ScreenShop:      true,
	ScreenJob:       true,
	ScreenQuest:     true,
}

// KnownScreen reports whether s is a member of the closed screen set.
func KnownScreen(s Screen) bool {
	return screens[s]
}

// Overlay identifies a non-exclusive UI layer that may coexist with any screen.
type Overlay string

const (
	OverlayNotifications Overlay = "notifications"
	OverlaySpinner       Overlay = "spinner"
)
