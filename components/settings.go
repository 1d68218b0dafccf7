package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton of user-facing toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
