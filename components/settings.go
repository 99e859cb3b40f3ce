package components

import "github.com/yohamta/donburi"

// SettingsData holds the user-adjustable settings that outlive a scene.
type SettingsData struct {
	MouseSensitivity float64
	ShowHUD          bool
}

var Settings = donburi.NewComponentType[SettingsData]()
