package systems

import (
	"math"

	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the config globals the first time.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			MouseSensitivity: cfg.Camera.MouseSensitivity,
			ShowHUD:          cfg.Debug.ShowHUD,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// AdjustSensitivity moves the mouse sensitivity by steps increments within
// the configured bounds and persists the result. The running scene picks it
// up on its next step; later scenes start from it.
func AdjustSensitivity(ecs *ecs.ECS, steps int) float64 {
	settings := GetOrCreateSettings(ecs)
	settings.MouseSensitivity = StepSensitivity(settings.MouseSensitivity, steps)
	cfg.Camera.MouseSensitivity = settings.MouseSensitivity
	SaveCurrentSettings(settings)
	return settings.MouseSensitivity
}

// StepSensitivity returns s moved by steps increments, clamped to the
// configured range and rounded to whole increments.
func StepSensitivity(s float64, steps int) float64 {
	step := cfg.Pause.SensitivityStep
	s = math.Round(s/step+float64(steps)) * step
	return math.Max(cfg.Pause.MinSensitivity, math.Min(cfg.Pause.MaxSensitivity, s))
}

// ToggleHUD flips the debug HUD and persists the choice.
func ToggleHUD(ecs *ecs.ECS) bool {
	settings := GetOrCreateSettings(ecs)
	settings.ShowHUD = !settings.ShowHUD
	cfg.Debug.ShowHUD = settings.ShowHUD
	SaveCurrentSettings(settings)
	return settings.ShowHUD
}
