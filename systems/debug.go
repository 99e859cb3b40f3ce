package systems

import (
	"fmt"

	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/fonts"
	"github.com/automoto/cubewalk/kinematics"
	"github.com/automoto/cubewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug HUD on F3.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		ToggleHUD(ecs)
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHUD {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	player := components.Player.Get(playerEntry).State
	camera := components.Camera.Get(cameraEntry).State

	lines := DebugLines(player, camera, ebiten.ActualTPS(), ebiten.ActualFPS())

	margin := cfg.HUD.Margin
	lh := cfg.HUD.LineHeight
	face := fonts.Regular.Get()

	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	vector.FillRect(screen,
		float32(margin), float32(margin),
		float32(float64(width)+2*margin), float32(float64(len(lines))*lh+margin),
		cfg.HUD.BoxColor, false)

	for i, l := range lines {
		y := int(2*margin + float64(i)*lh + lh/2)
		text.Draw(screen, l, face, int(2*margin), y, cfg.HUD.TextColor)
	}
}

// DebugLines formats the HUD readout.
func DebugLines(p kinematics.PlayerState, c kinematics.CameraState, tps, fps float64) []string {
	return []string{
		fmt.Sprintf("pos   %7.2f %7.2f %7.2f", p.Position.X(), p.Position.Y(), p.Position.Z()),
		fmt.Sprintf("yaw   %7.3f", p.Yaw),
		fmt.Sprintf("vy    %7.3f  %s", p.VelocityY, p.Phase()),
		fmt.Sprintf("cam   yaw %7.3f  pitch %5.3f", c.Yaw, c.Pitch),
		fmt.Sprintf("tps   %5.1f  fps %5.1f", tps, fps),
	}
}
