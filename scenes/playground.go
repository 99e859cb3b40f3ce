package scenes

import (
	"log"
	"os"
	"sync"

	"github.com/automoto/cubewalk/components"
	cfg "github.com/automoto/cubewalk/config"
	"github.com/automoto/cubewalk/systems"
	"github.com/automoto/cubewalk/systems/factory"
	"github.com/automoto/cubewalk/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// pauseMenu is the widget panel shown while paused.
type pauseMenu interface {
	Update()
	Draw(screen *ebiten.Image)
	SetSensitivity(s float64)
	SetHUD(on bool)
}

// PlaygroundScene is the ground plane with the player cube and orbit camera.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	pauseMenu    pauseMenu
	once         sync.Once

	shouldRestart bool
	shouldQuit    bool
}

func NewPlaygroundScene(sc SceneChanger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsPaused(ps.ecs) {
		ps.syncMenu()
		ps.pauseMenu.Update()
	}

	if ps.shouldQuit {
		os.Exit(0)
	}
	if ps.shouldRestart {
		ps.sceneChanger.ChangeScene(NewPlaygroundScene(ps.sceneChanger))
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Scene.SkyColor)
		return
	}
	ps.ecs.Draw(screen)

	if systems.IsPaused(ps.ecs) {
		ps.pauseMenu.Draw(screen)
	}
}

// syncMenu refreshes the menu labels from settings that hotkeys can change
// while the menu is open.
func (ps *PlaygroundScene) syncMenu() {
	settings := systems.GetOrCreateSettings(ps.ecs)
	ps.pauseMenu.SetSensitivity(settings.MouseSensitivity)
	ps.pauseMenu.SetHUD(settings.ShowHUD)
}

func (ps *PlaygroundScene) configure() {
	// Tuning other than mouse sensitivity is fixed for the life of the scene
	params := cfg.Params()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePause)

	// Simulation, frozen while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdatePlayer(params)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSquash))

	ecs.AddSystem(systems.NewUpdateRestart(func() { ps.shouldRestart = true }))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ps.ecs = ecs

	settings := systems.GetOrCreateSettings(ps.ecs)

	player := factory.CreatePlayer(ps.ecs, params)
	factory.CreateCamera(ps.ecs, params, components.Player.Get(player).State)
	factory.CreateGround(ps.ecs)
	factory.CreateSkybox(ps.ecs)

	ps.pauseMenu = ui.NewPauseUI(ui.PauseActions{
		OnResume:  func() { systems.SetPaused(ps.ecs, false) },
		OnRestart: func() { ps.shouldRestart = true },
		OnQuit:    func() { ps.shouldQuit = true },
		Sensitivity: func(steps int) float64 {
			return systems.AdjustSensitivity(ps.ecs, steps)
		},
		ToggleHUD: func() bool { return systems.ToggleHUD(ps.ecs) },
	}, settings.MouseSensitivity, settings.ShowHUD)

	log.Printf("Scene ready: mouse sensitivity %.4f", params.MouseSensitivity)
}
