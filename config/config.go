package config

import (
	"image/color"
	"math"

	"github.com/automoto/cubewalk/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (world units per reference frame)
	NormalSpeed float64
	SprintSpeed float64
	JumpImpulse float64

	// Physics
	Gravity      float64
	GroundHeight float64 // Player's y position when resting on the ground

	// Dimensions
	Width  float64
	Height float64
	Depth  float64

	Color color.RGBA
}

// CameraConfig contains orbit camera configuration
type CameraConfig struct {
	Distance         float64 // Orbit radius around the player
	MinPitch         float64 // Radians; keeps the camera off the top of the player
	MaxPitch         float64 // Radians; keeps the camera above the horizon
	MouseSensitivity float64 // Radians per pixel of drag
	EyeLift          float64 // Extra eye height above the orbit point
	HeadHeight       float64 // Look-at height above the player origin

	// Projection
	FieldOfView float64 // Vertical, degrees
	Near        float64
	Far         float64

	OrbitButton ebiten.MouseButton
}

// SceneConfig describes the static scenery and lighting
type SceneConfig struct {
	SkyColor    color.RGBA
	GroundColor color.RGBA
	GroundSize  float64
	GroundTiles int // Subdivisions per side; keeps near-plane clipping and depth sorting stable
	SkyboxSize  float64

	AmbientIntensity float64
	LightPosition    [3]float64 // Directional light shines from here toward the origin
	LightIntensity   float64
	ShadowColor      color.RGBA
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleXZ float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY  float64 // vertical scale on jump (> 1 = taller)
	LandScaleXZ float64 // horizontal scale on land (> 1 = wider)
	LandScaleY  float64 // vertical scale on land (< 1 = shorter)
	Duration    float32 // seconds to ease back to 1
}

// SimConfig controls the fixed-step scheduler
type SimConfig struct {
	// ReferenceTPS is the tick rate the tuning values are expressed in.
	ReferenceTPS int
	// TPS is the rate ebiten runs Update at.
	TPS int
}

// PauseConfig contains pause menu configuration
type PauseConfig struct {
	OverlayColor     color.RGBA
	TitleColor       color.RGBA
	SensitivityStep  float64 // Radians per pixel added or removed per click
	MinSensitivity   float64
	MaxSensitivity   float64
	PanelColor       color.RGBA
	ButtonIdleColor  color.RGBA
	ButtonHoverColor color.RGBA
}

// HUDConfig contains debug HUD configuration
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	BoxColor   color.RGBA
	TextColor  color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool // Start with the debug HUD visible
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Scene SceneConfig
var SquashStretch SquashStretchConfig
var Sim SimConfig
var Pause PauseConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	ForestGreen  = color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "cubewalk",
	}

	Player = PlayerConfig{
		NormalSpeed: 0.1,
		SprintSpeed: 0.2,
		JumpImpulse: 0.2,

		Gravity:      0.01,
		GroundHeight: 0.5,

		Width:  1,
		Height: 2,
		Depth:  1,

		Color: Red,
	}

	Camera = CameraConfig{
		Distance:         5,
		MinPitch:         0.1,         // don't allow looking straight down the player's back
		MaxPitch:         math.Pi / 2, // don't allow looking from below the horizon
		MouseSensitivity: 0.002,
		EyeLift:          1.5,
		HeadHeight:       1,

		FieldOfView: 75,
		Near:        0.1,
		Far:         1000,

		OrbitButton: ebiten.MouseButtonLeft,
	}

	Scene = SceneConfig{
		SkyColor:    SkyBlue,
		GroundColor: ForestGreen,
		GroundSize:  100,
		GroundTiles: 20,
		SkyboxSize:  1000,

		AmbientIntensity: 0.5,
		LightPosition:    [3]float64{5, 10, 7.5},
		LightIntensity:   1,
		ShadowColor:      color.RGBA{R: 0, G: 0, B: 0, A: 90},
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleXZ: 0.8,
		JumpScaleY:  1.25,
		LandScaleXZ: 1.25,
		LandScaleY:  0.7,
		Duration:    0.25,
	}

	Sim = SimConfig{
		ReferenceTPS: 60,
		TPS:          60,
	}

	Pause = PauseConfig{
		OverlayColor:     BlackOverlay,
		TitleColor:       BrightOrange,
		SensitivityStep:  0.0005,
		MinSensitivity:   0.0005,
		MaxSensitivity:   0.01,
		PanelColor:       color.RGBA{R: 20, G: 20, B: 30, A: 230},
		ButtonIdleColor:  color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHoverColor: color.RGBA{R: 90, G: 90, B: 120, A: 255},
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 16,
		BoxColor:   color.RGBA{R: 0, G: 0, B: 0, A: 150},
		TextColor:  White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHUD: false,
	}
}

// GroundY is the height of the ground plane: the resting cube's base.
func GroundY() float64 {
	return Player.GroundHeight - Player.Height/2
}

// Params builds the kinematics tuning from the current globals.
func Params() kinematics.Params {
	return kinematics.Params{
		NormalSpeed:      Player.NormalSpeed,
		SprintSpeed:      Player.SprintSpeed,
		Gravity:          Player.Gravity,
		JumpImpulse:      Player.JumpImpulse,
		GroundHeight:     Player.GroundHeight,
		MinPitch:         Camera.MinPitch,
		MaxPitch:         Camera.MaxPitch,
		OrbitDistance:    Camera.Distance,
		MouseSensitivity: Camera.MouseSensitivity,
		EyeLift:          Camera.EyeLift,
		HeadHeight:       Camera.HeadHeight,
	}
}
