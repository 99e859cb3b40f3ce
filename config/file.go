package config

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk tuning format. Every field is optional; anything left
// out keeps its built-in default.
type File struct {
	Window *struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		Title  *string `yaml:"title"`
	} `yaml:"window"`

	Player *struct {
		NormalSpeed  *float64  `yaml:"normal_speed"`
		SprintSpeed  *float64  `yaml:"sprint_speed"`
		JumpImpulse  *float64  `yaml:"jump_impulse"`
		Gravity      *float64  `yaml:"gravity"`
		GroundHeight *float64  `yaml:"ground_height"`
		Color        *HexColor `yaml:"color"`
	} `yaml:"player"`

	Camera *struct {
		Distance         *float64 `yaml:"distance"`
		MinPitch         *float64 `yaml:"min_pitch"`
		MaxPitch         *float64 `yaml:"max_pitch"`
		MouseSensitivity *float64 `yaml:"mouse_sensitivity"`
		EyeLift          *float64 `yaml:"eye_lift"`
		HeadHeight       *float64 `yaml:"head_height"`
		FieldOfView      *float64 `yaml:"fov"`
		Near             *float64 `yaml:"near"`
		Far              *float64 `yaml:"far"`
	} `yaml:"camera"`

	Scene *struct {
		SkyColor         *HexColor `yaml:"sky_color"`
		GroundColor      *HexColor `yaml:"ground_color"`
		GroundSize       *float64  `yaml:"ground_size"`
		GroundTiles      *int      `yaml:"ground_tiles"`
		AmbientIntensity *float64  `yaml:"ambient"`
		LightIntensity   *float64  `yaml:"light_intensity"`
	} `yaml:"scene"`

	Sim *struct {
		TPS *int `yaml:"tps"`
	} `yaml:"sim"`

	// Bindings replaces the keys of the named actions, e.g. jump: [Space, X].
	Bindings map[string][]ebiten.Key `yaml:"bindings"`
}

// HexColor is an RGB or RGBA color written as "#rrggbb" or "#rrggbbaa".
type HexColor color.RGBA

func (c *HexColor) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", string(text))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(text), err)
	}
	c.R, c.G, c.B, c.A = b[0], b[1], b[2], 255
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

// LoadFile reads a YAML tuning file, applies it over the defaults and
// validates the result. Unknown keys are rejected.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := Apply(&f); err != nil {
		return fmt.Errorf("apply %s: %w", path, err)
	}
	return Validate()
}

// Apply copies the fields present in f onto the globals.
func Apply(f *File) error {
	if w := f.Window; w != nil {
		set(&C.Width, w.Width)
		set(&C.Height, w.Height)
		set(&C.Title, w.Title)
	}
	if p := f.Player; p != nil {
		set(&Player.NormalSpeed, p.NormalSpeed)
		set(&Player.SprintSpeed, p.SprintSpeed)
		set(&Player.JumpImpulse, p.JumpImpulse)
		set(&Player.Gravity, p.Gravity)
		set(&Player.GroundHeight, p.GroundHeight)
		setColor(&Player.Color, p.Color)
	}
	if c := f.Camera; c != nil {
		set(&Camera.Distance, c.Distance)
		set(&Camera.MinPitch, c.MinPitch)
		set(&Camera.MaxPitch, c.MaxPitch)
		set(&Camera.MouseSensitivity, c.MouseSensitivity)
		set(&Camera.EyeLift, c.EyeLift)
		set(&Camera.HeadHeight, c.HeadHeight)
		set(&Camera.FieldOfView, c.FieldOfView)
		set(&Camera.Near, c.Near)
		set(&Camera.Far, c.Far)
	}
	if s := f.Scene; s != nil {
		setColor(&Scene.SkyColor, s.SkyColor)
		setColor(&Scene.GroundColor, s.GroundColor)
		set(&Scene.GroundSize, s.GroundSize)
		set(&Scene.GroundTiles, s.GroundTiles)
		set(&Scene.AmbientIntensity, s.AmbientIntensity)
		set(&Scene.LightIntensity, s.LightIntensity)
	}
	if s := f.Sim; s != nil {
		set(&Sim.TPS, s.TPS)
	}

	for name, keys := range f.Bindings {
		id, ok := ActionByName(name)
		if !ok || id == ActionNone {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
		Input.Bindings[id] = InputBinding{Keys: keys}
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *color.RGBA, v *HexColor) {
	if v != nil {
		*dst = color.RGBA(*v)
	}
}

// Validate checks the current globals for values the game cannot run with.
func Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(C.Width > 0 && C.Height > 0, "window size %dx%d must be positive", C.Width, C.Height)
	check(Player.NormalSpeed >= 0, "player.normal_speed %v must not be negative", Player.NormalSpeed)
	check(Player.SprintSpeed >= 0, "player.sprint_speed %v must not be negative", Player.SprintSpeed)
	check(Player.Gravity > 0, "player.gravity %v must be positive", Player.Gravity)
	check(Player.JumpImpulse >= 0, "player.jump_impulse %v must not be negative", Player.JumpImpulse)
	check(Camera.Distance > 0, "camera.distance %v must be positive", Camera.Distance)
	check(Camera.MinPitch <= Camera.MaxPitch,
		"camera.min_pitch %v exceeds camera.max_pitch %v", Camera.MinPitch, Camera.MaxPitch)
	check(Camera.MinPitch >= -math.Pi/2 && Camera.MaxPitch <= math.Pi/2,
		"camera pitch range [%v, %v] must stay within ±π/2", Camera.MinPitch, Camera.MaxPitch)
	check(Camera.FieldOfView > 0 && Camera.FieldOfView < 180, "camera.fov %v must be in (0, 180)", Camera.FieldOfView)
	check(Camera.Near > 0 && Camera.Near < Camera.Far,
		"camera near/far %v/%v must satisfy 0 < near < far", Camera.Near, Camera.Far)
	check(Scene.GroundSize > 0, "scene.ground_size %v must be positive", Scene.GroundSize)
	check(Scene.GroundTiles > 0, "scene.ground_tiles %d must be positive", Scene.GroundTiles)
	check(Sim.TPS > 0, "sim.tps %d must be positive", Sim.TPS)

	return errors.Join(errs...)
}
