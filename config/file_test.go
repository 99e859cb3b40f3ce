package config

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cubewalk.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func resetAll(t *testing.T) {
	t.Helper()
	Reset()
	ResetInput()
	t.Cleanup(func() {
		Reset()
		ResetInput()
	})
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		noFile   bool
		wantErr  string
		validate func(t *testing.T)
	}{
		{
			name: "overrides only the given fields",
			content: `window:
  width: 800
player:
  sprint_speed: 0.3
  color: "#00ff00"
camera:
  mouse_sensitivity: 0.004
scene:
  sky_color: "#10203040"
sim:
  tps: 120
`,
			validate: func(t *testing.T) {
				if C.Width != 800 || C.Height != 720 {
					t.Errorf("window = %dx%d, want 800x720", C.Width, C.Height)
				}
				if Player.SprintSpeed != 0.3 {
					t.Errorf("SprintSpeed = %v, want 0.3", Player.SprintSpeed)
				}
				if Player.NormalSpeed != 0.1 {
					t.Errorf("NormalSpeed = %v, want default 0.1", Player.NormalSpeed)
				}
				if Player.Color != (color.RGBA{R: 0, G: 255, B: 0, A: 255}) {
					t.Errorf("Color = %v", Player.Color)
				}
				if Scene.SkyColor != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
					t.Errorf("SkyColor = %v", Scene.SkyColor)
				}
				if Camera.MouseSensitivity != 0.004 {
					t.Errorf("MouseSensitivity = %v, want 0.004", Camera.MouseSensitivity)
				}
				if Sim.TPS != 120 {
					t.Errorf("TPS = %d, want 120", Sim.TPS)
				}
				if p := Params(); p.SprintSpeed != 0.3 || p.MouseSensitivity != 0.004 {
					t.Errorf("Params() did not pick up overrides: %+v", p)
				}
			},
		},
		{
			name:    "ground plane follows ground height",
			content: "player:\n  ground_height: 2\n",
			validate: func(t *testing.T) {
				if got := GroundY(); got != 1 {
					t.Errorf("GroundY() = %v, want 1", got)
				}
			},
		},
		{
			name: "rebinds keys",
			content: `bindings:
  jump: [Space, X]
`,
			validate: func(t *testing.T) {
				keys := Input.Bindings[ActionJump].Keys
				if len(keys) != 2 || keys[0] != ebiten.KeySpace || keys[1] != ebiten.KeyX {
					t.Errorf("jump keys = %v, want [Space X]", keys)
				}
				if got := Input.Bindings[ActionMoveForward].Keys; len(got) != 1 || got[0] != ebiten.KeyW {
					t.Errorf("forward keys = %v, want untouched [W]", got)
				}
			},
		},
		{
			name:    "unknown action",
			content: "bindings:\n  fly: [F]\n",
			wantErr: `unknown action "fly"`,
		},
		{
			name:    "unknown field",
			content: "player:\n  speed: 3\n",
			wantErr: "field speed not found",
		},
		{
			name:    "bad color",
			content: "player:\n  color: \"#12345\"\n",
			wantErr: "want #rrggbb",
		},
		{
			name:    "inverted pitch range",
			content: "camera:\n  min_pitch: 1.2\n  max_pitch: 0.4\n",
			wantErr: "exceeds camera.max_pitch",
		},
		{
			name:    "several invalid values are all reported",
			content: "player:\n  gravity: 0\ncamera:\n  distance: -1\n",
			validate: func(t *testing.T) {
				err := Validate()
				if err == nil {
					t.Fatal("expected validation error")
				}
				for _, want := range []string{"player.gravity", "camera.distance"} {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("error %q does not mention %s", err, want)
					}
				}
			},
			wantErr: "player.gravity",
		},
		{
			name:   "missing file",
			noFile: true,
			validate: func(t *testing.T) {
				err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("err = %v, want fs.ErrNotExist", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAll(t)

			if !tt.noFile {
				err := LoadFile(writeConfig(t, tt.content))
				switch {
				case tt.wantErr == "" && err != nil:
					t.Fatalf("LoadFile: %v", err)
				case tt.wantErr != "" && err == nil:
					t.Fatalf("LoadFile succeeded, want error containing %q", tt.wantErr)
				case tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr):
					t.Fatalf("err = %v, want it to contain %q", err, tt.wantErr)
				}
			}
			if tt.validate != nil {
				tt.validate(t)
			}
		})
	}
}

func TestDefaultsAreValid(t *testing.T) {
	resetAll(t)
	if err := Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}

	p := Params()
	if p.NormalSpeed != 0.1 || p.SprintSpeed != 0.2 || p.Gravity != 0.01 || p.JumpImpulse != 0.2 {
		t.Errorf("unexpected movement defaults: %+v", p)
	}
	if p.GroundHeight != 0.5 || p.OrbitDistance != 5 || p.MouseSensitivity != 0.002 {
		t.Errorf("unexpected camera defaults: %+v", p)
	}
	if GroundY() != -0.5 {
		t.Errorf("GroundY() = %v, want -0.5", GroundY())
	}
}

func TestActionByName(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v; want %v", id.String(), got, ok, id)
		}
	}
	if _, ok := ActionByName("teleport"); ok {
		t.Error("ActionByName accepted an unknown name")
	}
}
