package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/cubewalk/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseActions are the callbacks the pause menu triggers.
type PauseActions struct {
	OnResume    func()
	OnRestart   func()
	OnQuit      func()
	Sensitivity func(steps int) float64 // adjusts and returns the new value
	ToggleHUD   func() bool             // toggles and returns the new state
}

// PauseUI holds the ebitenui interface for the pause menu
type PauseUI struct {
	UI      *ebitenui.UI
	actions PauseActions

	sensitivityLabel *widget.Label
	hudLabel         *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI creates the pause menu. sensitivity and showHUD are the values
// shown until the first change.
func NewPauseUI(actions PauseActions, sensitivity float64, showHUD bool) *PauseUI {
	pui := &PauseUI{actions: actions}

	pui.loadFonts()
	pui.buildUI()
	pui.SetSensitivity(sensitivity)
	pui.SetHUD(showHUD)

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (pui *PauseUI) buildUI() {
	// Root container with AnchorLayout to fill the screen; transparent so the
	// dimmed scene shows through.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Menu", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	panel.AddChild(pui.menuButton("Resume", pui.actions.OnResume))
	panel.AddChild(pui.buildSensitivityRow())
	panel.AddChild(pui.buildHUDRow())
	panel.AddChild(pui.menuButton("Restart", pui.actions.OnRestart))
	panel.AddChild(pui.menuButton("Quit", pui.actions.OnQuit))

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) buildSensitivityRow() *widget.Container {
	row := pui.row()

	row.AddChild(pui.smallButton("-", func() {
		pui.SetSensitivity(pui.actions.Sensitivity(-1))
	}))

	pui.sensitivityLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(pui.sensitivityLabel)

	row.AddChild(pui.smallButton("+", func() {
		pui.SetSensitivity(pui.actions.Sensitivity(1))
	}))

	return row
}

func (pui *PauseUI) buildHUDRow() *widget.Container {
	row := pui.row()

	pui.hudLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(pui.hudLabel)

	row.AddChild(pui.smallButton("Toggle", func() {
		pui.SetHUD(pui.actions.ToggleHUD())
	}))

	return row
}

// SetSensitivity updates the sensitivity readout.
func (pui *PauseUI) SetSensitivity(s float64) {
	pui.sensitivityLabel.Label = fmt.Sprintf("Mouse sensitivity %.4f", s)
}

// SetHUD updates the debug HUD readout.
func (pui *PauseUI) SetHUD(on bool) {
	state := "off"
	if on {
		state = "on"
	}
	pui.hudLabel.Label = "Debug HUD " + state
}

// Update must be called once per tick while the menu is shown.
func (pui *PauseUI) Update() {
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}

func (pui *PauseUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
}

func (pui *PauseUI) menuButton(label string, onClick func()) *widget.Button {
	return pui.button(label, 220, onClick)
}

func (pui *PauseUI) smallButton(label string, onClick func()) *widget.Button {
	return pui.button(label, 40, onClick)
}

func (pui *PauseUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 28),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Pause.ButtonIdleColor),
		Hover:   image.NewNineSliceColor(cfg.Pause.ButtonHoverColor),
		Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
	}
}
