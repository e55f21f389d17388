// Package ui draws the on-screen HUD and its controls.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds HUD styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	TextColor   rl.Color
	AlertColor  rl.Color
	HintColor   rl.Color
	FontSize    int32
	LineHeight  int32
	Padding     int32
}

// DefaultTheme returns the standard HUD theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		TextColor:   rl.RayWhite,
		AlertColor:  rl.Yellow,
		HintColor:   rl.DarkGray,
		FontSize:    16,
		LineHeight:  20,
		Padding:     10,
	}
}

// HUDData holds everything the HUD displays.
type HUDData struct {
	Tick           int64
	FPS            int32
	Paused         bool
	StepsPerUpdate int
	Bodies         int

	HasPlayer    bool
	PlayerName   string
	PlayerX      float64
	PlayerY      float64
	PlayerVelX   float64
	PlayerVelY   float64
	PlayerStatic bool
}

// Actions reports which HUD buttons were pressed this frame.
type Actions struct {
	TogglePause bool
	Step        bool
	Reset       bool
}

// HUD renders the status panel and control buttons.
type HUD struct {
	Theme Theme
	X, Y  int32
	Width int32
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{Theme: DefaultTheme(), X: 10, Y: 10, Width: 280}
}

// Draw renders the HUD and returns the buttons pressed this frame.
func (h *HUD) Draw(data HUDData) Actions {
	th := h.Theme
	lines := Lines(data)
	height := th.Padding*2 + th.LineHeight*int32(len(lines)) + 34

	rl.DrawRectangle(h.X, h.Y, h.Width, height, th.PanelBg)
	rl.DrawRectangleLines(h.X, h.Y, h.Width, height, th.PanelBorder)

	y := h.Y + th.Padding
	for _, line := range lines {
		rl.DrawText(line, h.X+th.Padding, y, th.FontSize, th.TextColor)
		y += th.LineHeight
	}
	if data.Paused {
		rl.DrawText("PAUSED", h.X+h.Width-th.Padding-70, h.Y+th.Padding, th.FontSize, th.AlertColor)
	}

	bx := float32(h.X + th.Padding)
	by := float32(y + 4)
	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}

	var a Actions
	a.TogglePause = gui.Button(rl.Rectangle{X: bx, Y: by, Width: 80, Height: 24}, pauseLabel)
	a.Step = gui.Button(rl.Rectangle{X: bx + 88, Y: by, Width: 80, Height: 24}, "Step")
	a.Reset = gui.Button(rl.Rectangle{X: bx + 176, Y: by, Width: 80, Height: 24}, "Reset")
	return a
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.Theme.HintColor)
}

// Lines formats the text rows of the panel.
func Lines(data HUDData) []string {
	out := []string{
		fmt.Sprintf("Tick: %d  FPS: %d", data.Tick, data.FPS),
		fmt.Sprintf("Speed: %dx  Bodies: %d", data.StepsPerUpdate, data.Bodies),
	}
	if !data.HasPlayer {
		return append(out, "Player: none")
	}
	state := "moving"
	if data.PlayerStatic {
		state = "frozen"
	}
	return append(out,
		fmt.Sprintf("%s (%s)", data.PlayerName, state),
		fmt.Sprintf("Pos: %.3f, %.3f", data.PlayerX, data.PlayerY),
		fmt.Sprintf("Vel: %.3f, %.3f", data.PlayerVelX, data.PlayerVelY),
	)
}
