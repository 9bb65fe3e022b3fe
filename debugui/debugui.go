// Package debugui draws Dear ImGui inspection windows over the ebiten
// frontend.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Panel is one ImGui window. Render is called between the backend's
// BeginFrame and EndFrame with the seconds since the previous frame.
type Panel interface {
	Render(dt float32)
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(dt float32)

func (f PanelFunc) Render(dt float32) { f(dt) }

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui ebiten backend and the panels drawn with it.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	panels  []Panel
	timer   *FrameTimer
	input   InputState
}

// New creates the ImGui backend and its window. It must be called before
// ebiten.RunGame.
func New(title string, width, height int, panels ...Panel) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		backend: backend,
		panels:  panels,
		timer:   NewFrameTimer(),
	}
}

// Add appends panels drawn after the existing ones.
func (o *Overlay) Add(panels ...Panel) {
	o.panels = append(o.panels, panels...)
}

// Update builds this frame's ImGui windows.
func (o *Overlay) Update() {
	dt := o.timer.GetDeltaTime()

	o.backend.BeginFrame()
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range o.panels {
		p.Render(dt)
	}
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

func (o *Overlay) WantCaptureKeyboard() bool { return o.input.WantCaptureKeyboard }
func (o *Overlay) WantCaptureMouse() bool    { return o.input.WantCaptureMouse }
