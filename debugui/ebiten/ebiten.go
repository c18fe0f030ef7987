// Package ebiten runs the overlay inspector inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/vtt/debugui"
)

// ImguiBackend is the Ebiten implementation of the Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend opens a window and disables imgui.ini persistence
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Game is an ebiten.Game that draws the inspector over whatever Scene draws.
// Tick runs once per update before the inspector windows are built and is
// where callers mutate their store or flush an overlay.Changes buffer.
type Game struct {
	Backend   *ImguiBackend
	Inspector *debugui.Inspector
	Tick      func() error
	Scene     func(screen *ebiten.Image)

	timer *debugui.FrameTimer
}

func (g *Game) Update() error {
	if g.timer == nil {
		g.timer = debugui.NewFrameTimer()
	}
	if g.Tick != nil {
		if err := g.Tick(); err != nil {
			return err
		}
	}

	g.Backend.BeginFrame()
	g.Inspector.Render(g.timer.GetDeltaTime())
	g.Backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Scene != nil {
		g.Scene(screen)
	}
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
