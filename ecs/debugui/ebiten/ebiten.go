// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/bundlecs/ecs"
	"github.com/plus3/bundlecs/ecs/debugui"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Game implements ebiten.Game. Every Update runs one scheduler frame inside an
// ImGui frame; the debug windows are drawn through the scheduler, so the
// DebugUI must be registered on it (see Run).
type Game[C any] struct {
	backend   ImguiBackend
	scheduler *ecs.Scheduler[C]
	tickRate  float64
}

func NewGame[C any](backend ImguiBackend, scheduler *ecs.Scheduler[C]) *Game[C] {
	return &Game[C]{
		backend:   backend,
		scheduler: scheduler,
		tickRate:  float64(ebiten.TPS()),
	}
}

func (g *Game[C]) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.BeginFrame()
	g.scheduler.Once(1.0 / g.tickRate)
	g.backend.EndFrame()
	return nil
}

func (g *Game[C]) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game[C]) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window showing ui for world and blocks until it is closed.
// The world is driven by scheduler, which gets ui registered as its last system.
func Run[C any](title string, scheduler *ecs.Scheduler[C], ui *debugui.DebugUI[C]) error {
	backend := NewImguiBackend(title, DefaultWidth, DefaultHeight)
	scheduler.RegisterNamed("debug-ui", ui)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(backend, scheduler))
}
