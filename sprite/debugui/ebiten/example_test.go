package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spritelist/sprite"
	"github.com/plus3/spritelist/sprite/debugui"
	debugui_ebiten "github.com/plus3/spritelist/sprite/debugui/ebiten"
	"github.com/plus3/spritelist/sprite/ebitenrender"
)

// Game drives the sprite layers and draws the debug windows on top.
type Game struct {
	driver       *sprite.Driver
	canvas       *ebitenrender.Canvas
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Systems queue their windows; they render when commands flush
	g.driver.Once(1.0/60.0, nil)

	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.driver.Draw(g.canvas)

	// Draw ImGui overlay on top
	g.imguiBackend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Sprite Debugger", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	frame := sprite.NewFrame()
	driver := sprite.NewDriver(frame)

	guys := sprite.NewRegistry(sprite.WithFrame(frame), sprite.WithName("guys"))
	items := sprite.NewRegistry(sprite.WithFrame(frame), sprite.WithName("items"))
	driver.Register("guys", guys, sprite.LayerOptions{Shadows: true})
	driver.Register("items", items, sprite.LayerOptions{LowFirst: true})

	for i := range 8 {
		s := sprite.New(frame)
		s.ID = i
		s.X = sprite.FromInt(16 * i)
		guys.Add(s)
	}

	ui := &debugui.ImguiSystem{}
	ui.Add(debugui.NewWindows(driver, "guys").Render)
	driver.AddSystem(ui)

	sheet := ebiten.NewImage(sprite.TilesPerRow*ebitenrender.TileSize, 16*ebitenrender.TileSize)
	game := &Game{
		driver:       driver,
		canvas:       ebitenrender.New(nil, ebitenrender.NewTileSheet(sheet)),
		imguiBackend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
