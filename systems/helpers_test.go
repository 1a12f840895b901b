package systems

import (
	"math"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLayout() *layout.Page {
	return &layout.Page{
		Width:  800,
		Height: 2400,
		Sections: map[string]layout.Rect{
			layout.SectionHero:    {X: 0, Y: 0, W: 800, H: 600},
			layout.SectionWishes:  {X: 0, Y: 600, W: 800, H: 700},
			layout.SectionCake:    {X: 0, Y: 1300, W: 800, H: 640},
			layout.SectionClosing: {X: 0, Y: 1940, W: 800, H: 460},
		},
		Elements: map[string]layout.Rect{
			layout.ElementHeroContent:  {X: 100, Y: 120, W: 600, H: 280},
			layout.ElementScrollButton: {X: 310, Y: 430, W: 180, H: 44},
			layout.ElementCandle:       {X: 387, Y: 1430, W: 26, H: 90},
			layout.ElementFlame:        {X: 392, Y: 1392, W: 16, H: 30},
			layout.ElementSmoke:        {X: 390, Y: 1370, W: 20, H: 20},
			layout.ElementCake:         {X: 280, Y: 1520, W: 240, H: 150},
			layout.ElementReveal:       {X: 200, Y: 1690, W: 400, H: 40},
		},
		Cards: []layout.Card{
			{Rect: layout.Rect{X: 60, Y: 720, W: 320, H: 220}, Index: 0},
			{Rect: layout.Rect{X: 420, Y: 720, W: 320, H: 220}, Index: 1},
		},
	}
}

type testWorld struct {
	ecs   *ecs.ECS
	space *resolv.Space
	page  *layout.Page
}

// newTestWorld builds a page with a 800x600 viewport, a pointer and no
// drawable entities
func newTestWorld() *testWorld {
	e := ecs.NewECS(donburi.NewWorld())
	page := testLayout()
	space := components.Space.Get(factory.CreateSpace(e, page.Width, page.Height, 16, 16))
	factory.CreatePage(e, page, &cfg.Content{Title: "Happy Birthday"}, false)
	factory.CreateCamera(e, 800, 600)
	factory.CreatePointer(e, space)
	return &testWorld{ecs: e, space: space, page: page}
}

func (w *testWorld) camera() *components.CameraData {
	entry, _ := components.Camera.First(w.ecs.World)
	return components.Camera.Get(entry)
}

func (w *testWorld) pointer() *components.PointerData {
	entry, _ := components.Pointer.First(w.ecs.World)
	return components.Pointer.Get(entry)
}

func (w *testWorld) press(id cfg.ActionID) {
	input := getOrCreateInput(w.ecs)
	input.Current[id] = true
}

func (w *testWorld) release() {
	input := getOrCreateInput(w.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Wheel = 0
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
