package debugui

import "github.com/plus3/spritelist/sprite"

// Windows bundles the browser, inspector and stats windows for one driver.
type Windows struct {
	driver    *sprite.Driver
	timer     *FrameTimer
	Browser   SpriteBrowserComponent
	Inspector SpriteInspectorComponent
	Stats     PerformanceStatsComponent
}

// NewWindows creates the windows, browsing layer first.
func NewWindows(driver *sprite.Driver, layer string) *Windows {
	return &Windows{
		driver:    driver,
		timer:     NewFrameTimer(),
		Browser:   NewSpriteBrowserComponent(layer, 100),
		Inspector: NewSpriteInspectorComponent(),
		Stats:     NewPerformanceStatsComponent(120),
	}
}

// Render draws every window. It is meant to be registered with an ImguiSystem.
func (w *Windows) Render() {
	w.Browser.Render(w.driver)
	w.Inspector.Render(w.driver.Layer(w.Browser.Layer()), w.Browser.GetSelectedSprite())
	w.Stats.Render(w.driver, w.timer.GetDeltaTime())
}
