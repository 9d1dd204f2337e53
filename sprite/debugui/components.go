package debugui

import (
	"github.com/plus3/spritelist/sprite"
)

type SpriteBrowserComponent struct {
	cache          *SpriteBrowserCache
	layer          string
	selectedUID    sprite.UID
	filterText     string
	maxRowsPerPage int
	currentPage    int
}

type SpriteInspectorComponent struct {
	selectedUID sprite.UID
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
