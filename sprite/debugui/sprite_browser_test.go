package debugui

import (
	"testing"

	"github.com/plus3/spritelist/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowserRegistry() *sprite.Registry {
	r := sprite.NewRegistry()
	for i, x := range []int{30, 10, 20} {
		s := sprite.New(nil)
		s.ID = i + 1
		s.X = sprite.FromInt(x)
		s.Clk = 3 - i
		if i == 2 {
			s.DrawStyle = sprite.StyleCloaked
		}
		r.Add(s)
	}
	return r
}

func TestCollectSprites(t *testing.T) {
	r := newBrowserRegistry()

	infos := collectSprites(r, nil)
	require.Len(t, infos, 3)
	for i, info := range infos {
		assert.Equal(t, i, info.Index)
		assert.Equal(t, r.Spr(i).Core().UID(), info.UID)
	}
	assert.Equal(t, 30, infos[0].X)
	assert.Equal(t, sprite.StyleCloaked, infos[2].Style)
}

func TestSortSprites(t *testing.T) {
	infos := collectSprites(newBrowserRegistry(), nil)

	sortSprites(infos, 3, true)
	assert.Equal(t, []int{10, 20, 30}, []int{infos[0].X, infos[1].X, infos[2].X})

	sortSprites(infos, 3, false)
	assert.Equal(t, []int{30, 20, 10}, []int{infos[0].X, infos[1].X, infos[2].X})

	sortSprites(infos, 0, true)
	assert.Equal(t, []int{0, 1, 2}, []int{infos[0].Index, infos[1].Index, infos[2].Index})
}

func TestFilterSprites(t *testing.T) {
	infos := collectSprites(newBrowserRegistry(), nil)

	assert.Len(t, filterSprites(infos, ""), 3)

	cloaked := filterSprites(infos, "CLOAK")
	require.Len(t, cloaked, 1)
	assert.Equal(t, 3, cloaked[0].ID)

	byID := filterSprites(infos, "id:2")
	require.Len(t, byID, 1)
	assert.Equal(t, 1, byID[0].Index)
}

func TestPageBounds(t *testing.T) {
	start, end := pageBounds(250, 0, 100)
	assert.Equal(t, [2]int{0, 100}, [2]int{start, end})

	start, end = pageBounds(250, 2, 100)
	assert.Equal(t, [2]int{200, 250}, [2]int{start, end})

	start, end = pageBounds(250, 5, 100)
	assert.Equal(t, [2]int{250, 250}, [2]int{start, end})

	start, end = pageBounds(7, 3, 0)
	assert.Equal(t, [2]int{0, 7}, [2]int{start, end})
}

func TestInspectorFields(t *testing.T) {
	b := sprite.New(nil)
	for _, f := range intFields(b) {
		*f.ptr = 5
	}
	for _, f := range fixFields(b) {
		*f.ptr = sprite.FromInt(2)
	}

	assert.Equal(t, 5, b.Tile)
	assert.Equal(t, 5, b.ScriptColDet)
	assert.Equal(t, 5, b.HZSz)
	assert.Equal(t, sprite.FromInt(2), b.Fall)
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStatsComponent(4)
	for range 6 {
		ps.record(0.002)
	}
	assert.InDelta(t, 2.0, ps.averageFrameTime(), 1e-4)
	assert.Equal(t, 2, ps.frameIndex)
}
