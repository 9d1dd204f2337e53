package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritelist/sprite"
)

type SpriteInfo struct {
	Index int
	UID   sprite.UID
	ID    int
	X, Y  int
	Clk   int
	Style sprite.DrawStyle
}

type SpriteBrowserCache struct {
	sprites       []SpriteInfo
	sortColumn    int
	sortAscending bool
}

func NewSpriteBrowserComponent(layer string, maxRowsPerPage int) SpriteBrowserComponent {
	return SpriteBrowserComponent{
		cache: &SpriteBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		layer:          layer,
		maxRowsPerPage: maxRowsPerPage,
	}
}

// Render draws the browser for the selected layer of the driver. Buttons at
// the top switch between layers.
func (sb *SpriteBrowserComponent) Render(driver *sprite.Driver) {
	if !imgui.BeginV("Sprite Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	first := true
	for name := range driver.Layers() {
		if !first {
			imgui.SameLine()
		}
		first = false
		if imgui.Button(name) && sb.layer != name {
			sb.layer = name
			sb.currentPage = 0
		}
	}

	registry := driver.Layer(sb.layer)
	if registry == nil {
		imgui.Text(fmt.Sprintf("No layer %q", sb.layer))
		imgui.End()
		return
	}

	sb.rebuildCache(registry)

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SpriteTable", 7, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Key")
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Clk")
		imgui.TableSetupColumn("Style")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.cache.sortColumn = int(spec.ColumnIndex())
			sb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSprites(sb.cache.sprites, sb.cache.sortColumn, sb.cache.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := filterSprites(sb.cache.sprites, sb.filterText)
		start, end := pageBounds(len(filtered), sb.currentPage, sb.maxRowsPerPage)

		for _, info := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sb.selectedUID == info.UID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.Index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selectedUID = info.UID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.UID))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ID))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Clk))
			imgui.TableNextColumn()
			imgui.Text(info.Style.String())
		}

		imgui.EndTable()
	}

	filtered := filterSprites(sb.cache.sprites, sb.filterText)
	if sb.maxRowsPerPage > 0 && len(filtered) > sb.maxRowsPerPage {
		totalPages := (len(filtered) + sb.maxRowsPerPage - 1) / sb.maxRowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d sprites)", sb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d / %d sprites", len(filtered), registry.Capacity()))
	}

	imgui.End()
}

// rebuildCache snapshots the registry. Positions change every frame, so the
// snapshot is taken on every render and re-sorted with the current column.
func (sb *SpriteBrowserComponent) rebuildCache(r *sprite.Registry) {
	sb.cache.sprites = collectSprites(r, sb.cache.sprites[:0])
	sortSprites(sb.cache.sprites, sb.cache.sortColumn, sb.cache.sortAscending)
}

func (sb *SpriteBrowserComponent) Layer() string {
	return sb.layer
}

func (sb *SpriteBrowserComponent) GetSelectedSprite() sprite.UID {
	return sb.selectedUID
}

func collectSprites(r *sprite.Registry, dst []SpriteInfo) []SpriteInfo {
	for i, s := range r.All() {
		b := s.Core()
		dst = append(dst, SpriteInfo{
			Index: i,
			UID:   b.UID(),
			ID:    b.ID,
			X:     b.X.Int(),
			Y:     b.Y.Int(),
			Clk:   b.Clk,
			Style: b.DrawStyle,
		})
	}
	return dst
}

func sortSprites(sprites []SpriteInfo, column int, ascending bool) {
	sort.Slice(sprites, func(i, j int) bool {
		a, b := sprites[i], sprites[j]
		var less bool

		switch column {
		case 1:
			less = a.UID < b.UID
		case 2:
			less = a.ID < b.ID
		case 3:
			less = a.X < b.X
		case 4:
			less = a.Y < b.Y
		case 5:
			less = a.Clk < b.Clk
		case 6:
			less = a.Style < b.Style
		default:
			less = a.Index < b.Index
		}

		if !ascending {
			return !less
		}
		return less
	})
}

func filterSprites(sprites []SpriteInfo, text string) []SpriteInfo {
	if text == "" {
		return sprites
	}

	filtered := make([]SpriteInfo, 0, len(sprites))
	filterLower := strings.ToLower(text)

	for _, info := range sprites {
		uidStr := fmt.Sprintf("%d", info.UID)
		idStr := fmt.Sprintf("id:%d", info.ID)
		styleStr := info.Style.String()

		if !strings.Contains(uidStr, filterLower) &&
			!strings.Contains(idStr, filterLower) &&
			!strings.Contains(styleStr, filterLower) {
			continue
		}
		filtered = append(filtered, info)
	}

	return filtered
}

func pageBounds(total, page, perPage int) (start, end int) {
	if perPage <= 0 {
		return 0, total
	}
	start = min(page*perPage, total)
	end = min(start+perPage, total)
	return start, end
}
