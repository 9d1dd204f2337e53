package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritelist/sprite"
)

type intField struct {
	name string
	ptr  *int
}

type fixField struct {
	name string
	ptr  *sprite.Fix
}

func NewSpriteInspectorComponent() SpriteInspectorComponent {
	return SpriteInspectorComponent{}
}

// Render shows the editable state of the sprite with the given key.
func (si *SpriteInspectorComponent) Render(registry *sprite.Registry, selectedUID sprite.UID) {
	if !imgui.BeginV("Sprite Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	si.selectedUID = selectedUID

	if si.selectedUID == 0 || registry == nil {
		imgui.Text("No sprite selected")
		imgui.End()
		return
	}

	s := registry.GetByUID(si.selectedUID)
	if s == nil {
		imgui.Text(fmt.Sprintf("Sprite %d not found", si.selectedUID))
		imgui.End()
		return
	}
	b := s.Core()

	ref := b.Ref()
	index, _ := ref.Index()
	imgui.Text(fmt.Sprintf("Key: %d", b.UID()))
	imgui.Text(fmt.Sprintf("Index: %d", index))
	imgui.Text(fmt.Sprintf("Type: %T", s))
	imgui.Separator()

	for _, f := range fixFields(b) {
		v := float32(f.ptr.Float())
		imgui.Text(fmt.Sprintf("%s:", f.name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", f.name), &v) {
			*f.ptr = sprite.FromFloat(float64(v))
		}
	}

	for _, f := range intFields(b) {
		renderInt(f.name, f.ptr)
	}

	dir := int(b.Dir)
	renderInt("Dir", &dir)
	b.Dir = sprite.Direction(dir)

	flip := int(b.Flip)
	renderInt("Flip", &flip)
	b.Flip = sprite.Flip(flip & int(sprite.FlipBoth))

	style := int(b.DrawStyle)
	renderInt("DrawStyle", &style)
	b.DrawStyle = sprite.DrawStyle(style)

	imgui.Checkbox("CanFreeze", &b.CanFreeze)
	imgui.Checkbox("Angular", &b.Angular)

	if imgui.TreeNodeStr("Miscellaneous") {
		for i := range b.Miscellaneous {
			renderInt(fmt.Sprintf("misc[%d]", i), &b.Miscellaneous[i])
		}
		imgui.TreePop()
	}

	if obj := b.ScriptObject(); obj != nil {
		imgui.Text(fmt.Sprintf("Script: %v", obj))
	}

	imgui.Separator()
	if b.MarkedForDeletion() {
		imgui.Text("Marked for deletion")
	} else if imgui.Button("Mark for deletion") {
		b.MarkForDeletion()
	}

	imgui.End()
}

func renderInt(name string, ptr *int) {
	v := int32(*ptr)
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
		*ptr = int(v)
	}
}

func fixFields(b *sprite.Base) []fixField {
	return []fixField{
		{"X", &b.X},
		{"Y", &b.Y},
		{"Z", &b.Z},
		{"Fall", &b.Fall},
	}
}

func intFields(b *sprite.Base) []intField {
	return []intField{
		{"ID", &b.ID},
		{"Tile", &b.Tile},
		{"ShadowTile", &b.ShadowTile},
		{"CSet", &b.CSet},
		{"Clk", &b.Clk},
		{"CClk", &b.CClk},
		{"Misc", &b.Misc},
		{"Extend", &b.Extend},
		{"TXSz", &b.TXSz},
		{"TYSz", &b.TYSz},
		{"XOfs", &b.XOfs},
		{"YOfs", &b.YOfs},
		{"ZOfs", &b.ZOfs},
		{"HXOfs", &b.HXOfs},
		{"HYOfs", &b.HYOfs},
		{"HXSz", &b.HXSz},
		{"HYSz", &b.HYSz},
		{"HZSz", &b.HZSz},
		{"ScriptColDet", &b.ScriptColDet},
	}
}
