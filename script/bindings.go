package script

import (
	"github.com/plus3/spritelist/sprite"
	lua "github.com/yuin/gopher-lua"
)

const spriteTypeName = "Sprite"

func (r *Runtime) registerSpriteType() {
	mt := r.L.NewTypeMetatable(spriteTypeName)
	r.L.SetField(mt, "__index", r.L.NewFunction(r.spriteIndex))
	r.L.SetField(mt, "__newindex", r.L.NewFunction(r.spriteNewIndex))
	r.methods = r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"draw":            r.spriteDraw,
		"drawCloaked":     r.spriteDrawCloaked,
		"markForDeletion": spriteMarkForDeletion,
		"move":            spriteMove,
		"getMisc":         spriteGetMisc,
		"setMisc":         spriteSetMisc,
	})
}

func checkSprite(L *lua.LState, n int) sprite.Sprite {
	ud := L.CheckUserData(n)
	s, ok := ud.Value.(sprite.Sprite)
	if !ok || s.Core().Destroyed() {
		L.ArgError(n, "sprite is gone")
		return nil
	}
	return s
}

func (r *Runtime) spriteIndex(L *lua.LState) int {
	b := checkSprite(L, 1).Core()
	key := L.CheckString(2)

	switch key {
	case "x":
		L.Push(lua.LNumber(b.X.Float()))
	case "y":
		L.Push(lua.LNumber(b.Y.Float()))
	case "z":
		L.Push(lua.LNumber(b.Z.Float()))
	case "tile":
		L.Push(lua.LNumber(b.Tile))
	case "cset":
		L.Push(lua.LNumber(b.CSet))
	case "clk":
		L.Push(lua.LNumber(b.Clk))
	case "id":
		L.Push(lua.LNumber(b.ID))
	case "dir":
		L.Push(lua.LNumber(b.Dir))
	case "misc":
		L.Push(lua.LNumber(b.Misc))
	case "uid":
		L.Push(lua.LNumber(b.UID()))
	default:
		L.Push(r.methods.RawGetString(key))
	}
	return 1
}

func (r *Runtime) spriteNewIndex(L *lua.LState) int {
	b := checkSprite(L, 1).Core()
	key := L.CheckString(2)

	switch key {
	case "x":
		b.X = sprite.FromFloat(float64(L.CheckNumber(3)))
	case "y":
		b.Y = sprite.FromFloat(float64(L.CheckNumber(3)))
	case "z":
		b.Z = sprite.FromFloat(float64(L.CheckNumber(3)))
	case "tile":
		b.Tile = L.CheckInt(3)
	case "cset":
		b.CSet = L.CheckInt(3)
	case "clk":
		b.Clk = L.CheckInt(3)
	case "id":
		b.ID = L.CheckInt(3)
	case "dir":
		b.Dir = sprite.Direction(L.CheckInt(3))
	case "misc":
		b.Misc = L.CheckInt(3)
	case "uid":
		L.ArgError(2, "uid is read-only")
	default:
		L.ArgError(2, "unknown sprite field "+key)
	}
	return 0
}

func (r *Runtime) spriteDraw(L *lua.LState) int {
	s := checkSprite(L, 1)
	if r.target != nil {
		s.Draw(r.target, r.frame)
	}
	return 0
}

func (r *Runtime) spriteDrawCloaked(L *lua.LState) int {
	s := checkSprite(L, 1)
	if r.target != nil {
		s.Core().DrawCloaked(r.target, r.frame)
	}
	return 0
}

func spriteMarkForDeletion(L *lua.LState) int {
	checkSprite(L, 1).Core().MarkForDeletion()
	return 0
}

func spriteMove(L *lua.LState) int {
	b := checkSprite(L, 1).Core()
	b.Move(sprite.FromFloat(float64(L.CheckNumber(2))), sprite.FromFloat(float64(L.CheckNumber(3))))
	return 0
}

// Misc slots are numbered from 1 on the Lua side.
func checkMiscSlot(L *lua.LState, n int) int {
	i := L.CheckInt(n)
	if i < 1 || i > sprite.MiscSlots {
		L.ArgError(n, "misc slot out of range")
	}
	return i - 1
}

func spriteGetMisc(L *lua.LState) int {
	b := checkSprite(L, 1).Core()
	L.Push(lua.LNumber(b.Miscellaneous[checkMiscSlot(L, 2)]))
	return 1
}

func spriteSetMisc(L *lua.LState) int {
	b := checkSprite(L, 1).Core()
	b.Miscellaneous[checkMiscSlot(L, 2)] = L.CheckInt(3)
	return 0
}
