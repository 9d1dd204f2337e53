// Package script attaches Lua objects to sprites. Each attached sprite gets
// a Lua table whose "sprite" field is a userdata exposing the sprite's state
// and draw calls.
package script

import (
	"fmt"

	"github.com/plus3/spritelist/sprite"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Runtime owns a Lua state shared by every sprite script.
type Runtime struct {
	L       *lua.LState
	frame   *sprite.Frame
	target  sprite.Canvas
	logger  *zap.Logger
	methods *lua.LTable
}

type Option func(*Runtime)

func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) { r.logger = l }
}

// New creates a runtime with the standard Lua libraries loaded. frame is the
// state handed to draws issued from scripts.
func New(frame *sprite.Frame, opts ...Option) *Runtime {
	if frame == nil {
		frame = sprite.NewFrame()
	}
	r := &Runtime{
		L:      lua.NewState(),
		frame:  frame,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.L.OpenLibs()
	r.registerSpriteType()
	return r
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	r.L.Close()
}

// SetDrawingTarget sets the canvas that :draw() and :drawCloaked() render to.
// Draw calls issued without a target are ignored.
func (r *Runtime) SetDrawingTarget(c sprite.Canvas) {
	r.target = c
}

// DoString runs a chunk of Lua, typically class definitions.
func (r *Runtime) DoString(src string) error {
	if err := r.L.DoString(src); err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}
	return nil
}

// Attach creates an instance of the global Lua table className bound to s
// and stores it as s's script data. The class's init method runs if present.
func (r *Runtime) Attach(s sprite.Sprite, className string) (*Data, error) {
	class, ok := r.L.GetGlobal(className).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, className)
	}

	ud := r.L.NewUserData()
	ud.Value = s
	r.L.SetMetatable(ud, r.L.GetTypeMetatable(spriteTypeName))

	obj := r.L.NewTable()
	mt := r.L.NewTable()
	r.L.SetField(mt, "__index", class)
	r.L.SetMetatable(obj, mt)
	obj.RawSetString("sprite", ud)

	data := &Data{runtime: r, class: className, object: obj, ud: ud}
	s.Core().SetScriptData(data)
	r.logger.Debug("script attached",
		zap.String("class", className),
		zap.Int64("uid", int64(s.Core().UID())))

	if init, ok := r.L.GetField(class, "init").(*lua.LFunction); ok {
		top := r.L.GetTop()
		defer r.L.SetTop(top)
		if err := r.call(init, obj); err != nil {
			return data, fmt.Errorf("script: %s:init: %w", className, err)
		}
	}
	return data, nil
}

// Call invokes method on the object attached to s and returns its first
// result.
func (r *Runtime) Call(s sprite.Sprite, method string, args ...lua.LValue) (lua.LValue, error) {
	data, ok := s.Core().ScriptData().(*Data)
	if !ok || data.runtime != r {
		return lua.LNil, ErrNoScript
	}
	fn, ok := r.L.GetField(data.object, method).(*lua.LFunction)
	if !ok {
		return lua.LNil, fmt.Errorf("%w: %s:%s", ErrUnknownMethod, data.class, method)
	}

	top := r.L.GetTop()
	defer r.L.SetTop(top)
	if err := r.call(fn, append([]lua.LValue{data.object}, args...)...); err != nil {
		return lua.LNil, fmt.Errorf("script: %s:%s: %w", data.class, method, err)
	}
	return r.L.Get(-1), nil
}

func (r *Runtime) call(fn *lua.LFunction, args ...lua.LValue) error {
	if err := r.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}
	return nil
}

// Data is the script attachment of one sprite.
type Data struct {
	runtime *Runtime
	class   string
	object  *lua.LTable
	ud      *lua.LUserData
}

// Object returns the sprite's Lua table.
func (d *Data) Object() any { return d.object }

func (d *Data) Class() string { return d.class }

// Release cuts the binding; Lua code still holding the object sees a dead
// sprite from then on.
func (d *Data) Release() {
	d.ud.Value = nil
}
