package script

import (
	"errors"

	"github.com/plus3/spritelist/sprite"
	"go.uber.org/zap"
)

// UpdateSystem calls a script method on every scripted sprite of a layer
// once per frame. Sprites without script data or without the method are
// skipped; script errors are logged and do not stop the frame.
type UpdateSystem struct {
	Runtime *Runtime
	Layer   *sprite.Registry
	Method  string
}

func (s *UpdateSystem) Execute(frame *sprite.UpdateFrame) {
	for _, spr := range s.Layer.All() {
		if _, ok := spr.Core().ScriptData().(*Data); !ok {
			continue
		}
		_, err := s.Runtime.Call(spr, s.Method)
		if err == nil || errors.Is(err, ErrUnknownMethod) {
			continue
		}
		s.Runtime.logger.Warn("sprite script failed",
			zap.String("method", s.Method),
			zap.Int64("uid", int64(spr.Core().UID())),
			zap.Int64("frame", frame.Index),
			zap.Error(err))
	}
}
