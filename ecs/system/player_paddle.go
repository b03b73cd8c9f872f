package system

import (
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// PlayerPaddleSystem moves input-driven paddles inside their box.
type PlayerPaddleSystem struct {
	clock *Clock
}

func NewPlayerPaddleSystem(clock *Clock) *PlayerPaddleSystem {
	return &PlayerPaddleSystem{clock: clock}
}

func (s *PlayerPaddleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := s.clock.ScaledDt()
	if dt <= 0 {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.PaddleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, in *component.Input, p *component.Paddle, t *component.Transform) {
		if !p.Enabled {
			return
		}
		mx, my := in.MoveX, in.MoveY
		if in.Inverted {
			mx, my = -mx, -my
		}
		t.X = common.Clamp(t.X+mx*p.Speed*dt, p.MinX, p.MaxX)
		t.Y = common.Clamp(t.Y+my*p.Speed*dt, -p.YLimit, p.YLimit)
	})
}
