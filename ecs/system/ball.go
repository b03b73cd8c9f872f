package system

import (
	"math"

	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

const (
	// minXRatio keeps balls from bouncing wall to wall forever.
	minXRatio = 0.3
	// paddleEnglish is how much the hit offset bends the return.
	paddleEnglish = 0.6
)

// BallSystem keeps ball speeds inside their limits and reacts to bounces.
type BallSystem struct{}

func NewBallSystem() *BallSystem {
	return &BallSystem{}
}

func (s *BallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events()
	for _, c := range events.Contacts(ecs.ContactBallPaddle) {
		s.paddleHit(w, c)
		PlaySound(w, "paddle_hit")
	}
	if len(events.Contacts(ecs.ContactBallWall)) > 0 {
		PlaySound(w, "wall_hit")
	}

	ecs.ForEach(w, component.BallComponent.Kind(), func(e ecs.Entity, b *component.Ball) {
		if !b.Active {
			SetVelocity(w, e, 0, 0)
			return
		}
		vx, vy := Velocity(w, e)
		nvx, nvy := ClampBallVelocity(b, vx, vy)
		if nvx != vx || nvy != vy {
			SetVelocity(w, e, nvx, nvy)
		}
	})
}

// paddleHit bends the bounce by where the ball met the paddle.
func (s *BallSystem) paddleHit(w *ecs.World, c ecs.ContactEvent) {
	bt, ok := ecs.Get(w, c.Ball, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, c.Other, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pb, ok := ecs.Get(w, c.Other, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Height <= 0 {
		return
	}

	vx, vy := Velocity(w, c.Ball)
	speed := speedOf(vx, vy)
	if speed == 0 {
		return
	}
	offset := common.Clamp((bt.Y-pt.Y)/(pb.Height/2), -1, 1)
	vy += offset * paddleEnglish * speed
	scale := speed / speedOf(vx, vy)
	SetVelocity(w, c.Ball, vx*scale, vy*scale)
}

// ClampBallVelocity keeps the speed within [MinPlaySpeed, MaxSpeed*Boost]
// and the direction from going near vertical.
func ClampBallVelocity(b *component.Ball, vx, vy float64) (float64, float64) {
	speed := speedOf(vx, vy)
	if speed < 1e-9 {
		return vx, vy
	}

	boost := b.Boost
	if boost <= 0 {
		boost = 1
	}
	maxSpeed := b.MaxSpeed * boost
	if maxSpeed <= 0 {
		maxSpeed = math.Inf(1)
	}
	target := common.Clamp(speed, b.MinPlaySpeed, maxSpeed)

	if math.Abs(vx)/speed < minXRatio {
		vx = sign(vx) * minXRatio * speed
		vy = sign(vy) * math.Sqrt(speed*speed-vx*vx)
	}

	scale := target / speed
	return vx * scale, vy * scale
}

// LaunchVelocity is the serve: X toward dir, Y spread in [-0.5, 0.5], scaled
// to speed.
func LaunchVelocity(dir, spreadY, speed float64) (float64, float64) {
	if dir == 0 {
		dir = 1
	}
	x, y := sign(dir), common.Clamp(spreadY, -0.5, 0.5)
	l := math.Hypot(x, y)
	return x / l * speed, y / l * speed
}

// ServeSpeed is the ball speed after total goals.
func ServeSpeed(b *component.Ball, total int) float64 {
	speed := b.InitialSpeed + b.SpeedPerScore*float64(total)
	if b.MaxSpeed > 0 && speed > b.MaxSpeed {
		speed = b.MaxSpeed
	}
	return speed
}
