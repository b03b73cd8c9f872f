package system

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/prefabs"
)

// aiInputs are the globals every paddle script can read.
var aiInputs = []string{
	"ball_x", "ball_y", "ball_vx", "ball_vy",
	"paddle_x", "paddle_y",
	"speed", "reaction", "y_limit", "dt",
}

// AIPaddleSystem moves AI paddles to the target_y their tengo script
// produces. Frozen (disabled) paddles hold still.
type AIPaddleSystem struct {
	clock   *Clock
	scripts map[string]*tengo.Compiled
	failed  map[string]bool
}

func NewAIPaddleSystem(clock *Clock) *AIPaddleSystem {
	return &AIPaddleSystem{
		clock:   clock,
		scripts: make(map[string]*tengo.Compiled),
		failed:  make(map[string]bool),
	}
}

// Reload drops the compiled script so the next Update recompiles it from
// disk. An empty name drops every script.
func (s *AIPaddleSystem) Reload(name string) {
	if s == nil {
		return
	}
	if name == "" {
		s.scripts = make(map[string]*tengo.Compiled)
		s.failed = make(map[string]bool)
		return
	}
	for key := range s.scripts {
		if strings.HasSuffix(key, name) {
			delete(s.scripts, key)
		}
	}
	for key := range s.failed {
		if strings.HasSuffix(key, name) {
			delete(s.failed, key)
		}
	}
	log.Printf("ai: reloading %s", name)
}

func (s *AIPaddleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.clock.ScaledDt()
	if dt <= 0 {
		return
	}

	ecs.ForEach3(w, component.AIPaddleComponent.Kind(), component.PaddleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ai *component.AIPaddle, p *component.Paddle, t *component.Transform) {
		if !p.Enabled {
			return
		}

		bx, by, bvx, bvy, ok := s.trackedBall(w, t.X)
		if !ok {
			bx, by, bvx, bvy = 0, p.StartY, 0, 0
		}

		vars := map[string]float64{
			"ball_x":   bx,
			"ball_y":   by,
			"ball_vx":  bvx,
			"ball_vy":  bvy,
			"paddle_x": t.X,
			"paddle_y": t.Y,
			"speed":    p.Speed,
			"reaction": ai.Reaction,
			"y_limit":  p.YLimit,
			"dt":       dt,
		}

		target, err := s.run(ai.Script, vars)
		if err != nil {
			if !s.failed[ai.Script] {
				log.Printf("ai: entity=%d script %s: %v", e, ai.Script, err)
				s.failed[ai.Script] = true
			}
			target = fallbackTarget(t.Y, by, ai.Reaction, p.Speed, dt)
		}

		// Scripts may aim anywhere; the paddle still moves at its own speed.
		ai.TargetY = common.Clamp(common.Approach(t.Y, target, p.Speed*dt), -p.YLimit, p.YLimit)
		t.Y = ai.TargetY
	})
}

// trackedBall picks the ball closest to x among those heading toward it,
// falling back to the primary ball.
func (s *AIPaddleSystem) trackedBall(w *ecs.World, x float64) (bx, by, vx, vy float64, ok bool) {
	best := math.Inf(1)
	for _, e := range w.Query(component.BallComponent.Kind(), component.TransformComponent.Kind()) {
		b, _ := ecs.Get(w, e, component.BallComponent.Kind())
		if b == nil || !b.Active {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		evx, evy := Velocity(w, e)
		if evx == 0 || sign(evx) != sign(x-t.X) {
			continue
		}
		if d := math.Abs(x - t.X); d < best {
			best = d
			bx, by, vx, vy, ok = t.X, t.Y, evx, evy, true
		}
	}
	if ok {
		return bx, by, vx, vy, true
	}

	e, found := primaryBall(w)
	if !found {
		return 0, 0, 0, 0, false
	}
	t, found := ecs.Get(w, e, component.TransformComponent.Kind())
	if !found {
		return 0, 0, 0, 0, false
	}
	vx, vy = Velocity(w, e)
	return t.X, t.Y, vx, vy, true
}

func (s *AIPaddleSystem) run(name string, vars map[string]float64) (float64, error) {
	compiled, err := s.compiled(name)
	if err != nil {
		return 0, err
	}
	for _, key := range aiInputs {
		if err := compiled.Set(key, vars[key]); err != nil {
			return 0, fmt.Errorf("set %s: %w", key, err)
		}
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}
	if !compiled.IsDefined("target_y") {
		return 0, fmt.Errorf("script did not define target_y")
	}
	return compiled.Get("target_y").Float(), nil
}

func (s *AIPaddleSystem) compiled(name string) (*tengo.Compiled, error) {
	if name == "" {
		return nil, fmt.Errorf("no script")
	}
	if c, ok := s.scripts[name]; ok {
		return c, nil
	}
	if s.failed[name] {
		return nil, fmt.Errorf("script %s failed to compile", name)
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		s.failed[name] = true
		return nil, err
	}
	script := tengo.NewScript(src)
	for _, key := range aiInputs {
		_ = script.Add(key, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		s.failed[name] = true
		return nil, err
	}
	s.scripts[name] = compiled
	return compiled, nil
}

// fallbackTarget mirrors the stock script so a broken script does not leave
// the paddle dead.
func fallbackTarget(paddleY, ballY, reaction, speed, dt float64) float64 {
	k := math.Min(1, reaction*dt)
	desired := common.Lerp(paddleY, ballY, k)
	return common.Approach(paddleY, desired, speed*dt)
}
