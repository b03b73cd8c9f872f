package entity

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
)

func TestNewField(t *testing.T) {
	w := ecs.NewWorld()
	f, err := NewField(w, 5)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	ball, ok := ecs.Get(w, f.Ball, component.BallComponent.Kind())
	if !ok {
		t.Fatalf("ball component missing")
	}
	if ball.InitialSpeed != 18 || ball.MaxSpeed != 30 || ball.MinPlaySpeed != 8 || ball.Boost != 1 {
		t.Fatalf("ball = %+v", ball)
	}

	player, ok := ecs.Get(w, f.Player, component.PaddleComponent.Kind())
	if !ok || player.Side != component.SideLeft || !player.Enabled {
		t.Fatalf("player paddle = %+v", player)
	}
	if !ecs.Has(w, f.Player, component.InputComponent.Kind()) {
		t.Fatalf("player paddle has no input")
	}
	if !ecs.Has(w, f.AI, component.AIPaddleComponent.Kind()) {
		t.Fatalf("ai paddle has no script component")
	}

	goals := w.Query(component.GoalComponent.Kind())
	if len(goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(goals))
	}
	walls := w.Query(component.WallTagComponent.Kind())
	if len(walls) != 2 {
		t.Fatalf("walls = %d, want 2", len(walls))
	}

	m, ok := ecs.Get(w, f.Match, component.MatchComponent.Kind())
	if !ok || m.PointsToWin != 5 || m.State != component.MatchTitle {
		t.Fatalf("match = %+v", m)
	}

	s, _ := ecs.Get(w, f.Ball, component.SpriteComponent.Kind())
	if s.Shape != component.ShapeCircle || math.Abs(s.Width-0.7*common.PixelsPerUnit) > 1e-9 {
		t.Fatalf("ball sprite = %+v", s)
	}
}

func TestNewMatchRejectsZeroPoints(t *testing.T) {
	if _, err := NewMatch(ecs.NewWorld(), 0); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewOrb(t *testing.T) {
	w := ecs.NewWorld()
	def := &powerup.Definition{Kind: powerup.Freeze, Name: "Freeze", Duration: 3, GlowColor: "#102030"}
	p := &powerup.Pickup{ID: 7, Position: mgl64.Vec3{2, -3, 0}, Definition: def}

	e, err := NewOrb(w, p)
	if err != nil {
		t.Fatalf("NewOrb: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 2 || tr.Y != -3 {
		t.Fatalf("orb at (%v, %v)", tr.X, tr.Y)
	}
	pk, _ := ecs.Get(w, e, component.PickupComponent.Kind())
	if pk.Ref != p || pk.BobAmplitude != 0.3 || pk.BobSpeed != 1 {
		t.Fatalf("pickup = %+v", pk)
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if s.Tint != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("tint = %v", s.Tint)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !body.Sensor || body.Role != component.RoleOrb {
		t.Fatalf("orb body = %+v", body)
	}

	bad := &powerup.Pickup{Definition: &powerup.Definition{Kind: powerup.Freeze, GlowColor: "nope"}}
	before := len(w.Entities())
	if _, err := NewOrb(w, bad); err == nil {
		t.Fatalf("expected colour error")
	}
	if len(w.Entities()) != before {
		t.Fatalf("failed orb leaked an entity")
	}
}

func TestNewCloneBall(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCloneBall(w, 1, 2, 3, -4, 0.6)
	if err != nil {
		t.Fatalf("NewCloneBall: %v", err)
	}
	if !ecs.Has(w, e, component.CloneTagComponent.Kind()) || !ecs.Has(w, e, component.BallTagComponent.Kind()) {
		t.Fatalf("clone missing tags")
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.VX != 3 || body.VY != -4 {
		t.Fatalf("clone velocity = (%v, %v)", body.VX, body.VY)
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if s.Alpha != 0.6 {
		t.Fatalf("clone alpha = %v", s.Alpha)
	}
}

func TestSpawnBurst(t *testing.T) {
	w := ecs.NewWorld()
	SpawnBurst(w, rand.New(rand.NewSource(1)), 0, 0, color.White, 12, 4, 20)
	ps := w.Query(component.ParticleComponent.Kind(), component.TTLComponent.Kind())
	if len(ps) != 12 {
		t.Fatalf("particles = %d, want 12", len(ps))
	}
	SpawnBurst(w, nil, 0, 0, color.White, 0, 4, 20)
	if got := len(w.Query(component.ParticleComponent.Kind())); got != 12 {
		t.Fatalf("zero-count burst spawned particles")
	}
}

func TestBuildEntityUnknownPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "missing.yaml"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := BuildEntity(nil, "ball.yaml"); err == nil {
		t.Fatalf("expected error for nil world")
	}
}
