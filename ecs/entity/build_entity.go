package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"ball_tag":     addBallTag,
	"wall_tag":     addWallTag,
	"player_tag":   addPlayerTag,
	"input":        addInput,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"ball":         addBall,
	"paddle":       addPaddle,
	"ai_paddle":    addAIPaddle,
	"goal":         addGoal,
	"pickup":       addPickup,
	"audio":        addAudio,
	"physics_body": addPhysicsBody,
}

// Transform comes first so builders that read the position (ball, paddle)
// see it.
var componentBuildOrder = []string{
	"ball_tag",
	"wall_tag",
	"player_tag",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"ball",
	"paddle",
	"ai_paddle",
	"goal",
	"pickup",
	"audio",
	"physics_body",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addBallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BallTagComponent.Kind(), &component.BallTag{})
}

func addWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{Alpha: spec.Alpha}
	if sprite.Alpha == 0 {
		sprite.Alpha = 1
	}

	switch component.SpriteShape(strings.ToLower(spec.Shape)) {
	case component.ShapeCircle, "":
		sprite.Shape = component.ShapeCircle
		sprite.Width = spec.Radius * 2 * common.PixelsPerUnit
		sprite.Height = sprite.Width
	case component.ShapeOrb:
		sprite.Shape = component.ShapeOrb
		sprite.Width = spec.Radius * 2 * common.PixelsPerUnit
		sprite.Height = sprite.Width
	case component.ShapeRect:
		sprite.Shape = component.ShapeRect
		sprite.Width = spec.Width * common.PixelsPerUnit
		sprite.Height = spec.Height * common.PixelsPerUnit
	case component.ShapeImage:
		if spec.Image == "" {
			return fmt.Errorf("sprite shape image needs an image name")
		}
		sprite.Shape = component.ShapeImage
		sprite.ImageName = spec.Image
	default:
		return fmt.Errorf("unknown sprite shape %q", spec.Shape)
	}
	if sprite.Shape != component.ShapeImage && (sprite.Width <= 0 || sprite.Height <= 0) {
		return fmt.Errorf("sprite %s needs a positive size", sprite.Shape)
	}

	if spec.Color != "" {
		c, err := prefabs.ParseColor(spec.Color)
		if err != nil {
			return fmt.Errorf("sprite color: %w", err)
		}
		sprite.Tint = c
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type ballSpec = prefabs.BallComponentSpec

func addBall(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ballSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ball spec: %w", err)
	}
	if spec.InitialSpeed <= 0 {
		return fmt.Errorf("ball initial_speed must be > 0")
	}
	if spec.MaxSpeed < spec.InitialSpeed {
		spec.MaxSpeed = spec.InitialSpeed
	}
	b := &component.Ball{
		InitialSpeed:  spec.InitialSpeed,
		SpeedPerScore: spec.SpeedPerScore,
		MaxSpeed:      spec.MaxSpeed,
		MinPlaySpeed:  spec.MinPlaySpeed,
		CurrentSpeed:  spec.InitialSpeed,
		Boost:         1,
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		b.StartX, b.StartY = t.X, t.Y
	}
	return ecs.Add(w, e, component.BallComponent.Kind(), b)
}

func parseSide(s string) (component.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return component.SideLeft, nil
	case "right":
		return component.SideRight, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

type paddleSpec = prefabs.PaddleComponentSpec

func addPaddle(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[paddleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode paddle spec: %w", err)
	}
	side, err := parseSide(spec.Side)
	if err != nil {
		return err
	}
	if spec.MinX > spec.MaxX {
		spec.MinX, spec.MaxX = spec.MaxX, spec.MinX
	}
	p := &component.Paddle{
		Side:    side,
		Speed:   spec.Speed,
		YLimit:  spec.YLimit,
		MinX:    spec.MinX,
		MaxX:    spec.MaxX,
		Enabled: true,
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		p.StartX, p.StartY = t.X, t.Y
	}
	return ecs.Add(w, e, component.PaddleComponent.Kind(), p)
}

type aiPaddleSpec = prefabs.AIPaddleComponentSpec

func addAIPaddle(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aiPaddleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ai paddle spec: %w", err)
	}
	if spec.Script == "" {
		return fmt.Errorf("ai paddle needs a script")
	}
	return ecs.Add(w, e, component.AIPaddleComponent.Kind(), &component.AIPaddle{
		Script:   spec.Script,
		Reaction: spec.Reaction,
	})
}

type goalSpec = prefabs.GoalComponentSpec

func addGoal(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[goalSpec](raw)
	if err != nil {
		return fmt.Errorf("decode goal spec: %w", err)
	}
	side, err := parseSide(spec.Side)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Side: side})
}

type pickupSpec = prefabs.PickupComponentSpec

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pickupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
		SpinSpeed:    spec.SpinSpeed,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	var kind component.BodyKind
	switch strings.ToLower(spec.Kind) {
	case "dynamic", "":
		kind = component.BodyDynamic
	case "kinematic":
		kind = component.BodyKinematic
	case "static":
		kind = component.BodyStatic
	default:
		return fmt.Errorf("unknown body kind %q", spec.Kind)
	}

	role := component.ColliderRole(strings.ToLower(spec.Role))
	switch role {
	case component.RoleBall, component.RolePaddle, component.RoleWall, component.RoleGoal, component.RoleOrb:
	default:
		return fmt.Errorf("unknown collider role %q", spec.Role)
	}

	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		return fmt.Errorf("physics body needs a radius or a width and height")
	}
	if kind == component.BodyDynamic && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:       kind,
		Role:       role,
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Sensor:     spec.Sensor,
	})
}
