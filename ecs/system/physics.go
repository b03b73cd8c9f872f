package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/powerup"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypePaddle
	collisionTypeWall
	collisionTypeGoal
	collisionTypeOrb
)

// Filter categories. Balls never collide with each other; a ghost ball also
// drops the paddle bit from its mask.
const (
	categoryBall uint = 1 << iota
	categoryPaddle
	categoryWall
	categoryGoal
	categoryOrb
)

const physicsSubsteps = 4

type PhysicsSystem struct {
	clock         *Clock
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	pending  []ecs.ContactEvent
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	kind   component.BodyKind
	static bool
	ghost  bool
}

func NewPhysicsSystem(clock *Clock) *PhysicsSystem {
	return &PhysicsSystem{
		clock:    clock,
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func cpv(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body so the next Update rebuilds the space from the
// world. Used after the world is cleared.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.pending = nil
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	dt := ps.clock.ScaledDt()
	if dt <= 0 {
		return
	}

	ps.driveKinematic(w, dt)
	step := dt / physicsSubsteps
	for i := 0; i < physicsSubsteps; i++ {
		ps.space.Step(step)
	}

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	pairs := []struct {
		other cp.CollisionType
		kind  ecs.ContactEventKind
	}{
		{other: collisionTypePaddle, kind: ecs.ContactBallPaddle},
		{other: collisionTypeWall, kind: ecs.ContactBallWall},
		{other: collisionTypeGoal, kind: ecs.ContactBallGoal},
		{other: collisionTypeOrb, kind: ecs.ContactBallOrb},
	}
	for _, pair := range pairs {
		kind := pair.kind
		handler := ps.space.NewCollisionHandler(collisionTypeBall, pair.other)
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			a, b := arb.Shapes()
			ball, okA := sys.shapes[a]
			other, okB := sys.shapes[b]
			if !okA || !okB {
				return true
			}
			n := arb.Normal()
			sys.pending = append(sys.pending, ecs.ContactEvent{
				Kind:   kind,
				Ball:   ball,
				Other:  other,
				Tag:    powerup.BallTag,
				Normal: [2]float64{n.X, n.Y},
			})
			return true
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(transform, bodyComp)
			if info == nil {
				continue
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		if bodyComp.Role == component.RoleBall && info.ghost != bodyComp.Ghost {
			info.ghost = bodyComp.Ghost
			info.shape.SetFilter(filterFor(bodyComp.Role, bodyComp.Ghost))
		}
	}
}

func filterFor(role component.ColliderRole, ghost bool) cp.ShapeFilter {
	switch role {
	case component.RoleBall:
		mask := categoryPaddle | categoryWall | categoryGoal | categoryOrb
		if ghost {
			mask &^= categoryPaddle
		}
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryBall, Mask: mask}
	case component.RolePaddle:
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryPaddle, Mask: categoryBall}
	case component.RoleWall:
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryWall, Mask: categoryBall}
	case component.RoleGoal:
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryGoal, Mask: categoryBall}
	case component.RoleOrb:
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryOrb, Mask: categoryBall}
	}
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: cp.ALL_CATEGORIES}
}

func collisionTypeFor(role component.ColliderRole) cp.CollisionType {
	switch role {
	case component.RoleBall:
		return collisionTypeBall
	case component.RolePaddle:
		return collisionTypePaddle
	case component.RoleGoal:
		return collisionTypeGoal
	case component.RoleOrb:
		return collisionTypeOrb
	}
	return collisionTypeWall
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		log.Printf("physics: %s body has no size, skipped", bodyComp.Role)
		return nil
	}

	info := &bodyInfo{kind: bodyComp.Kind, ghost: bodyComp.Ghost}

	var body *cp.Body
	switch bodyComp.Kind {
	case component.BodyStatic:
		body = ps.space.StaticBody
		info.static = true
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
		body.SetPosition(cpv(transform.X, transform.Y))
		ps.space.AddBody(body)
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, width, height)
		}
		body = cp.NewBody(mass, moment)
		body.SetPosition(cpv(transform.X, transform.Y))
		body.SetVelocity(bodyComp.VX, bodyComp.VY)
		ps.space.AddBody(body)
	}

	var shape *cp.Shape
	switch {
	case info.static && radius > 0:
		shape = cp.NewCircle(body, radius, cpv(transform.X, transform.Y))
	case info.static:
		bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
		shape = cp.NewBox2(body, bb, 0)
	case radius > 0:
		shape = cp.NewCircle(body, radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, width, height, 0)
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeFor(bodyComp.Role))
	shape.SetFilter(filterFor(bodyComp.Role, bodyComp.Ghost))
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

// driveKinematic gives kinematic bodies the velocity that carries them to
// their transform over dt, so paddles push the ball instead of teleporting
// through it.
func (ps *PhysicsSystem) driveKinematic(w *ecs.World, dt float64) {
	for e, info := range ps.entities {
		if info.kind != component.BodyKinematic {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		info.body.SetVelocity((t.X-pos.X)/dt, (t.Y-pos.Y)/dt)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		if info.kind == component.BodyKinematic {
			// The transform is authoritative; pin the body to it.
			info.body.SetPosition(cpv(transform.X, transform.Y))
			info.body.SetVelocity(0, 0)
			continue
		}

		pos := info.body.Position()
		vel := info.body.Velocity()
		transform.X, transform.Y = pos.X, pos.Y
		bodyComp.VX, bodyComp.VY = vel.X, vel.Y
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	if len(ps.pending) == 0 {
		return
	}
	events := w.Events()
	for _, c := range ps.pending {
		if !w.IsAlive(c.Ball) || !w.IsAlive(c.Other) {
			continue
		}
		events.Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
