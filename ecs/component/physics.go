package component

import "github.com/jakecoffman/cp"

// BodyKind selects how a PhysicsBody is simulated.
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

// ColliderRole tells the physics system which collision type and filter
// category a shape gets.
type ColliderRole string

const (
	RoleBall   ColliderRole = "ball"
	RolePaddle ColliderRole = "paddle"
	RoleWall   ColliderRole = "wall"
	RoleGoal   ColliderRole = "goal"
	RoleOrb    ColliderRole = "orb"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Kind       BodyKind
	Role       ColliderRole
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Sensor     bool
	// VX and VY mirror the body's velocity after every step. Before the body
	// exists they hold the velocity it is created with.
	VX, VY float64
	// Ghost removes paddles from the shape's collision mask.
	Ghost bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
