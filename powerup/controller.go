package powerup

import (
	"errors"
	"log"
)

// ActiveEffect is the single live power-up.
type ActiveEffect struct {
	Definition *Definition
	Remaining  float64
}

func (a ActiveEffect) Kind() Kind {
	return a.Definition.Kind
}

// Controller owns the current-effect slot. At most one effect's toggles are
// applied at any time: Activate reverts the running effect before applying
// the new one, and the countdown reverts it when it runs out.
//
// Tick must be fed unscaled frame time so slow motion does not stretch the
// effect's own duration.
type Controller struct {
	registry *Registry
	env      *Env
	active   *ActiveEffect

	// OnActivate and OnExpire are optional observer hooks.
	OnActivate func(def *Definition)
	OnExpire   func(def *Definition)
}

func NewController(registry *Registry, env *Env) *Controller {
	if registry == nil {
		registry = NewRegistry()
	}
	if env == nil {
		env = &Env{}
	}
	return &Controller{registry: registry, env: env}
}

// Env exposes the collaborator bundle so the engine can rebind collaborators
// after a world reload.
func (c *Controller) Env() *Env {
	return c.env
}

// Activate starts def, preempting whatever is running. A nil definition is
// ignored.
func (c *Controller) Activate(def *Definition) {
	if c == nil || def == nil {
		return
	}

	if c.active != nil {
		prev := c.active.Definition
		c.revert()
		log.Printf("powerup: %s preempted by %s", prev.Name, def.Name)
	}

	log.Printf("powerup: activating %s (%s) for %.1fs", def.Name, def.Kind, def.Duration)
	c.active = &ActiveEffect{Definition: def, Remaining: def.Duration}
	c.apply(def, true)

	if c.OnActivate != nil {
		c.OnActivate(def)
	}
}

// Tick advances the countdown by dt seconds of unscaled time.
func (c *Controller) Tick(dt float64) {
	if c == nil || c.active == nil {
		return
	}
	if dt > 0 {
		c.active.Remaining -= dt
	}
	if c.active.Remaining > 0 {
		return
	}

	def := c.active.Definition
	c.revert()
	log.Printf("powerup: %s expired", def.Name)
	if c.OnExpire != nil {
		c.OnExpire(def)
	}
}

// Cancel reverts and clears the active effect immediately.
func (c *Controller) Cancel() {
	if c == nil || c.active == nil {
		return
	}
	def := c.active.Definition
	c.revert()
	log.Printf("powerup: %s cancelled", def.Name)
}

func (c *Controller) revert() {
	def := c.active.Definition
	c.active = nil
	c.apply(def, false)
}

func (c *Controller) apply(def *Definition, on bool) {
	effect, ok := c.registry.Lookup(def.Kind)
	if !ok {
		log.Printf("powerup: no effect registered for %s", def.Kind)
		return
	}
	if err := effect.Apply(c.env, def, on); err != nil {
		if errors.Is(err, ErrMissingCollaborator) {
			log.Printf("powerup: %s apply=%v skipped: %v", def.Kind, on, err)
			return
		}
		log.Printf("powerup: %s apply=%v failed: %v", def.Kind, on, err)
	}
}

// Active returns a copy of the live effect.
func (c *Controller) Active() (ActiveEffect, bool) {
	if c == nil || c.active == nil {
		return ActiveEffect{}, false
	}
	return *c.active, true
}

func (c *Controller) IsShieldActive() bool {
	return c != nil && c.env.toggles.Shield
}

func (c *Controller) IsMirrorFieldActive() bool {
	return c != nil && c.env.toggles.Mirror
}

func (c *Controller) Toggles() Toggles {
	if c == nil {
		return Toggles{}
	}
	return c.env.Toggles()
}

// Status snapshots the controller for observers.
func (c *Controller) Status() Status {
	if c == nil || c.active == nil {
		return Status{}
	}
	def := c.active.Definition
	remaining := c.active.Remaining
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Active:    true,
		Kind:      def.Kind,
		Name:      def.Name,
		GlowColor: def.GlowColor,
		Remaining: remaining,
		Duration:  def.Duration,
	}
}
