package powerup

import "errors"

var (
	// ErrEmptyCatalog means there is nothing to spawn.
	ErrEmptyCatalog = errors.New("powerup: empty catalog")
	// ErrMissingTemplate means the engine has no way to materialize an orb.
	ErrMissingTemplate = errors.New("powerup: missing pickup template")
	// ErrMissingCollaborator means an effect's target (ball, paddle, clock...)
	// is absent. The effect timer still runs.
	ErrMissingCollaborator = errors.New("powerup: missing collaborator")
	// ErrDoubleActivation is reported when a consumed pickup is touched again.
	ErrDoubleActivation  = errors.New("powerup: pickup already consumed")
	ErrUnknownKind       = errors.New("powerup: unknown kind")
	ErrInvalidDefinition = errors.New("powerup: invalid definition")
)
