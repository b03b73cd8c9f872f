package powerup

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies one of the gameplay modifiers an orb can grant.
type Kind int

const (
	ShieldPulse Kind = iota
	MirrorField
	CloneBall
	Inverter
	Freeze
	SpeedBoost
	SlowMotion
	GhostBall

	kindCount // must stay last
)

var kindNames = [kindCount]string{
	ShieldPulse: "shield_pulse",
	MirrorField: "mirror_field",
	CloneBall:   "clone_ball",
	Inverter:    "inverter",
	Freeze:      "freeze",
	SpeedBoost:  "speed_boost",
	SlowMotion:  "slow_motion",
	GhostBall:   "ghost_ball",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the snake_case names used in prefabs.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
