package powerup

import (
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

const (
	defaultDuration  = 3.0
	defaultIntensity = 1.0
)

// Definition is the authored, read-only description of a power-up. Pickups
// share pointers into the catalog and never mutate them.
type Definition struct {
	Kind            Kind    `yaml:"kind"`
	Name            string  `yaml:"name"`
	Duration        float64 `yaml:"duration"`
	Intensity       float64 `yaml:"intensity"`
	GlowColor       string  `yaml:"glow_color"`
	Particle        string  `yaml:"particle"`
	ActivationSound string  `yaml:"activation_sound"`
	LoopSound       string  `yaml:"loop_sound"`
	Description     string  `yaml:"description"`
}

// UnmarshalYAML rejects entries without a kind key; the zero Kind is a real
// power-up and must not be picked up by accident.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	type plain Definition
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if !hasKey(value, "kind") {
		return fmt.Errorf("%w: entry at line %d has no kind", ErrUnknownKind, value.Line)
	}
	*d = Definition(p)
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func (d *Definition) applyDefaults() {
	if d.Duration == 0 {
		d.Duration = defaultDuration
	}
	if d.Intensity == 0 {
		d.Intensity = defaultIntensity
	}
	if d.Name == "" {
		d.Name = d.Kind.String()
	}
}

func (d *Definition) validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(d.Kind))
	}
	if d.Duration <= 0 {
		return fmt.Errorf("%w: %s duration must be > 0, got %v", ErrInvalidDefinition, d.Name, d.Duration)
	}
	if (d.Kind == SpeedBoost || d.Kind == SlowMotion) && d.Intensity <= 0 {
		return fmt.Errorf("%w: %s intensity must be > 0, got %v", ErrInvalidDefinition, d.Name, d.Intensity)
	}
	return nil
}

// Catalog is the set of definitions orbs are drawn from.
type Catalog struct {
	Definitions []*Definition `yaml:"powerups"`
}

// NewCatalog validates defs and fills in defaults.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	c := &Catalog{}
	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("%w: entry %d is nil", ErrInvalidDefinition, i)
		}
		d.applyDefaults()
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		c.Definitions = append(c.Definitions, d)
	}
	return c, nil
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw Catalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("powerup: unmarshal catalog: %w", err)
	}
	return NewCatalog(raw.Definitions...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Definitions)
}

// Random picks a definition uniformly.
func (c *Catalog) Random(rng *rand.Rand) (*Definition, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	var i int
	if rng != nil {
		i = rng.Intn(len(c.Definitions))
	} else {
		i = rand.Intn(len(c.Definitions))
	}
	return c.Definitions[i], nil
}

// ByKind returns the first definition of kind k.
func (c *Catalog) ByKind(k Kind) (*Definition, bool) {
	if c == nil {
		return nil, false
	}
	for _, d := range c.Definitions {
		if d.Kind == k {
			return d, true
		}
	}
	return nil, false
}
