package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteComponentSpec describes a procedurally drawn sprite. Sizes are in
// field units; the builder converts them to pixels.
type SpriteComponentSpec struct {
	Shape  string  `yaml:"shape"`
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
	Alpha  float64 `yaml:"alpha"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}

type PhysicsBodyComponentSpec struct {
	Kind       string  `yaml:"kind"`
	Role       string  `yaml:"role"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Sensor     bool    `yaml:"sensor"`
}

type BallComponentSpec struct {
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedPerScore float64 `yaml:"speed_per_score"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinPlaySpeed  float64 `yaml:"min_play_speed"`
}

type PaddleComponentSpec struct {
	Side   string  `yaml:"side"`
	Speed  float64 `yaml:"speed"`
	YLimit float64 `yaml:"y_limit"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
}

type AIPaddleComponentSpec struct {
	Script   string  `yaml:"script"`
	Reaction float64 `yaml:"reaction"`
}

type GoalComponentSpec struct {
	Side string `yaml:"side"`
}

type PickupComponentSpec struct {
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
	SpinSpeed    float64 `yaml:"spin_speed"`
}
