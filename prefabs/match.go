package prefabs

import (
	"fmt"

	"github.com/milk9111/pongchaos/powerup"
)

// MatchSpec is the match-wide tuning in match.yaml.
type MatchSpec struct {
	PointsToWin int                   `yaml:"points_to_win"`
	Spawner     powerup.SpawnerConfig `yaml:"spawner"`
	Particles   ParticleSpec          `yaml:"particles"`
}

type ParticleSpec struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	Lifetime int     `yaml:"lifetime"`
}

func LoadMatchSpec() (*MatchSpec, error) {
	spec := MatchSpec{Spawner: powerup.DefaultSpawnerConfig()}
	loaded, err := LoadSpec[MatchSpec]("match.yaml")
	if err != nil {
		return nil, err
	}
	if loaded.PointsToWin > 0 {
		spec.PointsToWin = loaded.PointsToWin
	} else {
		spec.PointsToWin = 5
	}
	if loaded.Spawner.MaxActiveOrbs < 0 {
		return nil, fmt.Errorf("prefabs: match.yaml: max_active_orbs must be >= 0")
	}
	spec.Spawner = mergeSpawner(spec.Spawner, loaded.Spawner)
	spec.Particles = loaded.Particles
	if spec.Particles.Count <= 0 {
		spec.Particles.Count = 16
	}
	if spec.Particles.Speed <= 0 {
		spec.Particles.Speed = 4
	}
	if spec.Particles.Lifetime <= 0 {
		spec.Particles.Lifetime = 30
	}
	return &spec, nil
}

// mergeSpawner overlays the keys match.yaml actually sets onto base.
func mergeSpawner(base, loaded powerup.SpawnerConfig) powerup.SpawnerConfig {
	if loaded.InitialDelay > 0 {
		base.InitialDelay = loaded.InitialDelay
	}
	if loaded.Interval > 0 {
		base.Interval = loaded.Interval
	}
	if loaded.MaxActiveOrbs > 0 {
		base.MaxActiveOrbs = loaded.MaxActiveOrbs
	}
	if loaded.Area.HalfWidth > 0 {
		base.Area.HalfWidth = loaded.Area.HalfWidth
	}
	if loaded.Area.HalfHeight > 0 {
		base.Area.HalfHeight = loaded.Area.HalfHeight
	}
	if loaded.Area.Depth != 0 {
		base.Area.Depth = loaded.Area.Depth
	}
	return base
}

// LoadCatalog reads the power-up catalog from powerups.yaml.
func LoadCatalog() (*powerup.Catalog, error) {
	data, err := Load("powerups.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load powerups.yaml: %w", err)
	}
	c, err := powerup.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: powerups.yaml: %w", err)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("prefabs: powerups.yaml: %w", powerup.ErrEmptyCatalog)
	}
	return c, nil
}
