package powerup

import (
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// SpawnArea is the rectangle orbs appear in: x in [-HalfWidth, HalfWidth],
// y in [-HalfHeight, HalfHeight], at depth Z.
type SpawnArea struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Depth      float64 `yaml:"depth"`
}

type SpawnerConfig struct {
	InitialDelay  float64   `yaml:"initial_delay"`
	Interval      float64   `yaml:"interval"`
	MaxActiveOrbs int       `yaml:"max_active_orbs"`
	Area          SpawnArea `yaml:"area"`
}

// DefaultSpawnerConfig mirrors the tuning the game shipped with.
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		InitialDelay:  5,
		Interval:      15,
		MaxActiveOrbs: 2,
		Area:          SpawnArea{HalfWidth: 8, HalfHeight: 5},
	}
}

// PickupSink materializes and removes orb entities on behalf of the spawner.
type PickupSink interface {
	SpawnPickup(p *Pickup) error
	DespawnPickup(p *Pickup)
}

// Spawner periodically creates pickups. It is driven by Tick; stopping it is
// immediate and also removes every live pickup.
type Spawner struct {
	cfg     SpawnerConfig
	catalog *Catalog
	sink    PickupSink
	rng     *rand.Rand

	running bool
	timer   float64
	nextID  PickupID
	live    map[PickupID]*Pickup
}

func NewSpawner(cfg SpawnerConfig, catalog *Catalog, sink PickupSink, rng *rand.Rand) *Spawner {
	def := DefaultSpawnerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.InitialDelay < 0 {
		cfg.InitialDelay = 0
	}
	if cfg.MaxActiveOrbs <= 0 {
		log.Printf("powerup: max_active_orbs %d, using %d", cfg.MaxActiveOrbs, def.MaxActiveOrbs)
		cfg.MaxActiveOrbs = def.MaxActiveOrbs
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Spawner{
		cfg:     cfg,
		catalog: catalog,
		sink:    sink,
		rng:     rng,
		live:    make(map[PickupID]*Pickup),
	}
}

func (s *Spawner) Config() SpawnerConfig {
	return s.cfg
}

// SetCatalog swaps the definitions new orbs are drawn from. Live pickups keep
// their definitions.
func (s *Spawner) SetCatalog(c *Catalog) {
	s.catalog = c
}

func (s *Spawner) SetSink(sink PickupSink) {
	s.sink = sink
}

// Start (re)starts the cycle: the first spawn tick fires after the initial
// delay plus one interval.
func (s *Spawner) Start() {
	s.running = true
	s.timer = s.cfg.InitialDelay + s.cfg.Interval
}

// Stop halts the cycle and removes every live pickup.
func (s *Spawner) Stop() {
	s.running = false
	s.timer = 0
	s.Clear()
}

func (s *Spawner) Running() bool {
	return s.running
}

// NextTickIn reports the time left until the next spawn tick.
func (s *Spawner) NextTickIn() float64 {
	if !s.running {
		return 0
	}
	return s.timer
}

// Tick advances the cycle by dt seconds. At most one spawn tick fires per call.
func (s *Spawner) Tick(dt float64) {
	if !s.running || dt <= 0 {
		return
	}
	s.timer -= dt
	if s.timer > 0 {
		return
	}
	s.timer += s.cfg.Interval
	if s.timer <= 0 {
		s.timer = s.cfg.Interval
	}
	s.SpawnNow()
}

// SpawnNow performs one spawn tick: it creates a pickup unless the live count
// is already at the cap, in which case the tick is dropped.
func (s *Spawner) SpawnNow() (*Pickup, bool) {
	if len(s.live) >= s.cfg.MaxActiveOrbs {
		return nil, false
	}
	if s.sink == nil {
		log.Printf("powerup: spawn skipped: %v", ErrMissingTemplate)
		return nil, false
	}
	def, err := s.catalog.Random(s.rng)
	if err != nil {
		log.Printf("powerup: spawn skipped: %v", err)
		return nil, false
	}

	a := s.cfg.Area
	pos := mgl64.Vec3{
		s.uniform(-a.HalfWidth, a.HalfWidth),
		s.uniform(-a.HalfHeight, a.HalfHeight),
		a.Depth,
	}

	s.nextID++
	p := &Pickup{ID: s.nextID, Position: pos, Definition: def}
	if err := s.sink.SpawnPickup(p); err != nil {
		log.Printf("powerup: spawn skipped: %v", fmt.Errorf("materialize %s: %w", def.Name, err))
		return nil, false
	}
	s.live[p.ID] = p
	log.Printf("powerup: spawned %s at (%.2f, %.2f)", def.Name, pos.X(), pos.Y())
	return p, true
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Remove unregisters the pickup and despawns its entity.
func (s *Spawner) Remove(id PickupID) bool {
	p, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	if s.sink != nil {
		s.sink.DespawnPickup(p)
	}
	return true
}

func (s *Spawner) Pickup(id PickupID) (*Pickup, bool) {
	p, ok := s.live[id]
	return p, ok
}

func (s *Spawner) LiveCount() int {
	return len(s.live)
}

// Live returns the live pickups ordered by id.
func (s *Spawner) Live() []*Pickup {
	out := make([]*Pickup, 0, len(s.live))
	for _, p := range s.live {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clear removes every live pickup. The cycle and its timer are untouched.
func (s *Spawner) Clear() {
	for _, p := range s.Live() {
		s.Remove(p.ID)
	}
}
