package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
	"github.com/milk9111/pongchaos/ecs/entity"
	"github.com/milk9111/pongchaos/ecs/system"
	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
	"github.com/milk9111/pongchaos/ui"
)

var background = color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}

type gameConfig struct {
	debug  bool
	seed   int64
	points int
	mute   bool
}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *system.Clock
	field     *entity.Field

	controller *powerup.Controller
	spawner    *powerup.Spawner

	ai       *system.AIPaddleSystem
	render   *system.RenderSystem
	powerups *system.PowerUpSystem

	pauseUI *ebitenui.UI
	startUI *ebitenui.UI
	hud     *ui.HUD
	status  *ui.StatusPanel

	watcher *prefabs.Watcher
}

func NewGame(cfg gameConfig) (*Game, error) {
	spec, err := prefabs.LoadMatchSpec()
	if err != nil {
		return nil, err
	}
	if cfg.points > 0 {
		spec.PointsToWin = cfg.points
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	log.Printf("game: seed %d, %d power-ups, first to %d", cfg.seed, catalog.Len(), spec.PointsToWin)

	rng := rand.New(rand.NewSource(cfg.seed))

	world := ecs.NewWorld()
	field, err := entity.NewField(world, spec.PointsToWin)
	if err != nil {
		return nil, fmt.Errorf("game: build field: %w", err)
	}
	if _, err := entity.NewSoundBank(world); err != nil {
		log.Printf("game: sounds disabled: %v", err)
	}

	clock := system.NewClock()
	clock.SetFrameDt(1 / float64(ebiten.TPS()))

	controller := powerup.NewController(powerup.NewRegistry(), &powerup.Env{})
	spawner := powerup.NewSpawner(spec.Spawner, catalog, nil, rng)
	trigger := powerup.NewTrigger(controller, spawner)

	g := &Game{
		debug:      cfg.debug,
		world:      world,
		clock:      clock,
		field:      field,
		controller: controller,
		spawner:    spawner,
		ai:         system.NewAIPaddleSystem(clock),
		render:     system.NewRenderSystem(),
		powerups:   system.NewPowerUpSystem(world, clock, controller, spawner, trigger, rng, spec.Particles),
		hud:        ui.NewHUD(),
		status:     ui.NewStatusPanel(controller),
	}
	g.render.Debug = cfg.debug
	g.render.Toggles = controller.Toggles

	sound := system.NewAudioSystem()
	sound.Muted = cfg.mute

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerPaddleSystem(clock),
		g.ai,
		system.NewPickupHoverSystem(clock),
		system.NewPhysicsSystem(clock),
		system.NewBallSystem(),
		system.NewPickupTriggerSystem(trigger),
		system.NewMatchSystem(controller, g.powerups, rng),
		g.powerups,
		system.NewParticleSystem(clock),
		sound,
		system.NewTTLSystem(clock),
	)

	g.pauseUI = ui.NewPauseUI(func() { g.setPaused(false) }, func() { g.quit = true })
	g.startUI = ui.NewStartUI(g.requestStart, func() { g.quit = true })
	g.watcher = startWatcher()
	return g, nil
}

// startWatcher watches the on-disk prefab directories when running from a
// checkout. Missing directories just disable hot reload.
func startWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
		return nil
	}
	return w
}

func (g *Game) requestStart() {
	if m := g.match(); m != nil {
		m.StartRequested = true
	}
}

func (g *Game) match() *component.Match {
	m, ok := ecs.Get(g.world, g.field.Match, component.MatchComponent.Kind())
	if !ok {
		return nil
	}
	return m
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}
	g.frames++
	g.applyReloads()

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.setPaused(false)
		}
		g.pauseUI.Update()
		return nil
	}

	m := g.match()
	if m != nil && m.State == component.MatchTitle {
		g.startUI.Update()
	}

	g.scheduler.Update(g.world)

	if in, ok := ecs.Get(g.world, g.field.Player, component.InputComponent.Kind()); ok && in.PausePressed {
		g.setPaused(true)
	}

	g.status.Update(g.clock.Dt())
	g.updateHUD(m)
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.clock.SetPaused(paused)
}

func (g *Game) updateHUD(m *component.Match) {
	if m == nil {
		return
	}
	hint, winner := "", ""
	switch m.State {
	case component.MatchServe:
		hint = "SPACE to serve"
	case component.MatchOver:
		winner = "The AI wins"
		if m.Winner == component.SideLeft {
			winner = "You win!"
		}
	}
	g.hud.Set(m.ScoreLeft, m.ScoreRight, hint, winner)
	g.hud.Update()
}

// applyReloads drains the watcher without blocking the frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: watcher: %v", err)
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case name == "powerups.yaml":
		catalog, err := prefabs.LoadCatalog()
		if err != nil {
			log.Printf("game: keeping old catalog: %v", err)
			return
		}
		g.spawner.SetCatalog(catalog)
		log.Printf("game: reloaded %d power-ups", catalog.Len())
	case prefabs.IsScriptFile(name):
		g.ai.Reload(name)
	case prefabs.IsSpecFile(name):
		log.Printf("game: %s changed; restart to apply", name)
	}
}

func (g *Game) close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Printf("game: close watcher: %v", err)
	}
	g.watcher = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)
	g.status.Draw(screen)

	if m := g.match(); m != nil && m.State == component.MatchTitle {
		g.startUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		st := g.controller.Status()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  frames: %d  scale: %.2f\norbs: %d  next: %.1fs\neffect: %s %s",
			ebiten.ActualFPS(), g.frames, g.clock.TimeScale(),
			g.spawner.LiveCount(), g.spawner.NextTickIn(),
			st.Name, st.TimerText(),
		))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
