// Command fxsoak runs the power-up spawner and effect controller headless
// for as long as you like and shows their state in the terminal, flagging
// any invariant the effects break.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pongchaos/powerup"
	"github.com/milk9111/pongchaos/prefabs"
)

const frameDt = 1.0 / 60.0

type monitor struct {
	screen tcell.Screen
	soak   *soak
	speed  int
	paused bool
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	rate := flag.Float64("rate", 0.4, "chance per second that a live orb is collected")
	speed := flag.Int("speed", 10, "simulated frames per drawn frame")
	flag.Parse()

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	spec, err := prefabs.LoadMatchSpec()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	// The controller logs every activation; keep it off the terminal.
	log.SetOutput(io.Discard)

	m := &monitor{
		screen: screen,
		soak:   newSoak(catalog, spec.Spawner, *seed, *rate),
		speed:  *speed,
	}
	defer screen.Fini()
	m.run()
}

func (m *monitor) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- m.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !m.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !m.paused {
				for i := 0; i < m.speed; i++ {
					m.soak.step(frameDt)
				}
			}
			m.draw()
		}
	}
}

func (m *monitor) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				m.paused = !m.paused
			case '+':
				m.speed *= 2
			case '-':
				if m.speed > 1 {
					m.speed /= 2
				}
			case 'c':
				for _, p := range m.soak.spawner.Live() {
					m.soak.trigger.Contact(p, powerup.BallTag)
					break
				}
			}
		}
	case *tcell.EventResize:
		m.screen.Sync()
	}
	return true
}

func (m *monitor) draw() {
	m.screen.Clear()
	s := m.soak
	plain := tcell.StyleDefault
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	state := "running"
	if m.paused {
		state = "paused"
	}
	y := 0
	y = m.line(y, plain, "fxsoak  t=%.1fs  x%d  %s   [space] pause  [+/-] speed  [c] collect  [q] quit", s.elapsed, m.speed, state)
	y++

	st := s.ctrl.Status()
	if st.Active {
		width := 30
		filled := int(st.Fraction() * float64(width))
		bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
		style := plain.Foreground(tcell.ColorGreen)
		if st.Urgent() {
			style = plain.Foreground(tcell.ColorRed).Bold(true)
		}
		y = m.line(y, style, "effect  %-14s %6s [%s]", st.Name, st.TimerText(), bar)
	} else {
		y = m.line(y, dim, "effect  (none)")
	}
	tg := s.ctrl.Toggles()
	y = m.line(y, plain, "toggles %+v", tg)
	y = m.line(y, plain, "ball    speed=%.2f ghost=%v  ai=%v  inverted=%v  scale=%.2f  clones=%d",
		s.ball.vel.Len(), s.ball.ghost, s.ai.enabled, s.controls.inverted, s.clock.scale, s.clones.live)
	y = m.line(y, plain, "orbs    live=%d  next in %.1fs  collected=%d", s.spawner.LiveCount(), s.spawner.NextTickIn(), s.collected)
	for _, p := range s.spawner.Live() {
		y = m.line(y, dim, "        #%-4d %-14s (%.2f, %.2f)", p.ID, p.Definition.Name, p.Position.X(), p.Position.Y())
	}
	y++

	kinds := make([]powerup.Kind, 0, len(s.activations))
	for k := range s.activations {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		y = m.line(y, plain, "  %-14s %d", k, s.activations[k])
	}
	y++

	if len(s.violations) == 0 {
		m.line(y, plain.Foreground(tcell.ColorGreen), "no violations")
	} else {
		y = m.line(y, plain.Foreground(tcell.ColorRed), "%d violations", len(s.violations))
		start := len(s.violations) - 5
		if start < 0 {
			start = 0
		}
		for _, v := range s.violations[start:] {
			y = m.line(y, plain.Foreground(tcell.ColorRed), "  %s", v)
		}
	}

	m.screen.Show()
}

// line prints one row and returns the next row index.
func (m *monitor) line(y int, style tcell.Style, format string, args ...any) int {
	w, h := m.screen.Size()
	if y >= h {
		return y + 1
	}
	x := 0
	for _, r := range fmt.Sprintf(format, args...) {
		if x >= w {
			break
		}
		m.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return y + 1
}
