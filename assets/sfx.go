package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveTriangle
	waveNoise
)

// oscillator is a fixed-length tone with an optional linear pitch slide.
type oscillator struct {
	from, to float64
	phase    float64
	pos, n   int
	wave     wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func tone(from, to float64, d time.Duration, w wave) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	return &oscillator{from: from, to: to, n: rate.N(d), wave: w, rate: rate, rng: rand.New(rand.NewSource(int64(from)))}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.n {
			return i, i > 0
		}
		t := float64(o.pos) / float64(o.n)
		freq := o.from + (o.to-o.from)*t

		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case waveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades the head and tail of a stream of known length.
type envelope struct {
	s               beep.Streamer
	pos, total      int
	attack, release int
}

func shape(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if rem := e.total - e.pos; e.release > 0 && rem < e.release {
			vol = math.Max(0, float64(rem)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func blip(from, to float64, d time.Duration, w wave, vol float64) beep.Streamer {
	return volume(shape(tone(from, to, d, w), d, 5*time.Millisecond, d/2), vol)
}

var sounds = map[string]func() beep.Streamer{
	"paddle_hit": func() beep.Streamer { return blip(440, 460, 60*time.Millisecond, waveSquare, 0.25) },
	"wall_hit":   func() beep.Streamer { return blip(300, 280, 50*time.Millisecond, waveSquare, 0.2) },
	"goal": func() beep.Streamer {
		return beep.Seq(blip(520, 520, 90*time.Millisecond, waveTriangle, 0.4), blip(260, 200, 220*time.Millisecond, waveTriangle, 0.4))
	},
	"serve": func() beep.Streamer { return blip(660, 880, 80*time.Millisecond, waveSine, 0.3) },
	"win": func() beep.Streamer {
		return beep.Seq(
			blip(523, 523, 120*time.Millisecond, waveSquare, 0.3),
			blip(659, 659, 120*time.Millisecond, waveSquare, 0.3),
			blip(784, 784, 300*time.Millisecond, waveSquare, 0.3),
		)
	},
	"pickup": func() beep.Streamer {
		return beep.Mix(blip(880, 1320, 180*time.Millisecond, waveSine, 0.35), blip(1760, 2200, 180*time.Millisecond, waveSine, 0.12))
	},
	"expire":    func() beep.Streamer { return blip(700, 350, 200*time.Millisecond, waveTriangle, 0.3) },
	"shield_up": func() beep.Streamer { return blip(330, 660, 250*time.Millisecond, waveTriangle, 0.35) },
	"mirror_up": func() beep.Streamer {
		return beep.Seq(blip(600, 600, 80*time.Millisecond, waveSine, 0.3), blip(900, 900, 80*time.Millisecond, waveSine, 0.3))
	},
	"clone_up": func() beep.Streamer {
		return beep.Mix(blip(500, 500, 200*time.Millisecond, waveSine, 0.3), blip(750, 750, 200*time.Millisecond, waveSine, 0.2))
	},
	"invert_up": func() beep.Streamer { return blip(900, 300, 250*time.Millisecond, waveSquare, 0.25) },
	"freeze_up": func() beep.Streamer {
		return volume(shape(tone(0, 0, 300*time.Millisecond, waveNoise), 300*time.Millisecond, 20*time.Millisecond, 200*time.Millisecond), 0.2)
	},
	"boost_up":    func() beep.Streamer { return blip(200, 1200, 300*time.Millisecond, waveSquare, 0.25) },
	"slow_up":     func() beep.Streamer { return blip(800, 150, 400*time.Millisecond, waveSine, 0.35) },
	"ghost_up":    func() beep.Streamer { return blip(400, 420, 350*time.Millisecond, waveTriangle, 0.2) },
	"effect_hum":  func() beep.Streamer { return volume(tone(110, 110, 500*time.Millisecond, waveSine), 0.08) },
	"tick_urgent": func() beep.Streamer { return blip(1000, 1000, 30*time.Millisecond, waveSine, 0.15) },
}

var (
	pcmMu    sync.Mutex
	pcmCache = map[string][]byte{}
)

// SoundNames lists every clip the synthesizer knows.
func SoundNames() []string {
	names := make([]string, 0, len(sounds))
	for name := range sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSound renders the named clip to 16-bit little-endian stereo PCM at
// SampleRate, the format ebiten's audio players expect.
func LoadSound(name string) ([]byte, error) {
	pcmMu.Lock()
	defer pcmMu.Unlock()
	if b, ok := pcmCache[name]; ok {
		return b, nil
	}
	build, ok := sounds[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	b := renderPCM(build())
	pcmCache[name] = b
	return b, nil
}

func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, ch := range smp {
				v := int16(math.Max(-1, math.Min(1, ch)) * math.MaxInt16)
				out = binary.LittleEndian.AppendUint16(out, uint16(v))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
