package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pongchaos/common"
	"github.com/milk9111/pongchaos/ecs"
	"github.com/milk9111/pongchaos/ecs/component"
)

// AudioSystem serves the Play/Stop flags on Audio components. Stops are
// handled before plays so a clip can be restarted in one frame.
type AudioSystem struct {
	// Master scales every clip's volume. Muting drops play requests.
	Master float64
	Muted  bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{Master: 1}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, clips *component.Audio) {
		for i := range clips.Stop {
			if !clips.Stop[i] {
				continue
			}
			clips.Stop[i] = false
			if p := playerAt(clips, i); p != nil && p.IsPlaying() {
				p.Pause()
			}
		}

		for i := range clips.Play {
			if !clips.Play[i] {
				continue
			}
			clips.Play[i] = false
			p := playerAt(clips, i)
			if p == nil || a.Muted {
				continue
			}
			vol := 1.0
			if i < len(clips.Volume) {
				vol = clips.Volume[i]
			}
			p.SetVolume(common.Clamp(vol*a.Master, 0, 1))
			_ = p.Rewind()
			p.Play()
		}
	})
}

func playerAt(clips *component.Audio, i int) *audio.Player {
	if i >= len(clips.Players) {
		return nil
	}
	return clips.Players[i]
}
