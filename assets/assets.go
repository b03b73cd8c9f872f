package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is shared by the ebiten audio context and the synthesizer.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadAudioPlayer creates a player for a synthesized clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	pcm, err := LoadSound(name)
	if err != nil {
		return nil, err
	}
	return audioCtx().NewPlayerFromBytes(pcm), nil
}

// LoadLoopPlayer creates a player that repeats the clip until paused.
func LoadLoopPlayer(name string) (*audio.Player, error) {
	pcm, err := LoadSound(name)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := audioCtx().NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: loop player %q: %w", name, err)
	}
	return p, nil
}
