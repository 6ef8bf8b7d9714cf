package assets

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// Sound effect and music file names.
const (
	SoundGo         = "count.mp3"
	SoundLaunch     = "launch.mp3"
	SoundFalseStart = "countdown.mp3"
	SoundPickup     = "charge.mp3"
	SoundShield     = "shield.mp3"
	SoundCrash      = "powerdown.mp3"
	Music           = "bossa_nova.mp3"
)

// Mixer plays short effects and one looping music track. A disabled or nil
// Mixer ignores every call. The audio context can only be created once per
// process, so there should only be one Mixer.
type Mixer struct {
	ctx    *audio.Context
	dir    string
	volume float64
	sfx    map[string][]byte
	music  *audio.Player
}

// NewMixer reads the effects up front so playing them never touches disk.
func NewMixer(dir string, enabled bool, volume float64) *Mixer {
	m := &Mixer{dir: dir, volume: volume, sfx: make(map[string][]byte)}
	if !enabled {
		return m
	}
	m.ctx = audio.NewContext(sampleRate)
	for _, name := range []string{SoundGo, SoundLaunch, SoundFalseStart, SoundPickup, SoundShield, SoundCrash} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Println("Error loading sound:", err)
			continue
		}
		m.sfx[name] = data
	}
	return m
}

// Play starts a one-shot effect and returns its player, or nil.
func (m *Mixer) Play(name string) *audio.Player {
	if m == nil || m.ctx == nil {
		return nil
	}
	data, ok := m.sfx[name]
	if !ok {
		return nil
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		log.Println("Error decoding sound:", err)
		return nil
	}

	sfxPlayer, err := m.ctx.NewPlayer(stream)
	if err != nil {
		log.Println("Error creating audio player:", err)
		return nil
	}

	sfxPlayer.SetVolume(m.volume)
	sfxPlayer.Play()
	return sfxPlayer
}

// PlayMusic loops the named track until StopMusic.
func (m *Mixer) PlayMusic(name string) {
	if m == nil || m.ctx == nil || m.music != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		log.Println("Error loading music:", err)
		return
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		log.Println("Error decoding music:", err)
		return
	}

	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		log.Println("Error creating music player:", err)
		return
	}
	player.SetVolume(m.volume * 0.5)
	player.Play()
	m.music = player
}

func (m *Mixer) StopMusic() {
	if m == nil || m.music == nil {
		return
	}
	m.music.Pause()
	m.music = nil
}
