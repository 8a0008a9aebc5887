package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundGameEnd
)

const sampleRate = 44100

// envelope maps progress through a sound (0..1) and elapsed seconds to a gain.
type envelope func(progress, t float64) float64

func percussive(_, t float64) float64 {
	return math.Exp(-t * 30)
}

func attackDecay(progress, _ float64) float64 {
	if progress < 0.1 {
		return progress / 0.1
	}
	return 1 - (progress-0.1)/0.9
}

func swell(progress, _ float64) float64 {
	switch {
	case progress < 0.1:
		return progress / 0.1
	case progress > 0.7:
		return (1 - progress) / 0.3
	default:
		return 1
	}
}

// AudioManager plays synthesised sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager. A muted manager never touches
// the audio device.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
		volume:  0.5,
	}
	if enabled {
		am.context = audio.NewContext(sampleRate)
	}
	am.sounds[SoundMove] = synth([]float64{440}, 0.08, 0.3, percussive, true)
	am.sounds[SoundCapture] = synth([]float64{330}, 0.12, 0.5, percussive, true)
	am.sounds[SoundCheck] = synth([]float64{880}, 0.15, 0.4, attackDecay, false)
	am.sounds[SoundCastle] = concat(
		synth([]float64{400}, 0.06, 0.3, percussive, true),
		silence(0.05),
		synth([]float64{440}, 0.06, 0.24, percussive, true),
	)
	// C major chord: C4, E4, G4
	am.sounds[SoundGameEnd] = synth([]float64{261.63, 329.63, 392.00}, 0.4, 0.5, swell, false)
	return am
}

// synth renders 16-bit stereo PCM of the summed sines in freqs. Wooden
// sounds get a little noise added.
func synth(freqs []float64, duration, amplitude float64, env envelope, wood bool) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		wave := 0.0
		for _, f := range freqs {
			wave += math.Sin(2 * math.Pi * f * t)
		}
		wave /= float64(len(freqs))
		if wood {
			wave += (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		}

		v := wave * env(t/duration, t) * amplitude
		v = math.Max(-1, math.Min(1, v))
		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled || am.context == nil {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per sound lets effects overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
