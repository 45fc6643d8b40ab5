package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

type SoundEvent int

const (
	SoundLock SoundEvent = iota
	SoundLine1
	SoundLine2
	SoundLine3
	SoundLine4
	SoundRotate
	SoundMove
	SoundDrop
	SoundMenuMove
	SoundMenuSelect
	SoundGameOver
)

type SoundEngine struct {
	enabled    bool
	sampleRate int
	ctx        *oto.Context
	volume     float64
	mu         sync.RWMutex
}

func NewSoundEngine(ctx *oto.Context, sampleRate int, enabled bool) *SoundEngine {
	engine := &SoundEngine{
		enabled:    enabled,
		sampleRate: sampleRate,
		ctx:        ctx,
		volume:     0.7,
	}
	if ctx == nil {
		engine.enabled = false
	}
	return engine
}

func (s *SoundEngine) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled && s.ctx != nil
	s.mu.Unlock()
}

func (s *SoundEngine) SetVolume(volume float64) {
	s.mu.Lock()
	s.volume = clampVolume(volume)
	s.mu.Unlock()
}

func (s *SoundEngine) Play(event SoundEvent) {
	s.mu.RLock()
	ctx := s.ctx
	enabled := s.enabled
	volume := s.volume
	s.mu.RUnlock()
	if !enabled || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		buffer := renderToneSequence(sequence, s.sampleRate, volume)
		reader := bytes.NewReader(buffer)
		player := ctx.NewPlayer(reader)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

// blip builds the common one-tone case.
func blip(frequency float64, duration time.Duration, volume float64) []toneSpec {
	return []toneSpec{{frequency: frequency, duration: duration, volume: volume}}
}

// arpeggio builds an ascending run over the given frequencies, holding the
// last note a little longer.
func arpeggio(volume float64, step time.Duration, frequencies ...float64) []toneSpec {
	tones := make([]toneSpec, 0, len(frequencies))
	for i, frequency := range frequencies {
		duration := step
		if i == len(frequencies)-1 {
			duration = step + step/3
		}
		tones = append(tones, toneSpec{frequency: frequency, duration: duration, volume: volume})
	}
	return tones
}

var soundTable = map[SoundEvent][]toneSpec{
	SoundLock:       blip(196, 65*time.Millisecond, 0.28),
	SoundLine1:      blip(noteA4, 85*time.Millisecond, 0.3),
	SoundLine2:      arpeggio(0.3, 70*time.Millisecond, noteA4, noteE5),
	SoundLine3:      arpeggio(0.3, 70*time.Millisecond, noteA4, noteE5, noteA5),
	SoundLine4:      arpeggio(0.32, 75*time.Millisecond, noteE5, noteA5, 1046.5),
	SoundRotate:     blip(noteC5, 35*time.Millisecond, 0.24),
	SoundMove:       blip(noteA4*0.8, 22*time.Millisecond, 0.16),
	SoundDrop:       blip(220, 50*time.Millisecond, 0.22),
	SoundMenuMove:   blip(noteB4*0.5, 22*time.Millisecond, 0.15),
	SoundMenuSelect: blip(noteC5, 65*time.Millisecond, 0.2),
	SoundGameOver:   arpeggio(0.28, 90*time.Millisecond, noteD5, noteB4, 164.81),
}

func tonesForEvent(event SoundEvent) []toneSpec {
	return soundTable[event]
}

const toneGap = 12 * time.Millisecond

func renderToneSequence(sequence []toneSpec, sampleRate int, masterVolume float64) []byte {
	gapSamples := int(float64(sampleRate) * toneGap.Seconds())
	bytesPerSample := 4
	totalSamples := 0
	for i, spec := range sequence {
		totalSamples += int(float64(sampleRate) * spec.duration.Seconds())
		if i < len(sequence)-1 {
			totalSamples += gapSamples
		}
	}
	buffer := make([]byte, totalSamples*bytesPerSample)
	index := 0
	for i, spec := range sequence {
		volume := spec.volume
		if volume <= 0 {
			volume = 0.3
		}
		volume *= clampVolume(masterVolume)
		renderTone(buffer, index, spec, sampleRate, volume)
		index += int(float64(sampleRate)*spec.duration.Seconds()) * bytesPerSample
		if i < len(sequence)-1 {
			index += gapSamples * bytesPerSample
		}
	}
	return buffer
}

// renderTone writes one sine tone into the buffer as interleaved stereo
// int16 samples, with a short attack and a longer release so notes neither
// click on entry nor cut off hard.
func renderTone(buffer []byte, start int, spec toneSpec, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := int(float64(sampleRate) * spec.duration.Seconds())
	attack := int(float64(sampleRate) * 0.002)
	release := int(float64(sampleRate) * 0.008)
	if release > samples/2 {
		release = samples / 2
	}
	for i := 0; i < samples; i++ {
		env := 1.0
		if attack > 0 && i < attack {
			env = float64(i) / float64(attack)
		} else if release > 0 && i >= samples-release {
			env = float64(samples-i) / float64(release)
		}
		sample := math.Sin(2 * math.Pi * spec.frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		buffer[start+i*4] = byte(value)
		buffer[start+i*4+1] = byte(value >> 8)
		buffer[start+i*4+2] = byte(value)
		buffer[start+i*4+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
