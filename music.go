package main

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// MusicPlayer loops a synthesized background melody during gameplay. The
// melody is rendered with the same tone synth the sound effects use, so no
// audio asset ships with the binary.
type MusicPlayer struct {
	ctx        *oto.Context
	sampleRate int
	mu         sync.Mutex
	stop       chan struct{}
	volume     float64
}

func NewMusicPlayer(ctx *oto.Context, sampleRate int, volume float64) *MusicPlayer {
	if ctx == nil {
		return nil
	}
	return &MusicPlayer{
		ctx:        ctx,
		sampleRate: sampleRate,
		volume:     clampVolume(volume),
	}
}

func (m *MusicPlayer) SetVolume(volume float64) {
	m.mu.Lock()
	m.volume = clampVolume(volume)
	m.mu.Unlock()
}

// Start begins looping the melody. Calling Start while already playing is
// a no-op.
func (m *MusicPlayer) Start() {
	m.mu.Lock()
	if m.stop != nil {
		m.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	m.stop = stop
	m.mu.Unlock()
	go m.loop(stop)
}

func (m *MusicPlayer) Stop() {
	m.mu.Lock()
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
	m.mu.Unlock()
}

func (m *MusicPlayer) loop(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		buffer := renderToneSequence(gameMelody, m.sampleRate, m.volumeValue()*0.5)
		reader := bytes.NewReader(buffer)
		player := m.ctx.NewPlayer(reader)
		player.Play()
		for player.IsPlaying() {
			select {
			case <-stop:
				_ = player.Close()
				return
			case <-time.After(20 * time.Millisecond):
			}
		}
		_ = player.Close()
		select {
		case <-stop:
			return
		case <-time.After(400 * time.Millisecond):
		}
	}
}

func (m *MusicPlayer) volumeValue() float64 {
	m.mu.Lock()
	volume := m.volume
	m.mu.Unlock()
	return volume
}

// Note frequencies for the melody line.
const (
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteF5 = 698.46
	noteG5 = 783.99
	noteA5 = 880.00
)

const (
	beatQuarter = 240 * time.Millisecond
	beatEighth  = 120 * time.Millisecond
)

// gameMelody is a short folk-style loop in A minor.
var gameMelody = []toneSpec{
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteB4, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteD5, duration: beatQuarter, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteB4, duration: beatEighth, volume: 0.2},
	{frequency: noteA4, duration: beatQuarter, volume: 0.2},
	{frequency: noteA4, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteD5, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteB4, duration: beatQuarter, volume: 0.2},
	{frequency: noteB4, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteD5, duration: beatQuarter, volume: 0.2},
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteC5, duration: beatQuarter, volume: 0.2},
	{frequency: noteA4, duration: beatQuarter, volume: 0.2},
	{frequency: noteA4, duration: beatQuarter, volume: 0.2},
	{frequency: noteD5, duration: beatQuarter, volume: 0.2},
	{frequency: noteF5, duration: beatEighth, volume: 0.2},
	{frequency: noteA5, duration: beatQuarter, volume: 0.2},
	{frequency: noteG5, duration: beatEighth, volume: 0.2},
	{frequency: noteF5, duration: beatEighth, volume: 0.2},
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteD5, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteB4, duration: beatQuarter, volume: 0.2},
	{frequency: noteB4, duration: beatEighth, volume: 0.2},
	{frequency: noteC5, duration: beatEighth, volume: 0.2},
	{frequency: noteD5, duration: beatQuarter, volume: 0.2},
	{frequency: noteE5, duration: beatQuarter, volume: 0.2},
	{frequency: noteC5, duration: beatQuarter, volume: 0.2},
	{frequency: noteA4, duration: beatQuarter, volume: 0.2},
	{frequency: noteA4, duration: beatQuarter, volume: 0.2},
}
