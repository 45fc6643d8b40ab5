package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	audioOnce       sync.Once
	audioCtx        *oto.Context
	audioSampleRate int
	audioErr        error
)

// initAudioContext opens the shared audio device once. Both the sound
// engine and the music player hang off the same context.
func initAudioContext() (*oto.Context, int, error) {
	audioOnce.Do(func() {
		sampleRate := 44100
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			audioErr = err
			return
		}
		<-ready
		audioCtx = ctx
		audioSampleRate = sampleRate
	})
	return audioCtx, audioSampleRate, audioErr
}
