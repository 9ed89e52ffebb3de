// Package audio plays the optional ambient soundtrack.
package audio

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// Volume is the linear gain of the ambient track.
const Volume = 0.35

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// Ambient loops one track forever. Playback begins on the first Start call
// and never restarts; a track that cannot be opened disables audio.
type Ambient struct {
	mu       sync.Mutex
	path     string
	started  bool
	stream   beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	output   func(beep.Format, beep.Streamer) error
	disabled bool
}

// NewAmbient prepares the track at path. An empty path yields a silent
// player.
func NewAmbient(path string) *Ambient {
	return &Ambient{path: path, output: play}
}

func play(format beep.Format, s beep.Streamer) error {
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(s)
	return nil
}

// Start begins playback on its first call. Later calls do nothing.
func (a *Ambient) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started || a.disabled || a.path == "" {
		return
	}
	a.started = true

	if err := a.open(); err != nil {
		a.disabled = true
		log.Printf("audio disabled: %v", err)
	}
}

func (a *Ambient) open() error {
	decode, err := decoderFor(a.path)
	if err != nil {
		return err
	}
	f, err := os.Open(a.path)
	if err != nil {
		return errors.Wrap(err, "open track")
	}
	stream, format, err := decode(f)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "decode %s", filepath.Base(a.path))
	}

	a.ctrl = &beep.Ctrl{Streamer: withVolume(beep.Loop(-1, stream), Volume)}
	if err := a.output(format, a.ctrl); err != nil {
		stream.Close()
		a.ctrl = nil
		return err
	}
	a.stream = stream
	return nil
}

// Playing reports whether the track is currently audible.
func (a *Ambient) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctrl != nil && !a.ctrl.Paused
}

// Close stops playback and releases the track.
func (a *Ambient) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctrl != nil {
		speaker.Lock()
		a.ctrl.Paused = true
		speaker.Unlock()
		a.ctrl = nil
	}
	if a.stream != nil {
		a.stream.Close()
		a.stream = nil
	}
	a.disabled = true
}

func withVolume(s beep.Streamer, gain float64) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(gain),
		Silent:   gain <= 0,
	}
}

func decoderFor(path string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		}, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return mp3.Decode(f)
		}, nil
	}
	return nil, errors.Errorf("unsupported track format %q", filepath.Ext(path))
}
