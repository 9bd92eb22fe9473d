// Package audio plays the game's one-shot sounds through the system speaker.
// Sounds are synthesized on the fly; there are no sample files.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/prince-of-oliver/internal/games/oliver"
)

const sampleRate = beep.SampleRate(44100)

// Synth implements oliver.Audio on top of a beep mixer. Until Init succeeds
// every Play is dropped, so a machine without a sound device still runs.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	ready  bool
	logger *log.Logger
}

var _ oliver.Audio = (*Synth)(nil)

// NewSynth creates a synth. A nil logger discards output.
func NewSynth(logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Play queues a sound at a linear gain. It never blocks on playback.
func (s *Synth) Play(snd oliver.Sound, gain float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	v := Voice(snd, s.rate)
	if v == nil {
		s.logger.Debug("no voice for sound", "sound", snd)
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(v, gain))
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}

// Open returns a ready synth, or a silent one when the speaker cannot be
// opened. The failure is logged at warn.
func Open(logger *log.Logger) *Synth {
	s := NewSynth(logger)
	if err := s.Init(); err != nil {
		s.logger.Warn("audio disabled", "err", err)
	}
	return s
}
