// Package audio plays the tower's cues through the system speaker.
// Every cue is synthesised procedurally on first use; there are no asset files.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// bufferStreamer streams a mono buffer as stereo.
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

// SoundManager mixes cues into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       map[string]floatBuffer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager at the given linear volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		cache:  make(map[string]floatBuffer),
		volume: math.Min(math.Max(volume, 0), 1),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the cue. Unknown cues and an uninitialised speaker are ignored.
func (sm *SoundManager) Play(cue string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := sm.streamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamer builds a fresh volume-scaled stream for cue. Callers hold mu.
func (sm *SoundManager) streamer(cue string) beep.Streamer {
	buf, ok := sm.cache[cue]
	if !ok {
		buf = synthesize(cue)
		if buf == nil {
			return nil
		}
		sm.cache[cue] = buf
	}
	return newVolume(&bufferStreamer{buf: buf}, sm.volume)
}

// math.Log2(0) is -Inf, so zero volume becomes Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
