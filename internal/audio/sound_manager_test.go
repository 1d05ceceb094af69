package audio

import (
	"math"
	"testing"
)

func TestSynthesizeKnownCues(t *testing.T) {
	for _, cue := range Cues() {
		t.Run(cue, func(t *testing.T) {
			buf := synthesize(cue)
			if len(buf) == 0 {
				t.Fatal("expected samples")
			}
			peak := 0.0
			for i, v := range buf {
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %v", i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
			if math.Abs(peak-0.8) > 1e-9 {
				t.Errorf("expected normalised peak 0.8, got %v", peak)
			}
		})
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if buf := synthesize("quack"); buf != nil {
		t.Errorf("expected nil for unknown cue, got %d samples", len(buf))
	}
}

func TestSynthesizeIsRepeatable(t *testing.T) {
	a, b := synthesize("snip"), synthesize("snip")
	if len(a) != len(b) {
		t.Fatalf("length differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestVariantsDiffer(t *testing.T) {
	pairs := [][2]string{{"snip", "snip2"}, {"impact", "impact2"}}
	for _, p := range pairs {
		a, b := synthesize(p[0]), synthesize(p[1])
		same := len(a) == len(b)
		for i := 0; same && i < len(a); i++ {
			same = a[i] == b[i]
		}
		if same {
			t.Errorf("%s and %s should sound different", p[0], p[1])
		}
	}
}

func TestBufferStreamer(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok || out[1][0] != 0.2 || out[1][1] != 0.2 {
		t.Fatalf("first chunk: n=%d ok=%v out=%v", n, ok, out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok || out[0][0] != 0.3 {
		t.Fatalf("second chunk: n=%d ok=%v out=%v", n, ok, out)
	}
	if n, ok = s.Stream(out); n != 0 || ok {
		t.Errorf("drained streamer should report done, got n=%d ok=%v", n, ok)
	}
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	for _, cue := range Cues() {
		sm.Play(cue)
	}
	sm.Play("unknown")
	sm.Cleanup()
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(1)

	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (no audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second initialization should be a no-op, got %v", err)
	}
	sm.Play("impact")
	sm.Cleanup()
}

func TestStreamerCachesBuffers(t *testing.T) {
	sm := NewSoundManager(0)
	if sm.streamer("fail") == nil {
		t.Fatal("expected a streamer for a known cue")
	}
	if _, ok := sm.cache["fail"]; !ok {
		t.Error("buffer should be cached after first use")
	}
	if sm.streamer("nope") != nil {
		t.Error("unknown cue should have no streamer")
	}
}
