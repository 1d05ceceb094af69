package audio

import (
	"math"
	"math/rand/v2"
	"time"
)

// SampleRate is the rate every cue is synthesised at.
const SampleRate = 44100

const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono samples at unity gain.
type floatBuffer []float64

func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// oscillator renders a waveform whose frequency glides linearly from
// freqStart to freqEnd over the buffer.
func oscillator(wave int, freqStart, freqEnd float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		freq := freqStart
		if samples > 1 {
			freq += (freqEnd - freqStart) * float64(i) / float64(samples-1)
		}
		phase += freq / SampleRate
		phase -= math.Floor(phase)
	}
	return buf
}

// applyEnvelope shapes buf with a linear attack and an exponential tail.
func applyEnvelope(buf floatBuffer, attack time.Duration, decay float64) {
	attackSamples := durationToSamples(attack)
	for i := range buf {
		vol := math.Exp(-decay * float64(i) / SampleRate)
		if i < attackSamples {
			vol *= float64(i) / float64(attackSamples)
		}
		buf[i] *= vol
	}
}

// lowPass is a one-pole filter; smaller alpha is darker.
func lowPass(buf floatBuffer, alpha float64) {
	prev := 0.0
	for i, v := range buf {
		prev += alpha * (v - prev)
		buf[i] = prev
	}
}

// mix adds b scaled into a, growing a when b is longer.
func mix(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		grown := make(floatBuffer, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

// normalize scales buf so its peak sits at peak.
func normalize(buf floatBuffer, peak float64) {
	maxAbs := 0.0
	for _, v := range buf {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return
	}
	k := peak / maxAbs
	for i := range buf {
		buf[i] *= k
	}
}

// --- cue generators ---

// soft thud with a puff of feathers
func generatePillowHit(rng *rand.Rand) floatBuffer {
	n := durationToSamples(220 * time.Millisecond)
	body := oscillator(waveSine, 140, 70, n, rng)
	applyEnvelope(body, 4*time.Millisecond, 18)

	puff := oscillator(waveNoise, 0, 0, n, rng)
	lowPass(puff, 0.08)
	applyEnvelope(puff, 10*time.Millisecond, 12)

	return mix(body, puff, 0.6)
}

func generateSnip(rng *rand.Rand, bright float64) floatBuffer {
	n := durationToSamples(70 * time.Millisecond)
	buf := oscillator(waveNoise, 0, 0, n, rng)
	lowPass(buf, bright)
	applyEnvelope(buf, time.Millisecond, 70)

	click := oscillator(waveSquare, 2400, 1800, durationToSamples(12*time.Millisecond), rng)
	applyEnvelope(click, 0, 200)
	return mix(buf, click, 0.3)
}

func generateImpact(rng *rand.Rand, pitch float64) floatBuffer {
	n := durationToSamples(260 * time.Millisecond)
	body := oscillator(waveSine, pitch, pitch*0.45, n, rng)
	applyEnvelope(body, 2*time.Millisecond, 14)

	cloth := oscillator(waveNoise, 0, 0, durationToSamples(90*time.Millisecond), rng)
	lowPass(cloth, 0.15)
	applyEnvelope(cloth, time.Millisecond, 35)
	return mix(body, cloth, 0.4)
}

// falling saw, the classic "lost a life"
func generateFail(rng *rand.Rand) floatBuffer {
	n := durationToSamples(600 * time.Millisecond)
	buf := oscillator(waveSaw, 330, 110, n, rng)
	lowPass(buf, 0.25)
	applyEnvelope(buf, 10*time.Millisecond, 4)
	return buf
}

// Cues lists every cue name the synthesiser knows.
func Cues() []string {
	return []string{"pillowHit", "snip", "snip2", "impact", "impact2", "fail"}
}

// synthesize renders the named cue, or nil for an unknown name. Noise comes
// from a generator seeded by the name so each cue always sounds the same.
func synthesize(cue string) floatBuffer {
	var seed uint64
	for _, r := range cue {
		seed = seed*31 + uint64(r)
	}
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))

	var buf floatBuffer
	switch cue {
	case "pillowHit":
		buf = generatePillowHit(rng)
	case "snip":
		buf = generateSnip(rng, 0.7)
	case "snip2":
		buf = generateSnip(rng, 0.45)
	case "impact":
		buf = generateImpact(rng, 180)
	case "impact2":
		buf = generateImpact(rng, 150)
	case "fail":
		buf = generateFail(rng)
	default:
		return nil
	}
	normalize(buf, 0.8)
	return buf
}
