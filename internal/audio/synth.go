package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw waveform.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer that plays one waveform for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq * 1000))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream of known length.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s so it fades in over attack and out over release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Zero gain is silent; math.Log2(0)
// would be -Inf.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// setGain updates an existing volume effect in place.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

// tone is a shaped waveform note.
func tone(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	attack := min(10*time.Millisecond, d/4)
	release := min(30*time.Millisecond, d/3)
	return NewEnvelope(NewOscillator(freq, d, wave, sampleRate), d, attack, release, sampleRate)
}

// sine is a shaped pure tone built on beep's generator.
func sine(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	if freq <= 0 {
		return beep.Silence(n)
	}
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	attack := min(10*time.Millisecond, d/4)
	release := min(30*time.Millisecond, d/3)
	return NewEnvelope(beep.Take(n, s), d, attack, release, sampleRate)
}

// chord mixes several sine tones of equal length at reduced gain.
func chord(d time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		parts = append(parts, sine(f, d))
	}
	return newVolume(beep.Mix(parts...), 1/float64(max(len(freqs), 1)))
}

// sweep glides a sine from one frequency to another.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) beep.Streamer {
	return &sweep{from: from, to: to, total: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		val := math.Sin(2*math.Pi*s.phase) * (1 - t)
		samples[i][0] = val
		samples[i][1] = val
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
