package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// tune is a monophonic melody written as space separated "Note/Beats"
// tokens, e.g. "E5/2 B4/1 R/1". R is a rest.
type tune struct {
	beat  time.Duration
	notes string
}

var tunes = map[Track]tune{
	// Korobeiniki
	TrackTetris: {beat: 200 * ms, notes: "" +
		"E5/2 B4/1 C5/1 D5/2 C5/1 B4/1 A4/2 A4/1 C5/1 E5/2 D5/1 C5/1 " +
		"B4/3 C5/1 D5/2 E5/2 C5/2 A4/2 A4/2 R/2 " +
		"D5/3 F5/1 A5/2 G5/1 F5/1 E5/3 C5/1 E5/2 D5/1 C5/1 " +
		"B4/2 B4/1 C5/1 D5/2 E5/2 C5/2 A4/2 A4/2 R/2"},
	TrackTetrisFast: {beat: 100 * ms, notes: "" +
		"E5/2 B4/1 C5/1 D5/2 C5/1 B4/1 A4/2 A4/1 C5/1 E5/2 D5/1 C5/1 " +
		"B4/3 C5/1 D5/2 E5/2 C5/2 A4/2 A4/2 R/2"},
	TrackSnake: {beat: 100 * ms, notes: "" +
		"A4/6 C5/4 E5/6 D5/4 C5/6 A4/4 G4/8 " +
		"C5/6 E5/4 G5/6 E5/4 C5/6 A4/4 G4/8 R/4"},
	TrackPong: {beat: 150 * ms, notes: "" +
		"C5/1 R/1 G4/1 R/1 C5/1 E5/1 G5/2 " +
		"F5/1 R/1 D5/1 R/1 B4/1 D5/1 G4/2 R/2"},
	Track2048: {beat: 180 * ms, notes: "" +
		"C5/2 E5/2 G5/2 E5/2 F5/2 A5/2 G5/4 " +
		"E5/2 C5/2 D5/2 B4/2 C5/4 R/4"},
	TrackMinesweeper: {beat: 250 * ms, notes: "" +
		"A3/2 E4/2 A4/2 E4/2 F3/2 C4/2 F4/2 C4/2 " +
		"G3/2 D4/2 G4/2 D4/2 E3/2 B3/2 E4/4 R/2"},
	TrackBreakout: {beat: 120 * ms, notes: "" +
		"E4/1 E4/1 G4/1 E4/1 A4/2 G4/2 E4/1 E4/1 G4/1 E4/1 B4/2 A4/2 " +
		"C5/1 B4/1 A4/1 G4/1 E4/2 D4/2 E4/4 R/2"},
	TrackLife: {beat: 300 * ms, notes: "" +
		"C4/2 G4/2 E5/4 D5/2 G4/2 B4/4 " +
		"A4/2 E4/2 C5/4 G4/2 D4/2 B4/4 R/4"},
}

var semitones = map[byte]int{'C': -9, 'D': -7, 'E': -5, 'F': -4, 'G': -2, 'A': 0, 'B': 2}

// noteFreq converts a scientific pitch name such as "A4", "C#5" or "Bb3"
// into its equal-tempered frequency. "R" is a rest (0 Hz).
func noteFreq(name string) (float64, error) {
	if name == "R" {
		return 0, nil
	}
	if len(name) < 2 {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	step, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		step++
		rest = rest[1:]
	case 'b':
		step--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("audio: bad octave in %q: %w", name, err)
	}
	n := step + (octave-4)*12
	return 440 * math.Pow(2, float64(n)/12), nil
}

// streamer renders the tune as a sequence of enveloped sine notes.
func (t tune) streamer() (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, tok := range strings.Fields(t.notes) {
		name, beats, ok := strings.Cut(tok, "/")
		if !ok {
			return nil, fmt.Errorf("audio: note %q has no length", tok)
		}
		n, err := strconv.Atoi(beats)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("audio: bad length in %q", tok)
		}
		freq, err := noteFreq(name)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sine(freq, time.Duration(n)*t.beat))
	}
	return beep.Seq(parts...), nil
}

// render pre-renders a tune so it can be looped by seeking.
func (t tune) render() (*beep.Buffer, error) {
	s, err := t.streamer()
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
