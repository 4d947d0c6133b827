package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const ms = time.Millisecond

// effect builds a fresh streamer for a sound. Unknown sounds yield nil.
func effect(s Sound) beep.Streamer {
	switch s {
	case SoundMenuSelect:
		return sine(500, 50*ms)
	case SoundMenuConfirm:
		return sine(800, 100*ms)
	case SoundMenuBack:
		return NewEnvelope(NewOscillator(600, 80*ms, WaveSine, sampleRate), 80*ms, 0, 30*ms, sampleRate)

	case SoundMove:
		return sine(440, 30*ms)
	case SoundRotate:
		return sine(880, 50*ms)
	case SoundSoftDrop:
		return sine(300, 30*ms)
	case SoundHardDrop:
		return tone(220, 80*ms, WaveSquare)
	case SoundLock:
		return tone(180, 60*ms, WaveSquare)
	case SoundLineClear:
		return chord(300*ms, 659, 523)
	case SoundTetris:
		return beep.Seq(chord(200*ms, 523, 659, 784), chord(400*ms, 659, 784, 1047))
	case SoundLevelUp:
		return beep.Seq(sine(523, 80*ms), sine(659, 80*ms), sine(784, 120*ms))
	case SoundGameOver:
		return newSweep(440, 110, 800*ms)
	case SoundVictory:
		return beep.Seq(sine(523, 120*ms), sine(659, 120*ms), sine(784, 120*ms), chord(400*ms, 523, 659, 1047))

	case SoundEat:
		return sine(600, 80*ms)
	case SoundPaddle:
		return tone(400, 60*ms, WaveSquare)
	case SoundWall:
		return sine(300, 30*ms)
	case SoundScore:
		return sine(1200, 300*ms)
	case SoundBrick:
		return tone(750, 60*ms, WaveSquare)
	case SoundMerge:
		return sine(650, 150*ms)
	case SoundReveal:
		return sine(400, 100*ms)
	case SoundFlag:
		return tone(800, 60*ms, WaveSquare)
	case SoundExplosion:
		return NewEnvelope(NewOscillator(0, 700*ms, WaveNoise, sampleRate), 700*ms, 0, 500*ms, sampleRate)
	case SoundToggle:
		return sine(1000, 40*ms)
	}
	return nil
}
