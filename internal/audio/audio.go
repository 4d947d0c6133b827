// Package audio plays sound effects and background music for the games.
//
// Callers only see the Player interface: PlaySound and SetMusic never block
// and never return errors. The beep-backed Manager degrades to silence when
// no output device is available.
package audio

import "github.com/vovakirdan/termplay/internal/config"

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundMenuSelect Sound = iota
	SoundMenuConfirm
	SoundMenuBack

	SoundMove
	SoundRotate
	SoundSoftDrop
	SoundHardDrop
	SoundLock
	SoundLineClear
	SoundTetris
	SoundLevelUp
	SoundGameOver
	SoundVictory

	SoundEat
	SoundPaddle
	SoundWall
	SoundScore
	SoundBrick
	SoundMerge
	SoundReveal
	SoundFlag
	SoundExplosion
	SoundToggle

	soundCount
)

var soundNames = [...]string{
	SoundMenuSelect:  "menu-select",
	SoundMenuConfirm: "menu-confirm",
	SoundMenuBack:    "menu-back",
	SoundMove:        "move",
	SoundRotate:      "rotate",
	SoundSoftDrop:    "soft-drop",
	SoundHardDrop:    "hard-drop",
	SoundLock:        "lock",
	SoundLineClear:   "line-clear",
	SoundTetris:      "tetris",
	SoundLevelUp:     "level-up",
	SoundGameOver:    "game-over",
	SoundVictory:     "victory",
	SoundEat:         "eat",
	SoundPaddle:      "paddle",
	SoundWall:        "wall",
	SoundScore:       "score",
	SoundBrick:       "brick",
	SoundMerge:       "merge",
	SoundReveal:      "reveal",
	SoundFlag:        "flag",
	SoundExplosion:   "explosion",
	SoundToggle:      "toggle",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Track identifies a looping background tune. TrackNone stops music.
type Track int

const (
	TrackNone Track = iota
	TrackTetris
	TrackTetrisFast
	TrackSnake
	TrackPong
	Track2048
	TrackMinesweeper
	TrackBreakout
	TrackLife
)

func (t Track) String() string {
	switch t {
	case TrackNone:
		return "none"
	case TrackTetris:
		return "tetris"
	case TrackTetrisFast:
		return "tetris-fast"
	case TrackSnake:
		return "snake"
	case TrackPong:
		return "pong"
	case Track2048:
		return "2048"
	case TrackMinesweeper:
		return "minesweeper"
	case TrackBreakout:
		return "breakout"
	case TrackLife:
		return "life"
	default:
		return "unknown"
	}
}

// Player is what games and menus use to make noise.
type Player interface {
	PlaySound(s Sound)
	SetMusic(t Track)
}

// Controller is a Player whose volumes and switches can change at runtime.
type Controller interface {
	Player
	Apply(cfg config.Audio)
	Close()
}

// Silent discards everything. It is the fallback when no device is present
// and the player used for remote sessions.
type Silent struct{}

func (Silent) PlaySound(Sound)    {}
func (Silent) SetMusic(Track)     {}
func (Silent) Apply(config.Audio) {}
func (Silent) Close()             {}

// Recorder remembers every request. Tests use it to assert which sounds a
// game asked for.
type Recorder struct {
	Sounds  []Sound
	Tracks  []Track
	Applied []config.Audio
}

func (r *Recorder) PlaySound(s Sound)      { r.Sounds = append(r.Sounds, s) }
func (r *Recorder) SetMusic(t Track)       { r.Tracks = append(r.Tracks, t) }
func (r *Recorder) Apply(cfg config.Audio) { r.Applied = append(r.Applied, cfg) }
func (r *Recorder) Close()                 {}

// Played reports whether s was requested at least once.
func (r *Recorder) Played(s Sound) bool {
	for _, got := range r.Sounds {
		if got == s {
			return true
		}
	}
	return false
}

// LastTrack returns the most recent music request, or TrackNone.
func (r *Recorder) LastTrack() Track {
	if len(r.Tracks) == 0 {
		return TrackNone
	}
	return r.Tracks[len(r.Tracks)-1]
}
