package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/termplay/internal/config"
)

// queueSize bounds pending sound effects. When the worker falls behind,
// new effects are dropped rather than blocking the caller. Music and
// settings changes go through a one-slot mailbox instead and are never lost.
const queueSize = 64

// speakerInit is swapped in tests to simulate a missing device.
var speakerInit = func(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

// mailbox holds the latest music request and whether settings changed
// since the worker last looked.
type mailbox struct {
	mu       sync.Mutex
	track    Track
	hasTrack bool
	apply    bool
}

// Manager plays audio through beep's speaker on a background goroutine.
type Manager struct {
	logger *log.Logger
	sounds chan Sound
	wake   chan struct{}
	box    mailbox
	done   chan struct{}
	wg     sync.WaitGroup
	silent atomic.Bool
	closed atomic.Bool

	playing atomic.Int64

	mu  sync.Mutex
	cfg config.Audio

	// Owned by the worker goroutine.
	mixer    *beep.Mixer
	sfx      map[Sound]*beep.Buffer
	songs    map[Track]*beep.Buffer
	music    *beep.Ctrl
	musicVol *effects.Volume
	current  Track
}

// NewManager opens the default output device. If that fails the manager
// logs a warning and stays silent; it never returns an error.
func NewManager(cfg config.Audio, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		logger: logger.WithPrefix("audio"),
		sounds: make(chan Sound, queueSize),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		sfx:    make(map[Sound]*beep.Buffer),
		songs:  make(map[Track]*beep.Buffer),
	}

	if err := speakerInit(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.logger.Warn("no audio device, continuing without sound", "err", err)
		m.silent.Store(true)
		return m
	}
	speaker.Play(m.mixer)

	m.wg.Add(1)
	go m.run()
	return m
}

// Silent reports whether the manager fell back to silence.
func (m *Manager) Silent() bool {
	return m.silent.Load()
}

// Playing returns the track the worker last switched to.
func (m *Manager) Playing() Track {
	return Track(m.playing.Load())
}

// PlaySound queues a one-shot effect.
func (m *Manager) PlaySound(s Sound) {
	if m.silent.Load() || m.closed.Load() {
		return
	}
	select {
	case m.sounds <- s:
	default:
		m.logger.Debug("dropping sound, queue full", "sound", s)
	}
}

// SetMusic switches the background loop. TrackNone stops it. Only the
// latest request counts when several arrive before the worker catches up.
func (m *Manager) SetMusic(t Track) {
	m.post(func(b *mailbox) {
		b.track = t
		b.hasTrack = true
	})
}

// Apply replaces switches and volumes. It takes effect on the next request
// and immediately for music that is already playing.
func (m *Manager) Apply(cfg config.Audio) {
	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
	m.post(func(b *mailbox) { b.apply = true })
}

// Close stops playback and waits for the worker to exit.
func (m *Manager) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}
	close(m.done)
	m.wg.Wait()
	if !m.silent.Load() {
		speaker.Clear()
		speaker.Close()
	}
}

// post updates the mailbox and wakes the worker. A wake-up already
// pending covers this one too.
func (m *Manager) post(fill func(*mailbox)) {
	if m.silent.Load() || m.closed.Load() {
		return
	}
	m.box.mu.Lock()
	fill(&m.box)
	m.box.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Manager) collect() (Track, bool, bool) {
	m.box.mu.Lock()
	defer m.box.mu.Unlock()
	t, hasTrack, apply := m.box.track, m.box.hasTrack, m.box.apply
	m.box.hasTrack, m.box.apply = false, false
	return t, hasTrack, apply
}

func (m *Manager) settings() config.Audio {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

func (m *Manager) run() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case <-m.wake:
			t, hasTrack, apply := m.collect()
			if hasTrack {
				m.playMusic(t)
			}
			if apply {
				m.refreshMusic()
			}
		case s := <-m.sounds:
			m.playSound(s)
		}
	}
}

func (m *Manager) playSound(s Sound) {
	gain := m.settings().EffectsGain()
	if gain <= 0 {
		return
	}
	buf, ok := m.sfx[s]
	if !ok {
		src := effect(s)
		if src == nil {
			return
		}
		buf = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(src)
		m.sfx[s] = buf
	}
	speaker.Lock()
	m.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), gain))
	speaker.Unlock()
}

func (m *Manager) playMusic(t Track) {
	if t == m.current && m.music != nil {
		return
	}
	m.stopMusic()
	m.current = t
	m.playing.Store(int64(t))
	if t == TrackNone {
		return
	}

	buf, ok := m.songs[t]
	if !ok {
		song, found := tunes[t]
		if !found {
			return
		}
		var err error
		buf, err = song.render()
		if err != nil {
			m.logger.Warn("cannot render track", "track", t, "err", err)
			return
		}
		m.songs[t] = buf
	}

	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	m.musicVol = newVolume(loop, m.settings().MusicGain())
	m.music = &beep.Ctrl{Streamer: m.musicVol}
	speaker.Lock()
	m.mixer.Add(m.music)
	speaker.Unlock()
}

func (m *Manager) stopMusic() {
	if m.music == nil {
		return
	}
	speaker.Lock()
	// A Ctrl with no streamer reports drained and the mixer drops it.
	m.music.Streamer = nil
	speaker.Unlock()
	m.music = nil
	m.musicVol = nil
}

func (m *Manager) refreshMusic() {
	if m.musicVol == nil {
		return
	}
	speaker.Lock()
	setGain(m.musicVol, m.settings().MusicGain())
	speaker.Unlock()
}
