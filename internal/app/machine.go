// Package app is the top-level state machine: the main menu, the running
// game, the settings, about and high-score pages, and the transitions
// between them. A Machine is what the engine loop drives.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/engine"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

// Mode is the machine's current screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModeInGame
	ModeSettings
	ModeAbout
	ModeScores
	ModeExiting
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInGame:
		return "in-game"
	case ModeSettings:
		return "settings"
	case ModeAbout:
		return "about"
	case ModeScores:
		return "scores"
	case ModeExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

const (
	// pageTick drives notice expiry outside of games.
	pageTick       = 100 * time.Millisecond
	noticeLifetime = 4 * time.Second
)

// ScoreStore is the part of the leaderboard the machine needs.
type ScoreStore interface {
	SaveScore(ctx context.Context, e storage.ScoreEntry) (int64, error)
	Rank(ctx context.Context, gameID string, score int) (int, error)
	TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error)
}

// SettingsSaver persists settings changes.
type SettingsSaver interface {
	Save(cfg config.Settings) error
}

// Options wires a Machine to its collaborators. Only Registry is required.
type Options struct {
	Registry *registry.Registry
	Audio    audio.Controller
	Scores   ScoreStore
	Saver    SettingsSaver
	Settings config.Settings
	Logger   *log.Logger
	// Player is the name recorded with scores.
	Player string
	// Seed makes games deterministic when non-zero.
	Seed int64
	// Greeting is shown as the first notice.
	Greeting string
	Now      func() time.Time
}

// Machine owns the current mode and, while in game, the only game
// instance. It is not safe for concurrent use; each loop gets its own.
type Machine struct {
	reg      *registry.Registry
	audio    audio.Controller
	scores   ScoreStore
	saver    SettingsSaver
	settings config.Settings
	logger   *log.Logger
	player   string
	seed     int64
	launches int64
	now      func() time.Time

	mode       Mode
	menuCursor int
	menu       []menuItem

	game     registry.Game
	desc     registry.Descriptor
	started  time.Time
	recorded bool

	settingsCursor int

	scoresGame int
	scoresRows []storage.ScoreEntry
	scoresErr  string

	notice      string
	noticeUntil time.Time
}

var _ engine.Screen = (*Machine)(nil)

// New creates a machine at the main menu.
func New(opts Options) *Machine {
	m := &Machine{
		reg:      opts.Registry,
		audio:    opts.Audio,
		scores:   opts.Scores,
		saver:    opts.Saver,
		settings: opts.Settings.Normalize(),
		logger:   opts.Logger,
		player:   opts.Player,
		seed:     opts.Seed,
		now:      opts.Now,
	}
	if m.audio == nil {
		m.audio = audio.Silent{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.menu = buildMenu(m.reg)
	if opts.Greeting != "" {
		m.setNotice(opts.Greeting)
	}
	return m
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode { return m.mode }

// Game returns the running instance, or nil outside ModeInGame.
func (m *Machine) Game() registry.Game { return m.game }

// Settings returns the current settings snapshot.
func (m *Machine) Settings() config.Settings { return m.settings }

// Notice returns the transient status line, if one is showing.
func (m *Machine) Notice() string {
	if m.notice == "" || !m.now().Before(m.noticeUntil) {
		return ""
	}
	return m.notice
}

func (m *Machine) setNotice(s string) {
	m.notice = s
	m.noticeUntil = m.now().Add(noticeLifetime)
}

// Done reports whether the machine reached ModeExiting.
func (m *Machine) Done() bool { return m.mode == ModeExiting }

// TickRate is the running game's rate, or a slow page tick otherwise.
func (m *Machine) TickRate() time.Duration {
	if m.mode == ModeInGame && m.game != nil {
		return registry.TickRate(m.game)
	}
	return pageTick
}

// Launch starts the game with the given id. It is the entry point for
// direct launches as well as the menu. Errors wrap registry.ErrNotFound.
func (m *Machine) Launch(id string) error {
	desc, err := m.reg.Lookup(id)
	if err != nil {
		return err
	}
	m.start(desc)
	return nil
}

func (m *Machine) nextSeed() int64 {
	if m.seed == 0 {
		return 0
	}
	m.launches++
	return m.seed + m.launches - 1
}

func (m *Machine) start(desc registry.Descriptor) {
	m.game = desc.New(registry.Env{
		Audio:      m.audio,
		Seed:       m.nextSeed(),
		Difficulty: m.settings.Difficulty,
	}.Normalize())
	m.desc = desc
	m.started = m.now()
	m.recorded = false
	m.mode = ModeInGame
	m.audio.SetMusic(desc.Music)
	m.logger.Debug("game started", "game", desc.ID)
}

func (m *Machine) leaveGame() {
	m.logger.Debug("game closed", "game", m.desc.ID)
	m.game = nil
	m.desc = registry.Descriptor{}
	m.mode = ModeMenu
	m.audio.SetMusic(audio.TrackNone)
}

// HandleKey dispatches one key to the current mode.
func (m *Machine) HandleKey(ev core.KeyEvent) {
	if m.mode == ModeExiting {
		return
	}
	if controls.Matches(ev, forceQuit) {
		m.exit()
		return
	}
	if m.mode != ModeSettings {
		switch {
		case controls.Matches(ev, toggleMusic):
			m.settings.Audio.MusicEnabled = !m.settings.Audio.MusicEnabled
			m.settingsChanged()
			m.setNotice("Music " + onOff(m.settings.Audio.MusicEnabled))
			return
		case controls.Matches(ev, toggleSound):
			m.settings.Audio.Enabled = !m.settings.Audio.Enabled
			m.settingsChanged()
			m.setNotice("Sound " + onOff(m.settings.Audio.Enabled))
			return
		}
	}

	switch m.mode {
	case ModeMenu:
		m.handleMenu(ev)
	case ModeInGame:
		m.resolve(m.game.HandleKey(ev))
	case ModeSettings:
		m.handleSettings(ev)
	case ModeAbout:
		if controls.Matches(ev, pageKeys.Back) {
			m.back()
		}
	case ModeScores:
		m.handleScores(ev)
	}
}

// Update advances the running game by one tick.
func (m *Machine) Update() {
	if m.mode == ModeInGame {
		m.resolve(m.game.Update())
	}
}

// resolve records a finished game and applies the action the game asked
// for.
func (m *Machine) resolve(action core.GameAction) {
	m.recordIfOver()

	switch action {
	case core.ActionQuit:
		m.leaveGame()
	case core.ActionRestart:
		m.logger.Debug("game restarted", "game", m.desc.ID)
		m.start(m.desc)
	}
}

func (m *Machine) recordIfOver() {
	if m.recorded || m.game == nil {
		return
	}
	res, ok := registry.ResultOf(m.game)
	if !ok || !res.Over {
		return
	}
	m.recorded = true
	if res.Score <= 0 {
		return
	}
	if m.scores == nil {
		m.setNotice("score not recorded")
		return
	}

	ctx := context.Background()
	entry := storage.ScoreEntry{
		GameID:   m.desc.ID,
		Player:   m.player,
		Score:    res.Score,
		Level:    res.Level,
		Lines:    res.Lines,
		Duration: m.now().Sub(m.started),
	}
	if _, err := m.scores.SaveScore(ctx, entry); err != nil {
		m.logger.Error("cannot save score", "game", entry.GameID, "score", entry.Score, "err", err)
		m.setNotice("score not recorded")
		return
	}
	m.logger.Info("score recorded", "game", entry.GameID, "player", entry.Player, "score", entry.Score)

	rank, err := m.scores.Rank(ctx, entry.GameID, entry.Score)
	switch {
	case err != nil:
		m.logger.Warn("cannot rank score", "game", entry.GameID, "err", err)
		m.setNotice("Score saved")
	case rank <= storage.TopN:
		m.setNotice(fmt.Sprintf("New high score! #%d", rank))
	default:
		m.setNotice("Score saved")
	}
}

func (m *Machine) exit() {
	if m.game != nil {
		m.game = nil
		m.audio.SetMusic(audio.TrackNone)
	}
	m.mode = ModeExiting
}

// back returns to the menu from any page.
func (m *Machine) back() {
	m.audio.PlaySound(audio.SoundMenuBack)
	m.mode = ModeMenu
}

// settingsChanged applies the snapshot to the audio player and persists
// it. A failed save keeps the in-memory settings.
func (m *Machine) settingsChanged() {
	m.settings = m.settings.Normalize()
	m.audio.Apply(m.settings.Audio)
	if m.saver == nil {
		return
	}
	if err := m.saver.Save(m.settings); err != nil {
		m.logger.Error("cannot save settings", "err", err)
		m.setNotice("settings not saved")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Draw renders the current mode and the notice line on the bottom row.
func (m *Machine) Draw(dst *core.Screen) {
	switch m.mode {
	case ModeMenu:
		m.drawMenu(dst)
	case ModeInGame:
		m.game.Draw(dst)
	case ModeSettings:
		m.drawSettings(dst)
	case ModeAbout:
		m.drawAbout(dst)
	case ModeScores:
		m.drawScores(dst)
	case ModeExiting:
		return
	}

	if n := m.Notice(); n != "" && dst.Height() > 0 {
		row := dst.Height() - 1
		dst.FillRect(core.NewRect(0, row, dst.Width(), 1), ' ', core.ColorDefault)
		dst.DrawTextCenteredColor(row, n, core.ColorBrightYellow)
	}
}
