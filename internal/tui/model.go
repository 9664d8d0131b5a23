// Package tui is the terminal front-end: a bubbletea program showing the
// scrambled words and the player's sentence.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wordorder-go/internal/game"
	"wordorder-go/internal/store"
)

// --- DATA STRUCTURES ---

type screen int

const (
	screenBoard screen = iota
	screenImport
)

// completionDueMsg arrives once a solved round's delay has passed.
type completionDueMsg struct {
	round uint64
}

type fileLoadedMsg struct {
	path string
	data []byte
	err  error
}

type deckSavedMsg struct {
	name string
	err  error
}

// Options wires the front-end to a game.
type Options struct {
	Game    *game.Game
	Queue   *game.Queue // the scheduler Game was built with
	Library *store.Store
	Logger  zerolog.Logger

	// Notice is shown on the first frame, e.g. a rejected startup file.
	Notice        string
	NoticeIsError bool

	StartDir string
}

type model struct {
	game    *game.Game
	queue   *game.Queue
	library *store.Store
	log     zerolog.Logger

	keys   keyMap
	help   help.Model
	picker filepicker.Model

	screen    screen
	area      game.Area
	cursor    int
	notice    string
	noticeErr bool
	width     int
}

// --- BUBBLETEA IMPLEMENTATION ---

// New returns the bubbletea model for opts.
func New(opts Options) tea.Model {
	return newModel(opts)
}

func newModel(opts Options) model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".json"}
	if opts.StartDir != "" {
		fp.CurrentDirectory = opts.StartDir
	}

	return model{
		game:      opts.Game,
		queue:     opts.Queue,
		library:   opts.Library,
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		picker:    fp,
		screen:    screenBoard,
		area:      game.AreaPool,
		notice:    opts.Notice,
		noticeErr: opts.NoticeIsError,
	}
}

func (m model) Init() tea.Cmd {
	return m.drainCompletions()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case completionDueMsg:
		if m.game.Deliver(msg.round) {
			m.resetCursor()
			if m.game.Session().Finished() {
				m.setNotice("All sentences completed! Press s to play again.", false)
			} else {
				m.clearNotice()
			}
		}
		return m, m.drainCompletions()

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case deckSavedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("deck", msg.name).Msg("failed to save deck")
			m.setNotice(fmt.Sprintf("Could not save deck %q to the library.", msg.name), true)
		} else {
			m.log.Info().Str("deck", msg.name).Msg("deck saved to library")
		}
		return m, nil
	}

	switch m.screen {
	case screenImport:
		return m.updateImport(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m *model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return *m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return *m, tea.Quit

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < m.areaLen()-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.SwitchArea):
		m.area = m.area.Other()
		m.clampCursor()

	case key.Matches(keyMsg, m.keys.Move):
		m.moveSelected()

	case key.Matches(keyMsg, m.keys.Hint):
		if w, ok := m.game.Hint(); ok {
			m.setNotice("Next word: "+w, false)
		} else {
			m.setNotice("No hint available: the sentence so far is not right.", false)
		}

	case key.Matches(keyMsg, m.keys.Import):
		m.screen = screenImport
		return *m, m.picker.Init()

	case key.Matches(keyMsg, m.keys.Start):
		m.game.Start()
		m.resetCursor()
		m.clearNotice()

	case key.Matches(keyMsg, m.keys.Reset):
		m.game.Reset()
		m.resetCursor()
		m.setNotice("Default sentences restored.", false)

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return *m, m.drainCompletions()
}

func (m *model) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return *m, tea.Quit
		case tea.KeyEsc:
			m.screen = screenBoard
			return *m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.screen = screenBoard
		m.setNotice("Reading "+filepath.Base(path)+"...", false)
		return *m, readFileCmd(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.setNotice(filepath.Base(path)+" is not a .json file.", true)
	}
	return *m, cmd
}

func (m model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	name := filepath.Base(msg.path)
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("path", msg.path).Msg("failed to read sentence file")
		m.setNotice(fmt.Sprintf("Could not read %s.", name), true)
		return m, nil
	}

	err := m.game.Import(msg.data)
	m.resetCursor()
	if err != nil {
		var ie *game.ImportError
		reason := err.Error()
		if errors.As(err, &ie) {
			reason = ie.Err.Error()
		}
		m.setNotice(fmt.Sprintf("Invalid JSON file %s (%s). Default sentences restored.", name, reason), true)
		return m, m.drainCompletions()
	}

	m.setNotice(fmt.Sprintf("Imported %d sentences from %s.", m.game.Session().Len(), name), false)
	var save tea.Cmd
	if m.library != nil {
		save = saveDeckCmd(m.library, store.DeckName(msg.path), m.game.Session().Sentences())
	}
	return m, tea.Batch(save, m.drainCompletions())
}

// --- CORE LOGIC & HELPERS ---

func (m *model) moveSelected() {
	err := m.game.MoveAt(m.area, m.cursor)
	switch {
	case errors.Is(err, game.ErrRoundSolved):
		m.setNotice("Already solved. Next sentence coming up...", false)
	case err == nil:
		if r, ok := m.game.Round(); ok && r.State == game.StateSolved {
			m.clearNotice()
		}
	}
	m.clampCursor()
}

func (m model) currentArea() []string {
	r, ok := m.game.Round()
	if !ok {
		return nil
	}
	if m.area == game.AreaAnswer {
		return r.Answer
	}
	return r.Pool
}

func (m model) areaLen() int {
	return len(m.currentArea())
}

func (m *model) clampCursor() {
	n := m.areaLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) resetCursor() {
	m.area = game.AreaPool
	m.cursor = 0
}

func (m *model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *model) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

// drainCompletions turns completions scheduled by the game into ticks that
// come back through Update.
func (m model) drainCompletions() tea.Cmd {
	if m.queue == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, c := range m.queue.Drain() {
		round := c.Round
		cmds = append(cmds, tea.Tick(c.Delay, func(time.Time) tea.Msg {
			return completionDueMsg{round: round}
		}))
	}
	return tea.Batch(cmds...)
}

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileLoadedMsg{path: path, data: data, err: err}
	}
}

func saveDeckCmd(library *store.Store, name string, list []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := library.SaveDeck(ctx, name, list)
		return deckSavedMsg{name: name, err: err}
	}
}
