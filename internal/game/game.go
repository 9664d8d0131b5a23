// Package game holds the sentence-ordering rules: a Session that walks a list
// of target sentences and an Engine that runs the round for one sentence.
// Game wires the two together. Nothing here is safe for concurrent use; all
// calls are expected from one event loop.
package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wordorder-go/internal/audio"
)

// Options configures a Game. Zero values fall back to sensible defaults.
type Options struct {
	Defaults  []string
	Sink      audio.Sink
	Scheduler Scheduler
	Delay     time.Duration
	Rand      *rand.Rand
	Logger    zerolog.Logger
}

// Game drives rounds for the session's active sentence.
type Game struct {
	ID      string
	session *Session
	engine  *Engine
	log     zerolog.Logger
}

// New builds a game on opts.Defaults. No round is running until Start,
// Import, Load or Reset is called.
func New(opts Options) *Game {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = &Queue{}
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultCompletionDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	id := uuid.NewString()
	logger := opts.Logger.With().Str("session", id).Logger()
	g := &Game{
		ID:      id,
		session: NewSession(opts.Defaults),
		engine:  NewEngine(opts.Rand, opts.Sink, opts.Scheduler, opts.Delay, logger),
		log:     logger,
	}
	g.engine.OnComplete(g.complete)
	return g
}

func (g *Game) Session() *Session { return g.session }

func (g *Game) Round() (RoundView, bool) { return g.engine.Round() }

// Start restarts the session from its first sentence.
func (g *Game) Start() {
	g.session.Start()
	g.begin()
}

// Import replaces the sentence list from JSON data. On error the defaults
// are active and the returned error is an *ImportError.
func (g *Game) Import(data []byte) error {
	err := g.session.Import(data)
	if err != nil {
		g.log.Warn().Err(err).Msg("import rejected, using default sentences")
	} else {
		g.log.Info().Int("sentences", g.session.Len()).Msg("sentences imported")
	}
	g.begin()
	return err
}

// Load replaces the sentence list with list.
func (g *Game) Load(list []string) {
	g.session.Load(list)
	g.log.Info().Int("sentences", len(list)).Msg("sentences loaded")
	g.begin()
}

// Reset restores the default sentences.
func (g *Game) Reset() {
	g.session.Reset()
	g.begin()
}

func (g *Game) Move(word string, from Area) error { return g.engine.Move(word, from) }

func (g *Game) MoveAt(from Area, i int) error { return g.engine.MoveAt(from, i) }

func (g *Game) Hint() (string, bool) { return g.engine.Hint() }

// Deliver hands a due completion back to the engine. It reports whether the
// completion belonged to the current round.
func (g *Game) Deliver(round uint64) bool {
	_, ok := g.engine.Fire(round)
	return ok
}

func (g *Game) complete(sentence string) {
	g.session.Complete(sentence)
	if g.session.Finished() {
		g.log.Info().Int("completed", len(g.session.Completed())).Msg("session finished")
		return
	}
	g.begin()
}

func (g *Game) begin() {
	sentence, ok := g.session.Current()
	if !ok {
		g.engine.End()
		return
	}
	g.engine.Begin(sentence)
}
