package game

import (
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wordorder-go/internal/audio"
)

// DefaultCompletionDelay is the pause between solving a round and reporting it.
const DefaultCompletionDelay = 3 * time.Second

// Area is one of the two token collections of a round.
type Area int

const (
	AreaPool Area = iota
	AreaAnswer
)

// Other returns the area tokens from a move into.
func (a Area) Other() Area {
	if a == AreaAnswer {
		return AreaPool
	}
	return AreaAnswer
}

func (a Area) String() string {
	if a == AreaAnswer {
		return "answer"
	}
	return "pool"
}

// RoundState is the per-round state machine: scrambled → in_progress → solved.
type RoundState string

const (
	StateScrambled  RoundState = "scrambled"
	StateInProgress RoundState = "in_progress"
	StateSolved     RoundState = "solved"
)

// Completion is a solved round waiting to be reported after Delay.
type Completion struct {
	Round    uint64
	Sentence string
	Delay    time.Duration
}

// Scheduler arranges for a Completion to be handed back to Engine.Fire
// (through Game.Deliver) once its delay has passed.
type Scheduler interface {
	Schedule(c Completion)
}

// Queue is a Scheduler that only collects completions; the caller drains it
// and owns the timers.
type Queue struct {
	pending []Completion
}

func (q *Queue) Schedule(c Completion) {
	q.pending = append(q.pending, c)
}

// Drain returns and clears the collected completions.
func (q *Queue) Drain() []Completion {
	p := q.pending
	q.pending = nil
	return p
}

// Tokens splits a sentence on single spaces. Joining the result with single
// spaces gives back the sentence unchanged.
func Tokens(sentence string) []string {
	return strings.Split(sentence, " ")
}

// RoundView is a read-only snapshot of the current round.
type RoundView struct {
	ID     uint64
	Target string
	Pool   []string
	Answer []string
	State  RoundState
}

type round struct {
	id     uint64
	target string
	tokens []string
	pool   []string
	answer []string
	state  RoundState
	fired  bool
}

func (r *round) areas(from Area) (src, dst *[]string) {
	if from == AreaAnswer {
		return &r.answer, &r.pool
	}
	return &r.pool, &r.answer
}

// Engine runs one round at a time for a single target sentence.
type Engine struct {
	rng        *rand.Rand
	sink       audio.Sink
	sched      Scheduler
	delay      time.Duration
	onComplete func(sentence string)
	log        zerolog.Logger

	seq uint64
	cur *round
}

// NewEngine builds an engine. sink and sched must not be nil.
func NewEngine(rng *rand.Rand, sink audio.Sink, sched Scheduler, delay time.Duration, logger zerolog.Logger) *Engine {
	return &Engine{
		rng:   rng,
		sink:  sink,
		sched: sched,
		delay: delay,
		log:   logger,
	}
}

// OnComplete sets the callback invoked once per solved round by Fire.
func (e *Engine) OnComplete(fn func(sentence string)) {
	e.onComplete = fn
}

// Begin discards any current round and starts a new one for sentence.
// It returns the new round id.
func (e *Engine) Begin(sentence string) uint64 {
	tokens := Tokens(sentence)
	pool := slices.Clone(tokens)
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	e.seq++
	e.cur = &round{
		id:     e.seq,
		target: sentence,
		tokens: tokens,
		pool:   pool,
		answer: make([]string, 0, len(tokens)),
		state:  StateScrambled,
	}
	e.sink.Cue(audio.CueNewSentence)
	e.log.Debug().Uint64("round", e.seq).Str("sentence", sentence).Msg("round started")
	return e.seq
}

// End discards the current round without starting another.
func (e *Engine) End() {
	if e.cur == nil {
		return
	}
	e.seq++
	e.cur = nil
}

// Round returns a snapshot of the current round.
func (e *Engine) Round() (RoundView, bool) {
	r := e.cur
	if r == nil {
		return RoundView{}, false
	}
	return RoundView{
		ID:     r.id,
		Target: r.target,
		Pool:   slices.Clone(r.pool),
		Answer: slices.Clone(r.answer),
		State:  r.state,
	}, true
}

// Move moves the first occurrence of word out of from into the other area.
func (e *Engine) Move(word string, from Area) error {
	if err := e.movable(); err != nil {
		return err
	}
	src, _ := e.cur.areas(from)
	i := slices.Index(*src, word)
	if i < 0 {
		return ErrWordNotFound
	}
	return e.MoveAt(from, i)
}

// MoveAt moves the token at index i of from into the other area.
func (e *Engine) MoveAt(from Area, i int) error {
	if err := e.movable(); err != nil {
		return err
	}
	r := e.cur
	src, dst := r.areas(from)
	if i < 0 || i >= len(*src) {
		return ErrWordNotFound
	}

	word := (*src)[i]
	*src = slices.Delete(*src, i, i+1)
	*dst = append(*dst, word)
	r.state = StateInProgress

	e.sink.Speak(word)
	e.sink.Cue(audio.CueWordMove)
	e.checkSolved()
	return nil
}

func (e *Engine) movable() error {
	if e.cur == nil {
		return ErrNoRound
	}
	if e.cur.state == StateSolved {
		return ErrRoundSolved
	}
	return nil
}

// checkSolved compares the answer as it is right now against the target.
func (e *Engine) checkSolved() {
	r := e.cur
	if strings.Join(r.answer, " ") != r.target {
		return
	}
	r.state = StateSolved
	e.sink.Cue(audio.CueSuccess)
	e.sink.Speak(r.target)
	e.sched.Schedule(Completion{Round: r.id, Sentence: r.target, Delay: e.delay})
	e.log.Info().Uint64("round", r.id).Str("sentence", r.target).Msg("round solved")
}

// Fire reports the completion of round id. Only the current round, once
// solved, fires, and only once; anything else is a stale timer and is ignored.
func (e *Engine) Fire(id uint64) (string, bool) {
	r := e.cur
	if r == nil || r.id != id || r.state != StateSolved || r.fired {
		e.log.Debug().Uint64("round", id).Msg("ignoring stale completion")
		return "", false
	}
	r.fired = true
	if e.onComplete != nil {
		e.onComplete(r.target)
	}
	return r.target, true
}

// Hint returns the next word of the target when the answer so far is a
// correct prefix, and says it aloud.
func (e *Engine) Hint() (string, bool) {
	r := e.cur
	if r == nil || r.state == StateSolved || len(r.answer) >= len(r.tokens) {
		return "", false
	}
	for i, w := range r.answer {
		if r.tokens[i] != w {
			return "", false
		}
	}
	next := r.tokens[len(r.answer)]
	if !slices.Contains(r.pool, next) {
		return "", false
	}
	e.sink.Cue(audio.CueHint)
	e.sink.Speak(next)
	return next, true
}
