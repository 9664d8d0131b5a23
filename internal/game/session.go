package game

import (
	"slices"

	"wordorder-go/internal/sentences"
)

// Session walks through a list of target sentences and remembers which ones
// were completed.
type Session struct {
	defaults  []string
	sentences []string
	index     int
	completed []string
	seen      map[string]struct{}
	finished  bool
}

// NewSession starts a session on the default list.
func NewSession(defaults []string) *Session {
	s := &Session{
		defaults:  slices.Clone(defaults),
		sentences: slices.Clone(defaults),
	}
	s.Start()
	return s
}

// Start rewinds to the first sentence and forgets completed sentences.
func (s *Session) Start() {
	s.index = 0
	s.completed = nil
	s.seen = make(map[string]struct{})
	s.finished = false
}

// Advance moves to the next sentence. At the last sentence the session
// becomes finished instead.
func (s *Session) Advance() {
	if len(s.sentences) == 0 {
		return
	}
	if s.index < len(s.sentences)-1 {
		s.index++
		return
	}
	s.finished = true
}

// Complete records sentence as completed and advances.
func (s *Session) Complete(sentence string) {
	if _, ok := s.seen[sentence]; !ok {
		s.seen[sentence] = struct{}{}
		s.completed = append(s.completed, sentence)
	}
	s.Advance()
}

// Import replaces the list with the expressions in data and restarts.
// On failure the default list is restored, the session restarts and an
// *ImportError is returned.
func (s *Session) Import(data []byte) error {
	list, err := sentences.Parse(data)
	if err != nil {
		s.sentences = slices.Clone(s.defaults)
		s.Start()
		return &ImportError{Err: err}
	}
	s.Load(list)
	return nil
}

// Load replaces the list with an already validated one and restarts.
func (s *Session) Load(list []string) {
	s.sentences = slices.Clone(list)
	s.Start()
}

// Reset restores the default list. Completed sentences are kept; the index
// is clamped to the restored list.
func (s *Session) Reset() {
	s.sentences = slices.Clone(s.defaults)
	if s.index > len(s.sentences)-1 {
		s.index = max(len(s.sentences)-1, 0)
	}
	s.finished = false
}

// Current returns the active sentence, or false for an empty list.
func (s *Session) Current() (string, bool) {
	if len(s.sentences) == 0 {
		return "", false
	}
	return s.sentences[s.index], true
}

func (s *Session) Index() int { return s.index }
func (s *Session) Len() int   { return len(s.sentences) }

// HasNext reports whether Advance would move to another sentence.
func (s *Session) HasNext() bool {
	return s.index < len(s.sentences)-1
}

// Finished reports whether the last sentence has been completed.
func (s *Session) Finished() bool { return s.finished }

func (s *Session) Sentences() []string { return slices.Clone(s.sentences) }

// Completed returns completed sentences in the order they were completed.
func (s *Session) Completed() []string { return slices.Clone(s.completed) }

func (s *Session) IsCompleted(sentence string) bool {
	_, ok := s.seen[sentence]
	return ok
}
