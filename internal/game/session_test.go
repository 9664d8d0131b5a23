package game

import (
	"errors"
	"slices"
	"testing"

	"wordorder-go/internal/sentences"
)

var testDefaults = []string{"I like books", "The sun is shining", "We listen to music"}

func TestStartResetsProgress(t *testing.T) {
	s := NewSession(testDefaults)
	s.Complete("I like books")
	s.Start()

	if s.Index() != 0 || len(s.Completed()) != 0 || s.Finished() {
		t.Errorf("after Start: index %d completed %q finished %v", s.Index(), s.Completed(), s.Finished())
	}
}

func TestAdvanceStopsAtLast(t *testing.T) {
	s := NewSession(testDefaults)
	for i := 1; i < len(testDefaults); i++ {
		if !s.HasNext() {
			t.Fatalf("HasNext false at index %d", s.Index())
		}
		s.Advance()
		if s.Index() != i {
			t.Fatalf("index = %d, want %d", s.Index(), i)
		}
	}
	if s.HasNext() {
		t.Error("HasNext true on last sentence")
	}
	s.Advance()
	if s.Index() != len(testDefaults)-1 {
		t.Errorf("index moved past the end: %d", s.Index())
	}
	if !s.Finished() {
		t.Error("advance on last sentence did not finish the session")
	}
}

func TestCompleteGrowsSetAndAdvances(t *testing.T) {
	s := NewSession(testDefaults)
	s.Complete("I like books")

	if got := s.Completed(); !slices.Equal(got, []string{"I like books"}) {
		t.Errorf("completed = %q", got)
	}
	if !s.IsCompleted("I like books") {
		t.Error("IsCompleted false")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}

	s.Complete("I like books")
	if len(s.Completed()) != 1 {
		t.Errorf("duplicate completion added: %q", s.Completed())
	}
	if s.Index() != 2 {
		t.Errorf("index = %d, want 2", s.Index())
	}
}

func TestCompleteLastSentenceFinishes(t *testing.T) {
	s := NewSession([]string{"only one"})
	s.Complete("only one")
	if !s.Finished() || s.HasNext() {
		t.Errorf("finished %v hasNext %v", s.Finished(), s.HasNext())
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
}

func TestImportReplacesList(t *testing.T) {
	s := NewSession(testDefaults)
	s.Complete("I like books")

	if err := s.Import([]byte(`{"expressions": ["a b", "c d"]}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !slices.Equal(s.Sentences(), []string{"a b", "c d"}) {
		t.Errorf("sentences = %q", s.Sentences())
	}
	if s.Index() != 0 || len(s.Completed()) != 0 {
		t.Errorf("index %d completed %q", s.Index(), s.Completed())
	}
}

func TestImportRejectsAndFallsBack(t *testing.T) {
	for _, data := range []string{`{}`, `not json`, `{"expressions": 3}`} {
		s := NewSession(testDefaults)
		_ = s.Import([]byte(`{"expressions": ["x y"]}`))
		s.Complete("x y")

		err := s.Import([]byte(data))
		var ie *ImportError
		if !errors.As(err, &ie) {
			t.Fatalf("%s: err = %v, want *ImportError", data, err)
		}
		if !slices.Equal(s.Sentences(), testDefaults) {
			t.Errorf("%s: sentences = %q, want defaults", data, s.Sentences())
		}
		if s.Index() != 0 || len(s.Completed()) != 0 || s.Finished() {
			t.Errorf("%s: state not reset", data)
		}
	}
}

func TestImportErrorUnwraps(t *testing.T) {
	s := NewSession(testDefaults)
	err := s.Import([]byte(`{}`))
	if !errors.Is(err, sentences.ErrMissingExpressions) {
		t.Errorf("err = %v, want wrapping ErrMissingExpressions", err)
	}
}

func TestResetKeepsCompletedAndClampsIndex(t *testing.T) {
	s := NewSession([]string{"a"})
	s.Load([]string{"1", "2", "3", "4", "5"})
	s.Complete("1")
	s.Complete("2")
	s.Complete("3")

	s.Reset()
	if !slices.Equal(s.Sentences(), []string{"a"}) {
		t.Errorf("sentences = %q", s.Sentences())
	}
	if len(s.Completed()) != 3 {
		t.Errorf("Reset cleared completed: %q", s.Completed())
	}
	if cur, ok := s.Current(); !ok || cur != "a" {
		t.Errorf("Current = %q, %v", cur, ok)
	}
}

func TestEmptyListIsGuarded(t *testing.T) {
	s := NewSession(nil)
	if _, ok := s.Current(); ok {
		t.Error("Current ok on empty list")
	}
	s.Advance()
	s.Complete("ghost")
	if s.Index() != 0 || s.Finished() || s.HasNext() {
		t.Errorf("empty list changed state: index %d finished %v", s.Index(), s.Finished())
	}
}
