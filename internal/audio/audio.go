// Package audio renders game feedback: short synthesised cues and spoken text.
//
// Nothing here is awaited by game logic. A Sink that cannot play anything
// silently drops requests.
package audio

// Cue is a short non-speech signal denoting a game event.
type Cue string

const (
	CueSuccess     Cue = "success"
	CueNewSentence Cue = "newSentence"
	CueWordMove    Cue = "wordMove"
	CueHint        Cue = "hint"
)

// Cues lists every cue kind.
var Cues = []Cue{CueSuccess, CueNewSentence, CueWordMove, CueHint}

// Sink accepts cue and speech requests. Implementations must return
// immediately; playback happens in the background.
type Sink interface {
	Cue(c Cue)
	Speak(text string)
}

// Nop discards everything. Used when no audio backend is available.
type Nop struct{}

func (Nop) Cue(Cue)      {}
func (Nop) Speak(string) {}
