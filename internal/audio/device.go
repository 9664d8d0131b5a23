package audio

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Options selects how a Device is built.
type Options struct {
	Enabled bool
	Lang    string // speech language tag, e.g. "en-US"
}

type runFunc func(ctx context.Context, name string, args []string, stdin []byte) error

type player struct {
	name string
	args []string // reads a WAV stream on stdin
}

type speaker struct {
	name string
	args func(lang, text string) []string
}

var players = []player{
	{name: "aplay", args: []string{"-q", "-"}},
	{name: "paplay"},
	{name: "play", args: []string{"-q", "-t", "wav", "-"}},
}

func espeakArgs(lang, text string) []string {
	return []string{"-v", strings.ToLower(lang), text}
}

var speakers = []speaker{
	{name: "espeak-ng", args: espeakArgs},
	{name: "espeak", args: espeakArgs},
	{name: "say", args: func(_, text string) []string { return []string{text} }},
}

// Device plays cues through an external PCM player and speaks through an
// external text-to-speech command. A new utterance cancels the one in flight.
type Device struct {
	player  *player
	speaker *speaker
	lang    string
	clips   map[Cue][]byte
	run     runFunc
	log     zerolog.Logger

	mu       sync.Mutex
	speaking context.CancelFunc
}

// New detects the available backends. It returns Nop when audio is disabled
// or when neither a player nor a speech command is installed.
func New(opts Options, logger zerolog.Logger) Sink {
	if !opts.Enabled {
		return Nop{}
	}
	d := newDevice(opts.Lang, exec.LookPath, runCommand, logger)
	if d.player == nil && d.speaker == nil {
		logger.Info().Msg("no audio backend found, audio disabled")
		return Nop{}
	}
	return d
}

func newDevice(lang string, lookPath func(string) (string, error), run runFunc, logger zerolog.Logger) *Device {
	d := &Device{
		lang:  lang,
		clips: make(map[Cue][]byte, len(tones)),
		run:   run,
		log:   logger.With().Str("component", "audio").Logger(),
	}
	for i := range players {
		if _, err := lookPath(players[i].name); err == nil {
			d.player = &players[i]
			break
		}
	}
	for i := range speakers {
		if _, err := lookPath(speakers[i].name); err == nil {
			d.speaker = &speakers[i]
			break
		}
	}
	if d.player != nil {
		for c, t := range tones {
			d.clips[c] = EncodeWAV(t.Samples(SampleRate), SampleRate)
		}
	}

	ev := d.log.Debug()
	if d.player != nil {
		ev = ev.Str("player", d.player.name)
	}
	if d.speaker != nil {
		ev = ev.Str("speaker", d.speaker.name)
	}
	ev.Msg("audio backends detected")
	return d
}

func runCommand(ctx context.Context, name string, args []string, stdin []byte) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	return cmd.Run()
}

// Cue plays the clip for c in the background.
func (d *Device) Cue(c Cue) {
	if d.player == nil {
		return
	}
	clip, ok := d.clips[c]
	if !ok {
		return
	}
	go d.exec(context.Background(), d.player.name, d.player.args, clip)
}

// Speak says text, cancelling any utterance still playing.
func (d *Device) Speak(text string) {
	if d.speaker == nil || strings.TrimSpace(text) == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())

	d.mu.Lock()
	if d.speaking != nil {
		d.speaking()
	}
	d.speaking = cancel
	d.mu.Unlock()

	go d.exec(ctx, d.speaker.name, d.speaker.args(d.lang, text), nil)
}

// Close stops the current utterance.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.speaking != nil {
		d.speaking()
		d.speaking = nil
	}
	return nil
}

func (d *Device) exec(ctx context.Context, name string, args []string, stdin []byte) {
	if err := d.run(ctx, name, args, stdin); err != nil && ctx.Err() == nil {
		d.log.Debug().Err(err).Str("cmd", name).Msg("audio command failed")
	}
}
