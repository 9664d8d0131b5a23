package audio

import (
	"context"
	"encoding/binary"
	"math"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestEveryCueHasDistinctTone(t *testing.T) {
	seen := make(map[Tone]Cue)
	for _, c := range Cues {
		tone, ok := ToneFor(c)
		if !ok {
			t.Fatalf("no tone for cue %q", c)
		}
		if other, dup := seen[tone]; dup {
			t.Errorf("cues %q and %q share a tone", c, other)
		}
		seen[tone] = c
	}
}

func TestSamplesLengthAndDecay(t *testing.T) {
	tone, _ := ToneFor(CueSuccess)
	samples := tone.Samples(SampleRate)

	want := int(tone.Duration.Seconds() * SampleRate)
	if len(samples) != want {
		t.Fatalf("len(samples) = %d, want %d", len(samples), want)
	}

	peak := func(s []int16) int {
		m := 0
		for _, v := range s {
			a := int(v)
			if a < 0 {
				a = -a
			}
			if a > m {
				m = a
			}
		}
		return m
	}
	head := peak(samples[:len(samples)/10])
	tail := peak(samples[len(samples)-len(samples)/10:])
	if tail >= head {
		t.Errorf("expected decaying envelope, head peak %d tail peak %d", head, tail)
	}
}

func TestSquareWaveIsTwoLevel(t *testing.T) {
	tone := Tone{Wave: Square, FreqStart: 200, FreqEnd: 200, GainStart: 0.5, GainEnd: 0.5, Duration: 10 * time.Millisecond}
	gain := 0.5
	level := int16(gain * math.MaxInt16)
	for i, v := range tone.Samples(SampleRate) {
		if v != level && v != -level {
			t.Fatalf("sample %d = %d, not a square level", i, v)
		}
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := []int16{0, 100, -100, 32767}
	wav := EncodeWAV(samples, SampleRate)

	if len(wav) != 44+len(samples)*2 {
		t.Fatalf("len = %d, want %d", len(wav), 44+len(samples)*2)
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" || string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		t.Fatalf("bad chunk ids: %q", wav[:40])
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != SampleRate {
		t.Errorf("sample rate = %d, want %d", got, SampleRate)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d", got)
	}
	if got := int16(binary.LittleEndian.Uint16(wav[46:48])); got != 100 {
		t.Errorf("second sample = %d, want 100", got)
	}
}

func fakeLookPath(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

type call struct {
	ctx   context.Context
	name  string
	args  []string
	stdin []byte
}

func TestSpeakPreemptsInFlightUtterance(t *testing.T) {
	calls := make(chan call, 4)
	run := func(ctx context.Context, name string, args []string, stdin []byte) error {
		calls <- call{ctx: ctx, name: name, args: args}
		<-ctx.Done()
		return ctx.Err()
	}
	d := newDevice("en-US", fakeLookPath("espeak-ng"), run, zerolog.Nop())
	defer d.Close()

	d.Speak("hello")
	first := <-calls
	d.Speak("world")
	second := <-calls

	if first.ctx.Err() == nil {
		t.Error("first utterance was not cancelled")
	}
	if second.ctx.Err() != nil {
		t.Error("second utterance cancelled too early")
	}
	if second.name != "espeak-ng" || second.args[1] != "en-us" || second.args[2] != "world" {
		t.Errorf("unexpected speech command %s %v", second.name, second.args)
	}
}

func TestCuePipesWAVToPlayer(t *testing.T) {
	calls := make(chan call, 1)
	run := func(ctx context.Context, name string, args []string, stdin []byte) error {
		calls <- call{name: name, args: args, stdin: stdin}
		return nil
	}
	d := newDevice("en-US", fakeLookPath("aplay"), run, zerolog.Nop())

	d.Cue(CueWordMove)
	select {
	case c := <-calls:
		if c.name != "aplay" {
			t.Errorf("player = %s, want aplay", c.name)
		}
		if len(c.stdin) < 44 || string(c.stdin[:4]) != "RIFF" {
			t.Error("player did not receive a WAV stream")
		}
	case <-time.After(time.Second):
		t.Fatal("cue was never played")
	}

	// No speech backend: Speak is a no-op.
	d.Speak("ignored")
	select {
	case c := <-calls:
		t.Fatalf("unexpected call %s", c.name)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestNewWithoutBackendsIsNop(t *testing.T) {
	if _, ok := New(Options{Enabled: false}, zerolog.Nop()).(Nop); !ok {
		t.Error("disabled audio should be Nop")
	}
}
