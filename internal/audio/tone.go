package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// SampleRate used for every synthesised cue.
const SampleRate = 22050

// Waveform of a cue oscillator.
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Tone describes one cue: an oscillator with an exponential frequency ramp
// and an exponential gain decay over the whole duration.
type Tone struct {
	Wave      Waveform
	FreqStart float64
	FreqEnd   float64
	FreqRamp  time.Duration
	GainStart float64
	GainEnd   float64
	Duration  time.Duration
}

var tones = map[Cue]Tone{
	CueSuccess:     {Wave: Sine, FreqStart: 440, FreqEnd: 880, FreqRamp: 200 * time.Millisecond, GainStart: 0.5, GainEnd: 0.01, Duration: 500 * time.Millisecond},
	CueNewSentence: {Wave: Sine, FreqStart: 330, FreqEnd: 330, GainStart: 0.3, GainEnd: 0.01, Duration: 300 * time.Millisecond},
	CueWordMove:    {Wave: Sine, FreqStart: 220, FreqEnd: 220, GainStart: 0.2, GainEnd: 0.01, Duration: 100 * time.Millisecond},
	CueHint:        {Wave: Square, FreqStart: 165, FreqEnd: 220, FreqRamp: 200 * time.Millisecond, GainStart: 0.3, GainEnd: 0.01, Duration: 300 * time.Millisecond},
}

// ToneFor returns the tone parameters of a cue kind.
func ToneFor(c Cue) (Tone, bool) {
	t, ok := tones[c]
	return t, ok
}

// Samples renders the tone as signed 16-bit mono PCM.
func (t Tone) Samples(rate int) []int16 {
	n := int(t.Duration.Seconds() * float64(rate))
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		sec := float64(i) / float64(rate)
		phase += 2 * math.Pi * t.freqAt(sec) / float64(rate)

		v := math.Sin(phase)
		if t.Wave == Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		out[i] = int16(v * t.gainAt(sec) * math.MaxInt16)
	}
	return out
}

func (t Tone) freqAt(sec float64) float64 {
	return expRamp(t.FreqStart, t.FreqEnd, sec, t.FreqRamp.Seconds())
}

func (t Tone) gainAt(sec float64) float64 {
	return expRamp(t.GainStart, t.GainEnd, sec, t.Duration.Seconds())
}

// expRamp moves exponentially from `from` to `to` over span seconds and holds `to` afterwards.
func expRamp(from, to, elapsed, span float64) float64 {
	if span <= 0 || elapsed >= span || from <= 0 {
		return to
	}
	return from * math.Pow(to/from, elapsed/span)
}

// EncodeWAV wraps mono 16-bit samples in a RIFF/WAVE container.
func EncodeWAV(samples []int16, rate int) []byte {
	dataLen := uint32(len(samples) * 2)
	var buf bytes.Buffer
	buf.Grow(44 + int(dataLen))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, struct {
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{16, 1, 1, uint32(rate), uint32(rate * 2), 2, 16})

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
