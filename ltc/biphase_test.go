package ltc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplesPerFrame(t *testing.T) {
	cases := []struct {
		sampleRate int
		label      string
		want       int
	}{
		{48000, "30", 1600},
		{48000, "25", 1920},
		{48000, "29.97", 1601},
		{48000, "29.97df", 1601},
		{44100, "23.976", 1839},
		{44100, "60", 735},
		{96000, "59.94", 1601},
		{192000, "24", 8000},
	}
	for _, c := range cases {
		r := mustRate(t, c.label)
		assert.Equal(t, c.want, SamplesPerFrame(c.sampleRate, r), "%d Hz at %s", c.sampleRate, c.label)
	}
}

func modulateOne(t *testing.T, label string, sampleRate int, tc Timecode) (Codeword, []float64) {
	t.Helper()
	r := mustRate(t, label)
	w := Assemble(tc, r)
	dst := make([]float64, SamplesPerFrame(sampleRate, r))
	NewModulator().Modulate(w, dst)
	return w, dst
}

func TestModulateClockTransitions(t *testing.T) {
	// Every cell midpoint carries a transition regardless of the data.
	_, dst := modulateOne(t, "30", 48000, Timecode{H: 10, M: 30, S: 15})
	cell := len(dst) / 80
	half := cell / 2
	for i := 0; i < 80; i++ {
		start := i * cell
		assert.NotEqual(t, dst[start+half-1], dst[start+half], "cell %d", i)
	}
}

func TestModulateDataTransitions(t *testing.T) {
	// A one bit flips the level at its cell boundary; a zero bit holds it.
	w, dst := modulateOne(t, "30", 48000, Timecode{H: 10, M: 30, S: 15})
	cell := len(dst) / 80
	for i := 1; i < 80; i++ {
		start := i * cell
		if w[i] == 1 {
			assert.NotEqual(t, dst[start-1], dst[start], "cell %d", i)
		} else {
			assert.Equal(t, dst[start-1], dst[start], "cell %d", i)
		}
	}
}

func TestModulatePhaseCoherence(t *testing.T) {
	// The level carries across frames: the first sample of frame N+1
	// follows from the last level of frame N and frame N+1's first bit.
	r := mustRate(t, "30")
	m := NewModulator()
	spf := SamplesPerFrame(48000, r)
	prev := make([]float64, spf)
	next := make([]float64, spf)

	tc := Timecode{H: 1}
	m.Modulate(Assemble(tc, r), prev)
	for i := 0; i < 5; i++ {
		tc = tc.Advance(r)
		w := Assemble(tc, r)
		m.Modulate(w, next)
		if w[0] == 1 {
			assert.NotEqual(t, prev[spf-1], next[0], "frame %d", i)
		} else {
			assert.Equal(t, prev[spf-1], next[0], "frame %d", i)
		}
		prev, next = next, prev
	}
}

func TestModulateDCBalance(t *testing.T) {
	// Whole frames sum to zero when the cells divide evenly; the one
	// remainder sample at 29.97 can leave a residue of a single sample.
	for _, c := range []struct {
		label      string
		sampleRate int
		slack      float64
	}{
		{"30", 48000, 0},
		{"25", 48000, 0},
		{"29.97df", 48000, 1},
	} {
		_, dst := modulateOne(t, c.label, c.sampleRate, Timecode{H: 10, M: 30, S: 15, F: 3})
		sum := 0.0
		for _, v := range dst {
			sum += v
		}
		assert.LessOrEqual(t, sum, c.slack, c.label)
		assert.GreaterOrEqual(t, sum, -c.slack, c.label)
	}
}

func TestModulateFullScale(t *testing.T) {
	_, dst := modulateOne(t, "25", 48000, Timecode{})
	for _, v := range dst {
		require.True(t, v == 1.0 || v == -1.0)
	}
}

func TestModulateTransitionCount(t *testing.T) {
	// Counting from the idle +1 level, a frame holds 80 mid-cell ticks
	// plus one boundary transition per one bit.
	w, dst := modulateOne(t, "25", 48000, Timecode{H: 10, M: 30, S: 15})
	transitions := 0
	level := 1.0
	for _, v := range dst {
		if v != level {
			transitions++
			level = v
		}
	}
	assert.Equal(t, 80+w.PopCount(), transitions)
}

func TestModulateShortCellPanics(t *testing.T) {
	var w Codeword
	dst := make([]float64, 100)
	assert.Panics(t, func() {
		NewModulator().Modulate(w, dst)
	})
}
