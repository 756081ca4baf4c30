package ltc

// Modulator converts codewords to a bi-phase-mark square wave. Every bit
// cell carries a level transition at its midpoint; a one bit adds a second
// transition at the cell boundary. The output level carries over from one
// frame to the next, so a single Modulator must be used for an entire run.
type Modulator struct {
	level float64
}

// NewModulator returns a modulator with the level at +1.0.
func NewModulator() *Modulator {
	return &Modulator{level: 1.0}
}

// SamplesPerFrame returns the whole number of samples spanned by one frame:
// floor(sampleRate / (Num/Den)).
func SamplesPerFrame(sampleRate int, r Rate) int {
	return sampleRate * r.Den / r.Num
}

// Modulate writes one frame of audio into dst, which must hold exactly
// SamplesPerFrame samples. The frame divides into 80 equal cells of
// len(dst)/80 samples; remainder samples past the last cell trail at the
// final level.
func (m *Modulator) Modulate(w Codeword, dst []float64) {
	cell := len(dst) / 80
	if cell < 2 {
		panic("ltc: bit cell shorter than two samples")
	}
	pos := 0
	for _, bit := range w {
		if bit != 0 {
			m.level = -m.level
		}
		half := cell / 2
		for i := 0; i < half; i++ {
			dst[pos] = m.level
			pos++
		}
		m.level = -m.level
		for i := half; i < cell; i++ {
			dst[pos] = m.level
			pos++
		}
	}
	for ; pos < len(dst); pos++ {
		dst[pos] = m.level
	}
}
