// Package ltc synthesizes SMPTE 12M linear time code as an audio signal.
// A codeword is assembled for every frame, bi-phase-mark modulated into a
// square wave, and written out as a mono PCM WAV file.
package ltc

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sithulaka/ltc-timecode-generator/wav"
)

// PrerollSeconds is the wall-clock length of the preroll lead-in.
const PrerollSeconds = 10

// MaxDurationSeconds caps a single generation run at two hours.
const MaxDurationSeconds = 7200

// Config describes one generation run.
type Config struct {
	RateLabel  string   // one of Labels()
	SampleRate int      // one of SampleRates()
	BitDepth   int      // one of BitDepths()
	Start      Timecode // first encoded timecode
	Duration   float64  // seconds
	Preroll    bool     // start 10 s early and extend the run 10 s
	OutputPath string   // destination WAV path
}

// SampleRates returns the supported output sample rates.
func SampleRates() []int {
	return []int{44100, 48000, 96000, 192000}
}

// BitDepths returns the supported output bit depths.
func BitDepths() []int {
	return []int{16, 24}
}

// Validate checks the configuration and returns the resolved rate.
func (c Config) Validate() (Rate, error) {
	rate, err := RateByLabel(c.RateLabel)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	ok := false
	for _, sr := range SampleRates() {
		if sr == c.SampleRate {
			ok = true
		}
	}
	if !ok {
		return Rate{}, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BitDepth != 16 && c.BitDepth != 24 {
		return Rate{}, fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, c.BitDepth)
	}
	if err := c.Start.Validate(rate); err != nil {
		return Rate{}, err
	}
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) || c.Duration <= 0 {
		return Rate{}, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, c.Duration)
	}
	if c.Duration > MaxDurationSeconds {
		return Rate{}, fmt.Errorf("%w: %v seconds exceeds the %d second limit",
			ErrInvalidDuration, c.Duration, MaxDurationSeconds)
	}
	if c.OutputPath == "" {
		return Rate{}, fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return rate, nil
}

// Generate synthesizes the configured signal and writes it to
// cfg.OutputPath, returning the written path. The run either completes and
// leaves a fully written file, or fails leaving nothing behind.
func Generate(cfg Config) (string, error) {
	rate, err := cfg.Validate()
	if err != nil {
		return "", err
	}

	start, duration := cfg.Start, cfg.Duration
	if cfg.Preroll {
		start = start.SubSeconds(PrerollSeconds)
		duration += PrerollSeconds
	}

	total := int(math.Round(duration * float64(cfg.SampleRate)))
	frame := make([]float64, SamplesPerFrame(cfg.SampleRate, rate))

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("ltc: creating output directory: %w", err)
		}
	}
	enc, err := wav.NewEncoder(cfg.OutputPath, cfg.SampleRate, cfg.BitDepth)
	if err != nil {
		return "", err
	}

	mod := NewModulator()
	tc := start
	for written := 0; written < total; {
		mod.Modulate(Assemble(tc, rate), frame)
		n := len(frame)
		if written+n > total {
			n = total - written
		}
		if err := enc.WriteSamples(frame[:n]); err != nil {
			return "", err
		}
		written += n
		tc = tc.Advance(rate)
	}

	if err := enc.Close(); err != nil {
		return "", err
	}
	return cfg.OutputPath, nil
}

// DefaultOutputPath returns the conventional destination, the user's
// desktop, falling back to the working directory.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ltc_timecode.wav"
	}
	return filepath.Join(home, "Desktop", "ltc_timecode.wav")
}

// Filename builds a descriptive file name from the configuration, e.g.
// "LTC_01-00-00-00_10m00s_29.97fpsdf_16bit_48khz_preroll.wav".
func Filename(cfg Config) string {
	rate, err := RateByLabel(cfg.RateLabel)
	if err != nil {
		return fmt.Sprintf("ltc_timecode_%ds.wav", int(cfg.Duration))
	}

	timeStr := fmt.Sprintf("%02d-%02d-%02d-%02d", cfg.Start.H, cfg.Start.M, cfg.Start.S, cfg.Start.F)
	durStr := fmt.Sprintf("%dm%02ds", int(cfg.Duration)/60, int(cfg.Duration)%60)

	fpsStr := strings.ToLower(strings.ReplaceAll(rate.String(), " ", ""))

	srStr := fmt.Sprintf("%dhz", cfg.SampleRate)
	if cfg.SampleRate >= 1000 {
		srStr = fmt.Sprintf("%dkhz", cfg.SampleRate/1000)
	}

	name := fmt.Sprintf("LTC_%s_%s_%s_%dbit_%s", timeStr, durStr, fpsStr, cfg.BitDepth, srStr)
	if cfg.Preroll {
		name += "_preroll"
	}
	return name + ".wav"
}
