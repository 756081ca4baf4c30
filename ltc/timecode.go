package ltc

import (
	"fmt"
	"strconv"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// Timecode is an (hours, minutes, seconds, frames) quadruple. It is a plain
// value: Advance returns the successor rather than mutating in place.
type Timecode struct {
	H, M, S, F int
}

// Advance returns the timecode one frame later. The frame field cascades
// into seconds, minutes and hours, wrapping from 23:59:59:(n-1) back to
// zero. In drop-frame mode the skip is applied after the cascade: frame
// codes 00 and 01 of the first second of a minute do not exist, except
// every tenth minute.
func (t Timecode) Advance(r Rate) Timecode {
	t.F++
	if t.F >= r.FPSNominal() {
		t.F = 0
		t.S++
		if t.S >= 60 {
			t.S = 0
			t.M++
			if t.M >= 60 {
				t.M = 0
				t.H++
				if t.H >= 24 {
					t.H = 0
				}
			}
		}
	}
	if r.Drop && t.S == 0 && t.F < 2 && t.M%10 != 0 {
		t.F += 2
	}
	return t
}

// SubSeconds returns the timecode n wall-clock seconds earlier, wrapping
// through midnight. The frame field is unchanged. Used for preroll.
func (t Timecode) SubSeconds(n int) Timecode {
	total := (t.H*60+t.M)*60 + t.S - n
	total %= secondsPerDay
	if total < 0 {
		total += secondsPerDay
	}
	return Timecode{
		H: total / 3600,
		M: total / 60 % 60,
		S: total % 60,
		F: t.F,
	}
}

// Validate checks the field ranges against the rate, including the
// drop-frame hole (frames 00 and 01 of second 00 do not exist outside
// every tenth minute).
func (t Timecode) Validate(r Rate) error {
	if t.H < 0 || t.H > 23 {
		return fmt.Errorf("%w: hours %d out of range", ErrInvalidConfig, t.H)
	}
	if t.M < 0 || t.M > 59 {
		return fmt.Errorf("%w: minutes %d out of range", ErrInvalidConfig, t.M)
	}
	if t.S < 0 || t.S > 59 {
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidConfig, t.S)
	}
	if t.F < 0 || t.F >= r.FPSNominal() {
		return fmt.Errorf("%w: frame %d out of range for %v", ErrInvalidConfig, t.F, r)
	}
	if r.Drop && t.S == 0 && t.F < 2 && t.M%10 != 0 {
		return fmt.Errorf("%w: %v does not exist in drop-frame counting", ErrInvalidConfig, t)
	}
	return nil
}

// String formats the timecode as HH:MM:SS:FF.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.H, t.M, t.S, t.F)
}

// ParseTimecode parses "HH:MM:SS:FF". A semicolon before the frame field,
// as drop-frame timecode is often written, is also accepted. Only the
// shape is checked here; range checks against a rate are Validate's job.
func ParseTimecode(s string) (Timecode, error) {
	norm := strings.Replace(s, ";", ":", 1)
	parts := strings.Split(norm, ":")
	if len(parts) != 4 {
		return Timecode{}, fmt.Errorf("%w: timecode %q must be HH:MM:SS:FF", ErrInvalidConfig, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Timecode{}, fmt.Errorf("%w: timecode %q: %v", ErrInvalidConfig, s, err)
		}
		v[i] = n
	}
	return Timecode{H: v[0], M: v[1], S: v[2], F: v[3]}, nil
}
