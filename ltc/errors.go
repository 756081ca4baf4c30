package ltc

import "errors"

var (
	// ErrInvalidRate is returned for a frame rate label outside the
	// recognized table.
	ErrInvalidRate = errors.New("ltc: invalid frame rate")

	// ErrInvalidConfig is returned when the sample rate, bit depth, frame
	// rate or start timecode of a Config is out of range.
	ErrInvalidConfig = errors.New("ltc: invalid config")

	// ErrInvalidDuration is returned for a non-finite, non-positive or
	// excessive duration.
	ErrInvalidDuration = errors.New("ltc: invalid duration")
)
