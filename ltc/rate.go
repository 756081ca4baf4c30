package ltc

import "fmt"

// Rate describes a frame rate as an exact rational (Num/Den frames per
// second) plus the drop-frame counting flag. Rates are only constructed
// through RateByLabel, so a Rate in hand is always one of the ten
// recognized entries.
type Rate struct {
	Num  int
	Den  int
	Drop bool
}

var rateTable = []struct {
	label   string
	display string
	rate    Rate
}{
	{"23.976", "23.976 fps NDF", Rate{24000, 1001, false}},
	{"24", "24 fps NDF", Rate{24, 1, false}},
	{"25", "25 fps NDF", Rate{25, 1, false}},
	{"29.97", "29.97 fps NDF", Rate{30000, 1001, false}},
	{"30", "30 fps NDF", Rate{30, 1, false}},
	{"50", "50 fps NDF", Rate{50, 1, false}},
	{"59.94", "59.94 fps NDF", Rate{60000, 1001, false}},
	{"60", "60 fps NDF", Rate{60, 1, false}},
	{"29.97df", "29.97 fps DF", Rate{30000, 1001, true}},
	{"59.94df", "59.94 fps DF", Rate{60000, 1001, true}},
}

// RateByLabel returns the rate for one of the recognized labels
// ("25", "29.97df", ...). Returns ErrInvalidRate for anything else.
func RateByLabel(label string) (Rate, error) {
	for _, e := range rateTable {
		if e.label == label {
			return e.rate, nil
		}
	}
	return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, label)
}

// Labels returns the recognized rate labels in table order.
func Labels() []string {
	labels := make([]string, len(rateTable))
	for i, e := range rateTable {
		labels[i] = e.label
	}
	return labels
}

// FPS returns the exact frame rate.
func (r Rate) FPS() float64 {
	return float64(r.Num) / float64(r.Den)
}

// FPSNominal returns the integer frame count used for frame-field
// rollover and BCD encoding: ceil(Num/Den), e.g. 30 for 29.97.
func (r Rate) FPSNominal() int {
	return (r.Num + r.Den - 1) / r.Den
}

// String returns the display name shown to users, e.g. "29.97 fps DF".
func (r Rate) String() string {
	for _, e := range rateTable {
		if e.rate == r {
			return e.display
		}
	}
	return fmt.Sprintf("%d/%d fps", r.Num, r.Den)
}
