package bbp

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// DefaultThreshold is the largest absolute difference tolerated between
// two terms by default.
const DefaultThreshold = 0.001

// Mismatch is a term whose value differs from the expected one by at least
// the comparison threshold.
type Mismatch struct {
	Index int
	Got   float64
	Want  float64
}

// Delta is the absolute difference between the two values.
func (m Mismatch) Delta() float64 {
	return math.Abs(m.Got - m.Want)
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("at idx %d %s != %s", m.Index, FormatTerm(m.Got), FormatTerm(m.Want))
}

// Comparison is the outcome of comparing two sequences term by term.
type Comparison struct {
	Terms      int
	MaxDelta   float64
	Threshold  float64
	Mismatches []Mismatch
}

// Passed reports whether every term was within the threshold.
func (c *Comparison) Passed() bool {
	return len(c.Mismatches) == 0
}

// Compare checks got against want term by term. Any term whose absolute
// difference is not below threshold is recorded as a mismatch; NaN terms
// never compare equal.
func Compare(got, want Sequence, threshold float64) (*Comparison, error) {
	if len(got) != len(want) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d terms != %d terms", len(got), len(want))
	}
	c := &Comparison{
		Terms:     len(got),
		Threshold: threshold,
	}
	for i := range got {
		m := Mismatch{Index: i, Got: got[i], Want: want[i]}
		delta := m.Delta()
		if math.IsNaN(delta) {
			c.Mismatches = append(c.Mismatches, m)
			continue
		}
		if delta > c.MaxDelta {
			c.MaxDelta = delta
		}
		if delta >= threshold {
			c.Mismatches = append(c.Mismatches, m)
		}
	}
	return c, nil
}
