// Package bbp computes the partial-sum terms of the Bailey-Borwein-Plouffe
// series
//
//	pi = Sum(k = 0, inf, 1/16^k * (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6)))
//
// shifted by 16^n so that the fractional part of the sum yields the
// hexadecimal digits of pi starting after position n.
package bbp

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SeriesConstants are the offsets j of the four interleaved subseries, in
// the order their terms appear in a Sequence.
var SeriesConstants = [4]int64{1, 4, 5, 6}

// Quadruple holds the four terms of one term index, one per series constant.
type Quadruple [4]float64

// Sequence is an ordered list of terms, interleaved by series constant for
// each term index.
type Sequence []float64

// Compute returns the term 16^(n-k) / (8k+j).
//
// When n > k only the fractional part matters, so the power is reduced
// modulo 8k+j over the integers before dividing. Otherwise the power is a
// floating-point power of 16, which is at most 1.
func Compute(n, k, j int64) float64 {
	c := 8*k + j
	if c <= 0 {
		return math.NaN()
	}
	if n > k {
		return float64(ModPow(16, n-k, c)) / float64(c)
	}
	return math.Pow(16, float64(n-k)) / float64(c)
}

// ModPow returns base^exp mod m for m > 0 and exp >= 0. Intermediate
// products are 128 bits wide, so the result is exact for any int64 modulus.
func ModPow(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	mod := uint64(m)
	b := uint64(base % m)
	if base%m < 0 {
		b = uint64(base%m + m)
	}
	res := uint64(1)
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			res = mulMod(res, b, mod)
		}
		b = mulMod(b, b, mod)
	}
	return int64(res)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// ComputeSequence returns the 4*count terms for term indexes 0 through
// count-1, each index contributing one term per series constant.
func ComputeSequence(n int64, count int) Sequence {
	if count <= 0 {
		return Sequence{}
	}
	seq := make(Sequence, 0, 4*count)
	for i := 0; i < count; i++ {
		for _, j := range SeriesConstants {
			seq = append(seq, Compute(n, int64(i), j))
		}
	}
	return seq
}

// Quadruples returns the number of complete quadruples in the sequence.
func (s Sequence) Quadruples() int {
	return len(s) / 4
}

// Quadruple returns the terms of term index i.
func (s Sequence) Quadruple(i int) Quadruple {
	var q Quadruple
	copy(q[:], s[4*i:4*i+4])
	return q
}

// Validate checks that the sequence is made of whole quadruples.
func (s Sequence) Validate() error {
	if len(s)%4 != 0 {
		return errors.Wrapf(ErrTruncatedSequence, "%d terms", len(s))
	}
	return nil
}

// String renders the sequence as a bracketed, comma separated list.
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatTerm(t))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatTerm renders a term in its shortest round-trip form. Integral
// values keep a trailing ".0" and magnitudes below 1e-4 or from 1e16 up
// use exponent notation.
func FormatTerm(t float64) string {
	switch {
	case math.IsNaN(t):
		return "nan"
	case math.IsInf(t, 1):
		return "inf"
	case math.IsInf(t, -1):
		return "-inf"
	}
	abs := math.Abs(t)
	if t != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(t, 'e', -1, 64)
	}
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
