package bbp

import (
	"math"
)

const hexDigits = "0123456789ABCDEF"

// Weights of each channel in the BBP combination 4/(8k+1) - 2/(8k+4) -
// 1/(8k+5) - 1/(8k+6).
var channelWeights = Quadruple{4, -2, -1, -1}

// WeightedSum combines the terms of every quadruple with the BBP weights.
func WeightedSum(seq Sequence) (float64, error) {
	sums, err := ChannelSums(seq)
	if err != nil {
		return 0, err
	}
	return sums.Weighted(), nil
}

// Weighted applies the BBP weights to the quadruple.
func (q Quadruple) Weighted() float64 {
	var sum float64
	for c, w := range channelWeights {
		sum += w * q[c]
	}
	return sum
}

// HexDigit returns the first hexadecimal digit of the fractional part of
// sum. Negative sums wrap, so -0.25 yields the digit of 0.75.
func HexDigit(sum float64) byte {
	frac := sum - math.Floor(sum)
	d := int(math.Floor(frac * 16))
	if d > 15 {
		d = 15
	}
	if d < 0 {
		d = 0
	}
	return hexDigits[d]
}

// Digit returns the hexadecimal digit of pi at offset n+1 after the point,
// using count term indexes of the series. count must exceed n by a margin
// for the tail to be negligible.
func Digit(n int64, count int) byte {
	// ComputeSequence always returns whole quadruples.
	sum, _ := WeightedSum(ComputeSequence(n, count))
	return HexDigit(sum)
}
