package bbp

import (
	"github.com/pkg/errors"
)

// ChannelSums totals each channel over all quadruples of the sequence.
func ChannelSums(seq Sequence) (Quadruple, error) {
	var sums Quadruple
	if err := seq.Validate(); err != nil {
		return sums, err
	}
	for i := 0; i < seq.Quadruples(); i++ {
		q := seq.Quadruple(i)
		for c := range sums {
			sums[c] += q[c]
		}
	}
	return sums, nil
}

// Reduce sums every run of block consecutive quadruples, channel by
// channel, into a single quadruple. A trailing run shorter than block is
// summed as well, so channel totals are unchanged by the reduction.
func Reduce(seq Sequence, block int) (Sequence, error) {
	if block <= 0 {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "got %d", block)
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	n := seq.Quadruples()
	out := make(Sequence, 0, 4*((n+block-1)/block))
	for start := 0; start < n; start += block {
		end := min(start+block, n)
		sub, _ := ChannelSums(seq[4*start : 4*end])
		out = append(out, sub[:]...)
	}
	return out, nil
}
