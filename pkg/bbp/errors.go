package bbp

import (
	"errors"
)

var (
	// ErrTruncatedSequence indicates a sequence whose length is not a
	// multiple of four, so its last quadruple is incomplete
	ErrTruncatedSequence = errors.New("sequence length is not a multiple of 4")

	// ErrLengthMismatch indicates two sequences that cannot be compared
	// term by term
	ErrLengthMismatch = errors.New("sequence length mismatch")

	// ErrInvalidBlockSize indicates a reduction block of zero or fewer
	// quadruples
	ErrInvalidBlockSize = errors.New("block size must be positive")
)
