package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow reports whether a*b would overflow uint64.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil
	}
	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}
	return nil
}

// SafeMultiply multiplies a and b, returning an error instead of a
// wrapped result if the product would overflow uint64.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize rejects a size that exceeds maxSize, naming the
// field in description for the resulting error.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}
	return nil
}

// MaxDataPointsRunSamples bounds a single DataPointsAtScaleFactor run
// independent of any particular input's length, mirroring the
// teacher's MaxChunkSize/MaxAttributeSize buffer ceilings.
const MaxDataPointsRunSamples = 64 * 1024 * 1024 // 64M uint16 samples, 128MB

// ValidateSampleCount checks a wire-read sample count against both an
// absolute ceiling and the bytes actually remaining in the cursor
// before a caller allocates a slice sized from it. Without this, a
// corrupt or adversarial DataPts block can claim an n_points in the
// billions and trigger a multi-gigabyte allocation attempt before the
// per-element bounds-checked reads that would otherwise catch the
// short read ever run — the same "huge element count before
// multiply/allocate" hazard the teacher's overflow.go guards against
// for HDF5 attribute/hyperslab counts.
func ValidateSampleCount(n uint32, remaining int) error {
	if err := ValidateBufferSize(uint64(n), MaxDataPointsRunSamples, "data points sample run"); err != nil {
		return err
	}
	needed, err := SafeMultiply(uint64(n), 2)
	if err != nil {
		return err
	}
	if remaining < 0 || needed > uint64(remaining) {
		return fmt.Errorf("short read: need %d byte(s) for %d sample(s), only %d remaining", needed, n, remaining)
	}
	return nil
}
