package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOverflow is returned when an index does not fit the target type.
var ErrIndexOverflow = errors.New("index overflow")

// IntToUint32 converts a slice index to a bitmap index.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrIndexOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrIndexOverflow, v)
	}
	return uint32(v), nil
}

// RangeToUint64 validates a half-open index range [start, end) for
// roaring.Bitmap.AddRange. The end bound may be one past MaxUint32.
func RangeToUint64(start, end int) (uint64, uint64, error) {
	if start < 0 || end < 0 {
		return 0, 0, fmt.Errorf("%w: range [%d, %d) is negative", ErrIndexOverflow, start, end)
	}
	if start > end {
		return 0, 0, fmt.Errorf("invalid range: start %d is after end %d", start, end)
	}
	if uint64(end) > math.MaxUint32+1 {
		return 0, 0, fmt.Errorf("%w: range end %d exceeds uint32 domain", ErrIndexOverflow, end)
	}
	return uint64(start), uint64(end), nil
}
