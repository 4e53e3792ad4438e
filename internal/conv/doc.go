// Package conv provides checked conversions between slice indices and the
// 32-bit index domain of candidate bitmaps.
//
// Roaring bitmaps store uint32 values, while Go slices are indexed by int.
// Conversions that could lose information return an error wrapping
// ErrIndexOverflow instead of silently truncating.
package conv
