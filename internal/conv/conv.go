// Package conv provides a safe integer narrowing helper for fuzzlane's
// bucketing layer, where a bucket's nominal width is carried as an int
// internally (it comes back from arithmetic on an []int table) but
// stored on the exported Bucket as a uint16, since bucket.MaxHaystackLen
// bounds every legitimate width well under 65536.
//
// IntToUint16 panics on overflow rather than saturating or erroring,
// since an out-of-range width here means bucket.WidthFor returned
// something outside its own documented range, a bug internal to the
// bucket package, not a caller mistake to be reported as "no match".
package conv

import "math"

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}
