// Package bucket implements fuzzlane's length-bucketing layer: it groups
// haystacks that survive the prefilter into fixed-capacity, fixed-width
// buckets so the scorer can process L of them in lockstep.
package bucket

import "github.com/coregx/fuzzlane/internal/conv"

// Sentinel is the padding byte used to fill a haystack out to its bucket's
// nominal width, and to fill unused lanes in a partially-full
// end-of-input bucket.
//
// 0xFF is not valid UTF-8 (it can never appear in a well-formed UTF-8
// haystack) and is not a 7-bit ASCII byte either, so it cannot collide
// with a legitimate file path, symbol name, or completion item, the
// workload this matcher targets. It also lowercases to itself, so it never
// satisfies EqualFold against a real needle byte, and it is not uppercase.
// It does count as a delimiter (it falls outside [0-9A-Za-z]), but padding
// only ever follows the real bytes, so no haystack byte comes after a
// sentinel and the delimiter bonus never fires because of one.
const Sentinel byte = 0xFF

// MaxHaystackLen is the largest haystack the core bucketing/scoring path
// accepts. Longer haystacks are the external scalar fallback's
// responsibility; see Add.
const MaxHaystackLen = 512

// widths are the bucket nominal widths, smallest first. A haystack of
// length n is routed to the smallest width >= n.
var widths = [...]int{4, 8, 12, 16, 24, 32, 48, 64, 96, 128, 192, 256, 384, 512}

// WidthFor returns the smallest nominal bucket width that can hold a
// haystack of length n, and false if n exceeds MaxHaystackLen (the
// haystack belongs to the external scalar fallback instead).
func WidthFor(n int) (width int, ok bool) {
	if n > MaxHaystackLen {
		return 0, false
	}
	for _, w := range widths {
		if n <= w {
			return w, true
		}
	}
	return 0, false
}

// Slot is one lane of a Bucket: a caller id paired with its haystack,
// padded to the bucket's nominal width.
type Slot struct {
	ID       uint64
	Haystack []byte // length == the owning Bucket's Width
	// Discard marks a sentinel filler slot (added when an end-of-input
	// bucket is flushed with unused lanes). The scorer still computes a
	// score for it, harmlessly, since padding never matches, but the
	// caller must not emit it as a Match.
	Discard bool
}

// Bucket is a fixed-width, fully-populated group of haystacks ready for
// the scorer: exactly Lanes() slots, every haystack padded to Width.
// Width is a uint16 rather than an int since every nominal width in
// widths fits comfortably under 65536; narrowing it here keeps a Bucket
// compact when batches of them are queued for dispatch.
type Bucket struct {
	Width uint16
	Slots []Slot
}

// Lanes returns the number of populated slots (== the active SIMD lane
// count at handoff time).
func (b *Bucket) Lanes() int {
	return len(b.Slots)
}

// Stats counts what the Table has done across its lifetime, for
// introspection by benchmarks and callers.
type Stats struct {
	// Dispatched is the number of buckets handed to the scorer because
	// they filled naturally.
	Dispatched int
	// Flushed is the number of buckets handed to the scorer at
	// end-of-input via Flush, before padding.
	Flushed int
	// PaddedSlots is the number of discard sentinel slots added across
	// all Flush-ed buckets.
	PaddedSlots int
	// Oversize is the number of haystacks longer than MaxHaystackLen
	// that were rejected by Add instead of being bucketed.
	Oversize int
}

// Table partitions a stream of (id, haystack) pairs into per-width
// buckets and reports each bucket to the caller as soon as it fills to
// lanes slots. It is the only component in fuzzlane with mutable batching
// state, matching spec's design: the rest of the pipeline is stateless
// per call.
type Table struct {
	lanes   int
	pending map[int][]Slot
	Stats   Stats
}

// NewTable creates a Table that dispatches a bucket once it accumulates
// lanes haystacks of the same nominal width. lanes is normally
// simd.DetectWidth().Lanes().
func NewTable(lanes int) *Table {
	if lanes < 1 {
		lanes = 1
	}
	return &Table{lanes: lanes, pending: make(map[int][]Slot)}
}

// Add buffers one (id, haystack) pair. It returns a ready Bucket (and
// ok=true) the moment the pair completes a full bucket; otherwise it
// returns ok=false and the pair stays buffered until a later Add or
// Flush. oversize reports whether haystack exceeded MaxHaystackLen, in
// which case it was not buffered at all; the caller routes it to the
// external scalar fallback.
func (t *Table) Add(id uint64, haystack []byte) (ready *Bucket, ok bool, oversize bool) {
	w, fits := WidthFor(len(haystack))
	if !fits {
		t.Stats.Oversize++
		return nil, false, true
	}

	padded := make([]byte, w)
	copy(padded, haystack)
	for i := len(haystack); i < w; i++ {
		padded[i] = Sentinel
	}

	t.pending[w] = append(t.pending[w], Slot{ID: id, Haystack: padded})
	if len(t.pending[w]) < t.lanes {
		return nil, false, false
	}

	b := &Bucket{Width: conv.IntToUint16(w), Slots: t.pending[w]}
	delete(t.pending, w)
	t.Stats.Dispatched++
	return b, true, false
}

// Flush drains every partially-filled bucket, padding each out to lanes
// slots with discard sentinel entries, and returns one Bucket per nominal
// width that had buffered haystacks. Call this once at end-of-input; a
// Table is empty (ready to reuse) after Flush returns.
func (t *Table) Flush() []*Bucket {
	if len(t.pending) == 0 {
		return nil
	}
	out := make([]*Bucket, 0, len(t.pending))
	for w, slots := range t.pending {
		padCount := t.lanes - len(slots)
		for i := 0; i < padCount; i++ {
			filler := make([]byte, w)
			for j := range filler {
				filler[j] = Sentinel
			}
			slots = append(slots, Slot{Haystack: filler, Discard: true})
		}
		t.Stats.PaddedSlots += padCount
		t.Stats.Flushed++
		out = append(out, &Bucket{Width: conv.IntToUint16(w), Slots: slots})
	}
	t.pending = make(map[int][]Slot)
	return out
}
