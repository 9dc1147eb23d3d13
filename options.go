package fuzzlane

// Options controls one MatchOne or MatchMany call. The zero value is not
// directly usable as defaults (Prefilter defaults to true, which the zero
// value doesn't give you); use DefaultOptions.
type Options struct {
	// MaxTypos bounds the reverse pass's typo count and the number of
	// needle characters the prefilter lets a haystack miss. Nil disables
	// typo counting (no reverse pass runs at all); the prefilter then
	// allows zero missing needle characters.
	MaxTypos *int

	// MinScore discards matches scoring below this threshold. Zero (the
	// default) keeps everything the forward pass and typo budget admit.
	MinScore uint16

	// Sort, when true, orders the returned matches by descending score.
	Sort bool

	// StableTiebreak, when true and Sort is set, breaks score ties by
	// ascending id. Without it the order of tied matches is not defined.
	StableTiebreak bool

	// Prefilter enables the cheap admission check before bucketing. It
	// defaults to true. With it disabled every haystack within the length
	// bound is scored and kept if it clears MinScore and the typo budget,
	// including haystacks the prefilter would have rejected.
	Prefilter bool
}

// DefaultOptions returns the documented default options: no typo budget,
// min_score 0, unsorted output, no stable tiebreak, prefilter enabled.
func DefaultOptions() Options {
	return Options{
		MaxTypos:       nil,
		MinScore:       0,
		Sort:           false,
		StableTiebreak: false,
		Prefilter:      true,
	}
}

// MaxTypos is a convenience constructor for Options.MaxTypos: some(k).
func MaxTypos(k int) *int {
	return &k
}
