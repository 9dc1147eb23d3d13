package scorer

import (
	"testing"

	"github.com/coregx/fuzzlane/params"
)

func needle(t *testing.T, raw string) params.Needle {
	t.Helper()
	n, err := params.NewNeedle([]byte(raw))
	if err != nil {
		t.Fatalf("NewNeedle(%q): %v", raw, err)
	}
	return n
}

// Exact match: needle="foo", haystack="foo". Expected score = 3*16 + prefix_bonus +
// exact_match_bonus = 48 + 8 + 8 = 64.
func TestScoreExactMatch(t *testing.T) {
	s := New(params.DefaultParams())
	score, _ := s.scoreLane(needle(t, "foo"), []byte("foo"), false)
	if score != 64 {
		t.Errorf("score = %d, want 64", score)
	}
}

// Case-insensitive match: needle="foo", haystack="FOO". Non-zero, no matching-case bonus
// (the needle is all lowercase so WasUpper never holds), and strictly
// lower than scoring "foo" against itself since it can't earn exact_match_bonus.
func TestScoreCaseInsensitiveLowerThanExact(t *testing.T) {
	s := New(params.DefaultParams())
	score, _ := s.scoreLane(needle(t, "foo"), []byte("FOO"), false)
	if score == 0 {
		t.Fatal("expected non-zero score")
	}
	if score >= 64 {
		t.Errorf("score = %d, want < 64 (the exact-match score)", score)
	}
}

// Capitalization vs delimiter bonus: needle="fBr". fooBar scores strictly higher than foo_bar because of
// the capitalization bonus at B. prelude and println! are not scored
// here: the prefilter rejects them before they reach the scorer.
func TestScoreCapitalizationBeatsDelimiter(t *testing.T) {
	s := New(params.DefaultParams())
	n := needle(t, "fBr")

	fooBar, _ := s.scoreLane(n, []byte("fooBar"), false)
	fooUnderBar, _ := s.scoreLane(n, []byte("foo_bar"), false)

	if fooBar == 0 || fooUnderBar == 0 {
		t.Fatalf("expected both to score positively: fooBar=%d foo_bar=%d", fooBar, fooUnderBar)
	}
	if fooBar <= fooUnderBar {
		t.Errorf("fooBar (%d) should score strictly higher than foo_bar (%d)", fooBar, fooUnderBar)
	}
}

// Prefix and delimiter bonuses: needle="hw", haystack="hello_world". Score includes the prefix
// bonus at h and the delimiter bonus at w (it follows '_').
func TestScorePrefixAndDelimiterBonus(t *testing.T) {
	s := New(params.DefaultParams())
	score, _ := s.scoreLane(needle(t, "hw"), []byte("hello_world"), false)
	if score == 0 {
		t.Fatal("expected non-zero score")
	}

	p := params.DefaultParams()
	// The alignment matches h and w and skips "ello_" as one gap (one
	// gap-open plus four gap-extends). Without bonuses it would score
	// 2*match_reward minus that gap cost; the prefix bonus at h and the
	// delimiter bonus at w come on top.
	bare := uint16(2*p.MatchReward - (p.GapOpen + 4*p.GapExtend))
	want := bare + uint16(p.PrefixBonus+p.DelimiterBonus)
	if score != want {
		t.Errorf("score = %d, want %d (bare %d plus prefix+delimiter bonuses)", score, want, bare)
	}
}

// Empty needle: score is always 0.
func TestScoreEmptyNeedle(t *testing.T) {
	s := New(params.DefaultParams())
	score, typos := s.scoreLane(needle(t, ""), []byte("anything"), true)
	if score != 0 || typos != 0 {
		t.Errorf("scoreLane with empty needle = (%d, %d), want (0, 0)", score, typos)
	}
}

// Exact-match dominance: no haystack of equal length scores higher
// than the needle matching itself exactly.
func TestScoreExactMatchDominance(t *testing.T) {
	s := New(params.DefaultParams())
	n := needle(t, "main")

	exact, _ := s.scoreLane(n, []byte("main"), false)
	others := []string{"mian", "amin", "Main", "xain", "mxin"}
	for _, h := range others {
		score, _ := s.scoreLane(n, []byte(h), false)
		if score > exact {
			t.Errorf("scoreLane(%q) = %d, should not exceed exact match score %d", h, score, exact)
		}
	}
}

// Saturation: no combination of default-scaled inputs should escape
// [0, maxScore].
func TestScoreSaturation(t *testing.T) {
	s := New(params.DefaultParams())
	n := needle(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	haystack := make([]byte, 512)
	for i := range haystack {
		haystack[i] = 'a'
	}
	score, _ := s.scoreLane(n, haystack, false)
	if score > maxScore {
		t.Errorf("score = %d, exceeds maxScore %d", score, maxScore)
	}
}

// Monotone bonus: enabling a previously-zero bonus never decreases a
// match's score.
func TestScoreMonotoneBonus(t *testing.T) {
	base := params.DefaultParams()
	base.DelimiterBonus = 0
	withBonus := params.DefaultParams()

	n := needle(t, "hw")
	haystack := []byte("hello_world")

	sBase := New(base)
	sBonus := New(withBonus)

	scoreBase, _ := sBase.scoreLane(n, haystack, false)
	scoreBonus, _ := sBonus.scoreLane(n, haystack, false)

	if scoreBonus < scoreBase {
		t.Errorf("enabling delimiter bonus decreased score: %d -> %d", scoreBase, scoreBonus)
	}
}

// Width and lane invariance: the per-lane function takes no lane index
// or vector width parameter at all, so scoring the same haystack twice
// (standing in for two different lane assignments/vector widths) is
// definitionally identical. This test pins that down as a
// regression-proofing tripwire rather than to prove something already
// true by construction.
func TestScoreWidthAndLaneInvariance(t *testing.T) {
	n := needle(t, "deadbeef")
	haystack := []byte("a_deadbeef_file.go")

	first := New(params.DefaultParams())
	second := New(params.DefaultParams())

	s1, t1 := first.scoreLane(n, haystack, true)
	s2, t2 := second.scoreLane(n, haystack, true)
	if s1 != s2 || t1 != t2 {
		t.Errorf("scoreLane not deterministic across Scorer instances: (%d,%d) vs (%d,%d)", s1, t1, s2, t2)
	}
}
