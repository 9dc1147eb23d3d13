package prefilter

import "testing"

func TestByteFrequenciesTableSize(t *testing.T) {
	if len(byteFrequencies) != 256 {
		t.Fatalf("byteFrequencies should have 256 entries, got %d", len(byteFrequencies))
	}
}

func TestByteFrequenciesCommonBytes(t *testing.T) {
	if byteRank(' ') != 255 {
		t.Errorf("space should have rank 255, got %d", byteRank(' '))
	}
	if byteRank('e') < 200 {
		t.Errorf("'e' should have high rank (>200), got %d", byteRank('e'))
	}
}

func TestByteFrequenciesRareBytes(t *testing.T) {
	if byteRank('@') > 50 {
		t.Errorf("'@' should have low rank (<50), got %d", byteRank('@'))
	}
	if byteRank('Z') > 20 {
		t.Errorf("'Z' should have very low rank (<20), got %d", byteRank('Z'))
	}
}

func TestRarityOrder(t *testing.T) {
	lowered := []byte("etaoz") // 'z' is rarer than vowels/common letters
	order := rarityOrder(lowered)
	if len(order) != len(lowered) {
		t.Fatalf("expected %d indices, got %d", len(lowered), len(order))
	}
	// 'z' (index 4) must sort before 'e' (index 0): lower rank = rarer.
	zPos, ePos := -1, -1
	for pos, idx := range order {
		switch idx {
		case 4:
			zPos = pos
		case 0:
			ePos = pos
		}
	}
	if zPos >= ePos {
		t.Errorf("expected 'z' (rarer) to sort before 'e', got order %v", order)
	}
}

func TestRarityOrderEmpty(t *testing.T) {
	if order := rarityOrder(nil); len(order) != 0 {
		t.Errorf("expected empty order for empty input, got %v", order)
	}
}
