package score

import (
	"testing"

	"github.com/piigate/piigate/internal/types"
)

func of(cat types.Category, n int) []types.Match {
	ms := make([]types.Match, n)
	for i := range ms {
		ms[i] = types.Match{Category: cat, Start: i * 10, End: i*10 + 5}
	}
	return ms
}

func TestEmptySetScoresZero(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestSingleLowWeightMatchIsModest(t *testing.T) {
	got := Score(of(types.CatEmail, 1)) // R=0.5 -> 15
	if got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
}

func TestSingleRRNDominates(t *testing.T) {
	rrn := Score(of(types.CatRRN, 1))     // R=1.0 -> 28
	email := Score(of(types.CatEmail, 1)) // R=0.5 -> 15
	if rrn <= email {
		t.Fatalf("expected RRN score %d > EMAIL score %d", rrn, email)
	}
}

func TestMonotonicInMatchCount(t *testing.T) {
	prev := 0
	for n := 1; n <= 40; n++ {
		got := Score(of(types.CatPhone, n))
		if got < prev {
			t.Fatalf("score decreased at n=%d: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestSaturatesAtHundred(t *testing.T) {
	if got := Score(of(types.CatRRN, 50)); got != 100 {
		t.Fatalf("expected saturation at 100, got %d", got)
	}
}

func TestKnownCurvePoints(t *testing.T) {
	// R=1.1 (one phone + one email): 100*(1-e^(-1.1/3)) = 30.68 -> 31
	ms := append(of(types.CatPhone, 1), of(types.CatEmail, 1)...)
	if got := Score(ms); got != 31 {
		t.Fatalf("expected 31, got %d", got)
	}
	// R=1.9 (one RRN + one card): 46.92 -> 47, below the block threshold.
	ms = append(of(types.CatRRN, 1), of(types.CatCard, 1)...)
	if got := Score(ms); got != 47 {
		t.Fatalf("expected 47, got %d", got)
	}
	// R=3.8 (RRN+CARD+ACCOUNT+PHONE+EMAIL): 71.83 -> 72, blocks.
	ms = append(ms, of(types.CatAccount, 1)...)
	ms = append(ms, of(types.CatPhone, 1)...)
	ms = append(ms, of(types.CatEmail, 1)...)
	if got := Score(ms); got < BlockThreshold {
		t.Fatalf("expected blocking score, got %d", got)
	}
}

func TestUnknownExternalCategoryFallbackWeight(t *testing.T) {
	ms := []types.Match{{Category: types.Category("PASSPORT"), Start: 0, End: 5}}
	if got := Score(ms); got <= 0 {
		t.Fatalf("expected positive score for unknown category, got %d", got)
	}
}
