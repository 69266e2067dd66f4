package reconcile

import (
	"reflect"
	"testing"

	"github.com/piigate/piigate/internal/types"
)

func mk(cat types.Category, start, end int, conf float64, src types.Source) types.Match {
	return types.Match{Category: cat, Start: start, End: end, Confidence: conf, Source: src}
}

func assertNoOverlap(t *testing.T, ms []types.Match) {
	t.Helper()
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Overlaps(ms[i]) {
			t.Fatalf("overlap between %+v and %+v", ms[i-1], ms[i])
		}
		if ms[i-1].Start == ms[i].Start && ms[i-1].End == ms[i].End {
			t.Fatalf("duplicate span at %d", i)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Reconcile(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestDisjointKept(t *testing.T) {
	in := []types.Match{
		mk(types.CatEmail, 10, 20, 0.95, types.SourcePattern),
		mk(types.CatPhone, 0, 5, 0.90, types.SourcePattern),
	}
	got := Reconcile(in)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 10 {
		t.Fatalf("expected (start,end) order, got %v", got)
	}
}

func TestAdjacentSpansAreNotOverlapping(t *testing.T) {
	in := []types.Match{
		mk(types.CatPhone, 0, 5, 0.90, types.SourcePattern),
		mk(types.CatEmail, 5, 9, 0.95, types.SourcePattern),
	}
	if got := Reconcile(in); len(got) != 2 {
		t.Fatalf("adjacent spans must both survive, got %v", got)
	}
}

func TestIdenticalSpanHigherConfidenceWins(t *testing.T) {
	in := []types.Match{
		mk(types.CatPhone, 0, 13, 0.90, types.SourcePattern),
		mk(types.CatCard, 0, 13, 0.97, types.SourcePattern),
	}
	got := Reconcile(in)
	if len(got) != 1 || got[0].Category != types.CatCard {
		t.Fatalf("expected CARD to win identical span, got %v", got)
	}
}

func TestIdenticalSpanTieKeepsEarlierInserted(t *testing.T) {
	in := []types.Match{
		mk(types.CatPhone, 0, 13, 0.90, types.SourcePattern),
		mk(types.CatAccount, 0, 13, 0.90, types.SourceExternal),
	}
	got := Reconcile(in)
	if len(got) != 1 || got[0].Category != types.CatPhone {
		t.Fatalf("expected earlier-inserted PHONE on tie, got %v", got)
	}
}

func TestPartialOverlapHigherConfidenceWins(t *testing.T) {
	in := []types.Match{
		mk(types.CatAccount, 0, 14, 0.85, types.SourcePattern),
		mk(types.CatRRN, 5, 19, 0.99, types.SourcePattern),
	}
	got := Reconcile(in)
	if len(got) != 1 || got[0].Category != types.CatRRN {
		t.Fatalf("expected RRN to evict overlapping ACCOUNT, got %v", got)
	}
}

func TestPartialOverlapNoMerge(t *testing.T) {
	// The loser is dropped whole; span boundaries are never merged.
	in := []types.Match{
		mk(types.CatAccount, 0, 14, 0.85, types.SourcePattern),
		mk(types.CatRRN, 5, 19, 0.99, types.SourceExternal),
	}
	got := Reconcile(in)
	if got[0].Start != 5 || got[0].End != 19 {
		t.Fatalf("expected winner span untouched, got %+v", got[0])
	}
}

func TestChainedOverlapIsGreedy(t *testing.T) {
	// A(0,10 conf .8) B(5,15 conf .9) C(12,20 conf .8):
	// B evicts A, C is disjoint from B? no: C overlaps B (12<15), loses.
	// The greedy result is {B} plus nothing else, even though {A, C} would
	// carry more total confidence.
	in := []types.Match{
		mk(types.CatName, 0, 10, 0.8, types.SourcePattern),
		mk(types.CatAccount, 5, 15, 0.9, types.SourcePattern),
		mk(types.CatName, 12, 20, 0.8, types.SourcePattern),
	}
	got := Reconcile(in)
	if len(got) != 1 || got[0].Category != types.CatAccount {
		t.Fatalf("expected greedy single winner, got %v", got)
	}
}

func TestIdempotent(t *testing.T) {
	in := []types.Match{
		mk(types.CatPhone, 4, 17, 0.90, types.SourcePattern),
		mk(types.CatPhone, 4, 17, 0.90, types.SourcePattern),
		mk(types.CatCard, 4, 17, 0.97, types.SourcePattern),
		mk(types.CatEmail, 21, 34, 0.95, types.SourcePattern),
		mk(types.CatName, 30, 40, 0.75, types.SourceExternal),
	}
	once := Reconcile(in)
	twice := Reconcile(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
	assertNoOverlap(t, once)
}

func TestExternalAndPatternMerge(t *testing.T) {
	// External NAME overlapping nothing joins the set; external duplicate of
	// a pattern phone with lower confidence loses.
	in := []types.Match{
		mk(types.CatPhone, 0, 13, 0.90, types.SourcePattern),
		mk(types.CatPhone, 0, 13, 0.70, types.SourceExternal),
		mk(types.CatName, 20, 23, 0.80, types.SourceExternal),
	}
	got := Reconcile(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	if got[0].Source != types.SourcePattern {
		t.Fatalf("expected pattern phone to win, got %+v", got[0])
	}
	if got[1].Category != types.CatName || got[1].Source != types.SourceExternal {
		t.Fatalf("expected external name kept, got %+v", got[1])
	}
}
