package mask

import (
	"strings"
	"testing"

	"github.com/piigate/piigate/internal/detectors"
	"github.com/piigate/piigate/internal/reconcile"
	"github.com/piigate/piigate/internal/types"
	"github.com/piigate/piigate/internal/whitelist"
)

func TestApplyEmpty(t *testing.T) {
	if got := Apply("그대로", nil); got != "그대로" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestApplyReplacesSpansWithTokens(t *testing.T) {
	text := "문의는 010-9999-8888 또는 help@bank.com 입니다."
	set := reconcile.Reconcile(detectors.Extract(text, whitelist.Empty()))
	got := Apply(text, set)

	if !strings.Contains(got, "<PHONE>") || !strings.Contains(got, "<EMAIL>") {
		t.Fatalf("expected both tokens, got %q", got)
	}
	if strings.Contains(got, "010-9999-8888") || strings.Contains(got, "help@bank.com") {
		t.Fatalf("original values leaked: %q", got)
	}
}

func TestApplyPreservesSurroundingText(t *testing.T) {
	text := "문의는 010-9999-8888 또는 help@bank.com 입니다."
	set := reconcile.Reconcile(detectors.Extract(text, whitelist.Empty()))
	got := Apply(text, set)
	if got != "문의는 <PHONE> 또는 <EMAIL> 입니다." {
		t.Fatalf("unexpected masked text: %q", got)
	}
}

func TestApplyDescendingOrderKeepsOffsetsStable(t *testing.T) {
	// Two spans; masking the later one first must not shift the earlier one.
	text := "abc 0123456789 def 9876543210 ghi"
	set := []types.Match{
		{Category: types.CatAccount, Value: "0123456789", Start: 4, End: 14, Confidence: 0.85, Source: types.SourcePattern},
		{Category: types.CatAccount, Value: "9876543210", Start: 19, End: 29, Confidence: 0.85, Source: types.SourcePattern},
	}
	got := Apply(text, set)
	if got != "abc <ACCOUNT> def <ACCOUNT> ghi" {
		t.Fatalf("unexpected masked text: %q", got)
	}
}

func TestApplyIgnoresOutOfBoundsSpan(t *testing.T) {
	set := []types.Match{{Category: types.CatPhone, Start: 5, End: 50}}
	if got := Apply("short", set); got != "short" {
		t.Fatalf("expected out-of-bounds span skipped, got %q", got)
	}
}

func TestApplyHangulOffsets(t *testing.T) {
	text := "주민등록번호 901201-1234560 끝"
	set := reconcile.Reconcile(detectors.Extract(text, whitelist.Empty()))
	got := Apply(text, set)
	if !strings.HasPrefix(got, "주민등록번호 ") || !strings.HasSuffix(got, " 끝") {
		t.Fatalf("surrounding Hangul corrupted: %q", got)
	}
	if strings.Contains(got, "901201-1234560") {
		t.Fatalf("RRN leaked: %q", got)
	}
}
