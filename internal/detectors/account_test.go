package detectors

import "testing"

func TestAccountKeywordCue(t *testing.T) {
	ms := Account("계좌번호 123-456-7890123 으로 입금하세요")
	if len(ms) == 0 {
		t.Fatal("expected account match after keyword cue")
	}
	if ms[0].Value != "123-456-7890123" {
		t.Fatalf("unexpected value: %q", ms[0].Value)
	}
}

func TestAccountBareShape(t *testing.T) {
	ms := Account("123-45-678901")
	if len(ms) != 1 {
		t.Fatalf("expected 1 bare account, got %d", len(ms))
	}
}

func TestAccountMinimumDigits(t *testing.T) {
	// 9 digits only: below the >=10 digit floor.
	if ms := Account("계좌 123-45-6789"); len(ms) != 0 {
		t.Fatalf("expected rejection of short account, got %v", ms)
	}
}

func TestAccountEnglishCue(t *testing.T) {
	ms := Account("Account: 110-234-567890")
	if len(ms) == 0 {
		t.Fatal("expected match after english cue")
	}
}
