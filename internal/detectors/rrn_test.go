package detectors

import "testing"

func TestRRNValid(t *testing.T) {
	ms := RRN("주민등록번호는 901201-1234560 입니다")
	if len(ms) != 1 {
		t.Fatalf("expected 1 RRN, got %d", len(ms))
	}
	if ms[0].Value != "901201-1234560" {
		t.Fatalf("unexpected value: %q", ms[0].Value)
	}
}

func TestRRNInvalidMonth(t *testing.T) {
	// Month 13 fails the date block check even though the shape matches.
	if ms := RRN("871301-1234567"); len(ms) != 0 {
		t.Fatalf("expected rejection, got %v", ms)
	}
}

func TestRRNBadChecksum(t *testing.T) {
	if ms := RRN("901201-1234561"); len(ms) != 0 {
		t.Fatalf("expected checksum rejection, got %v", ms)
	}
}

func TestRRNGenderDigitOutOfClass(t *testing.T) {
	// The pattern itself requires the 7th digit to be 1-4.
	if ms := RRN("901201-5234560"); len(ms) != 0 {
		t.Fatalf("expected no match, got %v", ms)
	}
}
