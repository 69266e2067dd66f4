package detectors

import "testing"

func TestEmailBasic(t *testing.T) {
	ms := Email("문의: help@bank.com 으로 보내주세요")
	if len(ms) != 1 {
		t.Fatalf("expected 1 email, got %d", len(ms))
	}
	if ms[0].Value != "help@bank.com" {
		t.Fatalf("unexpected value: %q", ms[0].Value)
	}
}

func TestEmailSubdomainAndPlus(t *testing.T) {
	ms := Email("user.name+tag@mail.example.co.kr")
	if len(ms) != 1 {
		t.Fatalf("expected 1 email, got %d", len(ms))
	}
}

func TestEmailRejectsBareDomain(t *testing.T) {
	if ms := Email("visit example.com today"); len(ms) != 0 {
		t.Fatalf("expected no match, got %v", ms)
	}
}
