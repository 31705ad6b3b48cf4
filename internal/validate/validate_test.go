package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestCandidateMatch(t *testing.T) {
	res, err := Candidate(DefaultPattern, "", "ABCDEFGH12")
	if err != nil {
		t.Fatalf("Candidate failed: %v", err)
	}
	if !res.OK {
		t.Errorf("expected match, got message %q", res.Message)
	}
}

func TestCandidateNoMatchGenericMessage(t *testing.T) {
	res, err := Candidate(DefaultPattern, "", "short")
	if err != nil {
		t.Fatalf("Candidate failed: %v", err)
	}
	if res.OK {
		t.Fatal("expected non-match")
	}
	if !strings.Contains(res.Message, DefaultPattern) {
		t.Errorf("message %q does not name the pattern", res.Message)
	}
}

func TestCandidateNoMatchCustomMessage(t *testing.T) {
	res, err := Candidate(DefaultPattern, "too short", "short")
	if err != nil {
		t.Fatalf("Candidate failed: %v", err)
	}
	if res.OK {
		t.Fatal("expected non-match")
	}
	if res.Message != "too short" {
		t.Errorf("message = %q, want %q", res.Message, "too short")
	}
}

func TestCandidateInvalidPattern(t *testing.T) {
	_, err := Candidate("[invalid(", "", "x")
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("error %v is not ErrInvalidPattern", err)
	}
	if !strings.Contains(err.Error(), "[invalid(") {
		t.Errorf("error %q does not name the pattern", err.Error())
	}
	if !strings.Contains(err.Error(), "error parsing regexp") {
		t.Errorf("error %q does not carry the parser diagnostic", err.Error())
	}
}

func TestCandidateFullMatchOnly(t *testing.T) {
	// A substring match must not count: the value has to match end to end.
	res, err := Candidate(DefaultPattern, "", "ABCDEFGH12 !!")
	if err != nil {
		t.Fatalf("Candidate failed: %v", err)
	}
	if res.OK {
		t.Error("expected non-match for value with trailing junk")
	}
}

func TestCandidateIdempotent(t *testing.T) {
	first, err := Candidate(DefaultPattern, "nope", "short")
	if err != nil {
		t.Fatalf("Candidate failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		res, err := Candidate(DefaultPattern, "nope", "short")
		if err != nil {
			t.Fatalf("Candidate failed on repeat %d: %v", i, err)
		}
		if res != first {
			t.Errorf("repeat %d: result %+v differs from first %+v", i, res, first)
		}
	}
}
