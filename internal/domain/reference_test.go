package domain

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

var referenceFormat = regexp.MustCompile(`^PnD-[A-Za-z0-9_-]{1,6}-\d+$`)

func TestNewReference(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	ref := NewReference("8fa3bc71d2", at)

	want := Reference(fmt.Sprintf("PnD-8fa3bc-%d", at.UnixMilli()))
	if ref != want {
		t.Errorf("expected %s, got %s", want, ref)
	}

	if !referenceFormat.MatchString(ref.String()) {
		t.Errorf("reference %s does not match expected format", ref)
	}
}

func TestNewReferenceShortSenderID(t *testing.T) {
	at := time.Now()

	ref := NewReference("ab1", at)

	want := Reference(fmt.Sprintf("PnD-ab1-%d", at.UnixMilli()))
	if ref != want {
		t.Errorf("expected %s, got %s", want, ref)
	}
}

func TestNewReferenceIsDeterministic(t *testing.T) {
	at := time.Now()

	if NewReference("sender", at) != NewReference("sender", at) {
		t.Error("same inputs must produce the same reference")
	}

	if NewReference("sender", at) == NewReference("sender", at.Add(time.Millisecond)) {
		t.Error("different millis must produce different references")
	}
}
