package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	if got := AtoiDefault("42", 0); got != 42 {
		t.Fatalf("AtoiDefault(42) = %d", got)
	}
	if got := AtoiDefault("", 10); got != 10 {
		t.Fatalf("AtoiDefault(empty) = %d", got)
	}
	if got := AtoiDefault("x", 5); got != 5 {
		t.Fatalf("AtoiDefault(garbage) = %d", got)
	}
	if got := AtoiDefault("-3", 5); got != -3 {
		t.Fatalf("AtoiDefault(-3) = %d", got)
	}
}
