package hash

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known vector for the empty string.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256Hex(""); got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestSHA256HexDeterministic(t *testing.T) {
	a := SHA256Hex("203.0.113.7")
	b := SHA256Hex("203.0.113.7")
	if a != b {
		t.Error("same input must hash identically")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}

func TestShortHex(t *testing.T) {
	full := SHA256Hex("hello")
	if got := ShortHex("hello", 12); got != full[:12] {
		t.Errorf("ShortHex = %s, want %s", got, full[:12])
	}
	if got := ShortHex("hello", 100); got != full {
		t.Errorf("oversized n should return the full hash, got %s", got)
	}
}
