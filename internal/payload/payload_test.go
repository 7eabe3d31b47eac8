package payload

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{0, 1, 20, 1024} {
		got := Generate(length)
		if len(got) != length {
			t.Fatalf("Generate(%d) returned %d characters", length, len(got))
		}
		for i, r := range got {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("Generate(%d)[%d] = %q is outside the alphabet", length, i, r)
			}
		}
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	if got := Generate(-5); got != "" {
		t.Errorf("Expected empty payload, got '%s'", got)
	}
}

func TestGenerate_Independent(t *testing.T) {
	// 62^20 possibilities: a collision here means a broken source.
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		p := Generate(20)
		if _, dup := seen[p]; dup {
			t.Fatalf("Generate produced a repeated payload '%s'", p)
		}
		seen[p] = struct{}{}
	}
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	counts := make(map[rune]int)
	for _, r := range Generate(62 * 200) {
		counts[r]++
	}
	if len(counts) != len(Alphabet) {
		t.Errorf("Expected all %d symbols to appear, saw %d", len(Alphabet), len(counts))
	}
}

func TestGenerate_UTF8RoundTrip(t *testing.T) {
	p := Generate(64)
	encoded := []byte(p)
	if !utf8.Valid(encoded) {
		t.Fatal("Encoded payload is not valid UTF-8")
	}
	if len(encoded) != len(p) {
		t.Errorf("Expected one byte per character, got %d bytes for %d characters", len(encoded), len(p))
	}
	if string(encoded) != p {
		t.Error("UTF-8 round trip changed the payload")
	}
}
