package bitcodec

import (
	"strings"
	"testing"
)

func TestBitsStringIncludesBitCount(t *testing.T) {
	b := NewBits([]byte{0xDE, 0xAD}, 16)
	s := b.String()
	if !strings.Contains(s, "16 bits") {
		t.Fatalf("String() = %q, want it to mention the bit count", s)
	}
}

func TestBitsDescribeIncludesExactBitCount(t *testing.T) {
	b := NewBits(make([]byte, 4), 32)
	s := b.Describe()
	if !strings.Contains(s, "32") {
		t.Fatalf("Describe() = %q, want it to mention the exact bit count", s)
	}
}
