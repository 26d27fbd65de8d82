package bitcodec

import (
	"errors"
	"testing"
)

func TestUint8RoundTrip(t *testing.T) {
	c := Uint(8)
	b, err := c.Encode(198)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v, rem, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v != 198 || !rem.IsEmpty() {
		t.Fatalf("got v=%d rem=%d, want 198/0", v, rem.Len())
	}
}

func TestUintRejectsOutOfRangeWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Uint(65) should panic: width exceeds 64")
		}
	}()
	Uint(65)
}

func TestUintEncodeRejectsOverflow(t *testing.T) {
	c := Uint(4)
	_, err := c.Encode(16) // needs 5 bits
	if err == nil {
		t.Fatal("expected an error encoding 16 into a 4-bit field")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestIntRoundTripNegative(t *testing.T) {
	c := Int(8)
	b, err := c.Encode(-1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := b.ToUint(8); got != 0xFF {
		t.Fatalf("-1 in 8-bit two's complement should be 0xFF, got %#x", got)
	}
	v, _, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v != -1 {
		t.Fatalf("got v=%d, want -1", v)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	c := Bool()
	for _, want := range []bool{true, false} {
		b, err := c.Encode(want)
		if err != nil {
			t.Fatalf("Encode(%v): %v", want, err)
		}
		if b.Len() != 1 {
			t.Fatalf("Bool codec should emit exactly 1 bit, got %d", b.Len())
		}
		got, rem, err := c.Decode(b)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != want || !rem.IsEmpty() {
			t.Fatalf("got %v/%d, want %v/0", got, rem.Len(), want)
		}
	}
}

func TestConstant(t *testing.T) {
	marker := NewBits([]byte{0xCA}, 8)
	c := Constant("hello", marker)

	b, err := c.Encode("hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !b.Equal(marker) {
		t.Fatal("Constant should emit exactly the fixed bits")
	}

	if _, err := c.Encode("world"); err == nil {
		t.Fatal("Constant should reject any value other than the fixed one")
	}

	v, rem, err := c.Decode(marker)
	if err != nil || v != "hello" || !rem.IsEmpty() {
		t.Fatalf("Decode(marker) = %q, %d, %v", v, rem.Len(), err)
	}

	wrong := NewBits([]byte{0xFF}, 8)
	if _, _, err := c.Decode(wrong); err == nil {
		t.Fatal("Constant should reject bits that don't match")
	}
}

func TestValueConsumesNoBits(t *testing.T) {
	c := Value(7)
	b, err := c.Encode(7)
	if err != nil || !b.IsEmpty() {
		t.Fatalf("Value should encode to zero bits, got len=%d err=%v", b.Len(), err)
	}
	in := NewBits([]byte{0xFF}, 8)
	v, rem, err := c.Decode(in)
	if err != nil || v != 7 || !rem.Equal(in) {
		t.Fatalf("Value.Decode should yield the constant and consume nothing")
	}
}

func TestFailAlwaysErrors(t *testing.T) {
	c := Fail[int]("no good")
	if _, err := c.Encode(1); err == nil {
		t.Fatal("Fail should always error on encode")
	}
	if _, _, err := c.Decode(EmptyBits); err == nil {
		t.Fatal("Fail should always error on decode")
	}
}

func TestBitsRemaining(t *testing.T) {
	c := BitsRemaining()
	got, rem, err := c.Decode(EmptyBits)
	if err != nil || got != false || !rem.IsEmpty() {
		t.Fatalf("on empty input, BitsRemaining should report false and consume nothing")
	}
	nonEmpty := NewBits([]byte{0x01}, 8)
	got, rem, err = c.Decode(nonEmpty)
	if err != nil || got != true || !rem.Equal(nonEmpty) {
		t.Fatalf("on non-empty input, BitsRemaining should report true and consume nothing")
	}
}

func TestCombineUint8Pair(t *testing.T) {
	c := Combine(Uint(8), Uint(8))
	b, err := c.Encode(Pair[uint64, uint64]{First: 198, Second: 2})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := b.Bytes(); len(got) != 2 || got[0] != 198 || got[1] != 2 {
		t.Fatalf("got bytes %v, want [198 2]", got)
	}
	v, rem, err := c.Decode(b)
	if err != nil || v.First != 198 || v.Second != 2 || !rem.IsEmpty() {
		t.Fatalf("round trip failed: v=%+v rem=%d err=%v", v, rem.Len(), err)
	}
}
