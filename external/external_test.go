package external

import "testing"

type record struct {
	Name string `cbor:"name" msgpack:"name"`
	Age  int    `cbor:"age" msgpack:"age"`
}

func TestCBORBlobRoundTrip(t *testing.T) {
	c := CBORBlob[record](true)
	in := record{Name: "ada", Age: 36}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, rem, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !rem.IsEmpty() {
		t.Fatalf("expected no remainder, got %d bits", rem.Len())
	}
	if got != in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}

func TestMsgpackBlobRoundTrip(t *testing.T) {
	c := MsgpackBlob[record]()
	in := record{Name: "grace", Age: 85}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, rem, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !rem.IsEmpty() {
		t.Fatalf("expected no remainder, got %d bits", rem.Len())
	}
	if got != in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}
