package external

import (
	"testing"

	"github.com/unkn0wn-root/bitcodec"
	"google.golang.org/protobuf/encoding/protowire"
)

// varintEncode builds a protobuf-compatible base-128 varint directly out of
// the bit algebra: each byte is a continuation flag followed by 7 payload
// bits, groups ordered least-significant-first per the wire format. This
// never ships as a public codec (LengthPrefixed framing covers the blob
// codecs above); it exists to confirm the algebra can reproduce a
// real-world byte-oriented format bit-for-bit.
func varintEncode(n uint64) bitcodec.Bits {
	var out bitcodec.Bits
	for {
		group := n & 0x7F
		n >>= 7
		more := n != 0
		flag := uint64(0)
		if more {
			flag = 1
		}
		flagBits, _ := bitcodec.FromUint(flag, 1)
		groupBits, _ := bitcodec.FromUint(group, 7)
		out = bitcodec.Concat(out, bitcodec.Concat(flagBits, groupBits))
		if !more {
			return out
		}
	}
}

func varintDecode(b bitcodec.Bits) (uint64, bitcodec.Bits, error) {
	var v uint64
	shift := uint(0)
	rem := b
	for {
		byteBits, next, ok := rem.Split(8)
		if !ok {
			return 0, b, bitcodec.ErrInsufficientBits
		}
		flagBits, groupBits, _ := byteBits.Split(1)
		v |= groupBits.ToUint(7) << shift
		shift += 7
		rem = next
		if flagBits.ToUint(1) == 0 {
			return v, rem, nil
		}
	}
}

func TestVarintMatchesProtowireEncoding(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		want := protowire.AppendVarint(nil, v)
		got := varintEncode(v)
		if got.Len() != 8*len(want) {
			t.Fatalf("value %d: got %d bits, want %d", v, got.Len(), 8*len(want))
		}
		if gotBytes := got.Bytes(); string(gotBytes) != string(want) {
			t.Fatalf("value %d: got bytes %x, want %x", v, gotBytes, want)
		}
	}
}

func TestVarintDecodeMatchesProtowire(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, ^uint64(0)}
	for _, v := range values {
		wireBytes := protowire.AppendVarint(nil, v)
		in := bitcodec.NewBits(wireBytes, 8*len(wireBytes))
		got, rem, err := varintDecode(in)
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("value %d: decoded %d", v, got)
		}
		if !rem.IsEmpty() {
			t.Fatalf("value %d: expected no remainder, got %d bits", v, rem.Len())
		}
		wantV, wantN := protowire.ConsumeVarint(wireBytes)
		if wantV != v || wantN != len(wireBytes) {
			t.Fatalf("sanity check against protowire.ConsumeVarint failed for %d", v)
		}
	}
}
