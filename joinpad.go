package bitcodec

import "fmt"

// Join converts a codec that yields a list of Bits into a codec that
// yields one concatenated Bits, and inversely splits a Bits value into
// equal groups of groupSize bits. Encoding a Bits value whose length is
// not a multiple of groupSize fails outright rather than allowing a short
// final group.
func Join(listC Codec[[]Bits], groupSize int) Codec[Bits] {
	return Convert(listC,
		func(parts []Bits) (Bits, error) {
			var out Bits
			for _, p := range parts {
				out = Concat(out, p)
			}
			return out, nil
		},
		func(b Bits) ([]Bits, error) {
			if groupSize <= 0 {
				return nil, fmt.Errorf("join: groupSize must be positive, got %d", groupSize)
			}
			if b.Len()%groupSize != 0 {
				return nil, fmt.Errorf("%w: %d bits is not a multiple of group size %d", ErrDivisibility, b.Len(), groupSize)
			}
			n := b.Len() / groupSize
			out := make([]Bits, n)
			rem := b
			for i := 0; i < n; i++ {
				var prefix Bits
				var ok bool
				prefix, rem, ok = rem.Split(groupSize)
				if !ok {
					return nil, fmt.Errorf("%w: short group while splitting", ErrInsufficientBits)
				}
				out[i] = prefix
			}
			return out, nil
		},
	)
}

// Pad appends k zero bits after c's encoded output, and on decode requires
// (rather than silently discarding) the k bits following c's consumption
// to be zero.
func Pad[V any](c Codec[V], k int) Codec[V] {
	if k < 0 {
		panic(fmt.Sprintf("bitcodec: Pad: negative width %d", k))
	}
	zeroBits := NewBits(make([]byte, byteLen(k)), k)
	return createRaw(
		func(v V) (Bits, error) {
			bs, err := c.Encode(v)
			if err != nil {
				return Bits{}, err
			}
			return Concat(bs, zeroBits), nil
		},
		func(b Bits) (V, Bits, error) {
			v, rem, err := c.Decode(b)
			if err != nil {
				return v, rem, err
			}
			padBits, rem2, ok := rem.Split(k)
			if !ok {
				var zero V
				return zero, rem, decErr(ErrInsufficientBits, fmt.Sprintf("need %d padding bits, have %d", k, rem.Len()), rem)
			}
			if padBits.PopCount() != 0 {
				var zero V
				return zero, rem, decErr(ErrPredicateRejected, "padding bits were not all zero", rem)
			}
			return v, rem2, nil
		},
	)
}
