package bitcodec

import "fmt"

// Bounded rejects decode attempts whose input exceeds maxBits, a bit
// budget wrapped around any Codec[V] in this algebra. maxBits <= 0
// disables the check.
func Bounded[V any](c Codec[V], maxBits int) Codec[V] {
	return createRaw(
		c.encodeFn,
		func(b Bits) (V, Bits, error) {
			if maxBits > 0 && b.Len() > maxBits {
				var zero V
				return zero, b, decErr(ErrBoundExceeded, fmt.Sprintf("input %d bits exceeds bound of %d", b.Len(), maxBits), b)
			}
			return c.Decode(b)
		},
	)
}
