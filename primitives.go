package bitcodec

import "fmt"

// BitsN is the primitive codec for a fixed-width raw Bits payload: encode
// requires the input to be exactly k bits long; decode consumes the
// leading k bits of the input as-is. k=0 is valid and is the identity.
// Negative k is a programmer error, rejected at construction time.
func BitsN(k int) Codec[Bits] {
	if k < 0 {
		panic(fmt.Sprintf("bitcodec: BitsN: negative width %d", k))
	}
	return createRaw(
		func(v Bits) (Bits, error) {
			if v.Len() != k {
				return Bits{}, encErr[Bits](ErrOutOfRange, fmt.Sprintf("expected exactly %d bits, got %d", k, v.Len()), v)
			}
			return v, nil
		},
		func(b Bits) (Bits, Bits, error) {
			prefix, suffix, ok := b.Split(k)
			if !ok {
				return Bits{}, b, decErr(ErrInsufficientBits, fmt.Sprintf("need %d bits, have %d", k, b.Len()), b)
			}
			return prefix, suffix, nil
		},
	)
}

// Bit is BitsN(1).
func Bit() Codec[Bits] { return BitsN(1) }

// BytesN is BitsN(8*k): a codec for exactly k bytes of raw Bits.
func BytesN(k int) Codec[Bits] {
	if k < 0 {
		panic(fmt.Sprintf("bitcodec: BytesN: negative count %d", k))
	}
	return BitsN(8 * k)
}

// Byte is BytesN(1).
func Byte() Codec[Bits] { return BytesN(1) }

// Uint is the primitive codec for a k-bit unsigned big-endian integer.
func Uint(k int) Codec[uint64] {
	if k < 0 || k > 64 {
		panic(fmt.Sprintf("bitcodec: Uint: width %d out of [0,64]", k))
	}
	return createRaw(
		func(v uint64) (Bits, error) {
			bs, ok := FromUint(v, k)
			if !ok {
				return Bits{}, encErr[uint64](ErrOutOfRange, fmt.Sprintf("%d does not fit in %d unsigned bits", v, k), v)
			}
			return bs, nil
		},
		func(b Bits) (uint64, Bits, error) {
			prefix, suffix, ok := b.Split(k)
			if !ok {
				return 0, b, decErr(ErrInsufficientBits, fmt.Sprintf("need %d bits, have %d", k, b.Len()), b)
			}
			return prefix.ToUint(k), suffix, nil
		},
	)
}

// Int is the primitive codec for a k-bit two's-complement big-endian
// signed integer.
func Int(k int) Codec[int64] {
	if k < 1 || k > 64 {
		panic(fmt.Sprintf("bitcodec: Int: width %d out of [1,64]", k))
	}
	return createRaw(
		func(v int64) (Bits, error) {
			bs, ok := FromInt(v, k)
			if !ok {
				return Bits{}, encErr[int64](ErrOutOfRange, fmt.Sprintf("%d does not fit in %d signed bits", v, k), v)
			}
			return bs, nil
		},
		func(b Bits) (int64, Bits, error) {
			prefix, suffix, ok := b.Split(k)
			if !ok {
				return 0, b, decErr(ErrInsufficientBits, fmt.Sprintf("need %d bits, have %d", k, b.Len()), b)
			}
			return prefix.ToInt(k), suffix, nil
		},
	)
}

// Bool is the one-bit codec: true <-> <1>, false <-> <0>.
func Bool() Codec[bool] {
	return Convert(Uint(1),
		func(u uint64) (bool, error) { return u != 0, nil },
		func(v bool) (uint64, error) {
			if v {
				return 1, nil
			}
			return 0, nil
		},
	)
}

// Constant accepts (encode) only v and emits b; decode matches a prefix
// exactly equal to b and yields v. On a decode mismatch the failure
// remainder is always the original input bits.
func Constant[V comparable](v V, b Bits) Codec[V] {
	return createRaw(
		func(in V) (Bits, error) {
			if in != v {
				return Bits{}, encErr[V](ErrPredicateRejected, "value does not match constant", in)
			}
			return b, nil
		},
		func(in Bits) (V, Bits, error) {
			prefix, suffix, ok := in.Split(b.Len())
			if !ok || !prefix.Equal(b) {
				var zero V
				return zero, in, decErr(ErrPredicateRejected, "input does not match expected constant bits", in)
			}
			return v, suffix, nil
		},
	)
}

// Value accepts only v and emits no bits; decode always yields v without
// consuming any input. Equivalent to Constant(v, EmptyBits) except that
// its decode never fails.
func Value[V comparable](v V) Codec[V] {
	return createRaw(
		func(in V) (Bits, error) {
			if in != v {
				return Bits{}, encErr[V](ErrPredicateRejected, "value does not match", in)
			}
			return EmptyBits, nil
		},
		func(in Bits) (V, Bits, error) { return v, in, nil },
	)
}

// Empty is a codec for the empty list: value([]).
func Empty[E any]() Codec[[]E] {
	return Create(
		func(in []E) (Bits, error) {
			if len(in) != 0 {
				return Bits{}, encErr[[]E](ErrPredicateRejected, "value is not empty", in)
			}
			return EmptyBits, nil
		},
		func(in Bits) ([]E, Bits, error) { return []E{}, in, nil },
	)
}

// unit is the nothing() sentinel payload type.
type unit struct{}

// Unit is the zero value of the sentinel type returned by Nothing.
var Unit = unit{}

// Nothing is value(null): the null/unit sentinel codec.
func Nothing() Codec[unit] { return Value(Unit) }

// Fail always returns Err in both directions, with one message shared by
// both, or two independent messages for encode/decode respectively.
func Fail[V any](msgs ...string) Codec[V] {
	encMsg, decMsg := "fail", "fail"
	switch len(msgs) {
	case 1:
		encMsg, decMsg = msgs[0], msgs[0]
	case 2:
		encMsg, decMsg = msgs[0], msgs[1]
	}
	return createRaw(
		func(v V) (Bits, error) {
			return Bits{}, encErr[V](nil, encMsg, v)
		},
		func(b Bits) (V, Bits, error) {
			var zero V
			return zero, b, decErr(nil, decMsg, b)
		},
	)
}

// BitsRemaining: encode-side always emits no bits for any value; decode
// yields true if the input is non-empty, false otherwise, consuming
// nothing either way. Used by List/Done to test for exhaustion without
// destructively consuming input.
func BitsRemaining() Codec[bool] {
	return createRaw(
		func(bool) (Bits, error) { return EmptyBits, nil },
		func(b Bits) (bool, Bits, error) { return !b.IsEmpty(), b, nil },
	)
}
