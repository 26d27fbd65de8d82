package bitcodec

import "fmt"

// Codec is an invertible pair of functions operating on a single payload
// type V and the shared Bits buffer type. Codecs are values: they carry no
// mutable state and can be stored in constants, shared, and invoked
// concurrently from multiple goroutines.
type Codec[V any] struct {
	encodeFn func(V) (Bits, error)
	decodeFn func(Bits) (V, Bits, error)
}

// Create wraps encode and decode functions so that a panic raised by
// either (whether from a bug in this library or, far more likely, from a
// user-supplied predicate/converter passed to Convert/Then/Ensure/Refute)
// is recovered and surfaced as an error result instead of crashing the
// caller. Library-internal combinators generally do not need this net,
// since their own primitives already return explicit errors; Create
// exists for the boundary where user code enters the picture.
func Create[V any](encode func(V) (Bits, error), decode func(Bits) (V, Bits, error)) Codec[V] {
	return Codec[V]{
		encodeFn: func(v V) (b Bits, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = encErr[V](fmt.Errorf("%w: %v", ErrUserFault, r), "failed to encode", v)
				}
			}()
			return encode(v)
		},
		decodeFn: func(b Bits) (v V, rem Bits, err error) {
			defer func() {
				if r := recover(); r != nil {
					var zero V
					v = zero
					rem = b
					err = decErr(fmt.Errorf("%w: %v", ErrUserFault, r), "failed to decode", b)
				}
			}()
			return decode(b)
		},
	}
}

// createRaw builds a Codec without the panic-recovery net, for
// library-internal primitives/combinators whose bodies are already total
// (return errors explicitly and never panic on valid Bits/V inputs).
func createRaw[V any](encode func(V) (Bits, error), decode func(Bits) (V, Bits, error)) Codec[V] {
	return Codec[V]{encodeFn: encode, decodeFn: decode}
}

// EncodeValue encodes v using c, returning the produced bits or an error
// echoing the offending value.
func EncodeValue[V any](v V, c Codec[V]) (Bits, error) {
	return c.encodeFn(v)
}

// DecodeValue decodes bits b using c, returning the decoded value and the
// unconsumed remainder, or an error echoing the remaining input at the
// point of failure.
func DecodeValue[V any](b Bits, c Codec[V]) (V, Bits, error) {
	return c.decodeFn(b)
}

// Encode is a convenience method equivalent to EncodeValue(v, c).
func (c Codec[V]) Encode(v V) (Bits, error) { return c.encodeFn(v) }

// Decode is a convenience method equivalent to DecodeValue(b, c).
func (c Codec[V]) Decode(b Bits) (V, Bits, error) { return c.decodeFn(b) }
