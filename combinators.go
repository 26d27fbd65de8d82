package bitcodec

import "fmt"

// Pair is the two-element tuple payload produced by Combine.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Combine encodes a Pair(a, b) by encoding each half in order and
// concatenating; decodes by decoding c1, then c2 over the remainder.
// First-error-wins: on encode, c1's error is reported if c1 fails,
// otherwise c2's; on decode, c1's error (with its own remainder, which for
// a failing c1 is the original input) is reported if c1 fails.
func Combine[A, B any](c1 Codec[A], c2 Codec[B]) Codec[Pair[A, B]] {
	return createRaw(
		func(v Pair[A, B]) (Bits, error) {
			b1, err := c1.Encode(v.First)
			if err != nil {
				return Bits{}, err
			}
			b2, err := c2.Encode(v.Second)
			if err != nil {
				return Bits{}, err
			}
			return Concat(b1, b2), nil
		},
		func(b Bits) (Pair[A, B], Bits, error) {
			var zero Pair[A, B]
			a, rem1, err := c1.Decode(b)
			if err != nil {
				return zero, rem1, err
			}
			bb, rem2, err := c2.Decode(rem1)
			if err != nil {
				return zero, rem2, err
			}
			return Pair[A, B]{First: a, Second: bb}, rem2, nil
		},
	)
}

// Fallback tries c1 first; if it returns an error, tries c2. Encoding and
// decoding are tried independently on their own side. On success, the
// remainder/bits come from whichever side won; on total failure, c2's
// error is reported.
func Fallback[V any](c1, c2 Codec[V]) Codec[V] {
	return createRaw(
		func(v V) (Bits, error) {
			bs, err := c1.Encode(v)
			if err == nil {
				return bs, nil
			}
			return c2.Encode(v)
		},
		func(b Bits) (V, Bits, error) {
			v, rem, err := c1.Decode(b)
			if err == nil {
				return v, rem, nil
			}
			return c2.Decode(b)
		},
	)
}

// Choice folds Fallback right-to-left over cs, with a terminal
// fail("None of the choices worked"). Choice([]) is equivalent to Fail;
// Choice([c]) is equivalent to c.
func Choice[V any](cs ...Codec[V]) Codec[V] {
	acc := createRaw(
		func(v V) (Bits, error) {
			return Bits{}, encErr[V](ErrNoChoice, "none of the choices worked", v)
		},
		func(b Bits) (V, Bits, error) {
			var zero V
			return zero, b, decErr(ErrNoChoice, "none of the choices worked", b)
		},
	)
	for i := len(cs) - 1; i >= 0; i-- {
		acc = Fallback(cs[i], acc)
	}
	return acc
}

// Optional is Fallback(c, Nothing()). "No value" is represented as
// (*V)(nil): Optional lifts c into Codec[*V] via Convert and falls back to
// a codec that always succeeds with nil, consuming and emitting no bits.
func Optional[V any](c Codec[V]) Codec[*V] {
	some := Convert(c,
		func(v V) (*V, error) { vv := v; return &vv, nil },
		func(p *V) (V, error) {
			var zero V
			if p == nil {
				return zero, fmt.Errorf("optional: from() called on nil")
			}
			return *p, nil
		},
	)
	none := pureValue[*V](nil)
	return Fallback(some, none)
}

// Peek encodes as empty bits for any value (it cannot meaningfully
// reproduce bits it never consumes) and decodes by running c's decode but
// returning the *original* input as the remainder, so no bits are
// consumed. Used to look ahead without committing.
func Peek[V any](c Codec[V]) Codec[V] {
	return createRaw(
		func(v V) (Bits, error) { return EmptyBits, nil },
		func(b Bits) (V, Bits, error) {
			v, _, err := c.Decode(b)
			if err != nil {
				var zero V
				return zero, b, err
			}
			return v, b, nil
		},
	)
}

// Convert is the functorial mapping: decode through c then apply to;
// apply from then encode through c. The caller must ensure to and from
// are mutual inverses on the domain actually used. Panics from to/from are
// caught by Create's safety net.
func Convert[A, B any](c Codec[A], to func(A) (B, error), from func(B) (A, error)) Codec[B] {
	return Create(
		func(v B) (Bits, error) {
			a, err := from(v)
			if err != nil {
				return Bits{}, encErr[B](err, "convert: from() failed", v)
			}
			return c.Encode(a)
		},
		func(b Bits) (B, Bits, error) {
			var zero B
			a, rem, err := c.Decode(b)
			if err != nil {
				return zero, rem, err
			}
			v, err := to(a)
			if err != nil {
				return zero, rem, decErr(err, "convert: to() failed", rem)
			}
			return v, rem, nil
		},
	)
}

// Then is the monadic bind: decode produces a via c, then the remainder is
// decoded with next(a). Encode of a final value v first computes the
// prefix value back(v), encodes it with c, then encodes v with
// next(back(v)) and concatenates the two results. The caller must ensure
// next(back(v)).Encode(v) succeeds whenever v is valid.
func Then[A, B any](c Codec[A], next func(A) Codec[B], back func(B) (A, error)) Codec[B] {
	return Create(
		func(v B) (Bits, error) {
			a, err := back(v)
			if err != nil {
				return Bits{}, encErr[B](err, "then: back() failed", v)
			}
			b1, err := c.Encode(a)
			if err != nil {
				return Bits{}, err
			}
			b2, err := next(a).Encode(v)
			if err != nil {
				return Bits{}, err
			}
			return Concat(b1, b2), nil
		},
		func(b Bits) (B, Bits, error) {
			var zero B
			a, rem1, err := c.Decode(b)
			if err != nil {
				return zero, rem1, err
			}
			v, rem2, err := next(a).Decode(rem1)
			if err != nil {
				return zero, rem2, err
			}
			return v, rem2, nil
		},
	)
}

// Ensure applies a post-condition pred to a decoded/encoded value in both
// directions, failing with msg if pred returns false. It is built as
// Then(c, a -> if pred(a) then Value(a) else Fail(msg), identity) so the
// check is genuinely bidirectional rather than decode-only.
func Ensure[A any](c Codec[A], pred func(A) bool, msg string) Codec[A] {
	return Then(c,
		func(a A) Codec[A] {
			if pred(a) {
				return pureValue(a)
			}
			return Fail[A](msg)
		},
		func(v A) (A, error) { return v, nil },
	)
}

// Refute is Ensure with the predicate negated: it fails when pred returns
// true.
func Refute[A any](c Codec[A], pred func(A) bool, msg string) Codec[A] {
	return Ensure(c, func(a A) bool { return !pred(a) }, msg)
}

// pureValue is a value(v)-style codec for payload types that aren't
// comparable (Ensure/Refute apply to arbitrary payload types, not just
// comparable ones). It consumes no bits and always yields the closed-over
// a.
func pureValue[A any](a A) Codec[A] {
	return createRaw(
		func(A) (Bits, error) { return EmptyBits, nil },
		func(b Bits) (A, Bits, error) { return a, b, nil },
	)
}

// Done succeeds only if no bits remain after decoding with c. Implemented
// as Combine(c, BitsRemaining()) with the trailing flag checked: if it
// reports true (more input present), decode fails with
// "there was more to parse".
func Done[A any](c Codec[A]) Codec[A] {
	paired := Combine(c, BitsRemaining())
	return Convert(paired,
		func(p Pair[A, bool]) (A, error) {
			if p.Second {
				var zero A
				return zero, fmt.Errorf("%w", ErrMoreToParse)
			}
			return p.First, nil
		},
		func(v A) (Pair[A, bool], error) {
			return Pair[A, bool]{First: v, Second: false}, nil
		},
	)
}
