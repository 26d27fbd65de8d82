package bitcodec

import "fmt"

// Not produces a bool codec that complements another: encode/decode both
// flip the boolean to/from c's own truth value. Used to express
// TakeUntil = TakeWhile(Not(boolC), elemC).
func Not(c Codec[bool]) Codec[bool] {
	return Convert(c,
		func(b bool) (bool, error) { return !b, nil },
		func(b bool) (bool, error) { return !b, nil },
	)
}

// TakeWhile repeatedly decodes boolC; while it yields true, decodes one
// elemC and continues; when it yields false, stops with an empty tail.
// Encode emits, for each element, boolC.Encode(true) then
// elemC.Encode(elem), finally boolC.Encode(false). Both directions are
// implemented as an explicit loop, so call-stack depth does not grow with
// list length.
func TakeWhile[E any](boolC Codec[bool], elemC Codec[E]) Codec[[]E] {
	return createRaw(
		func(v []E) (Bits, error) {
			var out Bits
			trueBits, err := boolC.Encode(true)
			if err != nil {
				return Bits{}, err
			}
			for _, e := range v {
				out = Concat(out, trueBits)
				eb, err := elemC.Encode(e)
				if err != nil {
					return Bits{}, err
				}
				out = Concat(out, eb)
			}
			falseBits, err := boolC.Encode(false)
			if err != nil {
				return Bits{}, err
			}
			out = Concat(out, falseBits)
			return out, nil
		},
		func(b Bits) ([]E, Bits, error) {
			out := []E{}
			rem := b
			for {
				more, next, err := boolC.Decode(rem)
				if err != nil {
					return out, rem, err
				}
				rem = next
				if !more {
					return out, rem, nil
				}
				e, next2, err := elemC.Decode(rem)
				if err != nil {
					return out, next2, err
				}
				out = append(out, e)
				rem = next2
			}
		},
	)
}

// TakeUntil is TakeWhile with the boolean flag's meaning inverted.
func TakeUntil[E any](boolC Codec[bool], elemC Codec[E]) Codec[[]E] {
	return TakeWhile(Not(boolC), elemC)
}

// List greedily decodes elements until the input is exhausted, with no
// length prefix or continuation flag. Equivalent to
// TakeWhile(BitsRemaining(), elemC); since BitsRemaining's encode side
// emits no bits, List's encode side is simply the concatenation of each
// element's encoding.
func List[E any](elemC Codec[E]) Codec[[]E] {
	return TakeWhile(BitsRemaining(), elemC)
}

// Cons builds a non-empty list from a head codec and a tail-list codec.
// Decoding an empty result from the combination is impossible by
// construction (a head is always decoded); encoding an empty list input
// fails.
func Cons[E any](headC Codec[E], tailC Codec[[]E]) Codec[[]E] {
	paired := Combine(headC, tailC)
	return Convert(paired,
		func(p Pair[E, []E]) ([]E, error) {
			out := make([]E, 0, len(p.Second)+1)
			out = append(out, p.First)
			out = append(out, p.Second...)
			return out, nil
		},
		func(v []E) (Pair[E, []E], error) {
			var zero Pair[E, []E]
			if len(v) == 0 {
				return zero, fmt.Errorf("cons: cannot encode an empty list")
			}
			return Pair[E, []E]{First: v[0], Second: v[1:]}, nil
		},
	)
}

// AppendElem is the dual of Cons on the right end: a non-empty list built
// from a leading-list codec and a final-element codec.
func AppendElem[E any](listC Codec[[]E], elemC Codec[E]) Codec[[]E] {
	paired := Combine(listC, elemC)
	return Convert(paired,
		func(p Pair[[]E, E]) ([]E, error) {
			out := make([]E, 0, len(p.First)+1)
			out = append(out, p.First...)
			out = append(out, p.Second)
			return out, nil
		},
		func(v []E) (Pair[[]E, E], error) {
			var zero Pair[[]E, E]
			if len(v) == 0 {
				return zero, fmt.Errorf("append: cannot encode an empty list")
			}
			return Pair[[]E, E]{First: v[:len(v)-1], Second: v[len(v)-1]}, nil
		},
	)
}

// Sequence yields a list of exactly len(cs) elements, each decoded with
// the correspondingly-positioned codec (all sharing payload type E). It is
// the right fold cons(c1, cons(c2, ... cons(cn, empty()))). Since len(cs)
// is fixed at construction time this recurses only to that fixed,
// generally small depth, unlike List/TakeWhile, whose iteration count is
// data-dependent and therefore implemented with an explicit loop instead.
func Sequence[E any](cs ...Codec[E]) Codec[[]E] {
	acc := Empty[E]()
	for i := len(cs) - 1; i >= 0; i-- {
		acc = Cons(cs[i], acc)
	}
	return acc
}

// ListOf is Sequence(replicate(n, c)): a fixed-length list of exactly n
// elements all decoded with the same codec. n=0 is valid and equals
// Empty[E]().
func ListOf[E any](n int, c Codec[E]) Codec[[]E] {
	if n < 0 {
		panic(fmt.Sprintf("bitcodec: ListOf: negative count %d", n))
	}
	cs := make([]Codec[E], n)
	for i := range cs {
		cs[i] = c
	}
	return Sequence(cs...)
}

// NonEmptyList requires at least one element, decoding the first with c
// and the rest greedily with List(c).
func NonEmptyList[E any](c Codec[E]) Codec[[]E] {
	return Cons(c, List(c))
}

// LengthPrefixed reads/writes a count with lenC, then exactly that many
// elements with elemC: then(lenC, n -> ListOf(n, elemC), list -> len(list)).
func LengthPrefixed[E any](lenC Codec[uint64], elemC Codec[E]) Codec[[]E] {
	return Then(lenC,
		func(n uint64) Codec[[]E] { return ListOf(int(n), elemC) },
		func(list []E) (uint64, error) { return uint64(len(list)), nil },
	)
}

// MapList lifts an elementwise bijection (f, g) over a list codec:
// convert(c, elementwise f, elementwise g).
func MapList[A, B any](c Codec[[]A], f func(A) (B, error), g func(B) (A, error)) Codec[[]B] {
	return Convert(c,
		func(as []A) ([]B, error) {
			out := make([]B, len(as))
			for i, a := range as {
				b, err := f(a)
				if err != nil {
					return nil, err
				}
				out[i] = b
			}
			return out, nil
		},
		func(bs []B) ([]A, error) {
			out := make([]A, len(bs))
			for i, b := range bs {
				a, err := g(b)
				if err != nil {
					return nil, err
				}
				out[i] = a
			}
			return out, nil
		},
	)
}

// Reverse is convert(c, reverse, reverse): a list codec whose payload
// order is reversed relative to c's own wire order.
func Reverse[E any](c Codec[[]E]) Codec[[]E] {
	rev := func(es []E) ([]E, error) {
		out := make([]E, len(es))
		for i, e := range es {
			out[len(es)-1-i] = e
		}
		return out, nil
	}
	return Convert(c, rev, rev)
}
