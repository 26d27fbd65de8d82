package bitcodec

import "errors"

// Hooks are lightweight callbacks for the handful of events worth
// observing around this library's safety net and control-flow combinators
// in production. Implementations must be cheap and non-blocking; see
// hooks/async for a bounded-queue dispatcher that keeps a slow sink off
// the hot path.
type Hooks interface {
	// UserFaultCaught fires when a codec wrapped with Observed returns an
	// error wrapping ErrUserFault, i.e. Create's panic recovery caught a
	// fault from user-supplied code passed to Convert/Then/Ensure/Refute.
	// direction is "encode" or "decode"; site is a caller-supplied label
	// identifying which codec in a composition faulted.
	UserFaultCaught(direction, site string, recovered any)

	// FallbackExhausted fires when a Choice built with ChoiceHooked runs
	// out of alternatives. attempts is the number of codecs that were
	// tried before giving up.
	FallbackExhausted(attempts int)

	// PadCheckFailed fires when a Pad built with PadHooked rejects
	// non-zero padding bits on decode. gotBits is the number of bits
	// remaining at the point Pad's trailing-zero check ran.
	PadCheckFailed(gotBits int)
}

// NopHooks is the default no-op implementation.
type NopHooks struct{}

func (NopHooks) UserFaultCaught(string, string, any) {}
func (NopHooks) FallbackExhausted(int)               {}
func (NopHooks) PadCheckFailed(int)                  {}

// Observed wraps c so that, whenever its encode or decode returns an error
// wrapping ErrUserFault (i.e. Create's safety net caught a panic), h is
// notified with the offending direction, site, and the recovered cause.
func Observed[V any](c Codec[V], site string, h Hooks) Codec[V] {
	if h == nil {
		h = NopHooks{}
	}
	return createRaw(
		func(v V) (Bits, error) {
			bs, err := c.Encode(v)
			if err != nil && errors.Is(err, ErrUserFault) {
				h.UserFaultCaught("encode", site, err)
			}
			return bs, err
		},
		func(b Bits) (V, Bits, error) {
			v, rem, err := c.Decode(b)
			if err != nil && errors.Is(err, ErrUserFault) {
				h.UserFaultCaught("decode", site, err)
			}
			return v, rem, err
		},
	)
}

// ChoiceHooked is Choice with FallbackExhausted reporting: h is notified
// with the number of alternatives tried whenever every codec in cs fails
// on a given call.
func ChoiceHooked[V any](h Hooks, cs ...Codec[V]) Codec[V] {
	if h == nil {
		h = NopHooks{}
	}
	n := len(cs)
	terminal := createRaw(
		func(v V) (Bits, error) {
			h.FallbackExhausted(n)
			return Bits{}, encErr[V](ErrNoChoice, "none of the choices worked", v)
		},
		func(b Bits) (V, Bits, error) {
			h.FallbackExhausted(n)
			var zero V
			return zero, b, decErr(ErrNoChoice, "none of the choices worked", b)
		},
	)
	acc := terminal
	for i := len(cs) - 1; i >= 0; i-- {
		acc = Fallback(cs[i], acc)
	}
	return acc
}

// PadHooked is Pad with PadCheckFailed reporting: h is notified with the
// number of bits remaining at the point the trailing-zero check ran,
// whenever that check rejects a non-zero pad.
func PadHooked[V any](c Codec[V], k int, h Hooks) Codec[V] {
	if h == nil {
		h = NopHooks{}
	}
	base := Pad(c, k)
	return createRaw(
		base.encodeFn,
		func(b Bits) (V, Bits, error) {
			v, rem, err := base.decodeFn(b)
			if err != nil && errors.Is(err, ErrPredicateRejected) {
				h.PadCheckFailed(rem.Len())
			}
			return v, rem, err
		},
	)
}
