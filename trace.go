package bitcodec

import "time"

// Traced wraps c with opt-in Debug-level logging of every encode/decode
// attempt: value printed via %v, input/output bit length, success or
// failure, and elapsed time. It changes nothing about c's semantics or
// round-trip behavior. Every call pays for an extra interface dispatch and
// a logger call, so this is meant for debugging a composition, not for
// permanent production use deep in a hot codec tree.
func Traced[V any](c Codec[V], logger Logger, name string) Codec[V] {
	if logger == nil {
		logger = NopLogger{}
	}
	return createRaw(
		func(v V) (Bits, error) {
			start := time.Now()
			bs, err := c.Encode(v)
			elapsed := time.Since(start)
			if err != nil {
				logger.Debug(name+": encode failed", Fields{"value": v, "err": err.Error(), "elapsed": elapsed})
				return bs, err
			}
			logger.Debug(name+": encode ok", Fields{"value": v, "bits": bs.Len(), "elapsed": elapsed})
			return bs, nil
		},
		func(b Bits) (V, Bits, error) {
			start := time.Now()
			v, rem, err := c.Decode(b)
			elapsed := time.Since(start)
			if err != nil {
				logger.Debug(name+": decode failed", Fields{"inputBits": b.Len(), "err": err.Error(), "elapsed": elapsed})
				return v, rem, err
			}
			logger.Debug(name+": decode ok", Fields{"value": v, "consumedBits": b.Len() - rem.Len(), "elapsed": elapsed})
			return v, rem, nil
		},
	)
}
