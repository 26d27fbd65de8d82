// Package bitcodec implements a bidirectional binary codec combinator
// algebra: a small set of composable values (Codec[V]) that simultaneously
// describe how to encode a structured value into a bit sequence and how to
// decode a bit sequence back into that value. A single codec expression is
// the sole source of truth for both directions.
//
// The library operates at sub-byte granularity (Bits, not bytes) and is
// organized in three layers:
//
//   - Bits: an immutable, bit-addressable buffer (bits.go).
//   - Codec[V]: the two-function contract plus the panic-to-error safety
//     net (codec.go).
//   - Primitives and combinators: the public algebra (primitives.go,
//     combinators.go, list.go, mapping.go, joinpad.go, compressed.go).
//
// Every codec obeys the round-trip law: for any value v accepted by
// c.Encode, decoding the produced bits with c yields v and an empty
// remainder; for any bits b from which c.Decode succeeds with (v,
// remaining), re-encoding v reproduces the consumed prefix of b. Decode
// errors echo the remaining input, encode errors echo the offending value.
//
// Ambient concerns (logging via Traced, log/zap, log/logrus, log/slog;
// instrumentation via Hooks, hooks/async; and input-size budgeting via
// Bounded) are opt-in wrappers layered on top of the algebra; they never
// run on the hot path unless a caller explicitly asks for them.
//
// Package external frames opaque third-party-serialized payloads (CBOR,
// MessagePack, protobuf) as leaf codecs in this algebra, demonstrating
// that an existing ecosystem serializer composes as one value inside a
// larger bit-level format rather than needing to be replaced by it.
package bitcodec
