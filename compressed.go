package bitcodec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Package-level zstd encoder/decoder reused across every Compressed call.
// zstd.Encoder/zstd.Decoder are documented safe for concurrent use, so one
// pair serves the whole process.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("bitcodec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("bitcodec: zstd decoder initialization failed: " + err.Error())
	}
}

// Compressed wraps c: encode runs c, then zstd-compresses the resulting
// bits (framed with a 32-bit original-bit-length header so decode knows
// exactly how many bits to hand back to c after inflating); decode
// inflates the remaining input and runs c.Decode over it. Any inflate
// failure, or a failure of c to consume the inflated buffer exactly, is
// returned as an error.
//
// Compressed is necessarily a terminal wrapper: it claims the entire
// remainder of its input as the compressed payload (there is no further
// length prefix delimiting where the zstd frame ends within a larger
// buffer), so it composes as the last element of a Combine/Then chain,
// not a middle one.
func Compressed[V any](c Codec[V]) Codec[V] {
	return createRaw(
		func(v V) (Bits, error) {
			bs, err := c.Encode(v)
			if err != nil {
				return Bits{}, err
			}
			raw := bs.Bytes()
			compressed := zstdEncoder.EncodeAll(raw, nil)
			header, ok := FromUint(uint64(bs.Len()), 32)
			if !ok {
				return Bits{}, encErr[V](ErrOutOfRange, "payload too large to frame (>2^32 bits)", v)
			}
			body := NewBits(compressed, 8*len(compressed))
			return Concat(header, body), nil
		},
		func(b Bits) (V, Bits, error) {
			var zero V
			header, rest, ok := b.Split(32)
			if !ok {
				return zero, b, decErr(ErrInsufficientBits, "missing compressed-payload header", b)
			}
			nbits := int(header.ToUint(32))
			raw, err := zstdDecoder.DecodeAll(rest.Bytes(), nil)
			if err != nil {
				return zero, b, decErr(err, "zstd inflate failed", b)
			}
			if 8*len(raw) < nbits {
				return zero, b, decErr(ErrInsufficientBits, fmt.Sprintf("inflated %d bits, need %d", 8*len(raw), nbits), b)
			}
			inner := NewBits(raw, nbits)
			v, tail, err := c.Decode(inner)
			if err != nil {
				return zero, b, err
			}
			if !tail.IsEmpty() {
				return zero, b, decErr(ErrMoreToParse, "inner codec did not consume the whole decompressed payload", b)
			}
			return v, EmptyBits, nil
		},
	)
}
