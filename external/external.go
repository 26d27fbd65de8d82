// Package external frames payloads produced by existing ecosystem
// serializers (CBOR, MessagePack, protobuf) as leaf codecs in the
// bitcodec algebra. Each blob is length-prefixed with a 32-bit
// big-endian byte count so it composes inside a larger bit-level format
// the same way any other codec does, rather than requiring callers to
// drop down to raw byte slices at the edges.
package external

import "github.com/unkn0wn-root/bitcodec"

// blobBytes is the shared framing: a 32-bit length followed by that many
// whole bytes, expressed over bitcodec's Bits-valued Byte() primitive and
// converted to/from a plain []byte for the marshalers to consume.
func blobBytes() bitcodec.Codec[[]byte] {
	framed := bitcodec.LengthPrefixed(bitcodec.Uint(32), bitcodec.Byte())
	return bitcodec.Convert(framed,
		func(bs []bitcodec.Bits) ([]byte, error) {
			out := make([]byte, len(bs))
			for i, b := range bs {
				out[i] = b.Bytes()[0]
			}
			return out, nil
		},
		func(raw []byte) ([]bitcodec.Bits, error) {
			out := make([]bitcodec.Bits, len(raw))
			for i, b := range raw {
				out[i] = bitcodec.NewBits([]byte{b}, 8)
			}
			return out, nil
		},
	)
}
