package external

import (
	"github.com/unkn0wn-root/bitcodec"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackBlob is a leaf codec for a length-prefixed MessagePack-encoded V.
func MsgpackBlob[V any]() bitcodec.Codec[V] {
	return bitcodec.Convert(blobBytes(),
		func(raw []byte) (V, error) {
			var v V
			err := msgpack.Unmarshal(raw, &v)
			return v, err
		},
		func(v V) ([]byte, error) {
			return msgpack.Marshal(v)
		},
	)
}
