package external

import (
	"github.com/unkn0wn-root/bitcodec"
	"google.golang.org/protobuf/proto"
)

// ProtoBlob is a leaf codec for a length-prefixed protobuf-encoded M.
// proto.Message is an interface, so decode needs a way to allocate a
// fresh zero message of the concrete type before unmarshaling into it;
// newMsg supplies that the same way a sync.Pool.New or a gRPC codec's
// registered constructor would.
func ProtoBlob[M proto.Message](newMsg func() M) bitcodec.Codec[M] {
	return bitcodec.Convert(blobBytes(),
		func(raw []byte) (M, error) {
			m := newMsg()
			if err := proto.Unmarshal(raw, m); err != nil {
				var zero M
				return zero, err
			}
			return m, nil
		},
		func(m M) ([]byte, error) {
			return proto.Marshal(m)
		},
	)
}
