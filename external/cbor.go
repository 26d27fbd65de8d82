package external

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/bitcodec"
)

// CBORBlob is a leaf codec for a length-prefixed CBOR-encoded V.
// EncOptions/DecOptions are built once at construction and reused for
// every Encode/Decode; deterministic selects canonical, sorted-map output
// with RFC3339Nano timestamps.
func CBORBlob[V any](deterministic bool) bitcodec.Codec[V] {
	enc := cbor.EncOptions{}
	if deterministic {
		enc.Time = cbor.TimeRFC3339Nano
		enc.Sort = cbor.SortCanonical
	}
	encMode, err := enc.EncMode()
	if err != nil {
		panic("bitcodec/external: invalid cbor EncOptions: " + err.Error())
	}
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("bitcodec/external: invalid cbor DecOptions: " + err.Error())
	}

	return bitcodec.Convert(blobBytes(),
		func(raw []byte) (V, error) {
			var v V
			err := decMode.Unmarshal(raw, &v)
			return v, err
		},
		func(v V) ([]byte, error) {
			return encMode.Marshal(v)
		},
	)
}
