package bitcodec

import "fmt"

// Mapping is a dictionary-based Convert: decoding through c yields a key
// k, which is looked up in m to produce V; encoding a V looks it up in the
// precomputed inverse to recover k, which is then encoded with c. m must
// be injective (no two keys map to the same value). This is checked once
// at construction time, since the inverse is computed eagerly rather than
// on every call.
func Mapping[K comparable, V comparable](c Codec[K], m map[K]V) Codec[V] {
	inverse := make(map[V]K, len(m))
	for k, v := range m {
		if existing, ok := inverse[v]; ok {
			panic(fmt.Sprintf("bitcodec: Mapping: not injective: keys %v and %v both map to %v", existing, k, v))
		}
		inverse[v] = k
	}
	return Convert(c,
		func(k K) (V, error) {
			v, ok := m[k]
			if !ok {
				var zero V
				return zero, fmt.Errorf("%w: decoded key has no mapping entry", ErrPredicateRejected)
			}
			return v, nil
		},
		func(v V) (K, error) {
			k, ok := inverse[v]
			if !ok {
				var zero K
				return zero, fmt.Errorf("%w: value is not in the mapping's codomain", ErrPredicateRejected)
			}
			return k, nil
		},
	)
}
