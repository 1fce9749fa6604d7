// Package provider models Amazon Pay (MWS off-Amazon payments) responses and
// presents a uniform read surface over their per-operation key conventions.
package provider

// Response is the raw provider payload: a nested mapping of string keys to
// scalars or further mappings, as decoded from the wire. It is never mutated.
type Response map[string]any

// Dig walks the nested mapping along path. It returns false when any segment
// is missing or a non-map value is reached before the path is exhausted.
func (r Response) Dig(path ...string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// DigString is Dig restricted to string leaves. Non-string leaves report false.
func (r Response) DigString(path ...string) (string, bool) {
	v, ok := r.Dig(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
