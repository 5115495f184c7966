package util

import "github.com/bytedance/sonic"

// Coerce converts rendered view content (typically map[string]any from a
// view pack or a pre-built descriptor payload) into the typed platform
// struct pointed to by out, via a JSON round-trip. Unknown fields are
// ignored; type mismatches surface as errors.
func Coerce(in any, out any) error {
	b, err := sonic.Marshal(in)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(b, out)
}

// MarshalJSON serializes v to its wire JSON form.
func MarshalJSON(v any) ([]byte, error) {
	return sonic.Marshal(v)
}
