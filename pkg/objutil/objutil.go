// Package objutil merges key/value objects.
package objutil

import (
	"encoding/json"
	"fmt"
)

// Extend returns a new map holding every entry of target followed by every
// entry of source. Source wins on conflict unless noOverwrite is set, in
// which case a source key is skipped when the result already has it, even
// if the existing value is a zero value. Neither input is modified.
func Extend[M ~map[K]V, K comparable, V any](target, source M, noOverwrite bool) M {
	out := make(M, len(target)+len(source))
	for k, v := range target {
		out[k] = v
	}
	for k, v := range source {
		if noOverwrite {
			if _, ok := out[k]; ok {
				continue
			}
		}
		out[k] = v
	}
	return out
}

// ExtendJSON decodes two JSON objects, merges them with Extend and encodes
// the result. A literal null for either side is treated as an empty object.
func ExtendJSON(target, source []byte, noOverwrite bool) ([]byte, error) {
	var t, s map[string]any
	if err := json.Unmarshal(target, &t); err != nil {
		return nil, fmt.Errorf("objutil.ExtendJSON: decode target: %w", err)
	}
	if err := json.Unmarshal(source, &s); err != nil {
		return nil, fmt.Errorf("objutil.ExtendJSON: decode source: %w", err)
	}
	out, err := json.Marshal(Extend(t, s, noOverwrite))
	if err != nil {
		return nil, fmt.Errorf("objutil.ExtendJSON: encode: %w", err)
	}
	return out, nil
}
