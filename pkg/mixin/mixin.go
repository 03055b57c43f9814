// Package mixin composes named capability sets.
//
// In Go a capability set is usually an interface satisfied through struct
// embedding, composed once when the type is declared:
//
//	type Logger interface{ Log(string) }
//	type Tracer interface{ Trace(string) }
//
//	type Service struct {
//		Logger
//		Tracer
//	}
//
// Set covers the case where a host assembles capabilities by name at start-up
// (plugin tables, command registries). Prefer Compose, which builds a fresh
// Set; Apply mutates its target and must not run concurrently with other
// users of that target.
package mixin

// Set maps capability names to operations, typically func values.
type Set map[string]any

// Apply copies every entry of each source onto target, overwriting entries
// with the same name. Sources are applied in order, so the last one wins.
// A nil target is left untouched.
func Apply(target Set, sources ...Set) {
	if target == nil {
		return
	}
	for _, src := range sources {
		for name, op := range src {
			target[name] = op
		}
	}
}

// Compose returns a new Set holding the union of sources, later sources
// winning on name conflicts.
func Compose(sources ...Set) Set {
	out := make(Set)
	Apply(out, sources...)
	return out
}

// Names returns the capability names in s, in no particular order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Lookup returns the capability called name if it exists and has type F.
func Lookup[F any](s Set, name string) (F, bool) {
	op, ok := s[name].(F)
	return op, ok
}
