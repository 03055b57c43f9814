// Package typeutil provides structural type predicates over arbitrary values.
package typeutil

import "reflect"

// IsFunction reports whether v holds a value of function type, including a
// typed nil func. An untyped nil is not a function.
func IsFunction(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// IsArray reports whether v is a slice or array. Common element types are
// answered by a type switch; anything else falls back to reflection.
func IsArray(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case []any, []string, []int, []int64, []float64, []bool, []byte, []map[string]any:
		return true
	case string, int, int64, float64, bool, map[string]any:
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsNullOrEmptyString reports whether v is nil, "", a nil *string, or a
// *string pointing at "". Values of any other type report false.
func IsNullOrEmptyString(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case *string:
		return s == nil || *s == ""
	}
	return false
}
