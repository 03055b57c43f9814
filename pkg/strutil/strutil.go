// Package strutil holds string editing helpers.
package strutil

// InsertAt returns target with fragment inserted before the rune at index.
// An index <= 0 prepends; an index past the end appends.
func InsertAt(target string, index int, fragment string) string {
	if index <= 0 {
		return fragment + target
	}
	runes := []rune(target)
	if index >= len(runes) {
		return target + fragment
	}
	return string(runes[:index]) + fragment + string(runes[index:])
}
