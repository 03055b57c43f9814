// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

type jsonPathChecker struct {
	path string
}

// JSONPathEquals returns a checker that decodes the JSON document in got
// (a string or []byte), reads the value at path and compares it with want.
// want is normalized through encoding/json, so Go ints match JSON numbers.
//
//	c.Assert(body, checkers.JSONPathEquals("$.action"), "created")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

// ArgNames implements qt.Checker.
func (*jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return qt.BadCheckf("expected string or []byte, got %T", got)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot decode JSON: %w", err)
	}
	note("path", c.path)
	value, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return fmt.Errorf("cannot read path: %w", err)
	}

	raw, err := json.Marshal(args[0])
	if err != nil {
		return qt.BadCheckf("cannot encode want: %s", err)
	}
	var want any
	if err := json.Unmarshal(raw, &want); err != nil {
		return qt.BadCheckf("cannot decode want: %s", err)
	}
	return qt.DeepEquals.Check(value, []any{want}, note)
}
