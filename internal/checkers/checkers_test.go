package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/internal/checkers"
)

const doc = `{"url":"https://h/root/x","applied":true,"count":3,"guids":["a","b"]}`

func TestJSONPathEquals_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Assert(doc, checkers.JSONPathEquals("$.url"), "https://h/root/x")
	c.Assert([]byte(doc), checkers.JSONPathEquals("$.applied"), true)
	c.Assert(doc, checkers.JSONPathEquals("$.count"), 3)
	c.Assert(doc, checkers.JSONPathEquals("$.guids"), []string{"a", "b"})
	c.Assert(doc, checkers.JSONPathEquals("$.guids[1]"), "b")
}

func TestJSONPathEquals_FailurePath(t *testing.T) {
	c := qt.New(t)

	check := checkers.JSONPathEquals("$.url")
	noop := func(string, any) {}

	c.Assert(check.Check(doc, []any{"other"}, noop), qt.IsNotNil)
	c.Assert(check.Check("not json", []any{"x"}, noop), qt.ErrorMatches, "cannot decode JSON: .*")
	c.Assert(checkers.JSONPathEquals("$.missing").Check(doc, []any{"x"}, noop), qt.IsNotNil)
	c.Assert(check.Check(42, []any{"x"}, noop), qt.IsNotNil)
}
