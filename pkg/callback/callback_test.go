package callback_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/pkg/callback"
)

type counter struct {
	calls []any
}

func (c *counter) record(args ...any) { c.calls = append(c.calls, args...) }

func TestBind_HappyPath(t *testing.T) {
	c := qt.New(t)

	rec := &counter{}
	cb := callback.Bind(rec.record, "a", 2)
	c.Assert(rec.calls, qt.HasLen, 0)

	cb()
	cb()
	c.Assert(rec.calls, qt.DeepEquals, []any{"a", 2, "a", 2})
}

func TestBind_ParamsCopied(t *testing.T) {
	c := qt.New(t)

	var got []any
	params := []any{"before"}
	cb := callback.Bind(func(args ...any) { got = args }, params...)
	params[0] = "after"

	cb()
	c.Assert(got, qt.DeepEquals, []any{"before"})
}

func TestBind_NoParams(t *testing.T) {
	c := qt.New(t)

	called := false
	callback.Bind(func(args ...any) {
		called = true
		c.Assert(args, qt.HasLen, 0)
	})()
	c.Assert(called, qt.IsTrue)
}
