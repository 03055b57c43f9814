package mixin_test

import (
	"sort"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/pkg/mixin"
)

func greeter(prefix string) mixin.Set {
	return mixin.Set{
		"greet": func(name string) string { return prefix + " " + name },
	}
}

var shouter = mixin.Set{
	"shout": strings.ToUpper,
}

func TestApply_HappyPath(t *testing.T) {
	c := qt.New(t)

	target := mixin.Set{"greet": "placeholder", "own": 1}
	mixin.Apply(target, greeter("hello"), shouter, greeter("hi"))

	names := target.Names()
	sort.Strings(names)
	c.Assert(names, qt.DeepEquals, []string{"greet", "own", "shout"})

	greet, ok := mixin.Lookup[func(string) string](target, "greet")
	c.Assert(ok, qt.IsTrue)
	c.Assert(greet("bob"), qt.Equals, "hi bob")

	own, ok := mixin.Lookup[int](target, "own")
	c.Assert(ok, qt.IsTrue)
	c.Assert(own, qt.Equals, 1)
}

func TestApply_NilTarget(t *testing.T) {
	c := qt.New(t)
	var target mixin.Set
	mixin.Apply(target, shouter)
	c.Assert(target, qt.IsNil)
}

func TestCompose_HappyPath(t *testing.T) {
	c := qt.New(t)

	base := greeter("hello")
	composed := mixin.Compose(base, shouter)
	c.Assert(composed, qt.HasLen, 2)
	c.Assert(base, qt.HasLen, 1)

	shout, ok := mixin.Lookup[func(string) string](composed, "shout")
	c.Assert(ok, qt.IsTrue)
	c.Assert(shout("quiet"), qt.Equals, "QUIET")

	c.Assert(mixin.Compose(), qt.HasLen, 0)
}

func TestLookup_FailurePath(t *testing.T) {
	c := qt.New(t)

	s := mixin.Compose(shouter)

	_, ok := mixin.Lookup[func(string) string](s, "missing")
	c.Assert(ok, qt.IsFalse)

	_, ok = mixin.Lookup[func(int) int](s, "shout")
	c.Assert(ok, qt.IsFalse)

	_, ok = mixin.Lookup[func(string) string](nil, "shout")
	c.Assert(ok, qt.IsFalse)
}
