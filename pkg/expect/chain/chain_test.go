package chain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/expect/pkg/expect"
)

func newRegistry() *expect.Registry {
	r := expect.NewRegistry(expect.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	expect.InstallBuiltins(r)
	return r
}

func TestExpect_Success(t *testing.T) {
	t.Parallel()

	c := Expect("foo").Get("to", "be").Call("equal", "foo")
	require.NoError(t, c.Err())
	assert.Equal(t, "foo", c.Assertion().Object())
}

func TestCall_ContinuesAfterNilResult(t *testing.T) {
	t.Parallel()

	c := Start(newRegistry().New([]int{1, 2, 3})).
		Get("to", "be").Call("an", "array").
		Get("and", "have").Call("length", 3).
		Get("and").Call("include", 2)
	assert.NoError(t, c.Err())
}

func TestGet_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	r := newRegistry()

	reads := 0
	r.AddChainableMethod("counted", func(a *expect.Assertion, args ...any) (any, error) {
		return nil, nil
	}, func(a *expect.Assertion) error {
		reads++
		return nil
	})

	c := Start(r.New(1)).Call("equal", 2).Get("counted").Call("counted")
	assert.True(t, expect.IsAssertionError(c.Err()))
	assert.Equal(t, 0, reads)
	assert.Nil(t, c.Value())
}

func TestGet_UnknownMember(t *testing.T) {
	t.Parallel()

	c := Start(newRegistry().New(1)).Get("to", "bee", "equal")
	assert.ErrorIs(t, c.Err(), expect.ErrUnknownMember)
}

func TestInvoke_NotCallable(t *testing.T) {
	t.Parallel()

	c := Start(newRegistry().New(1)).Get("to").Invoke()
	assert.ErrorIs(t, c.Err(), expect.ErrNotCallable)

	c = Start(newRegistry().New(1)).Invoke()
	assert.ErrorIs(t, c.Err(), expect.ErrNotCallable)
}

func TestCall_ValueResultIsNotNavigable(t *testing.T) {
	t.Parallel()
	r := newRegistry()
	r.AddMethod("result", func(a *expect.Assertion, args ...any) (any, error) {
		return "result", nil
	})

	c := Start(r.New("foo")).Call("result")
	require.NoError(t, c.Err())
	assert.Equal(t, "result", c.Value())
	assert.Nil(t, c.Assertion())

	c = c.Get("to")
	assert.ErrorIs(t, c.Err(), expect.ErrNotNavigable)
}

func TestCall_SubAssertionResult(t *testing.T) {
	t.Parallel()
	r := newRegistry()
	r.AddMethod("first", func(a *expect.Assertion, args ...any) (any, error) {
		items, ok := a.Object().([]string)
		if !ok || len(items) == 0 {
			return nil, errors.New("no items")
		}
		return a.Registry().New(items[0]), nil
	})

	c := Start(r.New([]string{"x", "y"})).Call("first").Get("to").Call("equal", "x")
	assert.NoError(t, c.Err())
}

func TestGet_PropertyValue(t *testing.T) {
	t.Parallel()
	r := newRegistry()
	r.AddProperty("size", func(a *expect.Assertion) (any, error) {
		return len(a.Object().(string)), nil
	})

	c := Start(r.New("four")).Get("size")
	require.NoError(t, c.Err())
	assert.Equal(t, 4, c.Value())
	assert.NotNil(t, c.Link())
}

func TestThen_CustomCheck(t *testing.T) {
	t.Parallel()

	c := Expect(7).Get("to").Then(func(a *expect.Assertion) error {
		return a.Assert(a.Object().(int)%2 == 1, "expected #{this} to be odd", "expected #{this} to be even", nil, a.Object())
	})
	assert.NoError(t, c.Err())

	c = Expect(8).Get("to").Then(func(a *expect.Assertion) error {
		return a.Assert(a.Object().(int)%2 == 1, "expected #{this} to be odd", "expected #{this} to be even", nil, a.Object())
	})
	assert.EqualError(t, c.Err(), "expected 8 to be odd")
}

func TestEnsure_OnlyOnSuccess(t *testing.T) {
	t.Parallel()

	var seen []any
	Expect(1).Call("equal", 1).Ensure(func(v any) { seen = append(seen, v) })
	Expect(1).Call("equal", 2).Ensure(func(v any) { seen = append(seen, v) })

	require.Len(t, seen, 1)
	assert.IsType(t, &expect.Assertion{}, seen[0])
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ok := Finally(Expect("a").Call("equal", "a"),
		func(any) string { return "pass" },
		func(err error) string { return "fail: " + err.Error() })
	assert.Equal(t, "pass", ok)

	failed := Finally(Fail(errors.New("boom")),
		func(any) string { return "pass" },
		func(err error) string { return "fail: " + err.Error() })
	assert.Equal(t, "fail: boom", failed)
}

type recordingT struct {
	errors []string
	failed bool
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
}

func TestMust(t *testing.T) {
	t.Parallel()

	Expect("a").Call("equal", "a").Must(t)

	rt := &recordingT{}
	Expect("a").Call("equal", "b").Must(rt)
	assert.True(t, rt.failed)
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], `expected "a" to equal "b"`)
}
