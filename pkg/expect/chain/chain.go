package chain

import (
	"fmt"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/expect/pkg/expect"
)

// Chain threads an assertion through member reads and calls.
// The first error sticks; every later step is skipped.
type Chain struct {
	current expect.Navigable
	link    *expect.Link
	value   any
	err     error
}

// Start creates a new chain from an assertion
func Start(a *expect.Assertion) *Chain {
	return &Chain{
		current: a,
		value:   a,
	}
}

// Expect creates a new chain about obj on the default registry
func Expect(obj any, message ...string) *Chain {
	return Start(expect.Expect(obj, message...))
}

// Fail creates a chain that is already broken
func Fail(err error) *Chain {
	return &Chain{err: err}
}

// Err returns the first error met along the chain
func (c *Chain) Err() error {
	return c.err
}

// Value returns what the last step produced
func (c *Chain) Value() any {
	return c.value
}

// Link returns the last member read, or nil after a call
func (c *Chain) Link() *expect.Link {
	return c.link
}

// Assertion returns the assertion the chain currently stands on, if any
func (c *Chain) Assertion() *expect.Assertion {
	if c.link != nil {
		return c.link.Assertion
	}
	a, _ := c.current.(*expect.Assertion)
	return a
}

// Get reads each name in turn
func (c *Chain) Get(names ...string) *Chain {
	next := c
	for _, name := range names {
		next = next.get(name)
	}
	return next
}

func (c *Chain) get(name string) *Chain {
	if c.err != nil {
		return c
	}
	if c.current == nil {
		return Fail(fmt.Errorf("%w: reading %q from %T", expect.ErrNotNavigable, name, c.value))
	}

	link, err := c.current.Get(name)
	if err != nil {
		return Fail(err)
	}

	v := link.Value()
	next := &Chain{link: link, value: v}
	if nav, ok := v.(expect.Navigable); ok {
		next.current = nav
	}
	if v == any(link.Assertion) {
		next.current = link
	}
	return next
}

// Invoke calls the last member read
func (c *Chain) Invoke(args ...any) *Chain {
	if c.err != nil {
		return c
	}
	if c.link == nil {
		return Fail(fmt.Errorf("%w: nothing to invoke on %T", expect.ErrNotCallable, c.value))
	}

	res, err := c.link.Invoke(args...)
	if err != nil {
		return Fail(err)
	}

	next := &Chain{value: res}
	if nav, ok := res.(expect.Navigable); ok {
		next.current = nav
	}
	if l, ok := res.(*expect.Link); ok {
		next.link = l
	}
	return next
}

// Call reads name and invokes it
func (c *Chain) Call(name string, args ...any) *Chain {
	return c.Get(name).Invoke(args...)
}

// Then runs a custom check against the current assertion
func (c *Chain) Then(check func(a *expect.Assertion) error) *Chain {
	if c.err != nil {
		return c
	}
	a := c.Assertion()
	if a == nil {
		return Fail(fmt.Errorf("%w: no assertion under %T", expect.ErrNotNavigable, c.value))
	}
	if err := check(a); err != nil {
		return Fail(err)
	}
	return c
}

// Ensure performs a side effect without changing the chain
func (c *Chain) Ensure(onSuccess func(value any)) *Chain {
	if c.err == nil {
		onSuccess(c.value)
	}
	return c
}

// Must fails the test immediately when the chain is broken
func (c *Chain) Must(t require.TestingT) *Chain {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NoError(t, c.err)
	return c
}

// Finally collapses the chain into a final value
func Finally[U any](c *Chain, onSuccess func(value any) U, onFailure func(err error) U) U {
	if c.err != nil {
		return onFailure(c.err)
	}
	return onSuccess(c.value)
}
