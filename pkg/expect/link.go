package expect

import "fmt"

// Link is the value produced by reading a member. It embeds a fresh Assertion
// carrying the reader's flags, so every navigation method is available on it,
// and it can be invoked when the member is a method or chainable method.
type Link struct {
	*Assertion
	name   string
	member *member
	value  any
}

// Name returns the member name that produced the link.
func (l *Link) Name() string {
	return l.name
}

// Callable reports whether Invoke can run a method.
func (l *Link) Callable() bool {
	return l.member != nil
}

// Value returns what a property getter produced, or the link's assertion when it produced nothing.
func (l *Link) Value() any {
	if l.value != nil {
		return l.value
	}
	return l.Assertion
}

// Invoke runs the member's current method with the link's assertion as receiver.
// An untyped nil result yields that assertion so the chain can continue; any
// other result, typed nil pointers included, is returned as is.
func (l *Link) Invoke(args ...any) (any, error) {
	if l.member == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotCallable, l.name)
	}
	method := l.registry.resolve(l.member)
	if method == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotCallable, l.name)
	}

	if l.Flag(FlagSSFI) != nil && !l.registry.Config().IncludeStack {
		l.SetFlag(FlagSSFI, l)
	}

	result, err := method(l.Assertion, args...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return l.Assertion, nil
	}
	return result, nil
}
