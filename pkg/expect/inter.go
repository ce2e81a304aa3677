package expect

// Navigable resolves members by name.
type Navigable interface {
	Get(name string) (*Link, error)
}

// Callable can be invoked like an assertion method.
type Callable interface {
	Invoke(args ...any) (any, error)
}

// ChainLink is both: the shape of every value returned by a member read.
type ChainLink interface {
	Navigable
	Callable
	Flagged
}

var (
	_ Navigable = (*Assertion)(nil)
	_ Flagged   = (*Assertion)(nil)
	_ ChainLink = (*Link)(nil)
)
