package expect

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/expect/pkg/expect/inspect"
)

// Assertion is one assertion instance: a subject, its flags and the registry
// whose members it can navigate to. An Assertion is confined to one goroutine.
type Assertion struct {
	id        uuid.UUID
	createdAt time.Time
	registry  *Registry
	flags     *Flags
}

type AssertionOption func(a *Assertion)

// WithMessage sets the custom failure message prefix.
func WithMessage(msg string) AssertionOption {
	return func(a *Assertion) {
		if msg != "" {
			a.flags.Set(FlagMessage, msg)
		}
	}
}

// WithStackStart overrides the initial ssfi flag, which defaults to the assertion itself.
func WithStackStart(ssfi any) AssertionOption {
	return func(a *Assertion) {
		a.flags.Set(FlagSSFI, ssfi)
	}
}

// New creates an assertion about obj on this registry.
func (r *Registry) New(obj any, opts ...AssertionOption) *Assertion {
	a := r.newAssertion()
	a.flags.Set(FlagObject, obj)
	a.flags.Set(FlagSSFI, a)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (r *Registry) newAssertion() *Assertion {
	return &Assertion{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		registry:  r,
		flags:     NewFlags(),
	}
}

// ID returns the assertion identifier.
func (a *Assertion) ID() uuid.UUID {
	return a.id
}

// CreatedAt time creation (UTC)
func (a *Assertion) CreatedAt() time.Time {
	return a.createdAt
}

// Registry returns the registry the assertion reads members from.
func (a *Assertion) Registry() *Registry {
	return a.registry
}

// Flags returns the assertion flag bag.
func (a *Assertion) Flags() *Flags {
	return a.flags
}

// Flag returns the named flag, or nil when unset.
func (a *Assertion) Flag(name string) any {
	return Flag(a, name)
}

// SetFlag sets the named flag.
func (a *Assertion) SetFlag(name string, value any) {
	SetFlag(a, name, value)
}

// Object returns the subject under test.
func (a *Assertion) Object() any {
	return a.Flag(FlagObject)
}

func (a *Assertion) Negated() bool {
	negate, _ := a.Flag(FlagNegate).(bool)
	return negate
}

// Get navigates to the named member.
func (a *Assertion) Get(name string) (*Link, error) {
	return a.registry.Access(a, name)
}

// Call navigates to name and invokes it.
func (a *Assertion) Call(name string, args ...any) (any, error) {
	link, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return link.Invoke(args...)
}

// Assert checks ok, honouring negation, and returns an *AssertionError built from
// the matching message template when the check fails.
func (a *Assertion) Assert(ok bool, msg, negateMsg string, expected, actual any) error {
	if a.Negated() {
		ok = !ok
	}
	if ok {
		return nil
	}

	cfg := a.registry.Config()
	err := &AssertionError{
		Message:    Message(a, msg, negateMsg, expected, actual),
		Expected:   expected,
		Actual:     actual,
		ShowDiff:   cfg.ShowDiff,
		StackStart: a.Flag(FlagSSFI),
		Stack:      captureStack(cfg.IncludeStack),
	}
	if cfg.ShowDiff {
		err.Diff = inspect.Diff(expected, actual)
	}
	return err
}
