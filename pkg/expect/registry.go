package expect

import (
	"log/slog"
	"sort"
	"sync"
)

// Method is an assertion body. A nil result means "continue the chain with a".
type Method func(a *Assertion, args ...any) (any, error)

// ChainingBehavior runs every time a chainable member is read, called or not.
type ChainingBehavior func(a *Assertion) error

// Getter is a property body. A nil result means "continue the chain".
type Getter func(a *Assertion) (any, error)

// ChainableBehavior is the pair installed for a chainable method.
type ChainableBehavior struct {
	Method   Method
	Chaining ChainingBehavior
}

type memberKind int

const (
	kindProperty memberKind = iota
	kindMethod
	kindChainable
)

func (k memberKind) String() string {
	switch k {
	case kindProperty:
		return "property"
	case kindMethod:
		return "method"
	default:
		return "chainable"
	}
}

// member is the single record kept per name. It is updated in place on
// re-registration so links already handed out resolve the new body on Invoke.
type member struct {
	kind     memberKind
	behavior ChainableBehavior
	getter   Getter
}

// Registry holds the members every assertion created from it can navigate to.
// It is safe for concurrent use; assertions and links are not.
type Registry struct {
	mu      sync.RWMutex
	members map[string]*member
	cfg     Config
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(r *Registry)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithLogger sets the logger for registration and deprecation messages.
// A nil logger keeps slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty registry. Use InstallBuiltins or Default for the
// standard members.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		members: make(map[string]*member),
		cfg:     DefaultConfig(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns a copy of the current configuration.
func (r *Registry) Config() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// SetConfig replaces the configuration. Intended for startup and test harnesses.
func (r *Registry) SetConfig(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// AddChainableMethod installs name as a member that is both callable and usable
// as a language link. A nil chaining behavior becomes a no-op.
func (r *Registry) AddChainableMethod(name string, method Method, chaining ChainingBehavior) {
	r.mustDefine(name)
	if method == nil {
		panic("expect: nil method passed to AddChainableMethod")
	}
	if chaining == nil {
		chaining = noopChaining
	}
	r.install(name, member{kind: kindChainable, behavior: ChainableBehavior{Method: method, Chaining: chaining}})
}

// ChainableMethod returns the pair currently installed for name.
func (r *Registry) ChainableMethod(name string) (ChainableBehavior, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[name]
	if !ok || m.kind != kindChainable {
		return ChainableBehavior{}, false
	}
	return m.behavior, true
}

// OverwriteChainableMethod wraps the installed pair for name. Either wrapper may
// be nil to keep that half. A missing member gives no-op supers.
//
// The wrappers run under the registry lock and must not call back into r.
func (r *Registry) OverwriteChainableMethod(name string,
	method func(super Method) Method, chaining func(super ChainingBehavior) ChainingBehavior) {
	r.mustDefine(name)
	r.overwrite(name, func(current *member) member {
		pair := ChainableBehavior{Method: noopMethod, Chaining: noopChaining}
		if current != nil && current.kind == kindChainable {
			pair = current.behavior
		}
		next := pair
		if method != nil {
			next.Method = method(pair.Method)
		}
		if chaining != nil {
			next.Chaining = chaining(pair.Chaining)
		}
		if next.Method == nil {
			panic("expect: nil method passed to OverwriteChainableMethod")
		}
		if next.Chaining == nil {
			next.Chaining = noopChaining
		}
		return member{kind: kindChainable, behavior: next}
	})
}

// AddMethod installs name as a plain method. Reading it yields a link whose
// Invoke runs method.
func (r *Registry) AddMethod(name string, method Method) {
	r.mustDefine(name)
	if method == nil {
		panic("expect: nil method passed to AddMethod")
	}
	r.install(name, member{kind: kindMethod, behavior: ChainableBehavior{Method: method, Chaining: noopChaining}})
}

// OverwriteMethod wraps the method installed for name. The wrapper runs under
// the registry lock and must not call back into r.
func (r *Registry) OverwriteMethod(name string, method func(super Method) Method) {
	r.mustDefine(name)
	if method == nil {
		panic("expect: nil wrapper passed to OverwriteMethod")
	}
	r.overwrite(name, func(current *member) member {
		super := noopMethod
		if current != nil && current.kind != kindProperty {
			super = current.behavior.Method
		}
		next := method(super)
		if next == nil {
			panic("expect: nil method passed to OverwriteMethod")
		}
		return member{kind: kindMethod, behavior: ChainableBehavior{Method: next, Chaining: noopChaining}}
	})
}

// AddProperty installs name as a property; getter runs on every read.
func (r *Registry) AddProperty(name string, getter Getter) {
	r.mustDefine(name)
	if getter == nil {
		panic("expect: nil getter passed to AddProperty")
	}
	r.install(name, member{kind: kindProperty, getter: getter})
}

// OverwriteProperty wraps the getter installed for name. The wrapper runs under
// the registry lock and must not call back into r.
func (r *Registry) OverwriteProperty(name string, getter func(super Getter) Getter) {
	r.mustDefine(name)
	if getter == nil {
		panic("expect: nil wrapper passed to OverwriteProperty")
	}
	r.overwrite(name, func(current *member) member {
		super := noopGetter
		if current != nil && current.kind == kindProperty {
			super = current.getter
		}
		next := getter(super)
		if next == nil {
			panic("expect: nil getter passed to OverwriteProperty")
		}
		return member{kind: kindProperty, getter: next}
	})
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[name]
	return ok
}

// Names returns the registered member names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.members))
	for name := range r.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Access reads name from a. It is the property-read protocol: the chaining
// behavior (or getter) runs on a, then a fresh link receives all of a's flags.
// Errors from user code are returned unchanged.
func (r *Registry) Access(a *Assertion, name string) (*Link, error) {
	r.mu.RLock()
	m, ok := r.members[name]
	var kind memberKind
	var chaining ChainingBehavior
	var getter Getter
	if ok {
		kind, chaining, getter = m.kind, m.behavior.Chaining, m.getter
	}
	r.mu.RUnlock()
	if !ok {
		return nil, unknownMember(name)
	}

	var value any
	switch kind {
	case kindChainable:
		if err := chaining(a); err != nil {
			return nil, err
		}
	case kindProperty:
		v, err := getter(a)
		if err != nil {
			return nil, err
		}
		value = v
	}

	link := &Link{
		Assertion: r.newAssertion(),
		name:      name,
		value:     value,
	}
	if kind != kindProperty {
		link.member = m
	}
	TransferFlags(a, link, true)
	return link, nil
}

// resolve returns the method currently installed on m.
func (r *Registry) resolve(m *member) Method {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return m.behavior.Method
}

func (r *Registry) install(name string, next member) {
	r.overwrite(name, func(*member) member { return next })
}

// overwrite builds the new record from the current one and stores it in a
// single critical section.
func (r *Registry) overwrite(name string, build func(current *member) member) {
	kind, replaced := r.store(name, build)
	r.logger.Debug("member registered", "name", name, "kind", kind.String(), "replaced", replaced)
}

// store updates records in place so links already handed out resolve the new
// method.
func (r *Registry) store(name string, build func(current *member) member) (memberKind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, exists := r.members[name]
	next := build(m)
	if !exists {
		m = new(member)
		r.members[name] = m
	}
	*m = next
	return next.kind, exists
}

func (r *Registry) mustDefine(name string) {
	if r == nil {
		panic("expect: member registered on a nil registry")
	}
	if name == "" {
		panic("expect: empty member name")
	}
}

func noopMethod(*Assertion, ...any) (any, error) { return nil, nil }

func noopChaining(*Assertion) error { return nil }

func noopGetter(*Assertion) (any, error) { return nil, nil }
