package expect

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/stretchr/testify/assert"
)

// Builtin flag names.
const (
	// FlagContains is set by include/contain and makes keys accept a superset.
	FlagContains = "contains"
	// FlagDoLength is set by length/lengthOf and makes above/below compare lengths.
	FlagDoLength = "doLength"
)

var languageChains = []string{
	"to", "be", "been", "is", "that", "which", "and", "has", "have",
	"with", "at", "of", "same", "but", "does", "still", "also",
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry with the builtin members installed.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		InstallBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// Expect starts an assertion about obj on the default registry.
func Expect(obj any, message ...string) *Assertion {
	return Default().New(obj, WithMessage(strings.Join(message, " ")))
}

// InstallBuiltins registers the standard members on r.
func InstallBuiltins(r *Registry) {
	for _, name := range languageChains {
		r.AddProperty(name, noopGetter)
	}

	r.AddProperty("not", func(a *Assertion) (any, error) {
		a.SetFlag(FlagNegate, true)
		return nil, nil
	})
	r.AddProperty("ok", func(a *Assertion) (any, error) {
		return nil, a.Assert(truthy(a.Object()),
			"expected #{this} to be truthy", "expected #{this} to be falsy", nil, a.Object())
	})
	r.AddProperty("true", func(a *Assertion) (any, error) {
		return nil, a.Assert(a.Object() == true,
			"expected #{this} to be true", "expected #{this} to be false", !a.Negated(), a.Object())
	})
	r.AddProperty("false", func(a *Assertion) (any, error) {
		return nil, a.Assert(a.Object() == false,
			"expected #{this} to be false", "expected #{this} to be true", a.Negated(), a.Object())
	})
	r.AddProperty("nil", func(a *Assertion) (any, error) {
		return nil, a.Assert(isNil(a.Object()),
			"expected #{this} to be nil", "expected #{this} not to be nil", nil, a.Object())
	})

	for _, name := range []string{"equal", "equals", "eq"} {
		r.AddMethod(name, assertEqual)
	}
	for _, name := range []string{"eql", "eqls"} {
		r.AddMethod(name, assertEql)
	}

	r.AddChainableMethod("a", assertType, nil)
	r.AddChainableMethod("an", assertType, nil)

	for _, name := range []string{"include", "includes", "contain", "contains"} {
		r.AddChainableMethod(name, assertInclude, includeChaining)
	}
	for _, name := range []string{"length", "lengthOf"} {
		r.AddChainableMethod(name, assertLength, lengthChaining)
	}

	for _, name := range []string{"above", "gt", "greaterThan"} {
		r.AddMethod(name, assertAbove)
	}
	for _, name := range []string{"below", "lt", "lessThan"} {
		r.AddMethod(name, assertBelow)
	}
	r.AddMethod("keys", assertKeys)
}

func includeChaining(a *Assertion) error {
	a.SetFlag(FlagContains, true)
	return nil
}

func lengthChaining(a *Assertion) error {
	a.SetFlag(FlagDoLength, true)
	return nil
}

func assertEqual(a *Assertion, args ...any) (any, error) {
	exp, err := expectedArg(a, "equal", args)
	if err != nil {
		return nil, err
	}
	obj := a.Object()
	return nil, a.Assert(assert.ObjectsAreEqual(exp, obj),
		"expected #{this} to equal #{exp}", "expected #{this} to not equal #{exp}", exp, obj)
}

func assertEql(a *Assertion, args ...any) (any, error) {
	exp, err := expectedArg(a, "eql", args)
	if err != nil {
		return nil, err
	}
	obj := a.Object()
	return nil, a.Assert(assert.ObjectsAreEqualValues(exp, obj),
		"expected #{this} to deeply equal #{exp}", "expected #{this} to not deeply equal #{exp}", exp, obj)
}

func assertType(a *Assertion, args ...any) (any, error) {
	exp, err := expectedArg(a, "a", args)
	if err != nil {
		return nil, err
	}
	name, ok := exp.(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("expect: a/an takes a type name, got %T", exp)
	}
	name = strings.ToLower(name)
	article := "a "
	if strings.ContainsRune("aeiou", rune(name[0])) {
		article = "an "
	}
	actual := typeOf(a.Object())
	return nil, a.Assert(actual == name,
		"expected #{this} to be "+article+name, "expected #{this} not to be "+article+name, name, actual)
}

func assertInclude(a *Assertion, args ...any) (any, error) {
	exp, err := expectedArg(a, "include", args)
	if err != nil {
		return nil, err
	}
	obj := a.Object()

	var found bool
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.String:
		s, ok := exp.(string)
		if !ok {
			return nil, fmt.Errorf("expect: include on a string takes a string, got %T", exp)
		}
		found = strings.Contains(v.String(), s)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len() && !found; i++ {
			found = assert.ObjectsAreEqual(exp, v.Index(i).Interface())
		}
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if assert.ObjectsAreEqual(exp, k.Interface()) {
				found = true
				break
			}
		}
	default:
		return nil, fmt.Errorf("expect: object tested must be a string, array or map, but %s given", typeOf(obj))
	}

	return nil, a.Assert(found,
		"expected #{this} to include #{exp}", "expected #{this} to not include #{exp}", exp, obj)
}

func assertLength(a *Assertion, args ...any) (any, error) {
	exp, err := expectedArg(a, "length", args)
	if err != nil {
		return nil, err
	}
	n, ok := toFloat(exp)
	if !ok {
		return nil, fmt.Errorf("expect: length takes a number, got %T", exp)
	}
	l, err := objectLength(a)
	if err != nil {
		return nil, err
	}
	return nil, a.Assert(float64(l) == n,
		"expected #{this} to have a length of #{exp} but got #{act}", "expected #{this} to not have a length of #{act}",
		exp, l)
}

func assertAbove(a *Assertion, args ...any) (any, error) {
	return compare(a, "above", args, func(act, exp float64) bool { return act > exp })
}

func assertBelow(a *Assertion, args ...any) (any, error) {
	return compare(a, "below", args, func(act, exp float64) bool { return act < exp })
}

func compare(a *Assertion, name string, args []any, cmp func(act, exp float64) bool) (any, error) {
	exp, err := expectedArg(a, name, args)
	if err != nil {
		return nil, err
	}
	n, ok := toFloat(exp)
	if !ok {
		return nil, fmt.Errorf("expect: %s takes a number, got %T", name, exp)
	}

	if doLength, _ := a.Flag(FlagDoLength).(bool); doLength {
		l, err := objectLength(a)
		if err != nil {
			return nil, err
		}
		return nil, a.Assert(cmp(float64(l), n),
			"expected #{this} to have a length "+name+" #{exp} but got #{act}",
			"expected #{this} to not have a length "+name+" #{exp}", exp, l)
	}

	act, ok := toFloat(a.Object())
	if !ok || math.IsNaN(act) {
		return nil, fmt.Errorf("expect: %s needs a numeric subject, got %s", name, typeOf(a.Object()))
	}
	return nil, a.Assert(cmp(act, n),
		"expected #{this} to be "+name+" #{exp}", "expected #{this} to not be "+name+" #{exp}", exp, a.Object())
}

// assertKeys checks the keys of a map subject. Without the contains flag the
// key sets must match exactly; with it the subject may have extra keys.
func assertKeys(a *Assertion, args ...any) (any, error) {
	obj := a.Object()
	v := reflect.ValueOf(obj)
	if obj == nil || v.Kind() != reflect.Map {
		return nil, fmt.Errorf("expect: keys needs a map subject, got %s", typeOf(obj))
	}
	if len(args) == 0 {
		return nil, errors.New("expect: keys requires at least one key")
	}

	actual := make([]string, 0, v.Len())
	have := make(map[string]bool, v.Len())
	for _, k := range v.MapKeys() {
		s := fmt.Sprint(k.Interface())
		actual = append(actual, s)
		have[s] = true
	}
	sort.Strings(actual)

	expected := make([]string, 0, len(args))
	ok := true
	for _, k := range args {
		s := fmt.Sprint(k)
		expected = append(expected, s)
		ok = ok && have[s]
	}

	contains, _ := a.Flag(FlagContains).(bool)
	if !contains {
		ok = ok && len(expected) == len(actual)
	}

	verb := "have"
	if contains {
		verb = "contain"
	}
	return nil, a.Assert(ok,
		"expected #{this} to "+verb+" keys #{exp}", "expected #{this} to not "+verb+" keys #{exp}", expected, actual)
}

// expectedArg returns the single expected value, applying an optional trailing message.
func expectedArg(a *Assertion, name string, args []any) (any, error) {
	switch len(args) {
	case 1:
	case 2:
		msg, ok := args[1].(string)
		if !ok {
			return nil, fmt.Errorf("expect: %s message must be a string, got %T", name, args[1])
		}
		a.SetFlag(FlagMessage, msg)
	default:
		return nil, fmt.Errorf("expect: %s takes 1 argument and an optional message, got %d", name, len(args))
	}
	return args[0], nil
}

func objectLength(a *Assertion) (int, error) {
	l, ok := lengthOf(a.Object())
	if !ok {
		return 0, fmt.Errorf("expect: %s has no length", typeOf(a.Object()))
	}
	return l, nil
}

func truthy(obj any) bool {
	if isNil(obj) {
		return false
	}
	if f, ok := obj.(float64); ok && math.IsNaN(f) {
		return false
	}
	return !reflect.ValueOf(obj).IsZero()
}
