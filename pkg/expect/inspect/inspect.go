package inspect

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var compact = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

var dump = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

// Value formats v on one line.
func Value(v any) string {
	if v == nil {
		return "nil"
	}
	switch tv := v.(type) {
	case string:
		return strconv.Quote(tv)
	case float64:
		return formatFloat(tv, 64)
	case float32:
		return formatFloat(float64(tv), 32)
	case error:
		return tv.Error()
	case fmt.Stringer:
		return tv.String()
	}
	return compact.Sprintf("%v", v)
}

func formatFloat(f float64, bits int) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// Display formats v like Value but summarizes composite values whose rendering
// reaches threshold characters. A threshold of zero never summarizes.
func Display(v any, threshold int) string {
	s := Value(v)
	if threshold <= 0 || len(s) < threshold || v == nil {
		return s
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[ %s(%d) ]", rv.Type().String(), rv.Len())
	case reflect.Map:
		keys := rv.MapKeys()
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, fmt.Sprint(k.Interface()))
		}
		sort.Strings(names)
		return fmt.Sprintf("{ %s (%s) }", rv.Type().String(), strings.Join(names, ", "))
	case reflect.Struct:
		return fmt.Sprintf("{ %s }", rv.Type().String())
	}
	return s
}

// Diff returns a unified diff of expected and actual when both are of the same
// composite or string type, and "" otherwise.
func Diff(expected, actual any) string {
	if expected == nil || actual == nil {
		return ""
	}

	et, at := reflect.TypeOf(expected), reflect.TypeOf(actual)
	if et != at {
		return ""
	}

	var e, a string
	switch et.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		e, a = dump.Sdump(expected), dump.Sdump(actual)
	case reflect.String:
		e, a = reflect.ValueOf(expected).String(), reflect.ValueOf(actual).String()
	default:
		return ""
	}
	if e == a {
		return ""
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	return diff
}
