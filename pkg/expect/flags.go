package expect

// Well-known flag names.
const (
	// FlagObject holds the subject under test.
	FlagObject = "object"
	// FlagNegate is true once `not` has been read on the chain.
	FlagNegate = "negate"
	// FlagMessage holds the custom failure message prefix.
	FlagMessage = "message"
	// FlagSSFI marks the stack frame where error reporting starts.
	FlagSSFI = "ssfi"
)

// Flagged is anything that owns a flag bag.
type Flagged interface {
	Flags() *Flags
}

// Flags is an insertion-ordered bag of named values owned by one assertion.
type Flags struct {
	keys   []string
	values map[string]any
}

func NewFlags() *Flags {
	return &Flags{values: make(map[string]any)}
}

// Flags lets a bare bag be used wherever a Flagged is expected.
func (f *Flags) Flags() *Flags {
	return f
}

func (f *Flags) Get(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *Flags) Set(name string, value any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	if _, ok := f.values[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.values[name] = value
}

// Keys returns flag names in the order they were first set.
func (f *Flags) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

func (f *Flags) Len() int {
	return len(f.keys)
}

// Flag returns the named flag of obj, or nil when it is not set.
func Flag(obj Flagged, name string) any {
	v, _ := obj.Flags().Get(name)
	return v
}

// SetFlag sets the named flag on obj.
func SetFlag(obj Flagged, name string, value any) {
	obj.Flags().Set(name, value)
}

// TransferFlags copies the flags of src onto dst, overwriting what dst already has.
// With includeAll false, object, message and ssfi are skipped and dst keeps its own values.
func TransferFlags(src, dst Flagged, includeAll bool) {
	from, to := src.Flags(), dst.Flags()
	for _, name := range from.keys {
		if !includeAll && isContextFlag(name) {
			continue
		}
		to.Set(name, from.values[name])
	}
}

func isContextFlag(name string) bool {
	return name == FlagObject || name == FlagMessage || name == FlagSSFI
}
