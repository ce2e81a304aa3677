package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferFlags_IncludeAll(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	test := r.New("bar")
	test.SetFlag(FlagNegate, true)

	obj := NewFlags()
	TransferFlags(test, obj, true)

	assert.Equal(t, "bar", Flag(obj, FlagObject))
	assert.Equal(t, true, Flag(obj, FlagNegate))
	assert.Same(t, test, Flag(obj, FlagSSFI))
}

func TestTransferFlags_Restricted(t *testing.T) {
	t.Parallel()
	ssfi := &struct{ name string }{"frame"}
	flagMe := &struct{}{}

	src := NewFlags()
	src.Set(FlagObject, "bar")
	src.Set(FlagMessage, "m")
	src.Set(FlagSSFI, ssfi)
	src.Set("flagMe", flagMe)
	src.Set(FlagNegate, true)

	dst := NewFlags()
	TransferFlags(src, dst, false)

	assert.Nil(t, Flag(dst, FlagObject))
	assert.Nil(t, Flag(dst, FlagMessage))
	assert.Nil(t, Flag(dst, FlagSSFI))
	assert.Equal(t, true, Flag(dst, FlagNegate))
	assert.Same(t, flagMe, Flag(dst, "flagMe"))
}

func TestTransferFlags_RestrictedKeepsDestinationContext(t *testing.T) {
	t.Parallel()
	src := NewFlags()
	src.Set(FlagObject, "source")
	src.Set(FlagMessage, "source message")
	src.Set(FlagNegate, true)

	dst := NewFlags()
	dst.Set(FlagObject, "own")
	dst.Set(FlagMessage, "own message")
	dst.Set(FlagNegate, false)

	TransferFlags(src, dst, false)

	assert.Equal(t, "own", Flag(dst, FlagObject))
	assert.Equal(t, "own message", Flag(dst, FlagMessage))
	assert.Equal(t, true, Flag(dst, FlagNegate))
}

func TestTransferFlags_FullOverwritesDestination(t *testing.T) {
	t.Parallel()
	src := NewFlags()
	src.Set(FlagObject, "source")

	dst := NewFlags()
	dst.Set(FlagObject, "own")
	dst.Set("extra", 1)

	TransferFlags(src, dst, true)

	assert.Equal(t, "source", Flag(dst, FlagObject))
	assert.Equal(t, 1, Flag(dst, "extra"))
}

func TestFlags_CopiesAreNotAliased(t *testing.T) {
	t.Parallel()
	src := NewFlags()
	src.Set("a", 1)

	dst := NewFlags()
	TransferFlags(src, dst, true)
	dst.Set("a", 2)
	dst.Set("b", 3)

	assert.Equal(t, 1, Flag(src, "a"))
	assert.Nil(t, Flag(src, "b"))
}

func TestFlags_KeysKeepInsertionOrder(t *testing.T) {
	t.Parallel()
	f := NewFlags()
	f.Set("z", 1)
	f.Set("a", 2)
	f.Set("z", 3)

	assert.Equal(t, []string{"z", "a"}, f.Keys())
	assert.Equal(t, 2, f.Len())

	var zero Flags
	zero.Set("k", "v")
	v, ok := zero.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
