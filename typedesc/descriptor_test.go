package typedesc_test

import (
	"reflect"
	"testing"

	"github.com/saylorsolutions/signals/typedesc"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, typedesc.Of[int](), typedesc.OfValue(5))
	assert.Equal(t, typedesc.Of[string](), typedesc.OfValue("abc"))
	assert.NotEqual(t, typedesc.Of[int](), typedesc.Of[int64]())
	assert.True(t, typedesc.Of[int]().Equal(typedesc.OfType(reflect.TypeFor[int]())))
}

func TestOfValue_Nil(t *testing.T) {
	none := typedesc.OfValue(nil)
	assert.True(t, none.IsNone())
	assert.Equal(t, reflect.Invalid, none.Kind())
	assert.Nil(t, none.Type())
	assert.Equal(t, "none", none.String())
}

func TestDescriptor_Deref(t *testing.T) {
	assert.Equal(t, typedesc.Of[int](), typedesc.Of[*int]().Deref())
	// Only one level of indirection is removed at a time.
	assert.Equal(t, typedesc.Of[*int](), typedesc.Of[**int]().Deref())
	assert.Equal(t, typedesc.Of[int](), typedesc.Of[int]().Deref())
	assert.True(t, typedesc.OfValue(nil).Deref().IsNone())
}

func TestDescriptor_Nillable(t *testing.T) {
	assert.True(t, typedesc.Of[*int]().Nillable())
	assert.True(t, typedesc.Of[[]string]().Nillable())
	assert.True(t, typedesc.Of[map[string]int]().Nillable())
	assert.True(t, typedesc.Of[chan int]().Nillable())
	assert.True(t, typedesc.Of[func()]().Nillable())
	assert.True(t, typedesc.Of[error]().Nillable())
	assert.False(t, typedesc.Of[int]().Nillable())
	assert.False(t, typedesc.Of[string]().Nillable())
	assert.False(t, typedesc.Of[struct{ A int }]().Nillable())
	assert.False(t, typedesc.OfValue(nil).Nillable())
}

func TestDescriptor_MapKey(t *testing.T) {
	kinds := map[typedesc.Descriptor]string{
		typedesc.Of[int]():    "number",
		typedesc.Of[string](): "text",
	}
	assert.Equal(t, "number", kinds[typedesc.OfValue(42)])
	assert.Equal(t, "text", kinds[typedesc.OfValue("hello")])
	_, ok := kinds[typedesc.Of[float64]()]
	assert.False(t, ok)
}
