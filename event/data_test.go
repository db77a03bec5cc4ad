package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/couchlog/core"
)

func TestData_ReadThrough(t *testing.T) {
	def, err := NewDefinition(nil, testEventID, core.InformationLevel, "CoreEventId.Find")
	require.NoError(t, err)

	d := NewData(def, func(*Definition) string { return "executed find" })

	assert.Same(t, def, d.Definition())
	assert.Equal(t, testEventID, d.EventID())
	assert.Equal(t, core.InformationLevel, d.Level())
	assert.Equal(t, "CoreEventId.Find", d.Code())
	assert.Equal(t, "executed find", d.String())
}

func TestData_RenderIsLazy(t *testing.T) {
	def, err := NewDefinition(nil, testEventID, core.InformationLevel, "CoreEventId.Find")
	require.NoError(t, err)

	calls := 0
	d := NewData(def, func(got *Definition) string {
		calls++
		assert.Same(t, def, got)
		return "rendered"
	})

	assert.Equal(t, 0, calls, "generator must not run at construction")
	_ = d.EventID()
	_ = d.Level()
	_ = d.Code()
	assert.Equal(t, 0, calls, "read-through accessors must not render")

	assert.Equal(t, "rendered", d.String())
	assert.Equal(t, 1, calls)
}

func TestData_RenderPanicPropagates(t *testing.T) {
	def, err := NewDefinition(nil, testEventID, core.InformationLevel, "CoreEventId.Find")
	require.NoError(t, err)

	d := NewData(def, func(*Definition) string { panic("broken generator") })
	assert.PanicsWithValue(t, "broken generator", func() { _ = d.String() })
}

func TestDefinition_Messagef(t *testing.T) {
	def, err := NewDefinition(nil, testEventID, core.InformationLevel, "CoreEventId.Find")
	require.NoError(t, err)

	arg := &countingStringer{value: "orders"}
	d := def.Messagef("executed find on %s", arg)

	assert.Equal(t, 0, arg.calls, "arguments must not be formatted before render")
	assert.Equal(t, "executed find on orders", d.String())
	assert.Equal(t, 1, arg.calls)
}

type countingStringer struct {
	value string
	calls int
}

func (c *countingStringer) String() string {
	c.calls++
	return c.value
}
