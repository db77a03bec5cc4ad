package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/couchlog/core"
)

func TestFindEventID(t *testing.T) {
	assert.Equal(t, 10000, FindEventID.ID())
	assert.Equal(t, "CouchDB.Driver.Query.Find", FindEventID.Name())
}

func TestNewCoreDefinitions(t *testing.T) {
	defs, err := NewCoreDefinitions(nil)
	require.NoError(t, err)

	find := defs.FindDefinition()
	assert.Equal(t, FindEventID, find.EventID())
	assert.Equal(t, core.InformationLevel, find.Level())
	assert.Equal(t, FindCode, find.Code())
	assert.Equal(t, Log, find.Behavior())

	d := defs.Find("orders", `{"status":"open"}`)
	assert.Equal(t, `Executed find on database 'orders' with selector {"status":"open"}`, d.String())
}

func TestNewCoreDefinitions_Overrides(t *testing.T) {
	warnings := NewWarningsConfiguration(Throw).WithLevel(core.WarningLevel, FindEventID.ID())

	defs, err := NewCoreDefinitions(warnings)
	require.NoError(t, err)

	assert.Equal(t, core.WarningLevel, defs.FindDefinition().Level())
	assert.Equal(t, Throw, defs.FindDefinition().Behavior())
}
