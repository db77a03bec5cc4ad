package event

import (
	"github.com/philipp01105/couchlog/core"
)

// CoreBaseID is the first id reserved for core driver events
const CoreBaseID = 10000

const (
	findID = CoreBaseID + iota
)

// Core event identities
var (
	// FindEventID is raised when a find query is executed
	FindEventID = core.NewEventID(core.QueryCategory, "Find", findID)
)

// FindCode is the configuration handle of FindEventID
const FindCode = "CoreEventId.Find"

// CoreDefinitions holds the core event definitions of one session
type CoreDefinitions struct {
	find *Definition
}

// NewCoreDefinitions resolves every core event against warnings
func NewCoreDefinitions(warnings *WarningsConfiguration) (*CoreDefinitions, error) {
	find, err := NewDefinition(warnings, FindEventID, core.InformationLevel, FindCode)
	if err != nil {
		return nil, err
	}
	return &CoreDefinitions{find: find}, nil
}

// FindDefinition returns the resolved definition of FindEventID
func (c *CoreDefinitions) FindDefinition() *Definition {
	return c.find
}

// Find creates the payload for a find query against database
func (c *CoreDefinitions) Find(database, selector string) *Data {
	return NewData(c.find, func(*Definition) string {
		return "Executed find on database '" + database + "' with selector " + selector
	})
}
