package core

import "strconv"

// EventID identifies an event kind by a stable numeric id and a dotted name.
// The zero value has no name and is rejected wherever an identity is required.
type EventID struct {
	id   int
	name string
}

// NewEventID creates the identity of an event kind within a category.
// The name is "<category>.<kind>", or just kind when the category is unnamed.
func NewEventID(category Category, kind string, id int) EventID {
	prefix := category.Name()
	if prefix == "" {
		return EventID{id: id, name: kind}
	}
	return EventID{id: id, name: prefix + "." + kind}
}

// ID returns the numeric id
func (e EventID) ID() int {
	return e.id
}

// Name returns the dotted name
func (e EventID) Name() string {
	return e.name
}

// String returns the name, falling back to the numeric id
func (e EventID) String() string {
	if e.name != "" {
		return e.name
	}
	return strconv.Itoa(e.id)
}
