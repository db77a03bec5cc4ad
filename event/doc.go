// Package event describes loggable driver events and resolves how each one
// is treated.
//
// A Definition is built once per event kind and session. NewDefinition
// applies the session's WarningsConfiguration right away: a per-event level
// override replaces the declared level, and the Behavior is taken from a
// per-event override or, failing that, becomes Throw only for Warning-level
// events when the configuration's default behavior is Throw. Nothing is
// re-resolved when an event is logged.
//
// A Data value pairs a Definition with a message generator. The generator
// runs only when Data.String is called, so producers can build payloads
// cheaply and loggers can drop them without ever formatting a message.
//
// Definitions whose Behavior is Throw are not meant to reach a logger. The
// producer turns them into the error returned by Definition.WarningAsError.
package event
