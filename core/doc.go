// Package core defines the shared types used across couchlog.
//
// It provides the Level type for severity filtering, the EventID type that
// gives every event kind a stable numeric id and a dotted name, and the
// Category type that derives the namespace part of that name.
//
// Category names are derived from a fully qualified marker such as
// "CouchDB.Driver.DbLoggerCategory+Query". The nested-type separator is
// turned into a dot and the ".DbLoggerCategory" wrapper segment is dropped,
// so the marker above becomes "CouchDB.Driver.Query". The derivation runs
// once per marker; later lookups hit a concurrent memo.
//
// EventID values are only built through NewEventID, so an event name is
// always "<category>.<kind>" and never set independently of its category.
//
// Clock abstracts the time source used for timestamps. CoarseClock trades
// sub-millisecond accuracy for a cheaper read on the hot path.
package core
