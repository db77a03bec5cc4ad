// Package formatter turns event payloads into single text lines.
//
// Options is a bitmask: each flag adds one prefix segment, and segments are
// always written in the order level label, local time, UTC time, code and
// id, category. With no flags (None) the rendered message is returned
// unchanged.
//
// Line breaks in the message are handled in one of three ways. With only
// SingleLine set, every line break in the finished line is removed. With
// SingleLine combined with other flags, "-> " separates prefix and message
// and line breaks are removed from the message only. Without SingleLine,
// the message starts on its own line and continuation lines are indented
// by six spaces so they align under the level label.
//
// LineFormatter uses a pooled bytes.Buffer and Append-style time and
// integer formatting. Buffers larger than 64 KiB are not returned to the
// pool so a single large message does not inflate memory for good.
package formatter
