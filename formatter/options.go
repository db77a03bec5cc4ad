package formatter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned by ParseOptions for unrecognized names
var ErrUnknownOption = errors.New("formatter: unknown option")

// Options is a bitmask selecting which segments prefix each line.
// Segments always appear in the order Level, LocalTime, UTCTime, ID,
// Category regardless of declaration order.
type Options int

const (
	// SingleLine removes line breaks from the message
	SingleLine Options = 1 << iota
	// Level prefixes a six character level label such as "info: "
	Level
	// Category prefixes the event category in parentheses
	Category
	// ID prefixes the event code and numeric id: Code[10000]
	ID
	// UTCTime prefixes a round-trip UTC timestamp
	UTCTime
	// LocalTime prefixes the local date and time with milliseconds
	LocalTime

	// None writes the rendered message only
	None Options = 0

	// DefaultWithUTCTime is Level, Category, ID and UTCTime
	DefaultWithUTCTime = Level | Category | ID | UTCTime
	// DefaultWithLocalTime is Level, Category, ID and LocalTime
	DefaultWithLocalTime = Level | Category | ID | LocalTime
)

// Has reports whether every bit of flag is set
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

var optionNames = []struct {
	name string
	flag Options
}{
	{"singleline", SingleLine},
	{"level", Level},
	{"category", Category},
	{"id", ID},
	{"utctime", UTCTime},
	{"localtime", LocalTime},
}

var optionFromString = map[string]Options{
	"none":                 None,
	"singleline":           SingleLine,
	"level":                Level,
	"category":             Category,
	"id":                   ID,
	"utctime":              UTCTime,
	"localtime":            LocalTime,
	"defaultwithutctime":   DefaultWithUTCTime,
	"defaultwithlocaltime": DefaultWithLocalTime,
}

// String returns the comma separated names of the set flags
func (o Options) String() string {
	if o == None {
		return "none"
	}
	names := make([]string, 0, len(optionNames))
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseOptions takes a comma separated list of option names and returns
// their union. Names are case-insensitive; an empty string is None.
func ParseOptions(from string) (Options, error) {
	opts := None
	for _, part := range strings.Split(from, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		flag, ok := optionFromString[name]
		if !ok {
			return None, fmt.Errorf("%w: %q", ErrUnknownOption, part)
		}
		opts |= flag
	}
	return opts, nil
}
