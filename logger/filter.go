package logger

import (
	"strings"

	"github.com/philipp01105/couchlog/core"
)

// Filter decides whether an event is logged. It must be pure and cheap.
type Filter func(id core.EventID, level core.Level) bool

// All lets every event through
func All(core.EventID, core.Level) bool {
	return true
}

// MinLevel lets events at or above threshold through
func MinLevel(threshold core.Level) Filter {
	return func(_ core.EventID, level core.Level) bool {
		return level.Enabled(threshold)
	}
}

// Categories lets events through whose name starts with one of the
// category names, at or above threshold.
func Categories(threshold core.Level, categories ...core.Category) Filter {
	prefixes := make([]string, len(categories))
	for i, c := range categories {
		prefixes[i] = c.Name() + "."
	}
	return func(id core.EventID, level core.Level) bool {
		if !level.Enabled(threshold) {
			return false
		}
		name := id.Name()
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}
