package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/couchlog/core"
	"github.com/philipp01105/couchlog/event"
	"github.com/philipp01105/couchlog/formatter"
)

const sampleConfig = `
format = "level, id, singleline"
min_level = "debug"

[warnings]
default_behavior = "throw"

[[warnings.events]]
id = 10000
level = "warning"

[[warnings.events]]
id = 10001
behavior = "log"
`

func TestDecode(t *testing.T) {
	opts, err := Decode(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	format, err := opts.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, formatter.Level|formatter.ID|formatter.SingleLine, format)

	level, err := opts.Level()
	require.NoError(t, err)
	assert.Equal(t, core.DebugLevel, level)

	require.Len(t, opts.Warnings.Events, 2)
	assert.Equal(t, EventOverride{ID: 10000, Level: "warning"}, opts.Warnings.Events[0])
}

func TestDecode_Empty(t *testing.T) {
	opts, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)

	format, err := opts.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, formatter.DefaultWithLocalTime, format)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`colour = "red"`))
	assert.Error(t, err)
}

func TestDecode_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"format", `format = "level,sparkles"`, formatter.ErrUnknownOption},
		{"min level", `min_level = "loud"`, ErrUnknownLevel},
		{"default behavior", "[warnings]\ndefault_behavior = \"explode\"", ErrUnknownBehavior},
		{"event id", "[[warnings.events]]\nid = 0\nlevel = \"error\"", ErrInvalidEvent},
		{"event without values", "[[warnings.events]]\nid = 5", ErrInvalidEvent},
		{"event level", "[[warnings.events]]\nid = 5\nlevel = \"loud\"", ErrUnknownLevel},
		{"event behavior", "[[warnings.events]]\nid = 5\nbehavior = \"explode\"", ErrUnknownBehavior},
		{"duplicate event", "[[warnings.events]]\nid = 5\nlevel = \"error\"\n[[warnings.events]]\nid = 5\nbehavior = \"log\"", ErrInvalidEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions_WarningsConfiguration(t *testing.T) {
	opts, err := Decode(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	warnings, err := opts.WarningsConfiguration()
	require.NoError(t, err)
	assert.Equal(t, event.Throw, warnings.DefaultBehavior())

	level, ok := warnings.Level(event.FindEventID)
	require.True(t, ok)
	assert.Equal(t, core.WarningLevel, level)

	defs, err := event.NewCoreDefinitions(warnings)
	require.NoError(t, err)
	assert.Equal(t, core.WarningLevel, defs.FindDefinition().Level())
	assert.Equal(t, event.Throw, defs.FindDefinition().Behavior())
}

func TestOptions_NewLogger(t *testing.T) {
	opts, err := Decode(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	var lines []string
	log, err := opts.NewLogger(func(line string) error {
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, log.ShouldLog(event.FindEventID, core.DebugLevel))
	assert.False(t, log.ShouldLog(event.FindEventID, core.TraceLevel))

	defs, err := event.NewCoreDefinitions(nil)
	require.NoError(t, err)
	require.NoError(t, log.Log(defs.FindDefinition().Messagef("executed\nfind")))
	assert.Equal(t, []string{"info: CoreEventId.Find[10000] -> executedfind"}, lines)
}

func TestOptions_NewLoggerInvalid(t *testing.T) {
	opts := Default()
	opts.MinLevel = "loud"

	_, err := opts.NewLogger(nil)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
