package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "Trace"},
		{DebugLevel, "Debug"},
		{InformationLevel, "Information"},
		{WarningLevel, "Warning"},
		{ErrorLevel, "Error"},
		{CriticalLevel, "Critical"},
		{NoneLevel, "None"},
		{Level(42), "Unknown"},
		{Level(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevel_Order(t *testing.T) {
	ordered := []Level{TraceLevel, DebugLevel, InformationLevel, WarningLevel, ErrorLevel, CriticalLevel}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestLevel_Enabled(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		threshold Level
		want      bool
	}{
		{"above threshold", ErrorLevel, WarningLevel, true},
		{"at threshold", WarningLevel, WarningLevel, true},
		{"below threshold", DebugLevel, InformationLevel, false},
		{"none threshold disables critical", CriticalLevel, NoneLevel, false},
		{"none level never enabled", NoneLevel, TraceLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Enabled(tt.threshold))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"trace", TraceLevel, true},
		{"Debug", DebugLevel, true},
		{"INFO", InformationLevel, true},
		{"information", InformationLevel, true},
		{" warning ", WarningLevel, true},
		{"warn", WarningLevel, true},
		{"fail", ErrorLevel, true},
		{"critical", CriticalLevel, true},
		{"none", NoneLevel, true},
		{"verbose", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
