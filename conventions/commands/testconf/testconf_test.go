package testconf

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.True(t, settings.UseJUnitPlatform)
	assert.Equal(t, runtime.NumCPU(), settings.MaxParallelForks)
	assert.GreaterOrEqual(t, settings.MaxParallelForks, 1)
	assert.ElementsMatch(t, []string{"passed", "skipped", "failed"}, settings.LoggedEvents)
}

func TestSettingsForProcessors(t *testing.T) {
	tests := []struct {
		name          string
		processors    int
		expectedForks int
	}{
		{"Single core", 1, 1},
		{"Many cores", 16, 16},
		{"Zero reported", 0, 1},
		{"Negative reported", -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedForks, settingsForProcessors(tt.processors).MaxParallelForks)
		})
	}
}
