package logging

import (
	"bytes"
	"testing"

	"github.com/cdimurro/bamboo-forecast-app/internal/calculation"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = (*Console)(nil)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestConsole_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, log.WarnLevel)

	c.Debugf("year %d detail", 3)
	c.Infof("projecting %s", "trial")
	c.Warnf("IRR undefined for %q", "trial")
	c.Errorf("render failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "year 3 detail")
	assert.NotContains(t, out, "projecting trial")
	assert.Contains(t, out, "IRR undefined")
	assert.Contains(t, out, "render failed: boom")
}
