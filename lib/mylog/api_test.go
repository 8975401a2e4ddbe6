package mylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {

	t.Run("Unknown level logs everything", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		assert.Equal(t, SeverityDebug, minimumSeverity())
	})

	t.Run("Level is case insensitive", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		assert.Equal(t, SeverityWarn, minimumSeverity())
	})

	t.Run("Filter below minimum", func(t *testing.T) {
		assert.False(t, enabled(SeverityWarn, SeverityInfo))
		assert.True(t, enabled(SeverityWarn, SeverityWarn))
		assert.True(t, enabled(SeverityWarn, SeverityError))
		assert.True(t, enabled(SeverityDebug, SeverityDebug))
	})
}
