package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionActive(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession("sid", 7, "hash", now, time.Hour)

	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
	assert.True(t, s.Active(now))
	assert.True(t, s.Active(now.Add(59*time.Minute)))
	assert.False(t, s.Active(now.Add(time.Hour)))
}
