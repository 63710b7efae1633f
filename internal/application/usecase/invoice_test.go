package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 30, 45, 123_000_000, time.UTC)

	got := NewInvoiceNumber(now)

	millis := fmt.Sprintf("%d", now.UnixMilli())
	assert.Equal(t, "SB2026-"+millis[len(millis)-6:], got)
	assert.Regexp(t, `^SB\d{4}-\d{6}$`, got)
}

func TestNewAccessCode(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 30, 45, 123_000_000, time.UTC)
	millis := fmt.Sprintf("%d", now.UnixMilli())
	tail := millis[len(millis)-4:]

	tests := []struct {
		fullName string
		want     string
	}{
		{"Rahim Uddin", "SB2026RAHIM" + tail},
		{"  karim  ", "SB2026KARIM" + tail},
		{"", "SB2026STUDENT" + tail},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewAccessCode(now, tt.fullName))
	}
}
