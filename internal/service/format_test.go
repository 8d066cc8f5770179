package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/duedate/internal/service"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0m"},
		{16, "16h"},
		{2.5, "2h 30m"},
		{0.75, "45m"},
		{2.8, "2h 48m"},
		{-5, "-5h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.FormatHours(tt.hours), "hours=%v", tt.hours)
	}
}
