package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/duedate/internal/domain"
)

func TestIsWorkingDay(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		want := day != time.Saturday && day != time.Sunday
		assert.Equal(t, want, domain.IsWorkingDay(day), day.String())
	}
}

func TestWorkStartAndEnd(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	ts := time.Date(2025, 3, 11, 14, 12, 33, 500, loc)

	assert.Equal(t, time.Date(2025, 3, 11, 9, 0, 0, 0, loc), domain.WorkStart(ts))
	assert.Equal(t, time.Date(2025, 3, 11, 17, 0, 0, 0, loc), domain.WorkEnd(ts))
	assert.Equal(t, 8, domain.WorkHoursPerDay)
}

func TestValidationErrorsShareParent(t *testing.T) {
	for _, err := range []error{
		domain.ErrOutsideWorkingHours,
		domain.ErrNegativeTurnaround,
		domain.ErrInvalidTurnaround,
	} {
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), err.Error())
	}
	assert.False(t, errors.Is(domain.ErrNegativeTurnaround, domain.ErrOutsideWorkingHours))
}
