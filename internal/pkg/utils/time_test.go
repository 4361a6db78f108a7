package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfHour(t *testing.T) {
	input := time.Date(2025, time.June, 10, 14, 35, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC), StartOfHour(input))
}

func TestStartOfDayAndEndOfDay(t *testing.T) {
	input := time.Date(2025, time.June, 10, 14, 35, 12, 0, time.UTC)

	start := StartOfDay(input)
	end := EndOfDay(input)

	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, end.After(input))
	assert.Equal(t, start.Day(), end.Day())
}

func TestSubtractHours(t *testing.T) {
	input := time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC), SubtractHours(input, 2))
}

func TestFormatHumanReadable(t *testing.T) {
	assert.Equal(t, "day 10 of June, at 15:00h", FormatHumanReadable(time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "day 3 of December, at 8:05h", FormatHumanReadable(time.Date(2025, time.December, 3, 8, 5, 0, 0, time.UTC)))
}

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("middle page has both links", func(t *testing.T) {
		pagination := BuildPaginationResponse(50, 2, 20, "http://localhost:3333/api/v1/appointments")

		assert.Equal(t, 50, pagination.Total)
		assert.Equal(t, "http://localhost:3333/api/v1/appointments?page=3&page_size=20", pagination.NextURL)
		assert.Equal(t, "http://localhost:3333/api/v1/appointments?page=1&page_size=20", pagination.PrevURL)
	})

	t.Run("last page has no next link", func(t *testing.T) {
		pagination := BuildPaginationResponse(40, 2, 20, "http://localhost:3333/api/v1/appointments")

		assert.Empty(t, pagination.NextURL)
		assert.NotEmpty(t, pagination.PrevURL)
	})

	t.Run("first page has no prev link", func(t *testing.T) {
		pagination := BuildPaginationResponse(5, 1, 20, "http://localhost:3333/api/v1/appointments")

		assert.Empty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})
}
