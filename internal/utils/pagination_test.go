package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationFromQuery(t *testing.T) {
	t.Run("defaults when empty", func(t *testing.T) {
		page, pageSize := ParsePaginationFromQuery("", "")

		assert.Equal(t, 1, page)
		assert.Equal(t, 20, pageSize)
	})

	t.Run("parses valid values", func(t *testing.T) {
		page, pageSize := ParsePaginationFromQuery("3", "50")

		assert.Equal(t, 3, page)
		assert.Equal(t, 50, pageSize)
	})

	t.Run("ignores garbage and out-of-range values", func(t *testing.T) {
		page, pageSize := ParsePaginationFromQuery("abc", "9999")

		assert.Equal(t, 1, page)
		assert.Equal(t, 20, pageSize)
	})
}

func TestValidateAndNormalizePagination(t *testing.T) {
	page, pageSize := ValidateAndNormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = ValidateAndNormalizePagination(2, 500)
	assert.Equal(t, 2, page)
	assert.Equal(t, 100, pageSize)
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(45, 2, 20)

	assert.Equal(t, 45, info.Total)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 40, CalculateOffset(3, 20))
}
