package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	t.Run("explicit year and month", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/holidays?year=2025&month=7", nil)
		year, month, err := parseYearMonth(r)
		require.NoError(t, err)
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.July, month)
	})

	t.Run("missing params default to current month", func(t *testing.T) {
		before := time.Now()
		r := httptest.NewRequest("GET", "/holidays", nil)
		year, month, err := parseYearMonth(r)
		require.NoError(t, err)
		after := time.Now()

		// ถ้าเทสรันคร่อมรอยต่อเดือน ค่า default ต้องตรงกับเวลาก่อนหรือหลังเรียก
		got := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		beforeMonth := time.Date(before.Year(), before.Month(), 1, 0, 0, 0, 0, time.Local)
		afterMonth := time.Date(after.Year(), after.Month(), 1, 0, 0, 0, 0, time.Local)
		assert.True(t, got.Equal(beforeMonth) || got.Equal(afterMonth))
	})

	t.Run("invalid month", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/holidays?year=2025&month=13", nil)
		_, _, err := parseYearMonth(r)
		assert.Error(t, err)
	})

	t.Run("invalid year", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/holidays?year=abc", nil)
		_, _, err := parseYearMonth(r)
		assert.Error(t, err)
	})
}
