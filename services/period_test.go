package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metacode0602/open-mcp-sub000/models"
)

func TestFormatPeriodKey(t *testing.T) {
	at := time.Date(2024, time.May, 3, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		rankingType models.RankingType
		want        string
	}{
		{models.RankingTypeDaily, "2024-05-03"},
		{models.RankingTypeWeekly, "2024-W18"},
		{models.RankingTypeMonthly, "2024-05"},
		{models.RankingTypeYearly, "2024"},
	}

	for _, tt := range tests {
		key, err := FormatPeriodKey(tt.rankingType, at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, key)
	}
}

func TestFormatPeriodKeyUnknownType(t *testing.T) {
	_, err := FormatPeriodKey(models.RankingType("hourly"), time.Now())
	assert.Error(t, err)
}

func TestFormatPeriodKeyMonthlyPrefixesDaily(t *testing.T) {
	for day := 1; day <= 28; day++ {
		at := time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)

		daily, err := FormatPeriodKey(models.RankingTypeDaily, at)
		require.NoError(t, err)
		monthly, err := FormatPeriodKey(models.RankingTypeMonthly, at)
		require.NoError(t, err)

		assert.Equal(t, monthly, daily[:7])
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		// 2024 starts on a Monday, so week boundaries line up with the
		// calendar exactly.
		{"2024-01-01", 1},
		{"2024-01-07", 1},
		{"2024-01-08", 2},
		{"2024-05-03", 18},
		{"2024-12-31", 53},
		// 2023 starts on a Sunday: week 1 holds a single day and the count
		// runs ahead of ISO numbering from there on.
		{"2023-01-01", 1},
		{"2023-01-02", 2},
		{"2023-01-08", 2},
		{"2023-01-09", 3},
	}

	for _, tt := range tests {
		at, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, WeekOfYear(at), "date %s", tt.date)
	}
}

func TestWeekOfYearNeverDecreasesWithinYear(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025} {
		prev := 0
		for at := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); at.Year() == year; at = at.AddDate(0, 0, 1) {
			week := WeekOfYear(at)
			require.GreaterOrEqual(t, week, prev, "week dropped at %s", at.Format("2006-01-02"))
			require.LessOrEqual(t, week-prev, 1, "week jumped at %s", at.Format("2006-01-02"))
			prev = week
		}
		assert.Equal(t, 1, WeekOfYear(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)))
	}
}
