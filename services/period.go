package services

import (
	"fmt"
	"time"

	"github.com/metacode0602/open-mcp-sub000/models"
)

// FormatPeriodKey returns the canonical key identifying the period a ranking
// belongs to: daily "2024-05-03", weekly "2024-W18", monthly "2024-05",
// yearly "2024". Weekly numbers are not zero-padded.
func FormatPeriodKey(rankingType models.RankingType, t time.Time) (string, error) {
	switch rankingType {
	case models.RankingTypeDaily:
		return t.Format("2006-01-02"), nil
	case models.RankingTypeWeekly:
		return fmt.Sprintf("%d-W%d", t.Year(), WeekOfYear(t)), nil
	case models.RankingTypeMonthly:
		return t.Format("2006-01"), nil
	case models.RankingTypeYearly:
		return t.Format("2006"), nil
	default:
		return "", fmt.Errorf("unknown ranking type %q", rankingType)
	}
}

// WeekOfYear computes a Monday-aligned week number. Jan 1 is shifted back to
// the Monday of its week (Sunday counts as day 7), then the week is
// ceil((daysSinceThatMonday + 1) / 7). Not ISO 8601: when Jan 1 falls late in
// the week, week 1 is short and the count runs ahead of the ISO number.
func WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	weekday := int(jan1.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	// Whole days between the Monday anchor and t, computed from year days to
	// stay immune to DST offsets.
	daysDiff := (weekday - 1) + t.YearDay() - 1

	return daysDiff/7 + 1
}
