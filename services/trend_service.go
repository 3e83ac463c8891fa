package services

import (
	"time"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type TrendService interface {
	GetProjectTrends(repoID uint) (models.ProjectTrends, error)
}

type trendService struct {
	snapshotRepo repositories.SnapshotRepository
	now          func() time.Time
}

func NewTrendService(snapshotRepo repositories.SnapshotRepository) TrendService {
	return &trendService{
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// GetProjectTrends derives star-count deltas from the snapshot tables:
//   - daily: the two most recent daily snapshots in the current month
//   - weekly: the two most recent weekly snapshots in the current year
//   - monthly: yesterday's daily value minus last calendar month's monthly value
//   - yearly: today's daily value minus December-of-previous-year's monthly value
//
// Missing snapshots leave the component at 0; a zero repoID short-circuits
// without touching the database.
func (s *trendService) GetProjectTrends(repoID uint) (models.ProjectTrends, error) {
	var trends models.ProjectTrends
	if repoID == 0 {
		return trends, nil
	}

	now := s.now()

	dailies, err := s.snapshotRepo.GetRecentDaily(repoID, now.Year(), int(now.Month()), 2)
	if err != nil {
		return trends, err
	}
	if len(dailies) >= 2 {
		trends.Daily = dailies[0].Stars - dailies[1].Stars
	}

	weeklies, err := s.snapshotRepo.GetRecentWeekly(repoID, now.Year(), 2)
	if err != nil {
		return trends, err
	}
	if len(weeklies) >= 2 {
		trends.Weekly = weeklies[0].Stars - weeklies[1].Stars
	}

	yesterday := now.AddDate(0, 0, -1)
	yesterdayDaily, errDaily := s.snapshotRepo.GetDaily(repoID, yesterday.Year(), int(yesterday.Month()), yesterday.Day())
	if errDaily != nil && !isNotFound(errDaily) {
		return trends, errDaily
	}

	// Anchor at the first of the month before stepping back, so Mar 31 does
	// not normalize into March again.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := firstOfMonth.AddDate(0, -1, 0)
	lastMonthly, errMonthly := s.snapshotRepo.GetMonthly(repoID, lastMonth.Year(), int(lastMonth.Month()))
	if errMonthly != nil && !isNotFound(errMonthly) {
		return trends, errMonthly
	}
	if errDaily == nil && errMonthly == nil {
		trends.Monthly = yesterdayDaily.Stars - lastMonthly.Stars
	}

	todayDaily, errToday := s.snapshotRepo.GetDaily(repoID, now.Year(), int(now.Month()), now.Day())
	if errToday != nil && !isNotFound(errToday) {
		return trends, errToday
	}
	decMonthly, errDec := s.snapshotRepo.GetMonthly(repoID, now.Year()-1, 12)
	if errDec != nil && !isNotFound(errDec) {
		return trends, errDec
	}
	if errToday == nil && errDec == nil {
		trends.Yearly = todayDaily.Stars - decMonthly.Stars
	}

	return trends, nil
}
