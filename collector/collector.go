package collector

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metacode0602/open-mcp-sub000/config"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
	"github.com/metacode0602/open-mcp-sub000/services"
)

// Collector refreshes repo counters and snapshot tables on an interval, and
// feeds Product Hunt trending posts into the ranking aggregator. It is the
// ingestion side of the trend calculator: without it the snapshot tables
// stay empty and every trend is zero.
type Collector struct {
	cfg            config.CollectorConfig
	github         *GithubClient
	productHunt    *ProductHuntFetcher
	repoRepo       repositories.RepoRepository
	snapshotRepo   repositories.SnapshotRepository
	rankingService services.RankingService
	log            *logrus.Logger
}

func New(
	cfg config.CollectorConfig,
	repoRepo repositories.RepoRepository,
	snapshotRepo repositories.SnapshotRepository,
	rankingService services.RankingService,
	log *logrus.Logger,
) *Collector {
	return &Collector{
		cfg:            cfg,
		github:         NewGithubClient(cfg.GithubToken),
		productHunt:    NewProductHuntFetcher(cfg.ProductHunt.URL),
		repoRepo:       repoRepo,
		snapshotRepo:   snapshotRepo,
		rankingService: rankingService,
		log:            log,
	}
}

// Start runs the collection loop until ctx is cancelled. One pass runs
// immediately so a fresh deployment does not wait a full interval.
func (c *Collector) Start(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(c.cfg.Interval))
	defer ticker.Stop()

	c.collectOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.collectOnce(ctx)
		}
	}
}

func (c *Collector) collectOnce(ctx context.Context) {
	repos, err := c.repoRepo.GetAll()
	if err != nil {
		c.log.WithError(err).Error("collector: list repos")
		return
	}

	now := time.Now()
	for i := range repos {
		if ctx.Err() != nil {
			return
		}
		if err := c.syncRepo(ctx, &repos[i], now); err != nil {
			c.log.WithError(err).WithField("repo", repos[i].FullName).Warn("collector: snapshot failed")
		}
	}

	if c.cfg.ProductHunt.Enabled {
		c.collectProductHunt(ctx)
	}
}

func (c *Collector) syncRepo(ctx context.Context, repo *models.Repo, now time.Time) error {
	stats, err := c.github.GetRepo(ctx, repo.FullName)
	if err != nil {
		return err
	}

	year, month, day := now.Year(), int(now.Month()), now.Day()
	week := services.WeekOfYear(now)

	if err := c.snapshotRepo.UpsertDaily(&models.Snapshot{
		RepoID: repo.ID, Year: year, Month: month, Day: day,
		Stars: stats.Stars, Forks: stats.Forks, Watchers: stats.Watchers,
	}); err != nil {
		return err
	}
	if err := c.snapshotRepo.UpsertWeekly(&models.SnapshotWeekly{
		RepoID: repo.ID, Year: year, Week: week,
		Stars: stats.Stars, Forks: stats.Forks, Watchers: stats.Watchers,
	}); err != nil {
		return err
	}
	if err := c.snapshotRepo.UpsertMonthly(&models.SnapshotMonthly{
		RepoID: repo.ID, Year: year, Month: month,
		Stars: stats.Stars, Forks: stats.Forks, Watchers: stats.Watchers,
	}); err != nil {
		return err
	}

	repo.Stars = stats.Stars
	repo.Forks = stats.Forks
	repo.Watchers = stats.Watchers
	syncedAt := now
	repo.LastSyncAt = &syncedAt
	return c.repoRepo.Update(repo)
}

func (c *Collector) collectProductHunt(ctx context.Context) {
	submissions, err := c.productHunt.FetchTrending(ctx)
	if err != nil {
		c.log.WithError(err).Warn("collector: producthunt fetch failed")
		return
	}
	if len(submissions) == 0 {
		return
	}

	if _, err := c.rankingService.CreateSubmissionRank(models.RankingSourceProductHunt, submissions, models.RankingTypeDaily); err != nil {
		c.log.WithError(err).Error("collector: producthunt ranking failed")
		return
	}

	c.log.WithFields(logrus.Fields{
		"submissions": len(submissions),
	}).Info("collector: producthunt ranking updated")
}
