package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// GetDashboardStats counts published articles, comments and users concurrently.
type GetDashboardStats struct {
	Counter datasources.StatsCounter
}

var _ Command[Empty, domain.DashboardStats] = (*GetDashboardStats)(nil)

func (c *GetDashboardStats) Execute(ctx context.Context, _ Empty) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		n, err := c.Counter.CountPublishedArticles(grpCtx)
		if err != nil {
			return fmt.Errorf("counting published articles: %w", err)
		}
		stats.Articles = n
		return nil
	})
	grp.Go(func() error {
		n, err := c.Counter.CountComments(grpCtx)
		if err != nil {
			return fmt.Errorf("counting comments: %w", err)
		}
		stats.Comments = n
		return nil
	})
	grp.Go(func() error {
		n, err := c.Counter.CountUsers(grpCtx)
		if err != nil {
			return fmt.Errorf("counting users: %w", err)
		}
		stats.Users = n
		return nil
	})

	if err := grp.Wait(); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}
