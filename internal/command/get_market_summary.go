package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// GetMarketSummary combines the latest manual market report with live futures data. The live
// quote and history are fetched concurrently and degrade to empty when the feed fails; only a
// failure to read the stored report is an error.
type GetMarketSummary struct {
	Reports datasources.LatestMarketReportFetcher
	Market  datasources.MarketDataFetcher
}

var _ Command[Empty, domain.MarketSummary] = (*GetMarketSummary)(nil)

func (c *GetMarketSummary) Execute(ctx context.Context, _ Empty) (domain.MarketSummary, error) {
	logger := domain.LoggerFromContext(ctx)

	var summary domain.MarketSummary

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		report, err := c.Reports.FetchLatestMarketReport(grpCtx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetching latest market report: %w", err)
		}
		summary.Report = &report
		return nil
	})
	grp.Go(func() error {
		quote, err := c.Market.FetchCoffeeQuote(grpCtx)
		if err != nil {
			logger.WarnContext(ctx, "unable to fetch live coffee quote", "error", err)
			return nil
		}
		summary.Quote = &quote
		return nil
	})
	grp.Go(func() error {
		history, err := c.Market.FetchCoffeeHistory(grpCtx)
		if err != nil {
			logger.WarnContext(ctx, "unable to fetch coffee price history", "error", err)
			return nil
		}
		summary.History = history
		return nil
	})

	if err := grp.Wait(); err != nil {
		return domain.MarketSummary{}, err
	}
	return summary, nil
}
