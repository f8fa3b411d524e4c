package datasources

import (
	"context"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// LatestMarketReportFetcher returns domain.ErrNotFound when no report has been entered.
type LatestMarketReportFetcher interface {
	FetchLatestMarketReport(ctx context.Context) (domain.MarketReport, error)
}

type MarketReportRepository interface {
	LatestMarketReportFetcher
	ListMarketReports(ctx context.Context) ([]domain.MarketReport, error)
	CreateMarketReport(ctx context.Context, report domain.MarketReport) (int64, error)
	DeleteMarketReport(ctx context.Context, id int64) error
}

// MarketDataFetcher reads live coffee futures data from an external market feed.
type MarketDataFetcher interface {
	FetchCoffeeQuote(ctx context.Context) (domain.CoffeeQuote, error)
	FetchCoffeeHistory(ctx context.Context) ([]domain.PricePoint, error)
}

// NullMarketDataFetcher is used when no market feed is configured.
type NullMarketDataFetcher struct{}

var _ MarketDataFetcher = NullMarketDataFetcher{}

func (NullMarketDataFetcher) FetchCoffeeQuote(_ context.Context) (domain.CoffeeQuote, error) {
	return domain.CoffeeQuote{}, nil
}

func (NullMarketDataFetcher) FetchCoffeeHistory(_ context.Context) ([]domain.PricePoint, error) {
	return nil, nil
}
