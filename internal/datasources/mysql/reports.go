package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

var marketReportColumns = []string{
	"id", "report_date", "price_ny", "price_fnc", "production_info", "exports_info", "created_at",
}

func scanMarketReport(scanner interface{ Scan(...interface{}) error }) (domain.MarketReport, error) {
	var (
		report         domain.MarketReport
		productionInfo sql.NullString
		exportsInfo    sql.NullString
	)
	if err := scanner.Scan(
		&report.ID,
		&report.ReportDate,
		&report.PriceNY,
		&report.PriceFNC,
		&productionInfo,
		&exportsInfo,
		&report.CreatedAt,
	); err != nil {
		return domain.MarketReport{}, err
	}
	report.ProductionInfo = nullStringPtr(productionInfo)
	report.ExportsInfo = nullStringPtr(exportsInfo)
	return report, nil
}

func (r *Repository) FetchLatestMarketReport(ctx context.Context) (domain.MarketReport, error) {
	sb := sqlbuilder.Select(marketReportColumns...)
	sb.From("market_reports")
	sb.OrderBy("report_date DESC", "id DESC")
	sb.Limit(1)

	query, args := sb.Build()
	report, err := scanMarketReport(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MarketReport{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.MarketReport{}, fmt.Errorf("fetching latest market report: %w", err)
	}
	return report, nil
}

func (r *Repository) ListMarketReports(ctx context.Context) ([]domain.MarketReport, error) {
	sb := sqlbuilder.Select(marketReportColumns...)
	sb.From("market_reports")
	sb.OrderBy("report_date DESC", "id DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running market reports query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reports := []domain.MarketReport{}
	for rows.Next() {
		report, err := scanMarketReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning market reports: %w", err)
		}
		reports = append(reports, report)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *Repository) CreateMarketReport(ctx context.Context, report domain.MarketReport) (int64, error) {
	ib := sqlbuilder.InsertInto("market_reports")
	ib.Cols("report_date", "price_ny", "price_fnc", "production_info", "exports_info")
	ib.Values(
		report.ReportDate,
		report.PriceNY,
		report.PriceFNC,
		report.ProductionInfo,
		report.ExportsInfo,
	)

	id, err := r.insert(ctx, ib)
	if err != nil {
		return 0, fmt.Errorf("inserting market report: %w", err)
	}
	return id, nil
}

func (r *Repository) DeleteMarketReport(ctx context.Context, id int64) error {
	db := sqlbuilder.DeleteFrom("market_reports")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting market report: %w", err)
	}
	return nil
}
