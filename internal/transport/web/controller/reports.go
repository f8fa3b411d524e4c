package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const reportDateLayout = time.DateOnly

var (
	topCoffeeExporters = []string{"Brazil", "Vietnam", "Colombia", "Indonesia", "Ethiopia"}
	colombiaRegions    = []string{"Huila", "Antioquia", "Tolima", "Cauca", "Nariño"}
)

// ManualReport is the latest hand-entered report; every field is null when none exists yet.
type ManualReport struct {
	ID             *int64   `json:"id"`
	ReportDate     *string  `json:"report_date"`
	PriceNY        *float64 `json:"price_ny"`
	PriceFNC       *float64 `json:"price_fnc"`
	ProductionInfo *string  `json:"production_info"`
	ExportsInfo    *string  `json:"exports_info"`
}

type NYSEPrice struct {
	Price  string `json:"price"`
	Change string `json:"change"`
	Status string `json:"status"`
	Unit   string `json:"unit"`
}

type HistoricalData struct {
	Labels []string  `json:"labels"`
	Data   []*string `json:"data"`
}

type ColombiaPrice struct {
	Price *float64 `json:"price"`
	Note  string   `json:"note"`
	Unit  string   `json:"unit"`
}

type EconomicIndicators struct {
	Production *string `json:"production"`
	Exports    *string `json:"exports"`
}

type ReportLatestResponse struct {
	LastManualReport   ManualReport       `json:"lastManualReport"`
	CurrentNYSEPrice   NYSEPrice          `json:"currentNysePrice"`
	HistoricalData     HistoricalData     `json:"historicalData"`
	ColombiaPrice      ColombiaPrice      `json:"colombiaPrice"`
	EconomicIndicators EconomicIndicators `json:"economicIndicators"`
	TopExporters       []string           `json:"topExporters"`
	ColombiaRegions    []string           `json:"colombiaRegions"`
}

// ReportLatest handles GET /api/reports/latest.
type ReportLatest struct {
	Command     *command.GetMarketSummary
	CacheMaxAge time.Duration
}

func (c ReportLatest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		writeError(ctx, w, err, "fetch market summary")
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, newReportLatestResponse(summary))
}

func newReportLatestResponse(summary domain.MarketSummary) ReportLatestResponse {
	resp := ReportLatestResponse{
		CurrentNYSEPrice: nysePrice(summary.Quote),
		HistoricalData:   HistoricalData{Labels: []string{}, Data: []*string{}},
		ColombiaPrice: ColombiaPrice{
			Note: "Internal reference price",
			Unit: "COP per load (125kg)",
		},
		TopExporters:    topCoffeeExporters,
		ColombiaRegions: colombiaRegions,
	}

	if rep := summary.Report; rep != nil {
		date := rep.ReportDate.Format(reportDateLayout)
		resp.LastManualReport = ManualReport{
			ID:             &rep.ID,
			ReportDate:     &date,
			PriceNY:        &rep.PriceNY,
			PriceFNC:       &rep.PriceFNC,
			ProductionInfo: rep.ProductionInfo,
			ExportsInfo:    rep.ExportsInfo,
		}
		resp.ColombiaPrice.Price = &rep.PriceFNC
		resp.EconomicIndicators = EconomicIndicators{Production: rep.ProductionInfo, Exports: rep.ExportsInfo}
	}

	for _, p := range summary.History {
		resp.HistoricalData.Labels = append(resp.HistoricalData.Labels, p.Date.Format(reportDateLayout))

		var value *string
		if p.Close != nil {
			v := fmt.Sprintf("%.2f", *p.Close)
			value = &v
		}
		resp.HistoricalData.Data = append(resp.HistoricalData.Data, value)
	}

	return resp
}

// nysePrice describes the live quote, preferring the current price over the previous close.
func nysePrice(quote *domain.CoffeeQuote) NYSEPrice {
	price := NYSEPrice{Price: "N/A", Status: "Unavailable", Unit: "USD per pound"}
	if quote == nil {
		return price
	}

	switch {
	case quote.RegularMarketPrice != nil:
		price.Price = fmt.Sprintf("%.2f", *quote.RegularMarketPrice)
		price.Status = "Live"
	case quote.PreviousClose != nil:
		price.Price = fmt.Sprintf("%.2f", *quote.PreviousClose)
		price.Status = "Previous close"
	default:
		return price
	}
	price.Change = fmt.Sprintf("%.2f%%", quote.ChangePercent)

	return price
}

// ReportsList handles GET /api/reports.
type ReportsList struct {
	Lister datasources.MarketReportRepository
}

func (c ReportsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports, err := c.Lister.ListMarketReports(ctx)
	if err != nil {
		writeError(ctx, w, err, "list market reports")
		return
	}

	writeJSON(ctx, w, http.StatusOK, reports)
}

type ReportCreateRequest struct {
	ReportDate     string  `json:"report_date" validate:"required,datetime=2006-01-02"`
	PriceNY        float64 `json:"price_ny" validate:"required,gt=0"`
	PriceFNC       float64 `json:"price_fnc" validate:"required,gt=0"`
	ProductionInfo *string `json:"production_info"`
	ExportsInfo    *string `json:"exports_info"`
}

// ReportCreate handles POST /api/reports.
type ReportCreate struct {
	Creator datasources.MarketReportRepository
}

func (c ReportCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body ReportCreateRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Report date and NY and FNC prices are required")
		return
	}

	// Already checked by the datetime tag.
	reportDate, _ := time.Parse(reportDateLayout, body.ReportDate)

	if _, err := c.Creator.CreateMarketReport(ctx, domain.MarketReport{
		ReportDate:     reportDate,
		PriceNY:        body.PriceNY,
		PriceFNC:       body.PriceFNC,
		ProductionInfo: body.ProductionInfo,
		ExportsInfo:    body.ExportsInfo,
	}); err != nil {
		writeError(ctx, w, err, "create market report")
		return
	}

	writeMessage(ctx, w, http.StatusCreated, "Market report saved")
}

// ReportDelete handles DELETE /api/reports/{id}.
type ReportDelete struct {
	Deleter datasources.MarketReportRepository
}

func (c ReportDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse report ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := c.Deleter.DeleteMarketReport(ctx, id); err != nil {
		writeError(ctx, w, err, "delete market report")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Market report deleted")
}
