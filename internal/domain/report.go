package domain

import "time"

// MarketReport is a manually entered coffee market snapshot.
type MarketReport struct {
	ID             int64     `json:"id"`
	ReportDate     time.Time `json:"report_date"`
	PriceNY        float64   `json:"price_ny"`
	PriceFNC       float64   `json:"price_fnc"`
	ProductionInfo *string   `json:"production_info"`
	ExportsInfo    *string   `json:"exports_info"`
	CreatedAt      time.Time `json:"created_at"`
}

// CoffeeQuote is the live state of the coffee futures contract.
type CoffeeQuote struct {
	RegularMarketPrice *float64
	PreviousClose      *float64
	ChangePercent      float64
}

// PricePoint is one daily close; Close is nil when the market reported no value.
type PricePoint struct {
	Date  time.Time
	Close *float64
}

type DashboardStats struct {
	Articles int64 `json:"articles"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
}

// MarketSummary combines the latest manual report with live futures data. Report is nil when
// no report has been entered; Quote is nil when the live feed could not be read.
type MarketSummary struct {
	Report  *MarketReport
	Quote   *CoffeeQuote
	History []PricePoint
}
