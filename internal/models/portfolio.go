package models

// Portfolio is the server-derived snapshot of the simulated trading account.
// All P&L arithmetic happens on the backend; the client only formats it.
type Portfolio struct {
	Balance         float64   `json:"balance"`
	Invested        float64   `json:"invested"`
	CurrentValue    float64   `json:"current_value"`
	TotalValue      float64   `json:"total_value"`
	TotalPnL        float64   `json:"total_pnl"`
	TotalPnLPercent float64   `json:"total_pnl_percent"`
	Holdings        []Holding `json:"holdings"`
	HoldingsCount   int       `json:"holdings_count"`
}

// Holding is one position within the portfolio.
type Holding struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	AvgPrice      float64 `json:"avg_price"`
	CurrentPrice  float64 `json:"current_price"`
	Invested      float64 `json:"invested"`
	CurrentValue  float64 `json:"current_value"`
	PnL           float64 `json:"pnl"`
	PnLPercent    float64 `json:"pnl_percent"`
	ChangePercent float64 `json:"change_percent"`
}

// Stock is one tradeable instrument in the demo catalogue.
type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	CurrentPrice  float64 `json:"current_price"`
	ChangePercent float64 `json:"change_percent"`
}

// StockDetail extends Stock with history and the caller's position, if any.
type StockDetail struct {
	Stock
	PriceHistory []PricePoint  `json:"price_history"`
	Holding      *StockHolding `json:"holding"`
}

// StockHolding is the caller's position summary on a stock detail page.
type StockHolding struct {
	Quantity float64 `json:"quantity"`
	AvgPrice float64 `json:"avg_price"`
	Invested float64 `json:"invested"`
}

// PricePoint is one sample in a price or portfolio-value history series.
type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Price float64 `json:"price"`
}

// TradeResult is the backend's response to a buy or sell order: the
// refreshed portfolio plus an outcome flag and message.
type TradeResult struct {
	Portfolio
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Recommendation is the backend's AI trade suggestion for a symbol.
type Recommendation struct {
	Symbol     string  `json:"symbol"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
