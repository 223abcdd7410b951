package views

import (
	"context"
	"fmt"
)

// renderPortfolio shows the simulated trading account. All P&L figures come
// straight off the server; the view only formats them.
func (a *App) renderPortfolio(ctx context.Context) {
	for {
		portfolio, err := a.client.Portfolio(ctx)
		if err != nil {
			a.alert(fmt.Sprintf("Could not load portfolio: %v", err))
			return
		}

		fmt.Fprintln(a.out, "\n-- Portfolio --")
		fmt.Fprintf(a.out, "Cash %.2f | Invested %.2f | Value %.2f | P&L %+.2f (%+.2f%%)\n",
			portfolio.Balance, portfolio.Invested, portfolio.TotalValue,
			portfolio.TotalPnL, portfolio.TotalPnLPercent)

		for _, h := range portfolio.Holdings {
			fmt.Fprintf(a.out, "  %-8s %8.2f @ %8.2f  now %8.2f  %+.2f (%+.2f%%)\n",
				h.Symbol, h.Quantity, h.AvgPrice, h.CurrentPrice, h.PnL, h.PnLPercent)
		}

		fmt.Fprintln(a.out, "  s) Browse stocks   b) Buy   l) Sell   h) History   r) AI advice   0) Back")
		switch a.promptLine("Choose") {
		case "s":
			a.renderStocks(ctx)
		case "b":
			a.renderTrade(ctx, true)
		case "l":
			a.renderTrade(ctx, false)
		case "h":
			a.renderHistory(ctx)
		case "r":
			a.renderRecommendation(ctx)
		case "0":
			return
		}
	}
}

func (a *App) renderStocks(ctx context.Context) {
	stocks, err := a.client.Stocks(ctx)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load stocks: %v", err))
		return
	}

	fmt.Fprintln(a.out, "\n-- Stocks --")
	for _, s := range stocks {
		fmt.Fprintf(a.out, "  %-8s %-28s %10.2f  %+.2f%%\n", s.Symbol, s.Name, s.CurrentPrice, s.ChangePercent)
	}

	symbol := a.promptLine("Symbol for detail (empty to go back)")
	if symbol == "" {
		return
	}

	detail, err := a.client.StockDetail(ctx, symbol)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load %s: %v", symbol, err))
		return
	}

	fmt.Fprintf(a.out, "%s (%s) — %.2f, sector %s\n", detail.Name, detail.Symbol, detail.CurrentPrice, detail.Sector)
	if detail.Holding != nil {
		fmt.Fprintf(a.out, "You hold %.2f @ %.2f (invested %.2f)\n",
			detail.Holding.Quantity, detail.Holding.AvgPrice, detail.Holding.Invested)
	}
}

func (a *App) renderTrade(ctx context.Context, buy bool) {
	symbol := a.promptLine("Symbol")
	quantity := a.promptInt("Quantity")

	var (
		verb = "sell"
		call = a.client.Sell
	)
	if buy {
		verb = "buy"
		call = a.client.Buy
	}

	result, err := call(ctx, symbol, quantity)
	if err != nil {
		a.alert(fmt.Sprintf("Could not %s: %v", verb, err))
		return
	}
	if !result.Success {
		a.alert(firstOf(result.Error, result.Message, "Trade rejected"))
		return
	}

	fmt.Fprintln(a.out, result.Message)
	fmt.Fprintf(a.out, "New balance: %.2f\n", result.Balance)
}

func (a *App) renderHistory(ctx context.Context) {
	history, err := a.client.History(ctx, 30)
	if err != nil {
		a.alert(fmt.Sprintf("Could not load history: %v", err))
		return
	}

	fmt.Fprintln(a.out, "\n-- Portfolio history (30d) --")
	for _, point := range history {
		fmt.Fprintf(a.out, "  %s  %.2f\n", point.Date, point.Value)
	}
}

func (a *App) renderRecommendation(ctx context.Context) {
	symbol := a.promptLine("Symbol")
	rec, err := a.client.Recommendation(ctx, symbol)
	if err != nil {
		a.alert(fmt.Sprintf("Could not get a recommendation: %v", err))
		return
	}
	fmt.Fprintf(a.out, "%s: %s (confidence %.0f%%)\n%s\n", rec.Symbol, rec.Action, rec.Confidence, rec.Reasoning)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
