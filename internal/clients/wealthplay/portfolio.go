package wealthplay

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jugadveer/wealthplay-cli/internal/models"
)

// Portfolio retrieves the simulated trading account snapshot.
func (c *Client) Portfolio(ctx context.Context) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := c.get(ctx, "/api/users/portfolio/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Stocks retrieves the tradeable catalogue with live demo prices.
func (c *Client) Stocks(ctx context.Context) ([]models.Stock, error) {
	var resp struct {
		Stocks []models.Stock `json:"stocks"`
	}
	if err := c.get(ctx, "/api/users/portfolio/stocks/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stocks, nil
}

// StockDetail retrieves one instrument with price history and the caller's
// position, if held.
func (c *Client) StockDetail(ctx context.Context, symbol string) (*models.StockDetail, error) {
	var detail models.StockDetail
	if err := c.get(ctx, fmt.Sprintf("/api/users/portfolio/stocks/%s/", symbol), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Buy places a buy order. The backend returns the refreshed portfolio with
// the outcome flag; failures like insufficient balance arrive as APIError.
func (c *Client) Buy(ctx context.Context, symbol string, quantity int) (*models.TradeResult, error) {
	return c.trade(ctx, "/api/users/portfolio/buy/", symbol, quantity)
}

// Sell places a sell order.
func (c *Client) Sell(ctx context.Context, symbol string, quantity int) (*models.TradeResult, error) {
	return c.trade(ctx, "/api/users/portfolio/sell/", symbol, quantity)
}

func (c *Client) trade(ctx context.Context, path, symbol string, quantity int) (*models.TradeResult, error) {
	var result models.TradeResult
	err := c.postJSON(ctx, path, map[string]interface{}{
		"symbol":   symbol,
		"quantity": quantity,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// History retrieves the portfolio value series for the last N days.
func (c *Client) History(ctx context.Context, days int) ([]models.PricePoint, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	var resp struct {
		History []models.PricePoint `json:"history"`
	}
	if err := c.get(ctx, "/api/users/portfolio/history/", query, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// Recommendation asks the backend's AI advisor about a symbol. The client
// performs no local modelling; this is a plain relay.
func (c *Client) Recommendation(ctx context.Context, symbol string) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := c.postJSON(ctx, "/api/users/portfolio/ai-recommendation/", map[string]string{
		"symbol": symbol,
	}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
