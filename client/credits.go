package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sayhighz/nexark-platform/model"
)

// Balance fetches the authenticated user's credit balance.
func (c *Client) Balance(ctx context.Context) (*model.BalanceResponse, error) {
	var out model.BalanceResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/credits/balance",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Topup starts a credits top-up and returns the checkout URL to open.
func (c *Client) Topup(ctx context.Context, req *model.TopupRequest) (*model.TopupResponse, error) {
	var out model.TopupResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		path:   "/credits/topup",
		body:   req,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreditHistory lists the authenticated user's ledger entries.
func (c *Client) CreditHistory(ctx context.Context, page, perPage int) (*model.CreditHistoryResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}

	var out model.CreditHistoryResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/credits/history",
		query:  query,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
