package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sayhighz/nexark-platform/model"
)

// ItemsQuery narrows the item listing.
type ItemsQuery struct {
	CategoryID uint64
	Featured   *bool
	Page       int
	PerPage    int
}

// Items lists shop items in the client's language.
func (c *Client) Items(ctx context.Context, q *ItemsQuery) (*model.ItemListResponse, error) {
	query := url.Values{}
	if q != nil {
		if q.CategoryID != 0 {
			query.Set("category_id", strconv.FormatUint(q.CategoryID, 10))
		}
		if q.Featured != nil {
			query.Set("featured", strconv.FormatBool(*q.Featured))
		}
		if q.Page > 0 {
			query.Set("page", strconv.Itoa(q.Page))
		}
		if q.PerPage > 0 {
			query.Set("per_page", strconv.Itoa(q.PerPage))
		}
	}

	var out model.ItemListResponse
	if err := c.do(ctx, requestOptions{
		method:   http.MethodGet,
		path:     "/shop/items",
		query:    query,
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Item fetches one shop item.
func (c *Client) Item(ctx context.Context, id uint64) (*model.ItemResponse, error) {
	var out model.ItemResponse
	if err := c.do(ctx, requestOptions{
		method:   http.MethodGet,
		path:     "/shop/items/" + strconv.FormatUint(id, 10),
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists shop categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.do(ctx, requestOptions{
		method:   http.MethodGet,
		path:     "/shop/categories",
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Buy purchases an item for the authenticated user.
func (c *Client) Buy(ctx context.Context, req *model.BuyRequest) (*model.PurchaseResponse, error) {
	var out model.PurchaseResponse
	if err := c.do(ctx, requestOptions{
		method:   http.MethodPost,
		path:     "/shop/buy",
		body:     req,
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Gift purchases an item for another SteamID.
func (c *Client) Gift(ctx context.Context, req *model.GiftRequest) (*model.PurchaseResponse, error) {
	var out model.PurchaseResponse
	if err := c.do(ctx, requestOptions{
		method:   http.MethodPost,
		path:     "/shop/gift",
		body:     req,
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
