package client

import (
	"context"
	"net/http"

	"github.com/sayhighz/nexark-platform/model"
)

// ContentPage fetches a localized content page by slug.
func (c *Client) ContentPage(ctx context.Context, slug string) (*model.ContentResponse, error) {
	var out model.ContentResponse
	if err := c.do(ctx, requestOptions{
		method:   http.MethodGet,
		path:     "/content/" + slug,
		withLang: true,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
