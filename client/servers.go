package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sayhighz/nexark-platform/model"
)

// Servers lists game servers with their cached live status.
func (c *Client) Servers(ctx context.Context) (*model.ServerListResponse, error) {
	var out model.ServerListResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/servers",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Server fetches one game server.
func (c *Client) Server(ctx context.Context, id uint64) (*model.ServerResponse, error) {
	var out model.ServerResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/servers/" + strconv.FormatUint(id, 10),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
