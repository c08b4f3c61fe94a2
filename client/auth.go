package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sayhighz/nexark-platform/model"
)

// SteamLoginURL fetches the steamcommunity.com redirect target.
func (c *Client) SteamLoginURL(ctx context.Context) (*model.LoginURLResponse, error) {
	var out model.LoginURLResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/auth/steam/login",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SteamCallback forwards the OpenID query back to the platform and stores
// the issued token in the session store.
func (c *Client) SteamCallback(ctx context.Context, query url.Values) (*model.CallbackResponse, error) {
	var out model.CallbackResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/auth/steam/callback",
		query:  query,
	}, &out); err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.session.SetToken(out.Token); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Profile fetches the authenticated user.
func (c *Client) Profile(ctx context.Context) (*model.ProfileResponse, error) {
	var out model.ProfileResponse
	if err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		path:   "/auth/profile",
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the server session best-effort and always clears the
// local token.
func (c *Client) Logout(ctx context.Context) {
	_ = c.do(ctx, requestOptions{
		method: http.MethodPost,
		path:   "/auth/logout",
	}, nil)
	_ = c.session.Clear()
}
