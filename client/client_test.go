package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sayhighz/nexark-platform/client"
	"github.com/sayhighz/nexark-platform/model"
)

func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"credits": 100.0},
		})
	}))
	defer srv.Close()

	session := client.NewMemorySessionStore()
	session.SetToken("token-abc")
	api := client.New(client.Config{BaseURL: srv.URL, Session: session})

	if _, err := api.Balance(context.Background()); err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	if gotAuth != "Bearer token-abc" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer token-abc")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"servers": []interface{}{}},
		})
	}))
	defer srv.Close()

	api := client.New(client.Config{BaseURL: srv.URL})
	if _, err := api.Servers(context.Background()); err != nil {
		t.Fatalf("Servers() error = %v", err)
	}
	if hadAuth {
		t.Fatal("Authorization header sent without a stored token")
	}
}

func TestClient_LangQueryOnLocalizedEndpoints(t *testing.T) {
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"items": []interface{}{}, "total_count": 0, "page": 1, "per_page": 20},
		})
	}))
	defer srv.Close()

	api := client.New(client.Config{BaseURL: srv.URL, Lang: "th"})
	if _, err := api.Items(context.Background(), nil); err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if gotLang != "th" {
		t.Fatalf("lang = %q, want %q", gotLang, "th")
	}
}

// An in-band error object on HTTP 200 must surface as *APIError with the
// server's code, exactly like a transport-level failure would.
func TestClient_InBandErrorOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    "INSUFFICIENT_CREDITS",
				"message": "insufficient credits",
			},
		})
	}))
	defer srv.Close()

	api := client.New(client.Config{BaseURL: srv.URL})
	_, err := api.Buy(context.Background(), &model.BuyRequest{ItemID: 1})
	if err == nil {
		t.Fatal("Buy() expected error")
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "INSUFFICIENT_CREDITS" {
		t.Fatalf("code = %q, want INSUFFICIENT_CREDITS", apiErr.Code)
	}
}

func TestClient_SuccessFalseWithoutErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	api := client.New(client.Config{BaseURL: srv.URL})
	_, err := api.Balance(context.Background())

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "UNKNOWN_ERROR" {
		t.Fatalf("code = %q, want UNKNOWN_ERROR", apiErr.Code)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := client.NewMemorySessionStore()
	session.SetToken("stale-token")
	api := client.New(client.Config{BaseURL: srv.URL, Session: session})

	notified := 0
	api.OnUnauthorized(func() { notified++ })

	_, err := api.Profile(context.Background())
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if session.Token() != "" {
		t.Fatal("token should be cleared after a 401")
	}
	if notified != 1 {
		t.Fatalf("listener fired %d times, want 1", notified)
	}
	if api.IsAuthenticated() {
		t.Fatal("IsAuthenticated() should be false after a 401")
	}
}

func TestClient_NetworkErrorNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	api := client.New(client.Config{BaseURL: srv.URL})
	_, err := api.Servers(context.Background())

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "NETWORK_ERROR" {
		t.Fatalf("code = %q, want NETWORK_ERROR", apiErr.Code)
	}
}

func TestClient_HTTPErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	api := client.New(client.Config{BaseURL: srv.URL})
	_, err := api.Servers(context.Background())

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "HTTP_ERROR" {
		t.Fatalf("code = %q, want HTTP_ERROR", apiErr.Code)
	}
}

func TestClient_SteamCallbackStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": "fresh-jwt",
				"user":  map[string]interface{}{"id": 1, "steam_id": "76561198000000001"},
			},
		})
	}))
	defer srv.Close()

	session := client.NewMemorySessionStore()
	api := client.New(client.Config{BaseURL: srv.URL, Session: session})

	res, err := api.SteamCallback(context.Background(), nil)
	if err != nil {
		t.Fatalf("SteamCallback() error = %v", err)
	}
	if res.Token != "fresh-jwt" {
		t.Fatalf("token = %q, want fresh-jwt", res.Token)
	}
	if session.Token() != "fresh-jwt" {
		t.Fatal("callback should persist the token in the session store")
	}
	if !api.IsAuthenticated() {
		t.Fatal("IsAuthenticated() should be true after callback")
	}
}
