package flow_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sayhighz/nexark-platform/client"
	"github.com/sayhighz/nexark-platform/client/flow"
	"github.com/sayhighz/nexark-platform/client/i18n"
	"github.com/sayhighz/nexark-platform/model"
)

type recordingNotifier struct {
	notifications []notification
	modals        []string
	loginPrompts  int
}

type notification struct {
	severity flow.Severity
	message  string
}

func (n *recordingNotifier) Notify(severity flow.Severity, message string) {
	n.notifications = append(n.notifications, notification{severity, message})
}

func (n *recordingNotifier) ShowSuccessModal(message string) {
	n.modals = append(n.modals, message)
}

func (n *recordingNotifier) PromptLogin() {
	n.loginPrompts++
}

var confirmYes = flow.ConfirmerFunc(func(string) bool { return true })

func testItem() *model.ShopItem {
	return &model.ShopItem{ID: 10, Name: "Tek Rifle", Price: 250}
}

// newShopServer serves every request with the given status and body and
// counts requests so tests can assert nothing reached the network.
func newShopServer(t *testing.T, status int, body interface{}) (*httptest.Server, *int64) {
	t.Helper()
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func authedClient(srv *httptest.Server) *client.Client {
	session := client.NewMemorySessionStore()
	session.SetToken("test-token")
	return client.New(client.Config{BaseURL: srv.URL, Session: session})
}

func successBody() map[string]interface{} {
	return map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"purchase_id":       42,
			"item_id":           10,
			"item_name":         "Tek Rifle",
			"price_paid":        250.0,
			"credits_remaining": 750.0,
		},
	}
}

func errorBody(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	}
}

func TestPurchase_Success(t *testing.T) {
	srv, _ := newShopServer(t, http.StatusOK, successBody())
	notifier := &recordingNotifier{}

	c := flow.NewPurchaseController(authedClient(srv), notifier, confirmYes)
	res := c.Buy(context.Background(), testItem(), nil)

	if res == nil || res.PurchaseID != 42 {
		t.Fatalf("Buy() = %+v, want purchase 42", res)
	}
	if len(notifier.modals) != 1 || notifier.modals[0] != i18n.T("en", i18n.MsgPurchaseSuccess, "Tek Rifle") {
		t.Fatalf("modals = %v", notifier.modals)
	}
	if len(notifier.notifications) != 1 || notifier.notifications[0].severity != flow.SeveritySuccess {
		t.Fatalf("notifications = %v", notifier.notifications)
	}
}

func TestPurchase_UnauthenticatedPromptsLoginWithoutNetwork(t *testing.T) {
	srv, requests := newShopServer(t, http.StatusOK, successBody())
	notifier := &recordingNotifier{}

	api := client.New(client.Config{BaseURL: srv.URL})
	c := flow.NewPurchaseController(api, notifier, confirmYes)
	res := c.Buy(context.Background(), testItem(), nil)

	if res != nil {
		t.Fatalf("Buy() = %+v, want nil", res)
	}
	if notifier.loginPrompts != 1 {
		t.Fatalf("login prompts = %d, want 1", notifier.loginPrompts)
	}
	if *requests != 0 {
		t.Fatalf("requests = %d, want 0", *requests)
	}
}

func TestPurchase_DeclinedConfirmAbortsWithoutNetwork(t *testing.T) {
	srv, requests := newShopServer(t, http.StatusOK, successBody())
	notifier := &recordingNotifier{}
	confirmNo := flow.ConfirmerFunc(func(string) bool { return false })

	c := flow.NewPurchaseController(authedClient(srv), notifier, confirmNo)
	res := c.Buy(context.Background(), testItem(), nil)

	if res != nil {
		t.Fatalf("Buy() = %+v, want nil", res)
	}
	if *requests != 0 {
		t.Fatalf("requests = %d, want 0", *requests)
	}
	if len(notifier.notifications) != 0 || len(notifier.modals) != 0 {
		t.Fatalf("declined confirm should render nothing, got %v %v", notifier.notifications, notifier.modals)
	}
}

// Business failures arrive as error objects on HTTP 200 and must classify by
// their code, not the status line.
func TestPurchase_InsufficientCreditsIsWarning(t *testing.T) {
	srv, _ := newShopServer(t, http.StatusOK, errorBody("INSUFFICIENT_CREDITS", "insufficient credits"))
	notifier := &recordingNotifier{}

	c := flow.NewPurchaseController(authedClient(srv), notifier, confirmYes)
	res := c.Buy(context.Background(), testItem(), nil)

	if res != nil {
		t.Fatalf("Buy() = %+v, want nil", res)
	}
	if len(notifier.notifications) != 1 {
		t.Fatalf("notifications = %v, want 1", notifier.notifications)
	}
	got := notifier.notifications[0]
	if got.severity != flow.SeverityWarning {
		t.Fatalf("severity = %v, want warning", got.severity)
	}
	if got.message != i18n.T("en", i18n.MsgInsufficientCredits) {
		t.Fatalf("message = %q", got.message)
	}
}

func TestPurchase_OutOfStockIsError(t *testing.T) {
	srv, _ := newShopServer(t, http.StatusOK, errorBody("OUT_OF_STOCK", "out of stock"))
	notifier := &recordingNotifier{}

	c := flow.NewPurchaseController(authedClient(srv), notifier, confirmYes)
	c.Buy(context.Background(), testItem(), nil)

	if len(notifier.notifications) != 1 {
		t.Fatalf("notifications = %v, want 1", notifier.notifications)
	}
	got := notifier.notifications[0]
	if got.severity != flow.SeverityError || got.message != i18n.T("en", i18n.MsgOutOfStock) {
		t.Fatalf("notification = %+v", got)
	}
}

func TestPurchase_ExpiredSessionPromptsLogin(t *testing.T) {
	srv, _ := newShopServer(t, http.StatusUnauthorized, nil)
	notifier := &recordingNotifier{}

	api := authedClient(srv)
	c := flow.NewPurchaseController(api, notifier, confirmYes)
	res := c.Buy(context.Background(), testItem(), nil)

	if res != nil {
		t.Fatalf("Buy() = %+v, want nil", res)
	}
	if notifier.loginPrompts != 1 {
		t.Fatalf("login prompts = %d, want 1", notifier.loginPrompts)
	}
	if api.IsAuthenticated() {
		t.Fatal("token should be cleared after the 401")
	}
}

func TestGift_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		form    *flow.GiftForm
		wantMsg string
	}{
		{
			name:    "empty recipient",
			form:    &flow.GiftForm{},
			wantMsg: i18n.MsgGiftRecipientRequired,
		},
		{
			name:    "empty confirmation",
			form:    &flow.GiftForm{RecipientSteamID: "76561198000000002"},
			wantMsg: i18n.MsgGiftConfirmRequired,
		},
		{
			name: "mismatch",
			form: &flow.GiftForm{
				RecipientSteamID: "76561198000000002",
				ConfirmSteamID:   "76561198000000003",
			},
			wantMsg: i18n.MsgGiftMismatch,
		},
		{
			name: "sixteen digits",
			form: &flow.GiftForm{
				RecipientSteamID: "7656119800000000",
				ConfirmSteamID:   "7656119800000000",
			},
			wantMsg: i18n.MsgGiftInvalidFormat,
		},
		{
			name: "non numeric",
			form: &flow.GiftForm{
				RecipientSteamID: "7656119800000000x",
				ConfirmSteamID:   "7656119800000000x",
			},
			wantMsg: i18n.MsgGiftInvalidFormat,
		},
		{
			name: "leading plus sign",
			form: &flow.GiftForm{
				RecipientSteamID: "+9876543210123456",
				ConfirmSteamID:   "+9876543210123456",
			},
			wantMsg: i18n.MsgGiftInvalidFormat,
		},
		{
			name: "leading minus sign",
			form: &flow.GiftForm{
				RecipientSteamID: "-9876543210123456",
				ConfirmSteamID:   "-9876543210123456",
			},
			wantMsg: i18n.MsgGiftInvalidFormat,
		},
		{
			name: "decimal point",
			form: &flow.GiftForm{
				RecipientSteamID: "1234567.123456789",
				ConfirmSteamID:   "1234567.123456789",
			},
			wantMsg: i18n.MsgGiftInvalidFormat,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv, requests := newShopServer(t, http.StatusOK, successBody())
			notifier := &recordingNotifier{}

			c := flow.NewGiftController(authedClient(srv), notifier, confirmYes)
			res := c.Gift(context.Background(), testItem(), tt.form)

			if res != nil {
				t.Fatalf("Gift() = %+v, want nil", res)
			}
			if *requests != 0 {
				t.Fatalf("requests = %d, validation must not reach the network", *requests)
			}
			if len(notifier.notifications) != 1 {
				t.Fatalf("notifications = %v, want 1", notifier.notifications)
			}
			got := notifier.notifications[0]
			if got.severity != flow.SeverityError || got.message != i18n.T("en", tt.wantMsg) {
				t.Fatalf("notification = %+v, want %q", got, i18n.T("en", tt.wantMsg))
			}
		})
	}
}

func TestGift_Success(t *testing.T) {
	body := successBody()
	body["data"].(map[string]interface{})["recipient_steam_id"] = "76561198000000002"
	srv, _ := newShopServer(t, http.StatusOK, body)
	notifier := &recordingNotifier{}

	c := flow.NewGiftController(authedClient(srv), notifier, confirmYes)
	res := c.Gift(context.Background(), testItem(), &flow.GiftForm{
		RecipientSteamID: "76561198000000002",
		ConfirmSteamID:   "76561198000000002",
	})

	if res == nil || res.RecipientSteamID != "76561198000000002" {
		t.Fatalf("Gift() = %+v", res)
	}
	want := i18n.T("en", i18n.MsgGiftSuccess, "Tek Rifle", "76561198000000002")
	if len(notifier.modals) != 1 || notifier.modals[0] != want {
		t.Fatalf("modals = %v, want %q", notifier.modals, want)
	}
}

func TestGift_ThaiMessages(t *testing.T) {
	srv, _ := newShopServer(t, http.StatusOK, successBody())
	notifier := &recordingNotifier{}

	session := client.NewMemorySessionStore()
	session.SetToken("test-token")
	api := client.New(client.Config{BaseURL: srv.URL, Lang: "th", Session: session})

	c := flow.NewGiftController(api, notifier, confirmYes)
	c.Gift(context.Background(), testItem(), &flow.GiftForm{
		RecipientSteamID: "76561198000000002",
		ConfirmSteamID:   "76561198000000003",
	})

	if len(notifier.notifications) != 1 {
		t.Fatalf("notifications = %v, want 1", notifier.notifications)
	}
	if got := notifier.notifications[0].message; got != i18n.T("th", i18n.MsgGiftMismatch) {
		t.Fatalf("message = %q, want Thai mismatch text", got)
	}
}
