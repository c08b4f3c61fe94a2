// Package flow holds the purchase and gift controllers: confirm intent,
// call the shop API, and classify every outcome into one user-facing
// notification. All business rules live server-side; the only local gate is
// the gift recipient validation, which runs before any network call.
package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/sayhighz/nexark-platform/client"
	"github.com/sayhighz/nexark-platform/client/i18n"
	"github.com/sayhighz/nexark-platform/model"
)

// PurchaseController drives the buy flow for one view.
type PurchaseController struct {
	api       *client.Client
	notifier  Notifier
	confirmer Confirmer

	mu      sync.Mutex
	loading bool
}

func NewPurchaseController(api *client.Client, notifier Notifier, confirmer Confirmer) *PurchaseController {
	return &PurchaseController{
		api:       api,
		notifier:  notifier,
		confirmer: confirmer,
	}
}

// Loading reports whether a request is outstanding; views disable the buy
// button while true. This is a UI affordance, not a strong guarantee.
func (c *PurchaseController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *PurchaseController) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Buy runs the full purchase flow for an item. It returns the purchase
// result when the server accepted it; every other outcome has already been
// rendered through the notifier by the time Buy returns nil.
func (c *PurchaseController) Buy(ctx context.Context, item *model.ShopItem, serverID *uint64) *model.PurchaseResponse {
	lang := c.api.Lang()

	if !c.api.IsAuthenticated() {
		c.notifier.PromptLogin()
		return nil
	}

	if !c.confirmer.Confirm(i18n.T(lang, i18n.MsgPurchaseConfirm, item.Name, item.Price)) {
		return nil
	}

	c.setLoading(true)
	defer c.setLoading(false)

	res, err := c.api.Buy(ctx, &model.BuyRequest{ItemID: item.ID, ServerID: serverID})
	if err != nil {
		notifyAPIError(lang, c.notifier, err)
		return nil
	}

	c.notifier.ShowSuccessModal(i18n.T(lang, i18n.MsgPurchaseSuccess, item.Name))
	c.notifier.Notify(SeveritySuccess, i18n.T(lang, i18n.MsgPurchaseToast, item.Name))
	return res
}

// notifyAPIError maps a normalized API failure to a notification. A 401
// from any point in the flow wins over all other classification.
func notifyAPIError(lang string, notifier Notifier, err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		notifier.PromptLogin()
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case "INSUFFICIENT_CREDITS":
			notifier.Notify(SeverityWarning, i18n.T(lang, i18n.MsgInsufficientCredits))
			return
		case "OUT_OF_STOCK":
			notifier.Notify(SeverityError, i18n.T(lang, i18n.MsgOutOfStock))
			return
		case "ITEM_NOT_FOUND":
			notifier.Notify(SeverityError, i18n.T(lang, i18n.MsgItemNotFound))
			return
		case "INVALID_STEAM_ID":
			notifier.Notify(SeverityError, i18n.T(lang, i18n.MsgGiftInvalidFormat))
			return
		}
	}

	notifier.Notify(SeverityError, i18n.T(lang, i18n.MsgGenericError))
}
