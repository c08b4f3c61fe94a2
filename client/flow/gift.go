package flow

import (
	"context"
	"sync"

	"github.com/sayhighz/nexark-platform/client"
	"github.com/sayhighz/nexark-platform/client/i18n"
	"github.com/sayhighz/nexark-platform/model"
	validatorx "github.com/sayhighz/nexark-platform/utils/validator"
)

// GiftForm is what the gift modal collects before submission.
type GiftForm struct {
	RecipientSteamID string
	ConfirmSteamID   string
	ServerID         *uint64
}

// GiftController drives the gift flow for one view.
type GiftController struct {
	api       *client.Client
	notifier  Notifier
	confirmer Confirmer

	mu      sync.Mutex
	loading bool
}

func NewGiftController(api *client.Client, notifier Notifier, confirmer Confirmer) *GiftController {
	return &GiftController{
		api:       api,
		notifier:  notifier,
		confirmer: confirmer,
	}
}

// Loading reports whether a request is outstanding.
func (c *GiftController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *GiftController) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// validate applies the local gate rules in order and returns the message ID
// of the first violated rule, or "" when the form is acceptable. No network
// traffic happens until this passes.
func validate(form *GiftForm) string {
	if form.RecipientSteamID == "" {
		return i18n.MsgGiftRecipientRequired
	}
	if form.ConfirmSteamID == "" {
		return i18n.MsgGiftConfirmRequired
	}
	if form.RecipientSteamID != form.ConfirmSteamID {
		return i18n.MsgGiftMismatch
	}
	if err := validatorx.ValidateVar(form.RecipientSteamID, "len=17,number"); err != nil {
		return i18n.MsgGiftInvalidFormat
	}
	return ""
}

// Gift runs the full gift flow for an item. Validation failures surface the
// first violated rule and never reach the network.
func (c *GiftController) Gift(ctx context.Context, item *model.ShopItem, form *GiftForm) *model.PurchaseResponse {
	lang := c.api.Lang()

	if !c.api.IsAuthenticated() {
		c.notifier.PromptLogin()
		return nil
	}

	if msgID := validate(form); msgID != "" {
		c.notifier.Notify(SeverityError, i18n.T(lang, msgID))
		return nil
	}

	if !c.confirmer.Confirm(i18n.T(lang, i18n.MsgGiftConfirm, item.Name, item.Price, form.RecipientSteamID)) {
		return nil
	}

	c.setLoading(true)
	defer c.setLoading(false)

	res, err := c.api.Gift(ctx, &model.GiftRequest{
		ItemID:           item.ID,
		RecipientSteamID: form.RecipientSteamID,
		ServerID:         form.ServerID,
	})
	if err != nil {
		notifyAPIError(lang, c.notifier, err)
		return nil
	}

	c.notifier.ShowSuccessModal(i18n.T(lang, i18n.MsgGiftSuccess, item.Name, form.RecipientSteamID))
	c.notifier.Notify(SeveritySuccess, i18n.T(lang, i18n.MsgGiftSuccess, item.Name, form.RecipientSteamID))
	return res
}
