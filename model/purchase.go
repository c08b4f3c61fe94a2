package model

import (
	"time"

	"github.com/sayhighz/nexark-platform/constant"
)

// BuyRequest is the POST /shop/buy payload.
type BuyRequest struct {
	ItemID   uint64  `json:"item_id" validate:"required"`
	ServerID *uint64 `json:"server_id,omitempty"`
}

// GiftRequest is the POST /shop/gift payload. The recipient SteamID must be
// exactly 17 digits.
type GiftRequest struct {
	ItemID           uint64  `json:"item_id" validate:"required"`
	RecipientSteamID string  `json:"recipient_steam_id" validate:"required,len=17,number"`
	ServerID         *uint64 `json:"server_id,omitempty"`
}

// PurchaseEntity represents a committed purchase or gift.
type PurchaseEntity struct {
	ID               uint64                  `db:"id" json:"id"`
	UserID           uint64                  `db:"user_id" json:"user_id"`
	ItemID           uint64                  `db:"item_id" json:"item_id"`
	Type             constant.PurchaseType   `db:"type" json:"type"`
	RecipientSteamID string                  `db:"recipient_steam_id" json:"recipient_steam_id"`
	ServerID         *uint64                 `db:"server_id" json:"server_id,omitempty"`
	PricePaid        float64                 `db:"price_paid" json:"price_paid"`
	DeliveryStatus   constant.DeliveryStatus `db:"delivery_status" json:"delivery_status"`
	CreatedAt        time.Time               `db:"created_at" json:"created_at"`
}

// PurchaseResponse is the success payload for buy/gift.
type PurchaseResponse struct {
	PurchaseID       uint64  `json:"purchase_id"`
	ItemID           uint64  `json:"item_id"`
	ItemName         string  `json:"item_name"`
	PricePaid        float64 `json:"price_paid"`
	CreditsRemaining float64 `json:"credits_remaining"`
	RecipientSteamID string  `json:"recipient_steam_id,omitempty"`
}
