package model

import (
	"time"

	"github.com/sayhighz/nexark-platform/constant"
)

// BalanceResponse is the GET /credits/balance payload.
type BalanceResponse struct {
	Credits float64 `json:"credits"`
}

// TopupRequest is the POST /credits/topup payload.
type TopupRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// TopupResponse carries the payment-provider checkout URL for a pending top-up.
type TopupResponse struct {
	TopupID     uint64 `json:"topup_id"`
	CheckoutURL string `json:"checkout_url"`
}

// TopupEntity represents a top-up row awaiting payment confirmation.
type TopupEntity struct {
	ID            uint64               `db:"id" json:"id"`
	UserID        uint64               `db:"user_id" json:"user_id"`
	Amount        float64              `db:"amount" json:"amount"`
	Currency      string               `db:"currency" json:"currency"`
	PaymentMethod string               `db:"payment_method" json:"payment_method"`
	Reference     string               `db:"reference" json:"reference"`
	Status        constant.TopupStatus `db:"status" json:"status"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
}

// CreditTransaction is one ledger row; amount is negative for debits.
type CreditTransaction struct {
	ID           uint64    `db:"id" json:"id"`
	UserID       uint64    `db:"user_id" json:"user_id"`
	Amount       float64   `db:"amount" json:"amount"`
	BalanceAfter float64   `db:"balance_after" json:"balance_after"`
	RefType      string    `db:"ref_type" json:"ref_type"`
	RefID        uint64    `db:"ref_id" json:"ref_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CreditHistoryResponse is the paged ledger listing.
type CreditHistoryResponse struct {
	Transactions []CreditTransaction `json:"transactions"`
	TotalCount   int64               `json:"total_count"`
	Page         int                 `json:"page"`
	PerPage      int                 `json:"per_page"`
}
