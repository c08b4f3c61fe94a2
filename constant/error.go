package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrItemNotFound
	ErrOutOfStock
	ErrInsufficientCredits
	ErrInvalidSteamID
	ErrInvalidAmount
	ErrTopupUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrItemNotFound:        "item not found",
	ErrOutOfStock:          "item is out of stock",
	ErrInsufficientCredits: "insufficient credits",
	ErrInvalidSteamID:      "invalid steam id",
	ErrInvalidAmount:       "invalid top-up amount",
	ErrTopupUnavailable:    "payment provider unavailable",
}

// Shop errors deliberately map to HTTP 200: the web client expects in-band
// error objects on a 200 response for business failures, and real HTTP
// status codes only for transport-level failures (auth, bad request).
var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrItemNotFound:        http.StatusOK,
	ErrOutOfStock:          http.StatusOK,
	ErrInsufficientCredits: http.StatusOK,
	ErrInvalidSteamID:      http.StatusOK,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrTopupUnavailable:    http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "OK",
	ErrInternal:            "INTERNAL_ERROR",
	ErrNotFound:            "NOT_FOUND",
	ErrInvalidRequest:      "INVALID_REQUEST",
	ErrUnauthorize:         "UNAUTHORIZED",
	ErrItemNotFound:        "ITEM_NOT_FOUND",
	ErrOutOfStock:          "OUT_OF_STOCK",
	ErrInsufficientCredits: "INSUFFICIENT_CREDITS",
	ErrInvalidSteamID:      "INVALID_STEAM_ID",
	ErrInvalidAmount:       "INVALID_AMOUNT",
	ErrTopupUnavailable:    "TOPUP_UNAVAILABLE",
}
