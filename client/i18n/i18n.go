// Package i18n holds the client-side notification strings, mirroring the
// web client's locale tables. Messages are fmt templates keyed by ID.
package i18n

import "fmt"

const (
	MsgPurchaseConfirm       = "purchase.confirm"
	MsgPurchaseSuccess       = "purchase.success"
	MsgPurchaseToast         = "purchase.toast"
	MsgLoginRequired         = "purchase.login_required"
	MsgInsufficientCredits   = "purchase.insufficient_credits"
	MsgOutOfStock            = "purchase.out_of_stock"
	MsgItemNotFound          = "purchase.item_not_found"
	MsgGenericError          = "purchase.generic_error"
	MsgGiftConfirm           = "gift.confirm"
	MsgGiftRecipientRequired = "gift.recipient_required"
	MsgGiftConfirmRequired   = "gift.confirm_required"
	MsgGiftMismatch          = "gift.mismatch"
	MsgGiftInvalidFormat     = "gift.invalid_format"
	MsgGiftSuccess           = "gift.success"
)

var en = map[string]string{
	MsgPurchaseConfirm:       "Buy %s for ฿%.2f?",
	MsgPurchaseSuccess:       "Bought %s successfully",
	MsgPurchaseToast:         "Purchased %s",
	MsgLoginRequired:         "Please log in to continue",
	MsgInsufficientCredits:   "Not enough credits, please top up your balance",
	MsgOutOfStock:            "This item is out of stock",
	MsgItemNotFound:          "Item not found",
	MsgGenericError:          "Something went wrong, please try again",
	MsgGiftConfirm:           "Gift %s (฿%.2f) to %s?",
	MsgGiftRecipientRequired: "Recipient SteamID is required",
	MsgGiftConfirmRequired:   "Please confirm the recipient SteamID",
	MsgGiftMismatch:          "SteamIDs do not match",
	MsgGiftInvalidFormat:     "Invalid SteamID format",
	MsgGiftSuccess:           "Gift %s sent to %s",
}

var th = map[string]string{
	MsgPurchaseConfirm:       "ซื้อ %s ในราคา ฿%.2f หรือไม่?",
	MsgPurchaseSuccess:       "ซื้อ %s สำเร็จ",
	MsgPurchaseToast:         "ซื้อ %s แล้ว",
	MsgLoginRequired:         "กรุณาเข้าสู่ระบบ",
	MsgInsufficientCredits:   "เครดิตไม่เพียงพอ กรุณาเติมเครดิต",
	MsgOutOfStock:            "สินค้าหมด",
	MsgItemNotFound:          "ไม่พบสินค้า",
	MsgGenericError:          "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง",
	MsgGiftConfirm:           "ส่ง %s (฿%.2f) ให้ %s หรือไม่?",
	MsgGiftRecipientRequired: "กรุณากรอก SteamID ผู้รับ",
	MsgGiftConfirmRequired:   "กรุณายืนยัน SteamID ผู้รับ",
	MsgGiftMismatch:          "SteamID ไม่ตรงกัน",
	MsgGiftInvalidFormat:     "รูปแบบ SteamID ไม่ถูกต้อง",
	MsgGiftSuccess:           "ส่งของขวัญ %s ให้ %s แล้ว",
}

// T formats the message with the given ID in the given language, falling
// back to English for unknown languages or missing translations.
func T(lang, id string, args ...interface{}) string {
	table := en
	if lang == "th" {
		table = th
	}

	template, ok := table[id]
	if !ok {
		template, ok = en[id]
		if !ok {
			return id
		}
	}

	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}
