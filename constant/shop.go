package constant

// UnlimitedStock is the sentinel stock quantity for items that never sell out.
const UnlimitedStock = -1

// Item rarity tags as stored in the database and exposed over the API.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

type PurchaseType int

const (
	PurchaseTypeBuy  PurchaseType = 1
	PurchaseTypeGift PurchaseType = 2
)

type DeliveryStatus int

const (
	DeliveryStatusPending   DeliveryStatus = 1
	DeliveryStatusCompleted DeliveryStatus = 2
	DeliveryStatusFailed    DeliveryStatus = 3
)

type TopupStatus int

const (
	TopupStatusPending   TopupStatus = 1
	TopupStatusCompleted TopupStatus = 2
	TopupStatusCanceled  TopupStatus = 3
)

// Languages accepted in the `lang` query parameter. Anything else falls
// back to LangDefault.
const (
	LangEnglish = "en"
	LangThai    = "th"
	LangDefault = LangEnglish
)
