package model

import "time"

// ItemEntity represents the shop item table entity. Names and descriptions
// are stored per language; prices are Thai-baht denominated. Stock -1 means
// unlimited (constant.UnlimitedStock).
type ItemEntity struct {
	ID            uint64     `db:"id" json:"id"`
	CategoryID    uint64     `db:"category_id" json:"category_id"`
	NameEN        string     `db:"name_en" json:"name_en"`
	NameTH        string     `db:"name_th" json:"name_th"`
	DescriptionEN string     `db:"description_en" json:"description_en"`
	DescriptionTH string     `db:"description_th" json:"description_th"`
	Price         float64    `db:"price" json:"price"`
	Stock         int64      `db:"stock" json:"stock"`
	Rarity        string     `db:"rarity" json:"rarity"`
	Featured      bool       `db:"featured" json:"featured"`
	ImageURL      string     `db:"image_url" json:"image_url"`
	DeliveryCmd   string     `db:"delivery_cmd" json:"delivery_cmd"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ShopItem is the language-resolved view of an item as served by the API.
type ShopItem struct {
	ID          uint64  `json:"id"`
	CategoryID  uint64  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Rarity      string  `json:"rarity"`
	Featured    bool    `json:"featured"`
	ImageURL    string  `json:"image_url"`
}

// Localize resolves the per-language columns into a ShopItem view.
func (e *ItemEntity) Localize(lang string) *ShopItem {
	name, desc := e.NameEN, e.DescriptionEN
	if lang == "th" && e.NameTH != "" {
		name, desc = e.NameTH, e.DescriptionTH
	}
	return &ShopItem{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Name:        name,
		Description: desc,
		Price:       e.Price,
		Stock:       e.Stock,
		Rarity:      e.Rarity,
		Featured:    e.Featured,
		ImageURL:    e.ImageURL,
	}
}

// CategoryEntity represents a shop category.
type CategoryEntity struct {
	ID     uint64 `db:"id" json:"id"`
	Slug   string `db:"slug" json:"slug"`
	NameEN string `db:"name_en" json:"-"`
	NameTH string `db:"name_th" json:"-"`
}

// Category is the language-resolved category view.
type Category struct {
	ID   uint64 `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func (e *CategoryEntity) Localize(lang string) Category {
	name := e.NameEN
	if lang == "th" && e.NameTH != "" {
		name = e.NameTH
	}
	return Category{ID: e.ID, Slug: e.Slug, Name: name}
}

// ItemFilter for querying shop items.
type ItemFilter struct {
	CategoryID uint64
	Featured   *bool
}

// ItemListResponse is the paged item listing payload.
type ItemListResponse struct {
	Items      []ShopItem `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
}

// ItemResponse wraps a single item for GET /shop/items/{id}.
type ItemResponse struct {
	Item *ShopItem `json:"item"`
}
