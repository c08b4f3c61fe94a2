package model

import "time"

// ContentEntity represents a localized content page (news, rules, guides).
type ContentEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Slug      string     `db:"slug" json:"slug"`
	TitleEN   string     `db:"title_en" json:"-"`
	TitleTH   string     `db:"title_th" json:"-"`
	BodyEN    string     `db:"body_en" json:"-"`
	BodyTH    string     `db:"body_th" json:"-"`
	Published bool       `db:"published" json:"published"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ContentPage is the language-resolved content view.
type ContentPage struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (e *ContentEntity) Localize(lang string) *ContentPage {
	title, body := e.TitleEN, e.BodyEN
	if lang == "th" && e.TitleTH != "" {
		title, body = e.TitleTH, e.BodyTH
	}
	return &ContentPage{Slug: e.Slug, Title: title, Body: body}
}

// ContentResponse wraps a content page.
type ContentResponse struct {
	Page *ContentPage `json:"page"`
}
