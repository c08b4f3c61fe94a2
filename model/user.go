package model

import "time"

// UserEntity represents the user table entity. Users are keyed by their
// SteamID; there is no password credential, Steam OpenID is the only login.
type UserEntity struct {
	ID          uint64     `db:"id" json:"id"`
	SteamID     string     `db:"steam_id" json:"steam_id"`
	PersonaName string     `db:"persona_name" json:"persona_name"`
	AvatarURL   string     `db:"avatar_url" json:"avatar_url"`
	Credits     float64    `db:"credits" json:"credits"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID      uint64
	SteamID string
}

// LoginURLResponse carries the Steam OpenID redirect target.
type LoginURLResponse struct {
	LoginURL string `json:"login_url"`
}

// CallbackResponse is returned after a verified Steam callback.
type CallbackResponse struct {
	Token string      `json:"token"`
	User  *UserEntity `json:"user"`
}

// ProfileResponse wraps the authenticated user for /auth/profile.
type ProfileResponse struct {
	User *UserEntity `json:"user"`
}
