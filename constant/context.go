package constant

type contextKey int

const (
	// UserIDKey carries the authenticated user id set by the auth middleware.
	UserIDKey contextKey = iota
	// LangKey carries the request language resolved from the `lang` query.
	LangKey
)
