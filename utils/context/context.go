package context

import (
	"context"

	"github.com/sayhighz/nexark-platform/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetLang returns the request language, falling back to the default.
func GetLang(ctx context.Context) string {
	v := ctx.Value(constant.LangKey)
	if v == nil {
		return constant.LangDefault
	}
	lang, ok := v.(string)
	if !ok || lang == "" {
		return constant.LangDefault
	}
	return lang
}
