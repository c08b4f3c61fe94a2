package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sayhighz/nexark-platform/constant"
)

// LangMiddleware resolves the `lang` query parameter into the request
// context. Unknown values fall back to the default language.
func LangMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := r.URL.Query().Get("lang")
			switch lang {
			case constant.LangEnglish, constant.LangThai:
			default:
				lang = constant.LangDefault
			}

			ctx := context.WithValue(r.Context(), constant.LangKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
