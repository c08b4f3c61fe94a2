package transport

import (
	"net/http"
	"strings"

	"github.com/sayhighz/nexark-platform/constant"
	utilsContext "github.com/sayhighz/nexark-platform/utils/context"
	"github.com/sayhighz/nexark-platform/utils/errors"
)

// SteamLogin handler
// @Summary Get the Steam OpenID login URL
// @Tags Auth
// @Produce json
// @Success 200 {object} model.LoginURLResponse
// @Router /api/v1/auth/steam/login [get]
func (s *RestHandler) SteamLogin(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.AuthApp.LoginURL(r.Context()))
}

// SteamCallback handler
// @Summary Verify the Steam OpenID assertion and issue a token
// @Tags Auth
// @Produce json
// @Success 200 {object} model.CallbackResponse
// @Router /api/v1/auth/steam/callback [get]
func (s *RestHandler) SteamCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AuthApp.HandleCallback(ctx, r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Profile handler
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Router /api/v1/auth/profile [get]
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AuthApp.Profile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Invalidate the current session
// @Tags Auth
// @Security BearerAuth
// @Success 200
// @Router /api/v1/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	s.AuthApp.Logout(ctx, token)

	writeSuccess(w, nil)
}
