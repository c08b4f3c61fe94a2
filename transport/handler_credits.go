package transport

import (
	"encoding/json"
	"net/http"

	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	utilsContext "github.com/sayhighz/nexark-platform/utils/context"
	"github.com/sayhighz/nexark-platform/utils/errors"
	validatorx "github.com/sayhighz/nexark-platform/utils/validator"
)

// Balance handler
// @Summary Get the authenticated user's credit balance
// @Tags Credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Router /api/v1/credits/balance [get]
func (s *RestHandler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.CreditsApp.Balance(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Topup handler
// @Summary Start a credits top-up through the payment provider
// @Tags Credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TopupRequest true "Topup Request"
// @Success 200 {object} model.TopupResponse
// @Router /api/v1/credits/topup [post]
func (s *RestHandler) Topup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.TopupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CreditsApp.Topup(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// History handler
// @Summary List the authenticated user's credit transactions
// @Tags Credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CreditHistoryResponse
// @Router /api/v1/credits/history [get]
func (s *RestHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, perPage := paginationParams(r)

	res, err := s.CreditsApp.History(ctx, userID, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
