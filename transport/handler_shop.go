package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/model"
	utilsContext "github.com/sayhighz/nexark-platform/utils/context"
	"github.com/sayhighz/nexark-platform/utils/errors"
	validatorx "github.com/sayhighz/nexark-platform/utils/validator"
)

// ListItems handler
// @Summary List shop items
// @Tags Shop
// @Produce json
// @Param lang query string false "Language (en|th)"
// @Param category_id query int false "Category filter"
// @Param featured query bool false "Featured only"
// @Success 200 {object} model.ItemListResponse
// @Router /api/v1/shop/items [get]
func (s *RestHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.ItemFilter{}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.CategoryID = id
	}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	page, perPage := paginationParams(r)

	res, err := s.ShopApp.ListItems(ctx, utilsContext.GetLang(ctx), filter, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetItem handler
// @Summary Get a shop item
// @Tags Shop
// @Produce json
// @Param id path int true "Item ID"
// @Param lang query string false "Language (en|th)"
// @Success 200 {object} model.ItemResponse
// @Router /api/v1/shop/items/{id} [get]
func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShopApp.GetItem(ctx, utilsContext.GetLang(ctx), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List shop categories
// @Tags Shop
// @Produce json
// @Success 200 {array} model.Category
// @Router /api/v1/shop/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ShopApp.ListCategories(ctx, utilsContext.GetLang(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Buy handler
// @Summary Buy an item for the authenticated user
// @Tags Shop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BuyRequest true "Buy Request"
// @Success 200 {object} model.PurchaseResponse
// @Router /api/v1/shop/buy [post]
func (s *RestHandler) Buy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShopApp.Buy(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Gift handler
// @Summary Gift an item to another SteamID
// @Tags Shop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GiftRequest true "Gift Request"
// @Success 200 {object} model.PurchaseResponse
// @Router /api/v1/shop/gift [post]
func (s *RestHandler) Gift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if req.ItemID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateVar(req.RecipientSteamID, "required,len=17,number"); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidSteamID))
		return
	}

	res, err := s.ShopApp.Gift(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func paginationParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}
