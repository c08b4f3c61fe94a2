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
)

// ListServers handler
// @Summary List game servers with cached live status
// @Tags Servers
// @Produce json
// @Success 200 {object} model.ServerListResponse
// @Router /api/v1/servers [get]
func (s *RestHandler) ListServers(w http.ResponseWriter, r *http.Request) {
	res, err := s.ServersApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetServer handler
// @Summary Get a game server
// @Tags Servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 200 {object} model.ServerResponse
// @Router /api/v1/servers/{id} [get]
func (s *RestHandler) GetServer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ServersApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetContent handler
// @Summary Get a localized content page
// @Tags Content
// @Produce json
// @Param slug path string true "Page slug"
// @Param lang query string false "Language (en|th)"
// @Success 200 {object} model.ContentResponse
// @Router /api/v1/content/{slug} [get]
func (s *RestHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ContentApp.GetPage(ctx, utilsContext.GetLang(ctx), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteDelivery marks a purchase delivered. Called by the delivery
// consumer through the internal API.
func (s *RestHandler) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ShopApp.CompleteDelivery(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// SetServerStatus stores a probed server status. Called by the probe worker
// running next to the game servers.
func (s *RestHandler) SetServerStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var status model.ServerStatus
	if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ServersApp.SetStatus(r.Context(), id, &status); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
