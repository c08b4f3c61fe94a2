package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/sayhighz/nexark-platform/application/auth"
	contentapp "github.com/sayhighz/nexark-platform/application/content"
	creditsapp "github.com/sayhighz/nexark-platform/application/credits"
	serversapp "github.com/sayhighz/nexark-platform/application/servers"
	shopapp "github.com/sayhighz/nexark-platform/application/shop"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	ShopApp    shopapp.ShopApp
	CreditsApp creditsapp.CreditsApp
	ServersApp serversapp.ServersApp
	ContentApp contentapp.ContentApp
}

func NewTransport(authApp authapp.AuthApp, shopApp shopapp.ShopApp, creditsApp creditsapp.CreditsApp, serversApp serversapp.ServersApp, contentApp contentapp.ContentApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    authApp,
		ShopApp:    shopApp,
		CreditsApp: creditsApp,
		ServersApp: serversApp,
		ContentApp: contentApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/steam/login", rh.SteamLogin).Methods(http.MethodGet)
	api.HandleFunc("/auth/steam/callback", rh.SteamCallback).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", rh.Profile).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)

	// Shop
	api.HandleFunc("/shop/items", rh.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/shop/items/{id:[0-9]+}", rh.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/shop/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/shop/buy", rh.Buy).Methods(http.MethodPost)
	api.HandleFunc("/shop/gift", rh.Gift).Methods(http.MethodPost)

	// Credits
	api.HandleFunc("/credits/balance", rh.Balance).Methods(http.MethodGet)
	api.HandleFunc("/credits/topup", rh.Topup).Methods(http.MethodPost)
	api.HandleFunc("/credits/history", rh.History).Methods(http.MethodGet)

	// Servers & content
	api.HandleFunc("/servers", rh.ListServers).Methods(http.MethodGet)
	api.HandleFunc("/servers/{id:[0-9]+}", rh.GetServer).Methods(http.MethodGet)
	api.HandleFunc("/content/{slug}", rh.GetContent).Methods(http.MethodGet)

	// Internal routes used by the delivery consumer and server probes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/delivery/{id:[0-9]+}/complete", rh.CompleteDelivery).Methods(http.MethodPost)
	internal.HandleFunc("/servers/{id:[0-9]+}/status", rh.SetServerStatus).Methods(http.MethodPost)

	// middleware
	api.Use(LoggingMiddleware())
	api.Use(LangMiddleware())
	api.Use(AuthMiddleware(authApp))

	return router
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type responseEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseEnvelope{Success: true, Data: data})
}

// writeError renders the in-band error envelope. The HTTP status comes from
// the error-type table: shop business errors go out on 200 with the error
// object in the body, which is the contract the web client expects.
func writeError(w http.ResponseWriter, err error) {
	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Success: false,
		Error: &errorBody{
			Code:    custom.ErrorCode(),
			Message: custom.Error(),
		},
	})
}
