package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// WidgetHandler serves the widget page and its map model API.
type WidgetHandler interface {
	GetWidgetPage(w http.ResponseWriter, r *http.Request)
	GetMapModel(w http.ResponseWriter, r *http.Request)
	GetPreview(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// ListingHandler serves listing lookups backed by the geo index.
type ListingHandler interface {
	GetListingsNearby(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	widgetHandler  WidgetHandler
	listingHandler ListingHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	widgetHandler WidgetHandler,
	listingHandler ListingHandler,
	router *mux.Router) *Router {
	return &Router{
		widgetHandler:  widgetHandler,
		listingHandler: listingHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/", r.widgetHandler.GetWidgetPage).Methods("GET")

	r.router.HandleFunc("/api/map", r.widgetHandler.GetMapModel).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={kilometers(float)}&limit={n(int, optional)}
	r.router.HandleFunc("/api/listings/nearby", r.listingHandler.GetListingsNearby).Methods("GET")

	r.router.HandleFunc("/debug/preview", r.widgetHandler.GetPreview).Methods("GET")

	r.router.HandleFunc("/ping", r.widgetHandler.Ping).Methods("GET")
}
