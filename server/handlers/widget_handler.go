package handlers

import (
	"context"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"

	"propmap-server/config"
	"propmap-server/util"
	"propmap-server/widget"
)

// WIDGET_LOAD_ERROR_MESSAGE is what visitors see when the map cannot be
// produced at all. Kept deliberately vague; the real cause goes to the logs.
const WIDGET_LOAD_ERROR_MESSAGE = "unable to load map, please refresh"

// SessionBuilder produces a widget session per page load.
type SessionBuilder interface {
	BuildSession(ctx context.Context) *widget.Session
}

// MapModelResponse is the /api/map envelope. Model is present only in the
// ready state; Error only in the error state.
type MapModelResponse struct {
	Status string           `json:"status"`
	Model  *widget.MapModel `json:"model,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// WidgetPageData feeds the widget page template.
type WidgetPageData struct {
	ContainerID string
}

type WidgetHandler struct {
	sessions SessionBuilder
	page     *template.Template
}

func NewWidgetHandler(sessions SessionBuilder, page *template.Template) *WidgetHandler {
	return &WidgetHandler{
		sessions: sessions,
		page:     page,
	}
}

// GetWidgetPage serves the host page the map widget boots from.
func (h *WidgetHandler) GetWidgetPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := WidgetPageData{ContainerID: config.GetMapContainerID()}
	if err := h.page.Execute(w, data); err != nil {
		log.Errorf("[WidgetHandler] Failed to render widget page: %v", err)
	}
}

// GetMapModel builds a fresh session and maps its state onto the wire:
// ready and empty both answer 200, an error session answers 502 with the
// visitor-facing message.
func (h *WidgetHandler) GetMapModel(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.BuildSession(r.Context())

	switch session.State {
	case widget.SESSION_READY:
		writeJSON(w, r, http.StatusOK, MapModelResponse{Status: string(session.State), Model: session.Model})
	case widget.SESSION_EMPTY:
		log.Warnf("[WidgetHandler] No listings to display, responding without a model")
		writeJSON(w, r, http.StatusOK, MapModelResponse{Status: string(session.State)})
	default:
		log.Errorf("[WidgetHandler] Map session failed: %v", session.Err())
		writeJSON(w, r, http.StatusBadGateway, MapModelResponse{Status: string(session.State), Error: WIDGET_LOAD_ERROR_MESSAGE})
	}
}

// GetPreview renders the current map model as a static chart page, useful
// for eyeballing marker placement without a browser map stack.
func (h *WidgetHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.BuildSession(r.Context())
	if session.State != widget.SESSION_READY {
		if session.Err() != nil {
			writeError(w, r, http.StatusBadGateway, WIDGET_LOAD_ERROR_MESSAGE)
			return
		}
		writeError(w, r, http.StatusNotFound, "no map to preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotMapModel(session.Model, w); err != nil {
		log.Errorf("[WidgetHandler] Failed to render preview: %v", err)
	}
}

// Ping handles GET /ping
func (h *WidgetHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "pong"})
}
