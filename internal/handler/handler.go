package handler

import (
	"net/http"

	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/controller"
	"github.com/postdeck/postdeck/internal/markup"
	"github.com/postdeck/postdeck/internal/web"
)

// Handler is the boundary the rendering layer talks to. It maps user
// interactions onto controller operations and hands back view snapshots; all
// state lives in the controller.
type Handler struct {
	Controller *controller.Controller
	Renderer   *markup.Renderer
	Public     config.Public
}

func New(ctrl *controller.Controller, renderer *markup.Renderer, publicCfg config.Public) *Handler {
	return &Handler{
		Controller: ctrl,
		Renderer:   renderer,
		Public:     publicCfg,
	}
}

// ViewGetHandler returns the current view model without side effects.
func (h *Handler) ViewGetHandler(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
