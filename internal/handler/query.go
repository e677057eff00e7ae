package handler

import (
	"net/http"

	"github.com/postdeck/postdeck/internal/query"
	"github.com/postdeck/postdeck/internal/web"
)

// Query mutation endpoints. Each mirrors one UI control; every response
// carries the fresh snapshot including the canonical query string, so the
// rendering layer can push it into the address bar.

type skipRequest struct {
	Skip int `json:"skip"`
}

type limitRequest struct {
	Limit int `json:"limit"`
}

type sortRequest struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type tagRequest struct {
	Tag string `json:"tag"`
}

type searchRequest struct {
	Search string `json:"search"`
}

func (h *Handler) SkipPostHandler(w http.ResponseWriter, r *http.Request) {
	var req skipRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.Controller.SetSkip(r.Context(), req.Skip)
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) LimitPostHandler(w http.ResponseWriter, r *http.Request) {
	var req limitRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.Controller.SetLimit(r.Context(), req.Limit)
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) SortPostHandler(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.Controller.SetSort(r.Context(), query.SortKey(req.SortBy), query.SortOrder(req.SortOrder))
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) TagPostHandler(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.Controller.SetTag(r.Context(), req.Tag)
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

// SearchPostHandler records typed search text. It never fetches and never
// changes the canonical URL.
func (h *Handler) SearchPostHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.Controller.SetSearch(req.Search)
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

// SearchSubmitHandler is the explicit submit (Enter in the search field).
func (h *Handler) SearchSubmitHandler(w http.ResponseWriter, r *http.Request) {
	h.Controller.SubmitSearch(r.Context())
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}
