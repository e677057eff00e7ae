package handler

import (
	"net/http"

	"github.com/postdeck/postdeck/internal/domain"
	internal_errors "github.com/postdeck/postdeck/internal/errors"
	"github.com/postdeck/postdeck/internal/web"
)

type commentCreateRequest struct {
	Body   string `json:"body" validate:"required"`
	UserID int64  `json:"userId" validate:"required"`
}

type commentUpdateRequest struct {
	Body string `json:"body" validate:"required"`
}

func (h *Handler) CommentsGetHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	comments, err := h.Controller.OpenComments(r.Context(), postID)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) CommentCreateHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	var req commentCreateRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	draft := domain.CommentDraft{Body: req.Body, PostID: postID, UserID: req.UserID}
	comment := h.Controller.CreateComment(r.Context(), draft)
	web.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) CommentUpdateHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	commentID, err := pathID(r, "comment")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	var req commentUpdateRequest
	if err := web.DecodeValidate(r.Body, &req); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.Controller.UpdateComment(r.Context(), postID, commentID, req.Body) {
		web.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message: "comment not found", StatusCode: http.StatusNotFound,
		})
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) CommentDeleteHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	commentID, err := pathID(r, "comment")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.Controller.DeleteComment(r.Context(), postID, commentID) {
		web.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message: "comment not found", StatusCode: http.StatusNotFound,
		})
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}
