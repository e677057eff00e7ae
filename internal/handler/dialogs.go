package handler

import (
	"net/http"

	"github.com/postdeck/postdeck/internal/web"
)

// Dialog endpoints drive the modal state machine. Opening any dialog closes
// the one before it; the snapshot's dialog field tells the rendering layer
// which modal to show.

func (h *Handler) DialogCloseHandler(w http.ResponseWriter, r *http.Request) {
	h.Controller.CloseDialog()
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) DialogAddPostHandler(w http.ResponseWriter, r *http.Request) {
	h.Controller.OpenAddPost()
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) DialogEditPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.Controller.OpenEditPost(id); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) DialogAddCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.Controller.OpenAddComment(postID); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) DialogEditCommentHandler(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Controller.OpenEditComment(postID, commentID); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) DialogAuthorHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	author, err := h.Controller.OpenAuthor(userID)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, author)
}
