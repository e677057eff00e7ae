package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/domain"
	internal_errors "github.com/postdeck/postdeck/internal/errors"
	"github.com/postdeck/postdeck/internal/web"
)

// PostsGetHandler is the URL-to-state direction: an externally supplied
// query string (pasted link, back/forward) is decoded and fetched through
// the regular path.
func (h *Handler) PostsGetHandler(w http.ResponseWriter, r *http.Request) {
	h.Controller.Navigate(r.Context(), r.URL.Query())
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	var draft domain.PostDraft
	if err := web.DecodeValidate(r.Body, &draft); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	post := h.Controller.CreatePost(r.Context(), draft)
	web.WriteJSON(w, http.StatusCreated, post)
}

func (h *Handler) PostUpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	var draft domain.PostDraft
	if err := web.DecodeValidate(r.Body, &draft); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.Controller.UpdatePost(r.Context(), id, draft) {
		web.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message: "post not found", StatusCode: http.StatusNotFound,
		})
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

func (h *Handler) PostDeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	if !h.Controller.DeletePost(r.Context(), id) {
		web.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message: "post not found", StatusCode: http.StatusNotFound,
		})
		return
	}
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot())
}

// postDetail is the payload behind the detail dialog: the post, its body
// rendered to safe HTML, and the lazily fetched comments.
type postDetail struct {
	Post     domain.Post      `json:"post"`
	BodyHTML string           `json:"bodyHtml"`
	Comments []domain.Comment `json:"comments"`
}

func (h *Handler) PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "post")
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.Controller.OpenPostDetail(id)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	comments, err := h.Controller.OpenComments(r.Context(), id)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	bodyHTML, err := h.Renderer.Render(post.Body)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	web.WriteJSON(w, http.StatusOK, postDetail{Post: post, BodyHTML: bodyHTML, Comments: comments})
}

func (h *Handler) TagsGetHandler(w http.ResponseWriter, r *http.Request) {
	h.Controller.LoadTags(r.Context())
	web.WriteJSON(w, http.StatusOK, h.Controller.Snapshot().Tags)
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{
			Message: "invalid " + param + " id", StatusCode: http.StatusBadRequest,
		}
	}
	return id, nil
}
