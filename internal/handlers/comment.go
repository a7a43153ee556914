package handlers

import (
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentService *service.CommentService
	Logger         *zap.SugaredLogger
}

func NewCommentHandler(commentService *service.CommentService, logger *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{CommentService: commentService, Logger: logger}
}

// CommentRequest: тело создания и изменения комментария.
type CommentRequest struct {
	Text string `json:"comment"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	c, err := h.CommentService.Create(r.Context(), actor(r), chi.URLParam(r, "reviewID"), req.Text)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, c)
}

func (h *CommentHandler) ListByReview(w http.ResponseWriter, r *http.Request) {
	list, err := h.CommentService.ListByReview(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *CommentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.CommentService.ListByUser(r.Context(), actor(r))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	c, err := h.CommentService.Update(r.Context(), actor(r), chi.URLParam(r, "commentID"), req.Text)
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, c)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.CommentService.Delete(r.Context(), actor(r), chi.URLParam(r, "commentID")); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
