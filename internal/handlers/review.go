package handlers

import (
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewHandler: отзывы на items.
type ReviewHandler struct {
	ReviewService *service.ReviewService
	Logger        *zap.SugaredLogger
}

func NewReviewHandler(reviewService *service.ReviewService, logger *zap.SugaredLogger) *ReviewHandler {
	return &ReviewHandler{ReviewService: reviewService, Logger: logger}
}

// ReviewRequest: тело создания и изменения отзыва. Отсутствующие поля не меняются.
type ReviewRequest struct {
	Text    *string `json:"review_text"`
	Ranking *int    `json:"ranking"`
}

func (req ReviewRequest) input() service.ReviewInput {
	return service.ReviewInput{Text: req.Text, Ranking: req.Ranking}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	rv, err := h.ReviewService.Create(r.Context(), actor(r), itemID, req.input())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	h.Logger.Infow("new review", "review_id", rv.ID, "item_id", itemID, "user_id", rv.UserID)
	respond.JSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	rv, err := h.ReviewService.Get(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, rv)
}

func (h *ReviewHandler) GetForItem(w http.ResponseWriter, r *http.Request) {
	rv, err := h.ReviewService.GetForItem(r.Context(), chi.URLParam(r, "itemID"), chi.URLParam(r, "reviewID"))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, rv)
}

func (h *ReviewHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	list, err := h.ReviewService.ListByItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.ReviewService.ListByUser(r.Context(), actor(r))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}

	rv, err := h.ReviewService.Update(r.Context(), actor(r), chi.URLParam(r, "reviewID"), req.input())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, rv)
}

// Delete удаляет отзыв. Обслуживает и /reviews/{reviewID}, и старый /users/{userID}/reviews/{reviewID}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ReviewService.Delete(r.Context(), actor(r), chi.URLParam(r, "reviewID")); err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
