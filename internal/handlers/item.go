package handlers

import (
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler: чтение каталога.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.ItemService.Get(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		respond.Error(w, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, it)
}
