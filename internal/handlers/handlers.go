package handlers

import (
	"ReviewBoard/internal/middleware"
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/respond"
	"ReviewBoard/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services: зависимости хендлеров.
type Services struct {
	Users    *service.UserService
	Items    *service.ItemService
	Reviews  *service.ReviewService
	Comments *service.CommentService
	// Health проверяет доступность БД для /healthz
	Health   func(ctx context.Context) error
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)

	requireAuth := middleware.RequireAuth(svc.Users, logger)

	// Handlers
	userHandler := NewUserHandler(svc.Users, logger)
	itemHandler := NewItemHandler(svc.Items, logger)
	reviewHandler := NewReviewHandler(svc.Reviews, logger)
	commentHandler := NewCommentHandler(svc.Comments, logger)

	r.Get("/healthz", healthHandler(svc.Health, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)
		r.With(requireAuth).Get("/auth/me", userHandler.Me)

		// Catalogue and public reads
		r.Get("/items", itemHandler.List)
		r.Get("/items/{itemID}", itemHandler.Get)
		r.Get("/items/{itemID}/reviews", reviewHandler.ListByItem)
		r.Get("/items/{itemID}/reviews/{reviewID}", reviewHandler.GetForItem)
		r.Get("/reviews/{reviewID}", reviewHandler.Get)
		r.Get("/reviews/{reviewID}/comments", commentHandler.ListByReview)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/items/{itemID}/reviews", reviewHandler.Create)
			// старый путь создания отзыва (единственное число)
			r.Post("/items/{itemID}/review", reviewHandler.Create)
			r.Put("/reviews/{reviewID}", reviewHandler.Update)
			r.Delete("/reviews/{reviewID}", reviewHandler.Delete)

			r.Post("/reviews/{reviewID}/comments", commentHandler.Create)
			r.Put("/comments/{commentID}", commentHandler.Update)
			r.Delete("/comments/{commentID}", commentHandler.Delete)

			r.Get("/users/me/reviews", reviewHandler.ListMine)
			r.Get("/users/me/comments", commentHandler.ListMine)

			// старые пути: {userID} из URL не участвует в проверке прав
			r.Delete("/users/{userID}/reviews/{reviewID}", reviewHandler.Delete)
			r.Delete("/users/{userID}/comments/{commentID}", commentHandler.Delete)
		})
	})

	return &Handler{Router: r}
}

func healthHandler(ping func(ctx context.Context) error, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				respond.Error(w, logger, fmt.Errorf("%w: %w", service.ErrDependencyUnavailable, err))
				return
			}
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// actor: пользователь из контекста; nil для анонимного запроса.
func actor(r *http.Request) *model.Identity {
	id, _ := middleware.IdentityFromContext(r.Context())
	return id
}

// maxBodyBytes ограничивает тело запроса после распаковки gzip.
const maxBodyBytes = 64 << 10

// decodeJSON читает тело запроса не длиннее maxBodyBytes; любая ошибка разбора: ErrInvalidInput.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return nil
}
