package commands

import (
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/model"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

type reviewRequest struct {
	Text    *string `json:"review_text,omitempty"`
	Ranking *int    `json:"ranking,omitempty"`
}

func printReviews(list []model.Review) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет отзывов")
		return
	}
	for _, rv := range list {
		fmt.Fprintf(Out, "- %s  [%d] %s  (item=%s user=%s)\n", rv.ID, rv.Ranking, rv.Text, rv.ItemID, rv.UserID)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
}

type reviewsCmd struct{}

func (reviewsCmd) Name() string        { return "reviews" }
func (reviewsCmd) Description() string { return "Отзывы на item" }
func (reviewsCmd) Usage() string       { return "reviews <itemID>" }

func (reviewsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var list []model.Review
	if _, err := anonClient(cfg).Do(ctx, http.MethodGet, "/api/items/"+args[0]+"/reviews", nil, &list); err != nil {
		return err
	}
	printReviews(list)
	return nil
}

type myReviewsCmd struct{}

func (myReviewsCmd) Name() string        { return "my-reviews" }
func (myReviewsCmd) Description() string { return "Мои отзывы" }
func (myReviewsCmd) Usage() string       { return "my-reviews" }

func (myReviewsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var list []model.Review
	if _, err := c.Do(ctx, http.MethodGet, "/api/users/me/reviews", nil, &list); err != nil {
		return err
	}
	printReviews(list)
	return nil
}

type reviewAddCmd struct{}

func (reviewAddCmd) Name() string        { return "review-add" }
func (reviewAddCmd) Description() string { return "Оставить отзыв на item" }
func (reviewAddCmd) Usage() string       { return "review-add <itemID> <ranking> <text...>" }

func (reviewAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	ranking, err := strconv.Atoi(args[1])
	if err != nil {
		return ErrUsage
	}
	text := joinText(args[2:])

	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var rv model.Review
	if _, err := c.Do(ctx, http.MethodPost, "/api/items/"+args[0]+"/reviews", reviewRequest{Text: &text, Ranking: &ranking}, &rv); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Отзыв создан: %s\n", rv.ID)
	return nil
}

type reviewEditCmd struct{}

func (reviewEditCmd) Name() string        { return "review-edit" }
func (reviewEditCmd) Description() string { return "Изменить свой отзыв (- оставляет оценку)" }
func (reviewEditCmd) Usage() string       { return "review-edit <reviewID> <ranking|-> [text...]" }

func (reviewEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	var req reviewRequest
	if args[1] != "-" {
		ranking, err := strconv.Atoi(args[1])
		if err != nil {
			return ErrUsage
		}
		req.Ranking = &ranking
	}
	if text := joinText(args[2:]); text != "" {
		req.Text = &text
	}
	if req.Ranking == nil && req.Text == nil {
		return ErrUsage
	}

	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var rv model.Review
	if _, err := c.Do(ctx, http.MethodPut, "/api/reviews/"+args[0], req, &rv); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Отзыв обновлён: [%d] %s\n", rv.Ranking, rv.Text)
	return nil
}

type reviewDelCmd struct{}

func (reviewDelCmd) Name() string        { return "review-del" }
func (reviewDelCmd) Description() string { return "Удалить свой отзыв" }
func (reviewDelCmd) Usage() string       { return "review-del <reviewID>" }

func (reviewDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	if _, err := c.Do(ctx, http.MethodDelete, "/api/reviews/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Отзыв удалён")
	return nil
}

func init() {
	RegisterCmd(reviewsCmd{})
	RegisterCmd(myReviewsCmd{})
	RegisterCmd(reviewAddCmd{})
	RegisterCmd(reviewEditCmd{})
	RegisterCmd(reviewDelCmd{})
}
