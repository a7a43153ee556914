package commands

import (
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/model"
	"context"
	"fmt"
	"net/http"
)

type commentRequest struct {
	Text string `json:"comment"`
}

func printComments(list []model.Comment) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет комментариев")
		return
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- %s  %s  (review=%s user=%s)\n", c.ID, c.Text, c.ReviewID, c.UserID)
	}
}

type commentsCmd struct{}

func (commentsCmd) Name() string        { return "comments" }
func (commentsCmd) Description() string { return "Комментарии к отзыву" }
func (commentsCmd) Usage() string       { return "comments <reviewID>" }

func (commentsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var list []model.Comment
	if _, err := anonClient(cfg).Do(ctx, http.MethodGet, "/api/reviews/"+args[0]+"/comments", nil, &list); err != nil {
		return err
	}
	printComments(list)
	return nil
}

type myCommentsCmd struct{}

func (myCommentsCmd) Name() string        { return "my-comments" }
func (myCommentsCmd) Description() string { return "Мои комментарии" }
func (myCommentsCmd) Usage() string       { return "my-comments" }

func (myCommentsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var list []model.Comment
	if _, err := c.Do(ctx, http.MethodGet, "/api/users/me/comments", nil, &list); err != nil {
		return err
	}
	printComments(list)
	return nil
}

type commentAddCmd struct{}

func (commentAddCmd) Name() string        { return "comment-add" }
func (commentAddCmd) Description() string { return "Прокомментировать отзыв" }
func (commentAddCmd) Usage() string       { return "comment-add <reviewID> <text...>" }

func (commentAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var cm model.Comment
	if _, err := c.Do(ctx, http.MethodPost, "/api/reviews/"+args[0]+"/comments", commentRequest{Text: joinText(args[1:])}, &cm); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Комментарий создан: %s\n", cm.ID)
	return nil
}

type commentEditCmd struct{}

func (commentEditCmd) Name() string        { return "comment-edit" }
func (commentEditCmd) Description() string { return "Изменить свой комментарий" }
func (commentEditCmd) Usage() string       { return "comment-edit <commentID> <text...>" }

func (commentEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	if _, err := c.Do(ctx, http.MethodPut, "/api/comments/"+args[0], commentRequest{Text: joinText(args[1:])}, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Комментарий обновлён")
	return nil
}

type commentDelCmd struct{}

func (commentDelCmd) Name() string        { return "comment-del" }
func (commentDelCmd) Description() string { return "Удалить свой комментарий" }
func (commentDelCmd) Usage() string       { return "comment-del <commentID>" }

func (commentDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	if _, err := c.Do(ctx, http.MethodDelete, "/api/comments/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Комментарий удалён")
	return nil
}

func init() {
	RegisterCmd(commentsCmd{})
	RegisterCmd(myCommentsCmd{})
	RegisterCmd(commentAddCmd{})
	RegisterCmd(commentEditCmd{})
	RegisterCmd(commentDelCmd{})
}
