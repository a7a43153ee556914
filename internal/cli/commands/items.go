package commands

import (
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/model"
	"context"
	"fmt"
	"net/http"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все items" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []model.Item
	if _, err := anonClient(cfg).Do(ctx, http.MethodGet, "/api/items", nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  %s (%s)\n", it.ID, it.Name, it.Category)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
