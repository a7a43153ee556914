package commands

import (
	"ReviewBoard/internal/cli/api"
	"ReviewBoard/internal/cli/repo/fs"
	"ReviewBoard/internal/config"
	"errors"
	"fmt"
	"strings"
)

func tokenStore(cfg *config.Config) *fs.AuthFSStore {
	return fs.NewAuthFSStore(cfg.TokenFile)
}

// anonClient: клиент без токена (публичные маршруты и вход).
func anonClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, "")
}

// authedClient: клиент с сохранённым токеном; без токена просит выполнить login.
func authedClient(cfg *config.Config) (*api.Client, error) {
	token, err := tokenStore(cfg).Load()
	if errors.Is(err, fs.ErrNoToken) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	return api.NewClient(cfg.ServerURL, token), nil
}

// joinText собирает текст из оставшихся аргументов, чтобы не требовать кавычек.
func joinText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
