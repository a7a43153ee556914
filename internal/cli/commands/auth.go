package commands

import (
	"ReviewBoard/internal/cli/api"
	"ReviewBoard/internal/config"
	"ReviewBoard/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// authenticate отправляет логин/пароль и сохраняет полученный токен.
func authenticate(ctx context.Context, cfg *config.Config, path, username, password string) error {
	var out tokenResponse
	resp, err := anonClient(cfg).Do(ctx, http.MethodPost, path, credentials{Username: username, Password: password}, &out)
	if err != nil {
		return err
	}

	token := out.Token
	if token == "" {
		// старые серверы отдают токен только в cookie
		var ok bool
		if token, ok = api.TokenFromResponse(resp); !ok {
			return errors.New("no token in response")
		}
	}

	st := tokenStore(cfg)
	if err := st.Save(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	return st.SaveLogin(username)
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and store the token" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	err := authenticate(ctx, cfg, "/api/auth/register", args[0], args[1])
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Kind == "username_taken" {
		return errors.New("username already in use")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Registered successfully")
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	err := authenticate(ctx, cfg, "/api/auth/login", args[0], args[1])
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the current user" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var id model.Identity
	if _, err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, &id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s (%s)\n", id.Username, id.ID)
	return nil
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(meCmd{})
}
