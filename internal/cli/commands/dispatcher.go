package commands

import (
	"ReviewBoard/internal/cli/api"
	"ReviewBoard/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

const loginHint = "run: rbcli login <username> <password>"

// Dispatch выполняет команду из args (флаги уже разобраны) и возвращает код выхода.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	switch args[0] {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}
	return report(c, c.Run(ctx, cfg, args[1:]))
}

// help: rbcli help [command]
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}
	fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
	return ExitOK
}

// report печатает результат команды и выбирает код выхода.
// Ответы сервера разбираются по статусу: 401 ведёт к подсказке про login, 5xx к ExitUnavailable.
func report(c Command, err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	}
	if errors.Is(err, ErrNotLoggedIn) {
		fmt.Fprintf(Out, "%s: not logged in, %s\n", c.Name(), loginHint)
		return ExitAuth
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusUnauthorized:
			fmt.Fprintf(Out, "%s: session expired or token rejected, %s\n", c.Name(), loginHint)
			return ExitAuth
		case apiErr.Status >= http.StatusInternalServerError:
			fmt.Fprintf(Out, "%s: server unavailable (%d), try again later\n", c.Name(), apiErr.Status)
			return ExitUnavailable
		case apiErr.Kind != "":
			fmt.Fprintf(Out, "%s: %s [%s]\n", c.Name(), apiErr.Message, apiErr.Kind)
			return ExitFailure
		}
	}

	fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
	return ExitFailure
}
