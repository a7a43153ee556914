package commands

import (
	"ReviewBoard/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	// ErrUsage: аргументы команды неверны, печатается её usage.
	ErrUsage = errors.New("usage")
	// ErrNotLoggedIn: токен не сохранён, команда требует login.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Коды выхода rbcli.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitAuth        = 3 // нет токена, либо сервер его отклонил
	ExitUnavailable = 4 // сервер не отвечает или вернул 5xx
)

// Command: подкоманда rbcli.
type Command interface {
	Name() string
	Description() string
	// Usage: строка вида "review-add <itemID> <ranking> <text...>".
	Usage() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registered: команды по имени в нижнем регистре. Заполняется из init() файлов с командами.
var registered = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

func RegisterCmd(cmd Command) {
	registered[strings.ToLower(cmd.Name())] = cmd
}

func lookup(name string) (Command, bool) {
	c, ok := registered[strings.ToLower(name)]
	return c, ok
}

func sortedCommands() []Command {
	list := make([]Command, 0, len(registered))
	for _, c := range registered {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// clientFlags: глобальные флаги config, которые имеют смысл для клиента.
// Серверные флаги (секрет, DSN, bcrypt) в справку клиента не попадают.
var clientFlags = []string{"base-url", "https", "token-file", "version"}

// FormatGlobalUsage собирает справку: флаги клиента берутся из flag.CommandLine,
// поэтому описание и значения по умолчанию совпадают с тем, что зарегистрировал config.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("ReviewBoard CLI: отзывы и комментарии из терминала\n\n")
	b.WriteString("Usage:\n  rbcli [flags] <command> [args]\n")

	var flagLines []string
	for _, name := range clientFlags {
		if f := flag.Lookup(name); f != nil {
			line := fmt.Sprintf("  -%-12s %s", f.Name, f.Usage)
			if f.DefValue != "" && f.DefValue != "false" {
				line += fmt.Sprintf(" (default %s)", f.DefValue)
			}
			flagLines = append(flagLines, line)
		}
	}
	if len(flagLines) > 0 {
		b.WriteString("\nFlags:\n" + strings.Join(flagLines, "\n") + "\n")
	}

	b.WriteString("\nCommands:\n")
	for _, c := range sortedCommands() {
		fmt.Fprintf(&b, "  %-40s %s\n", c.Usage(), c.Description())
	}
	b.WriteString("\nrbcli help <command> shows usage of a single command.\n")
	return b.String()
}
