// rbcli: клиент ReviewBoard. Токен после login хранится в TOKEN_FILE.
package main

import (
	"ReviewBoard/internal/cli/commands"
	"ReviewBoard/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// -h печатает справку клиента вместо полного списка флагов config
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), commands.FormatGlobalUsage()) }

	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("rbcli %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}
