package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgdesk/orgdesk/internal/cli"
	"github.com/orgdesk/orgdesk/pkg/safe"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := 0
	safe.Do(func() {
		if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
			code = 1
		}
	})
	return code
}
