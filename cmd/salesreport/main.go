package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gyeh/salesreport/internal/exitcode"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitcode.UsageError)
	}
}
