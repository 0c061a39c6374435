package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/IgorBayerl/unicov/cmd/unicov/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.NewUnicovCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
