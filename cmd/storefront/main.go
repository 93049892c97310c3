package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/app"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := signalContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
