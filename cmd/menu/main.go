// Package main provides the entry point for the interactive menu frontend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/umckinney/social-network-simulator/internal/di"
	"github.com/umckinney/social-network-simulator/internal/di/providers"
	"github.com/umckinney/social-network-simulator/internal/loader"
	"github.com/umckinney/social-network-simulator/internal/logger"
	"github.com/umckinney/social-network-simulator/internal/menu"
	"github.com/umckinney/social-network-simulator/internal/service"
)

func main() {
	injector := di.NewContainer()

	if err := di.BootstrapCore(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*logger.Logger](injector)

	app := menu.NewApp(
		do.MustInvoke[*service.UserService](injector),
		do.MustInvoke[*service.StatusService](injector),
		do.MustInvoke[*service.PictureService](injector),
		do.MustInvoke[*loader.Loader](injector),
		os.Stdin,
		os.Stdout,
		log.Logger,
	)

	// Ctrl-C cancels the menu loop between commands.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)

	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
}
