// Package di provides dependency injection configuration for the
// social network record keeper.
package di

import (
	"github.com/samber/do/v2"

	"github.com/umckinney/social-network-simulator/internal/config"
	"github.com/umckinney/social-network-simulator/internal/di/providers"
	"github.com/umckinney/social-network-simulator/internal/loader"
	"github.com/umckinney/social-network-simulator/internal/logger"
	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/service"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideValidator)

	// Picture storage
	do.Provide(injector, providers.ProvidePointerWriter)
	do.Provide(injector, providers.ProvideReconciler)

	// Business services
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideStatusService)
	do.Provide(injector, providers.ProvidePictureService)
	do.Provide(injector, providers.ProvideLoader)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// BootstrapCore initializes everything up to the services. Both the API
// server and the menu frontend go through this.
func BootstrapCore(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*validation.Validator](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*pointer.Writer](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*reconcile.Reconciler](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.UserService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.StatusService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.PictureService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*loader.Loader](injector); err != nil {
		return err
	}
	return nil
}

// BootstrapServer initializes the core plus the HTTP server.
func BootstrapServer(injector *do.RootScope) error {
	if err := BootstrapCore(injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.RateLimiterHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
