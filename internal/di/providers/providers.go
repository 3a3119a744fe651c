// Package providers contains dependency injection providers for the
// social network record keeper.
package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/umckinney/social-network-simulator/internal/config"
	"github.com/umckinney/social-network-simulator/internal/loader"
	"github.com/umckinney/social-network-simulator/internal/logger"
	"github.com/umckinney/social-network-simulator/internal/pointer"
	"github.com/umckinney/social-network-simulator/internal/ratelimit"
	"github.com/umckinney/social-network-simulator/internal/reconcile"
	"github.com/umckinney/social-network-simulator/internal/service"
	"github.com/umckinney/social-network-simulator/internal/store/sqlite"
	"github.com/umckinney/social-network-simulator/internal/validation"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 30 * time.Second

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
	})

	log.Info("Starting social network record keeper",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"db_path", cfg.Storage.DBPath,
		"picture_root", cfg.Storage.PictureRoot,
	)

	return log, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	s, err := sqlite.Open(cfg.Storage.DBPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database opened", "path", cfg.Storage.DBPath)
	return &StoreHandle{Store: s}, nil
}

// ProvideValidator provides the struct validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvidePointerWriter provides the pointer-file writer.
func ProvidePointerWriter(i do.Injector) (*pointer.Writer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return pointer.NewWriter(cfg.Storage.PictureRoot, log.Logger), nil
}

// ProvideReconciler provides the database/disk reconciler.
func ProvideReconciler(i do.Injector) (*reconcile.Reconciler, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	writer := do.MustInvoke[*pointer.Writer](i)
	log := do.MustInvoke[*logger.Logger](i)

	return reconcile.New(storeHandle.Store, writer, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideStatusService provides the status service.
func ProvideStatusService(i do.Injector) (*service.StatusService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatusService(storeHandle.Store, validator, log.Logger), nil
}

// ProvidePictureService provides the picture service.
func ProvidePictureService(i do.Injector) (*service.PictureService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	writer := do.MustInvoke[*pointer.Writer](i)
	reconciler := do.MustInvoke[*reconcile.Reconciler](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPictureService(storeHandle.Store, validator, writer, reconciler, log.Logger), nil
}

// ProvideLoader provides the CSV loader.
func ProvideLoader(i do.Injector) (*loader.Loader, error) {
	users := do.MustInvoke[*service.UserService](i)
	statuses := do.MustInvoke[*service.StatusService](i)
	pictures := do.MustInvoke[*service.PictureService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return loader.New(users, statuses, pictures, log.Logger), nil
}

// RateLimiterHandle wraps the rate limiter with shutdown capability.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideRateLimiter provides the per-client rate limiter.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return &RateLimiterHandle{
		KeyedRateLimiter: ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
	}, nil
}
