// Package initializer builds the application's dependency graph from config.
package initializer

import (
	"log/slog"

	"github.com/mihirand/fxconvert/infra"
	infracache "github.com/mihirand/fxconvert/infra/cache"
	infraprovider "github.com/mihirand/fxconvert/infra/provider"
	"github.com/mihirand/fxconvert/infra/repository/history"
	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/provider"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/pkg/service/theme"
	"gorm.io/gorm"
)

// Deps bundles every constructed dependency.
type Deps struct {
	Logger     *slog.Logger
	DB         *gorm.DB
	RateSource provider.ExchangeRateProvider
	Registry   *currency.Registry
	History    conversion.HistoryRepository
	Theme      *theme.Context
}

// InitializeDependencies constructs the dependency graph. The history store
// is optional: without a database URL the service runs stateless and only
// logs that recording is off.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	deps := &Deps{
		Logger:   logger,
		Registry: currency.NewRegistry(),
		Theme:    theme.New(theme.Mode(cfg.Theme.Default)),
	}

	apiProvider := infraprovider.NewExchangeRateAPIProvider(cfg.Exchange, logger)
	deps.RateSource = infraprovider.NewCachedExchangeRateProvider(
		apiProvider,
		infracache.NewMemoryCache(),
		cfg.Exchange.CacheTTL,
		logger,
	)

	if cfg.DB.Url == "" {
		logger.Warn("DATABASE_URL not set, conversion history disabled")
		return deps, nil
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&history.Conversion{}); err != nil {
		return nil, err
	}
	deps.DB = db
	deps.History = history.NewRepository(db)

	return deps, nil
}
