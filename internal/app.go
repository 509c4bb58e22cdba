package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/catalogapi"
	logger_adapter "github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/logger"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/nominatim"
	postgres_adapter "github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/postgres"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/rediscache"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/adapters/rest"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/configs"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/usecase"
	"github.com/chivocasa42-sys/sivarcasas-sub001/pkg/fluentlogger"
	"github.com/chivocasa42-sys/sivarcasas-sub001/pkg/postgres"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	logger       port.LoggerPort
	fluentClient *fluent.Fluent
	dbPool       *pgxpool.Pool
	cache        *rediscache.Cache
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Listing store client with optional Redis result cache in front.
	catalogClient := catalogapi.NewClient(appConfig.CatalogAPI.URL, appConfig.CatalogAPI.APIKey)

	var resultCache port.ResultCachePort
	var cache *rediscache.Cache
	if appConfig.Redis.Enabled {
		cache = rediscache.NewCache(appConfig.Redis.Addr, appConfig.Redis.Password)
		if err := cache.Ping(context.Background()); err != nil {
			appLogger.Warn("Redis unreachable, continuing without result cache", port.Fields{"error": err.Error()})
			cache.Close()
			cache = nil
		} else {
			resultCache = cache
			appLogger.Info("Redis result cache initialized.", nil)
		}
	}

	// Neighborhood search needs the locations database; without one the
	// endpoint degrades to empty results.
	var dbPool *pgxpool.Pool
	var locationsStore port.LocationsStorePort = disabledLocationsStore{}
	if appConfig.Database.Enabled {
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to locations database", err, nil)
			return nil, fmt.Errorf("failed to connect to locations database: %w", err)
		}
		locationsStore, err = postgres_adapter.NewNeighborhoodsRepository(dbPool)
		if err != nil {
			return nil, err
		}
		appLogger.Info("Locations database initialized.", nil)
	} else {
		appLogger.Warn("DATABASE_URL not set, neighborhood search will return empty results", nil)
	}

	geocoderClient := nominatim.NewClient(appConfig.Nominatim.URL, appConfig.Nominatim.UserAgent)

	cacheTTL := time.Duration(appConfig.Redis.CacheTTLSeconds) * time.Second

	listByTagUseCase := usecase.NewListByTagUseCase(catalogClient, resultCache, cacheTTL)
	topScoredUseCase := usecase.NewTopScoredByDepartmentUseCase(catalogClient)
	departmentStatsUseCase := usecase.NewDepartmentStatsUseCase(catalogClient)
	searchPlacesUseCase := usecase.NewSearchPlacesUseCase(geocoderClient)
	searchNeighborhoodsUseCase := usecase.NewSearchNeighborhoodsUseCase(locationsStore)
	reverseGeocodeUseCase := usecase.NewReverseGeocodeUseCase(geocoderClient)

	appLogger.Info("All use cases initialized", nil)

	apiHandlers := rest.NewCatalogHandlers(
		listByTagUseCase,
		topScoredUseCase,
		searchPlacesUseCase,
		searchNeighborhoodsUseCase,
		reverseGeocodeUseCase,
		departmentStatsUseCase,
	)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigin, apiHandlers, baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		logger:       appLogger,
		fluentClient: fluentClient,
		dbPool:       dbPool,
		cache:        cache,
	}, nil
}

// Run starts the application components and blocks until a shutdown
// signal or a fatal server error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}

		if a.dbPool != nil {
			a.dbPool.Close()
		}

		if a.cache != nil {
			if err := a.cache.Close(); err != nil {
				a.logger.Error("Error closing redis cache", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

// disabledLocationsStore serves deployments without a locations
// database.
type disabledLocationsStore struct{}

func (disabledLocationsStore) SearchNeighborhoods(ctx context.Context, query string, limit int) ([]domain.Neighborhood, error) {
	return nil, nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
