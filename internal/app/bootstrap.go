package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/6gunner/eshop/config"
	redisc "github.com/6gunner/eshop/internal/cache/redis"
	"github.com/6gunner/eshop/internal/flow"
	"github.com/6gunner/eshop/internal/kafka"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/internal/repo/postgres"
	rest "github.com/6gunner/eshop/internal/transport/http"
	"github.com/6gunner/eshop/internal/usecase"
	"github.com/6gunner/eshop/pkg/logger"
	"github.com/6gunner/eshop/pkg/metrics"
	"github.com/6gunner/eshop/pkg/telemetry"
	"github.com/6gunner/eshop/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger         // логгер
	HTTPServer      *http.Server         // HTTP-сервер
	OrderPublisher  ports.OrderPublisher // паблишер заказов (закрывается при остановке)
	gracefulTimeout time.Duration        // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres (авторитетный источник остатков).
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Клиент Redis (разделяемый кэш остатков, блокировки, результаты).
	redisClient, err := redisc.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	stockCache := redisc.NewStockCache(redisClient)
	outcomes := redisc.NewOutcomeStore(redisClient)
	locker := redisc.NewLock(redisClient)
	productRepo := postgres.NewProductRepository(pool)
	stockService := usecase.NewStockService(stockCache, productRepo, locker, logg, cfg.Lock.TTL)

	producer := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		BatchTimeout: cfg.Kafka.BatchTimeout,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	}, logg)

	orderValidator := validate.NewOrderValidator()
	seckillService := usecase.NewSeckillService(stockService, producer, outcomes, orderValidator, logg)

	// Пропускной контроль: лимитеры эндпоинтов — жадно, пользовательские — лениво.
	guard := flow.NewGuard(flow.Config{
		Endpoints:     cfg.Flow.Endpoints,
		EndpointRate:  cfg.Flow.EndpointRate,
		UserRate:      cfg.Flow.UserRate,
		CacheCapacity: cfg.Flow.CacheCapacity,
		CacheTTL:      cfg.Flow.CacheTTL,
	}, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(seckillService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, guard, logg, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		OrderPublisher:  producer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := producer.Close(); err != nil {
			logg.Warnf(ctx, "producer close error: %v", err)
		}
		if err := redisClient.Close(); err != nil {
			logg.Warnf(ctx, "redis close error: %v", err)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка паблишера: дожидаемся отправки буфера writer-а.
	if err := a.OrderPublisher.Close(); err != nil {
		a.Logger.Warnf(ctx, "producer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
