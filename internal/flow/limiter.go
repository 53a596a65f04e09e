package flow

import (
	"context"
	"time"

	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/pkg/metrics"
	"golang.org/x/time/rate"
)

// Decision — результат проверки лимитов.
type Decision int

const (
	Allowed         Decision = iota // запрос пропущен
	EndpointLimited                 // отказ по лимиту эндпоинта
	UserLimited                     // отказ по лимиту пользователя
)

// Config — параметры двухуровневого лимитирования.
type Config struct {
	Endpoints     []string      // защищаемые пути (лимитеры создаются на старте)
	EndpointRate  float64       // пропуски/сек на каждый эндпоинт (общий на путь)
	UserRate      float64       // пропуски/сек на каждого пользователя
	CacheCapacity int           // максимум живых пользовательских лимитеров
	CacheTTL      time.Duration // истечение пользовательского лимитера от записи
}

// Guard — двухуровневый пропускной контроль: сначала эндпоинт, затем
// пользователь. Порядок проверки — контракт: при одновременном исчерпании
// обоих лимитов наружу уходит отказ уровня эндпоинта.
// Незнакомый путь или запрос без userID — уровень пропускается (fail-open):
// незащищённые ресурсы сознательно не лимитируются.
type Guard struct {
	endpoints map[string]*rate.Limiter
	users     *LimiterCache
	log       ports.Logger
}

// NewGuard — создаёт лимитеры эндпоинтов (жадно, по списку из конфига)
// и loading-кэш пользовательских лимитеров.
func NewGuard(cfg Config, log ports.Logger) *Guard {
	endpoints := make(map[string]*rate.Limiter, len(cfg.Endpoints))
	for _, path := range cfg.Endpoints {
		endpoints[path] = newBucket(cfg.EndpointRate)
	}
	users := NewLimiterCache(cfg.CacheCapacity, cfg.CacheTTL, func() *rate.Limiter {
		return newBucket(cfg.UserRate)
	})
	return &Guard{endpoints: endpoints, users: users, log: log}
}

// Allow — неблокирующая выдача пропуска: токен либо есть сейчас, либо отказ.
func (g *Guard) Allow(ctx context.Context, path, userID string) Decision {
	if lim, ok := g.endpoints[path]; ok {
		if !lim.Allow() {
			metrics.FlowRejected.WithLabelValues("endpoint").Inc()
			g.log.Warnf(ctx, "flow limit exceeded tier=endpoint path=%s", path)
			return EndpointLimited
		}
	}
	if userID != "" {
		if !g.users.GetOrCreate(userID).Allow() {
			metrics.FlowRejected.WithLabelValues("user").Inc()
			g.log.Warnf(ctx, "flow limit exceeded tier=user user_id=%s path=%s", userID, path)
			return UserLimited
		}
	}
	return Allowed
}

// UserLimiters — доступ к кэшу пользовательских лимитеров (метрики, тесты).
func (g *Guard) UserLimiters() *LimiterCache { return g.users }

// newBucket — token-bucket на rate.Limiter: ведро стартует полным,
// burst равен целой части рейта (минимум 1 токен).
func newBucket(perSec float64) *rate.Limiter {
	burst := int(perSec)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSec), burst)
}
