package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/pkg/metrics"
	"github.com/google/uuid"
)

// lockKeyPrefix — имя распределённой блокировки посева для товара.
const lockKeyPrefix = "seckill_lock:"

// defaultLockTTL — верхняя граница удержания блокировки посева:
// при падении держателя остальные инстансы продолжат не позднее, чем через TTL.
const defaultLockTTL = 10 * time.Second

// StockService — контроллер остатков: атомарный декремент в разделяемом кэше
// с восстановлением после cold start. Текущие декременты полагаются только
// на атомарность кэша; распределённая блокировка сериализует ИСКЛЮЧИТЕЛЬНО
// посев начального значения (держать её на каждый декремент было бы дорого).
type StockService struct {
	cache   ports.StockCache
	source  ports.InventorySource
	locker  ports.DistributedLocker
	log     ports.Logger
	lockTTL time.Duration

	mu    sync.Mutex
	locks map[int64]*sync.Mutex // процесс-локальные мьютексы посева по товарам
}

// NewStockService — DI-конструктор. lockTTL <= 0 → значение по умолчанию.
func NewStockService(
	cache ports.StockCache,
	source ports.InventorySource,
	locker ports.DistributedLocker,
	log ports.Logger,
	lockTTL time.Duration,
) *StockService {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &StockService{
		cache:   cache,
		source:  source,
		locker:  locker,
		log:     log,
		lockTTL: lockTTL,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// Decrement — списание quantity единиц товара.
// Возвращает остаток после списания (>= 0) либо domain.StockInsufficient,
// если остатка не хватает или товар неизвестен. Инфраструктурные сбои
// не проваливаются в cold start, а закрывают покупку (сентинел + ошибка):
// пересеять живой кэш по устаревшему чтению источника нельзя.
func (s *StockService) Decrement(ctx context.Context, productID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return domain.StockInsufficient, nil
	}

	remain, present, err := s.cache.DecrStock(ctx, productID, quantity)
	if err != nil {
		metrics.StockDecrements.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "stock decrement failed product_id=%d err=%v", productID, err)
		return domain.StockInsufficient, domain.ErrServiceBusy
	}
	if present {
		s.recordOutcome(ctx, productID, remain)
		return remain, nil
	}

	// Ключа в кэше нет — cold start.
	return s.decrementColdStart(ctx, productID, quantity)
}

// decrementColdStart — восстановление после отсутствия ключа в кэше.
// Тройная двойная проверка (локальная → после локального мьютекса →
// после распределённой блокировки) гарантирует не более одного посева
// на все инстансы; лишнее чтение источника при гонке — допустимая цена.
func (s *StockService) decrementColdStart(ctx context.Context, productID, quantity int64) (int64, error) {
	// Локальный мьютекс товара схлопывает конкурентные cold start
	// внутри одного инстанса в один загрузчик.
	lk := s.productLock(productID)
	lk.Lock()
	defer lk.Unlock()

	// Double check: другой поток этого инстанса мог уже посеять, пока мы ждали.
	_, cached, err := s.cache.GetStock(ctx, productID)
	if err != nil {
		metrics.StockDecrements.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "stock cache read failed product_id=%d err=%v", productID, err)
		return domain.StockInsufficient, domain.ErrServiceBusy
	}

	if !cached {
		qty, found, srcErr := s.source.GetQuantity(ctx, productID)
		if srcErr != nil {
			metrics.StockDecrements.WithLabelValues("error").Inc()
			s.log.Errorf(ctx, "inventory source read failed product_id=%d err=%v", productID, srcErr)
			return domain.StockInsufficient, domain.ErrServiceBusy
		}
		if !found {
			// Неизвестный товар: для вызывающего неотличим от sold out,
			// внутри различаем по метке метрики и логу.
			metrics.StockDecrements.WithLabelValues("unknown_product").Inc()
			s.log.Warnf(ctx, "unknown product product_id=%d", productID)
			return domain.StockInsufficient, nil
		}

		s.seedAcrossInstances(ctx, productID, qty)
	}

	// Кэш посеян (нами или другим инстансом) — повторяем атомарный декремент.
	remain, present, err := s.cache.DecrStock(ctx, productID, quantity)
	if err != nil || !present {
		metrics.StockDecrements.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "stock decrement after seed failed product_id=%d present=%t err=%v", productID, present, err)
		return domain.StockInsufficient, domain.ErrServiceBusy
	}
	s.recordOutcome(ctx, productID, remain)
	return remain, nil
}

// seedAcrossInstances — посев авторитетного остатка под распределённой
// блокировкой. Все сбои здесь best-effort: TTL блокировки и повторный
// декремент выше дают восстановление без эскалации.
func (s *StockService) seedAcrossInstances(ctx context.Context, productID, qty int64) {
	name := lockKeyPrefix + strconv.FormatInt(productID, 10)
	token := strings.ReplaceAll(uuid.New().String(), "-", "")

	acquired, err := s.locker.TryLock(ctx, name, token, s.lockTTL)
	if err != nil {
		s.log.Errorf(ctx, "try lock failed product_id=%d err=%v", productID, err)
		return
	}
	if !acquired {
		// Посев делает другой инстанс; наш повторный декремент увидит его запись.
		return
	}
	defer func() {
		// Снятие best-effort: при сбое блокировку снимет TTL.
		if unlockErr := s.locker.Unlock(ctx, name, token); unlockErr != nil {
			s.log.Warnf(ctx, "unlock failed product_id=%d err=%v", productID, unlockErr)
		}
	}()

	// Вторая двойная проверка — теперь межинстансная: между нашим чтением
	// и захватом блокировки значение мог записать другой инстанс.
	_, cached, err := s.cache.GetStock(ctx, productID)
	if err != nil || cached {
		return
	}
	if err := s.cache.SetStock(ctx, productID, qty); err != nil {
		s.log.Errorf(ctx, "stock seed failed product_id=%d qty=%d err=%v", productID, qty, err)
		return
	}
	metrics.StockSeeds.Inc()
	s.log.Infof(ctx, "stock seeded product_id=%d qty=%d", productID, qty)
}

// recordOutcome — метрика и лог исхода декремента.
func (s *StockService) recordOutcome(ctx context.Context, productID, remain int64) {
	if remain == domain.StockInsufficient {
		metrics.StockDecrements.WithLabelValues("sold_out").Inc()
		s.log.Infof(ctx, "sold out product_id=%d", productID)
		return
	}
	metrics.StockDecrements.WithLabelValues("ok").Inc()
}

// productLock — ленивое создание процесс-локального мьютекса товара.
func (s *StockService) productLock(productID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lk, ok := s.locks[productID]
	if !ok {
		lk = &sync.Mutex{}
		s.locks[productID] = lk
	}
	return lk
}
