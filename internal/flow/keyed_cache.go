package flow

import (
	"container/list"
	"sync"
	"time"

	"github.com/6gunner/eshop/pkg/metrics"
	"golang.org/x/time/rate"
)

// entry — элемент кэша: лимитер и момент истечения (от времени записи).
type entry struct {
	key       string
	lim       *rate.Limiter
	expiresAt time.Time
}

// LimiterCache — ограниченный самоочищающийся кэш «ключ → лимитер».
// Семантика loading-кэша: создание лимитера для нового ключа выполняется
// не более одного раза даже при конкурентном первом обращении (создание
// идёт под тем же мьютексом, что и поиск). TTL отсчитывается от записи
// и НЕ продлевается при чтении; вытесненное состояние просто отбрасывается.
type LimiterCache struct {
	capacity   int
	ttl        time.Duration
	newLimiter func() *rate.Limiter

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLimiterCache — конструктор. capacity <= 0 трактуется как 1.
func NewLimiterCache(capacity int, ttl time.Duration, newLimiter func() *rate.Limiter) *LimiterCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LimiterCache{
		capacity:   capacity,
		ttl:        ttl,
		newLimiter: newLimiter,
		ll:         list.New(),
		index:      make(map[string]*list.Element),
	}
}

// GetOrCreate — вернуть лимитер ключа, создав его при первом обращении.
// Конкурентные вызовы для одного нового ключа получают один и тот же экземпляр.
func (c *LimiterCache) GetOrCreate(key string) *rate.Limiter {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		if !c.isExpired(ent, now) {
			metrics.LimiterCacheOps.WithLabelValues("hit").Inc()
			return ent.lim
		}
		// истёк — отбрасываем и создаём заново
		metrics.LimiterCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
	}

	c.pruneExpiredFromBack(now)

	lim := c.newLimiter()
	elem := c.ll.PushFront(&entry{key: key, lim: lim, expiresAt: c.expiryFrom(now)})
	c.index[key] = elem
	metrics.LimiterCacheOps.WithLabelValues("created").Inc()

	if c.ll.Len() > c.capacity {
		c.evictOldest()
	}
	metrics.LimiterCacheSize.Set(float64(len(c.index)))
	return lim
}

// Len — текущее число живых записей (для метрик и тестов).
func (c *LimiterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// evictOldest — вытесняет запись с самой старой записью (хвост списка).
func (c *LimiterCache) evictOldest() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.LimiterCacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LimiterCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL (ttl <= 0 — записи вечные).
func (c *LimiterCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения от времени записи.
func (c *LimiterCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — снимает истёкшие записи с хвоста до первой живой.
// Хвост — самые старые записи: порядок списка совпадает с порядком записи,
// потому что TTL не продлевается.
func (c *LimiterCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if !now.After(ent.expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.LimiterCacheOps.WithLabelValues("expired").Inc()
	}
}
