package ports

import (
	"context"
	"time"
)

// DistributedLocker — межинстансная взаимоисключающая блокировка
// поверх разделяемого кэша. TTL ограничивает время удержания на случай
// падения владельца; Unlock обязан сверять токен владельца.
type DistributedLocker interface {
	// TryLock — атомарный «set-if-absent с TTL»; true, если блокировка взята.
	TryLock(ctx context.Context, name, token string, ttl time.Duration) (bool, error)

	// Unlock — снимает блокировку, только если токен совпадает.
	// Best-effort: ошибка логируется вызывающим, TTL гарантирует восстановление.
	Unlock(ctx context.Context, name, token string) error
}
