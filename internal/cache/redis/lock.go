package redis

import (
	"context"
	"time"

	"github.com/6gunner/eshop/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что Lock удовлетворяет интерфейсу DistributedLocker.
var _ ports.DistributedLocker = (*Lock)(nil)

// unlockScript — снятие блокировки со сверкой токена владельца.
// Сверка и удаление — одна атомарная операция: иначе инстанс A мог бы снять
// блокировку, которая после истечения TTL уже перехвачена инстансом B.
var unlockScript = goredis.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
    return redis.call('del', KEYS[1])
else
    return 0
end
`)

// Lock — межинстансная блокировка на Redis: set-if-absent с TTL.
// TTL ограничивает время удержания, если владелец упал до Unlock.
type Lock struct {
	client *goredis.Client
}

// NewLock — конструктор Lock.
func NewLock(client *goredis.Client) *Lock {
	return &Lock{client: client}
}

// TryLock — атомарная попытка взять блокировку; не ждёт.
func (l *Lock) TryLock(ctx context.Context, name, token string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, name, token, ttl).Result()
}

// Unlock — снимает блокировку, только если токен совпадает с сохранённым.
// Несовпадение токена (чужая или перехваченная блокировка) — не ошибка.
func (l *Lock) Unlock(ctx context.Context, name, token string) error {
	return unlockScript.Run(ctx, l.client, []string{name}, token).Err()
}
