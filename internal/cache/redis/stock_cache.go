package redis

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что StockCache удовлетворяет интерфейсу StockCache.
var _ ports.StockCache = (*StockCache)(nil)

// decrScript — условный декремент остатка одним серверным скриптом.
// Проверка «хватает ли остатка» и сам декремент обязаны быть одной атомарной
// операцией: отдельные get и decrby допускают перепродажу под конкуренцией.
// Возвращает новый остаток, -1 при нехватке, nil при отсутствии ключа.
var decrScript = goredis.NewScript(`
local remain_num = redis.call('get', KEYS[1])
if remain_num then
    if remain_num - ARGV[1] >= 0 then
        return redis.call('decrby', KEYS[1], ARGV[1])
    else
        return -1
    end
else
    return nil
end
`)

// StockCache — адаптер разделяемого кэша остатков на Redis.
type StockCache struct {
	client *goredis.Client
}

// NewStockCache — конструктор StockCache.
func NewStockCache(client *goredis.Client) *StockCache {
	return &StockCache{client: client}
}

// DecrStock — атомарный условный декремент остатка товара.
// (remain, true, nil) — декремент прошёл; (StockInsufficient, true, nil) —
// остатка не хватает; (0, false, nil) — ключа в кэше нет (cold start).
func (c *StockCache) DecrStock(ctx context.Context, productID, quantity int64) (int64, bool, error) {
	res, err := decrScript.Run(ctx, c.client, []string{stockKey(productID)}, quantity).Int64()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if res < 0 {
		return domain.StockInsufficient, true, nil
	}
	return res, true, nil
}

// GetStock — текущее закэшированное значение остатка.
func (c *StockCache) GetStock(ctx context.Context, productID int64) (int64, bool, error) {
	val, err := c.client.Get(ctx, stockKey(productID)).Int64()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

// SetStock — посев начального остатка. Вызывается только держателем
// распределённой блокировки после двойной проверки отсутствия ключа.
func (c *StockCache) SetStock(ctx context.Context, productID, quantity int64) error {
	return c.client.Set(ctx, stockKey(productID), quantity, 0).Err()
}
