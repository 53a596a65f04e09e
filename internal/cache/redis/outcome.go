package redis

import (
	"context"
	"strconv"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

// Проверка, что OutcomeStore удовлетворяет интерфейсу OutcomeReader.
var _ ports.OutcomeReader = (*OutcomeStore)(nil)

// OutcomeStore — доступ к hash-map результатов заказов
// (seckill_result:<userID>, поле — uuid заказа, значение — числовой статус).
// Ядро только читает её; запись выполняет воркер очереди.
type OutcomeStore struct {
	client *goredis.Client
}

// NewOutcomeStore — конструктор OutcomeStore.
func NewOutcomeStore(client *goredis.Client) *OutcomeStore {
	return &OutcomeStore{client: client}
}

// OrderStatus — результат обработки заказа; (0, false, nil), если воркер
// ещё не записал исход.
func (s *OutcomeStore) OrderStatus(ctx context.Context, userID, orderUUID string) (domain.OrderStatus, bool, error) {
	val, err := s.client.HGet(ctx, resultKey(userID), orderUUID).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	status, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	return domain.OrderStatus(status), true, nil
}

// SetOutcome — запись исхода обработки. В ядре не используется:
// нужна воркеру очереди и интеграционным тестам, имитирующим его.
func (s *OutcomeStore) SetOutcome(ctx context.Context, userID, orderUUID string, status domain.OrderStatus) error {
	return s.client.HSet(ctx, resultKey(userID), orderUUID, int(status)).Err()
}
