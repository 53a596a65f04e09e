package ports

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
)

// OrderPublisher — постановка принятого заказа в долговечную очередь.
// Publish возвращается после постановки в отправку; подтверждение брокера
// наблюдается асинхронно (confirm/return-колбэки реализации).
type OrderPublisher interface {
	Publish(ctx context.Context, order *domain.OrderRequest) error
	Close() error
}
