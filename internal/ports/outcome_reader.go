package ports

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
)

// OutcomeReader — чтение результата обработки заказа, записанного
// воркером очереди в разделяемую hash-map. Ядро её никогда не мутирует.
type OutcomeReader interface {
	// OrderStatus — (status, true, nil), если воркер уже записал результат;
	// (0, false, nil), если результата ещё нет — вызывающий должен опрашивать.
	OrderStatus(ctx context.Context, userID, orderUUID string) (domain.OrderStatus, bool, error)
}
