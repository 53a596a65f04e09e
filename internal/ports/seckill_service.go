package ports

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
)

// SeckillService — прикладной сервис покупки для транспортного слоя.
type SeckillService interface {
	// CreateOrder — приём заявки; ErrSoldOut / ErrServiceBusy /
	// validate.ErrInvalidOrder транслируются транспортом в ответы API.
	CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResult, error)

	// OrderStatus — статус обработки заказа; found=false — исхода ещё нет.
	OrderStatus(ctx context.Context, userID, orderUUID string) (domain.OrderStatus, bool, error)
}
