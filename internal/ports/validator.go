package ports

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
)

// OrderRequestValidator — валидация входящей заявки на покупку.
type OrderRequestValidator interface {
	Validate(ctx context.Context, req *domain.OrderRequest) error
}
