package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderRequestValidator.
var _ ports.OrderRequestValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// maxQuantityPerOrder — верхняя граница позиций в одной заявке.
const maxQuantityPerOrder = 100

// OrderValidator — валидация входящей заявки на покупку.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заявки.
func (v *OrderValidator) Validate(_ context.Context, req *domain.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("%w: заявка не может быть nil", ErrInvalidOrder)
	}
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: product_id должен быть положительным", ErrInvalidOrder)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity должен быть положительным", ErrInvalidOrder)
	}
	if req.Quantity > maxQuantityPerOrder {
		return fmt.Errorf("%w: quantity больше %d", ErrInvalidOrder, maxQuantityPerOrder)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price не может быть отрицательной", ErrInvalidOrder)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: user_id обязателен", ErrInvalidOrder)
	}
	if req.OrderUUID != "" {
		if _, err := uuid.Parse(req.OrderUUID); err != nil {
			return fmt.Errorf("%w: order_uuid не является uuid", ErrInvalidOrder)
		}
	}
	return nil
}
