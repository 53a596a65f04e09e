//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/6gunner/eshop/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной заявки на заказ
func MakeOrderRequest(opts ...func(*domain.OrderRequest)) domain.OrderRequest {
	r := domain.OrderRequest{
		ProductID: 1001,
		Quantity:  1,
		Price:     100,
		OrderUUID: uuid.NewString(),
		UserID:    "user-" + UniqSuffix(),
	}

	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithProduct(id int64) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) { r.ProductID = id }
}

func WithQuantity(q int64) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) { r.Quantity = q }
}

func WithUser(userID string) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) { r.UserID = userID }
}
