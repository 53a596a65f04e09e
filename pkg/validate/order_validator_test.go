package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/pkg/validate"
	"github.com/google/uuid"
)

func validRequest() *domain.OrderRequest {
	return &domain.OrderRequest{
		ProductID: 42,
		Quantity:  1,
		Price:     100,
		UserID:    "alice",
	}
}

func TestValidate_OK(t *testing.T) {
	v := validate.NewOrderValidator()

	if err := v.Validate(context.Background(), validRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	withUUID := validRequest()
	withUUID.OrderUUID = uuid.NewString()
	if err := v.Validate(context.Background(), withUUID); err != nil {
		t.Fatalf("valid request with uuid rejected: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	v := validate.NewOrderValidator()

	cases := []struct {
		name   string
		mutate func(*domain.OrderRequest)
	}{
		{"zero product id", func(r *domain.OrderRequest) { r.ProductID = 0 }},
		{"negative product id", func(r *domain.OrderRequest) { r.ProductID = -1 }},
		{"zero quantity", func(r *domain.OrderRequest) { r.Quantity = 0 }},
		{"negative quantity", func(r *domain.OrderRequest) { r.Quantity = -5 }},
		{"quantity over limit", func(r *domain.OrderRequest) { r.Quantity = 101 }},
		{"negative price", func(r *domain.OrderRequest) { r.Price = -0.01 }},
		{"empty user id", func(r *domain.OrderRequest) { r.UserID = "" }},
		{"malformed order uuid", func(r *domain.OrderRequest) { r.OrderUUID = "not-a-uuid" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			err := v.Validate(context.Background(), req)
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Fatalf("want ErrInvalidOrder, got %v", err)
			}
		})
	}
}

func TestValidate_NilRequest(t *testing.T) {
	v := validate.NewOrderValidator()

	if err := v.Validate(context.Background(), nil); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder, got %v", err)
	}
}

func TestValidate_QuantityBoundary(t *testing.T) {
	v := validate.NewOrderValidator()

	req := validRequest()
	req.Quantity = 100
	if err := v.Validate(context.Background(), req); err != nil {
		t.Fatalf("quantity=100 must pass, got %v", err)
	}
}
