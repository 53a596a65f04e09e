//go:build !integration

package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/flow"
	"github.com/6gunner/eshop/pkg/httpx"
)

// --- Бенчмарки ---

// Базовый бенч: приём заявки — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_CreateOrder(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcAccept{}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServePOST(b, lean, "/seckill/order", http.StatusOK)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServePOST(b, full, "/seckill/order", http.StatusOK)
	})
}

// Отказной путь: sold out — «цена» негативного ответа
func BenchmarkHTTP_CreateOrder_SoldOut(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcSoldOut{}, log, 2*time.Second)
	r := makeLeanRouter(h)

	benchServePOST(b, r, "/seckill/order", http.StatusConflict)
}

// Опрос статуса: результата ещё нет, отдаём pending
func BenchmarkHTTP_OrderStatus_Pending(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcAccept{}, log, 2*time.Second)

	// userId обязателен для статуса — нужен UserID-middleware
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(httpx.UserIDMiddleware())
	r.GET("/seckill/order/:uuid/status", h.orderStatus)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/seckill/order/o-1/status", nil)
			req.Header.Set("userId", "bench-user")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcAccept struct{}

func (svcAccept) CreateOrder(context.Context, *domain.OrderRequest) (*domain.OrderResult, error) {
	return &domain.OrderResult{OrderUUID: "o-1", Status: domain.StatusPending}, nil
}
func (svcAccept) OrderStatus(context.Context, string, string) (domain.OrderStatus, bool, error) {
	return 0, false, nil
}

type svcSoldOut struct{}

func (svcSoldOut) CreateOrder(context.Context, *domain.OrderRequest) (*domain.OrderResult, error) {
	return nil, domain.ErrSoldOut
}
func (svcSoldOut) OrderStatus(context.Context, string, string) (domain.OrderStatus, bool, error) {
	return 0, false, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.POST("/seckill/order", h.createOrder)
	r.GET("/seckill/order/:uuid/status", h.orderStatus)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	guard := flow.NewGuard(flow.Config{
		Endpoints:     []string{"/seckill/order"},
		EndpointRate:  1e9, // лимиты не должны мешать измерению
		UserRate:      1e9,
		CacheCapacity: 1000,
		CacheTTL:      time.Minute,
	}, nopLogger{})
	// prod пайплайн из NewRouter
	return NewRouter(h, guard, nopLogger{}, "")
}

func benchServePOST(b *testing.B, r *gin.Engine, path string, wantCode int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	const body = `{"product_id": 42, "quantity": 1, "price": 100}`

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("userId", "bench-user")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != wantCode {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
