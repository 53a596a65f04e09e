package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/pkg/httpx"
	"github.com/6gunner/eshop/pkg/validate"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service        ports.SeckillService
	log            ports.Logger
	handlerTimeout time.Duration
}

func NewHandler(service ports.SeckillService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// createOrderRequest — тело POST /seckill/order.
type createOrderRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// createOrder — приём заявки на покупку.
// Ожидаемые отказы (sold out, перегрузка) — не ошибки сервера:
// клиент получает осмысленный статус и пользовательское сообщение.
func (h *Handler) createOrder(c *gin.Context) {
	var body createOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	req := &domain.OrderRequest{
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
		Price:     body.Price,
		UserID:    httpx.UserID(c),
	}

	result, err := h.service.CreateOrder(ctx, req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"order_uuid": result.OrderUUID, "status": result.Status.String()})
	case errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order request"})
	case errors.Is(err, domain.ErrSoldOut):
		c.JSON(http.StatusConflict, gin.H{"error": "product sold out"})
	case errors.Is(err, domain.ErrServiceBusy):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is busy, try again later"})
	default:
		h.log.Errorf(ctx, "CreateOrder failed product_id=%d err=%v", body.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// orderStatus — опрос результата обработки заказа.
// Исход ещё не записан воркером — это не ошибка: отдаём pending, клиент
// продолжает опрашивать.
func (h *Handler) orderStatus(c *gin.Context) {
	orderUUID := c.Param("uuid")
	if orderUUID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty order uuid"})
		return
	}
	userID := httpx.UserID(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId header is required"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	status, found, err := h.service.OrderStatus(ctx, userID, orderUUID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is busy, try again later"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"order_uuid": orderUUID, "status": domain.StatusPending.String()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_uuid": orderUUID, "status": status.String()})
}

// requestContext — контекст обработчика с таймаутом (если настроен).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.handlerTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.handlerTimeout)
	}
	return c.Request.Context(), func() {}
}
