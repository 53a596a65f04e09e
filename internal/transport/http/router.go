package rest

import (
	"github.com/6gunner/eshop/internal/flow"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — сборка маршрутов.
// Порядок middleware: recovery → request-id → user-id → лог → (otel) →
// пропускной контроль. Лимиты проверяются до входа в бизнес-логику.
func NewRouter(h *Handler, guard *flow.Guard, log ports.Logger, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.UserIDMiddleware())
	r.Use(httpx.RequestLogger(log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(FlowLimitMiddleware(guard))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/seckill/order", h.createOrder)
	r.GET("/seckill/order/:uuid/status", h.orderStatus)

	return r
}

// FlowLimitMiddleware — двухуровневый пропускной контроль перед бизнес-логикой.
// Уровень эндпоинта проверяется раньше пользовательского; первый отказ
// определяет сообщение ответа.
func FlowLimitMiddleware(guard *flow.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch guard.Allow(c.Request.Context(), c.FullPath(), httpx.UserID(c)) {
		case flow.EndpointLimited:
			c.AbortWithStatusJSON(429, gin.H{"error": "too many buyers, try again later"})
		case flow.UserLimited:
			c.AbortWithStatusJSON(429, gin.H{"error": "too many requests, try again later"})
		default:
			c.Next()
		}
	}
}
