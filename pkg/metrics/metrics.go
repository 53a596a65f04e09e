package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaOrdersPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_orders_published_total",
			Help: "Number of orders handed to the Kafka writer",
		},
		[]string{"topic"},
	)
	KafkaOrdersConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_orders_confirmed_total",
			Help: "Number of orders acknowledged by the broker",
		},
		[]string{"topic"},
	)
	KafkaOrdersLost = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_orders_lost_total",
			Help: "Number of orders nacked or unroutable (observed via completion callback)",
		},
		[]string{"topic"},
	)
)

var (
	// FlowRejected — отказы пропускного контроля по уровням (endpoint|user).
	FlowRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flow_rejected_total",
			Help: "Requests rejected by the flow limiter",
		},
		[]string{"tier"},
	)
	// LimiterCacheOps — операции кэша пользовательских лимитеров.
	LimiterCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "limiter_cache_operations_total",
			Help: "User limiter cache operations",
		},
		[]string{"op"}, // hit|created|evicted|expired
	)
	LimiterCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "limiter_cache_size",
			Help: "Number of live user limiters",
		},
	)
)

var (
	// StockDecrements — исходы декремента остатков.
	StockDecrements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_decrements_total",
			Help: "Stock decrement outcomes",
		},
		[]string{"result"}, // ok|sold_out|unknown_product|error
	)
	// StockSeeds — посевы кэша остатков из авторитетного источника.
	StockSeeds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stock_seeds_total",
			Help: "Cold-start seeds of the shared stock cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaOrdersPublished, KafkaOrdersConfirmed, KafkaOrdersLost,
			FlowRejected, LimiterCacheOps, LimiterCacheSize,
			StockDecrements, StockSeeds,
		)
	})
}
