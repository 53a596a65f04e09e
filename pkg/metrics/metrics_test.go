package metrics_test

import (
	"testing"

	"github.com/6gunner/eshop/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforePublished := testutil.ToFloat64(metrics.KafkaOrdersPublished.WithLabelValues("orders"))
	beforeConfirmed := testutil.ToFloat64(metrics.KafkaOrdersConfirmed.WithLabelValues("orders"))
	beforeLost := testutil.ToFloat64(metrics.KafkaOrdersLost.WithLabelValues("orders"))

	metrics.KafkaOrdersPublished.WithLabelValues("orders").Inc()
	metrics.KafkaOrdersConfirmed.WithLabelValues("orders").Inc()
	metrics.KafkaOrdersLost.WithLabelValues("orders").Inc()

	if got := testutil.ToFloat64(metrics.KafkaOrdersPublished.WithLabelValues("orders")); got != beforePublished+1 {
		t.Fatalf("KafkaOrdersPublished: got=%v want=%v", got, beforePublished+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaOrdersConfirmed.WithLabelValues("orders")); got != beforeConfirmed+1 {
		t.Fatalf("KafkaOrdersConfirmed: got=%v want=%v", got, beforeConfirmed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaOrdersLost.WithLabelValues("orders")); got != beforeLost+1 {
		t.Fatalf("KafkaOrdersLost: got=%v want=%v", got, beforeLost+1)
	}
}

func TestLimiterCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.LimiterCacheOps.WithLabelValues("hit"))
	createdBefore := testutil.ToFloat64(metrics.LimiterCacheOps.WithLabelValues("created"))

	metrics.LimiterCacheOps.WithLabelValues("hit").Inc()
	metrics.LimiterCacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.LimiterCacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("LimiterCacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.LimiterCacheOps.WithLabelValues("created")); got != createdBefore {
		t.Fatalf("LimiterCacheOps(created): got=%v want=%v", got, createdBefore)
	}
}

func TestLimiterCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.LimiterCacheSize)

	metrics.LimiterCacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.LimiterCacheSize); got != cur+5 {
		t.Fatalf("LimiterCacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.LimiterCacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.LimiterCacheSize); got != cur {
		t.Fatalf("LimiterCacheSize restore: got=%v want=%v", got, cur)
	}
}

func TestStockDecrements_ResultLabels(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.StockDecrements.WithLabelValues("ok"))
	soldBefore := testutil.ToFloat64(metrics.StockDecrements.WithLabelValues("sold_out"))

	metrics.StockDecrements.WithLabelValues("ok").Inc()
	metrics.StockDecrements.WithLabelValues("sold_out").Inc()

	if got := testutil.ToFloat64(metrics.StockDecrements.WithLabelValues("ok")); got != okBefore+1 {
		t.Fatalf("StockDecrements(ok): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.StockDecrements.WithLabelValues("sold_out")); got != soldBefore+1 {
		t.Fatalf("StockDecrements(sold_out): got=%v want=%v", got, soldBefore+1)
	}
}
