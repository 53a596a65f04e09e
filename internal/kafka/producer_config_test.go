package kafka

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

func TestWriterConfig_Defaults(t *testing.T) {
	cfg := &ProducerConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "orders",
	}
	w := cfg.writerConfig()

	if w.Topic != "orders" {
		t.Fatalf("topic: got=%q", w.Topic)
	}
	if !w.Async {
		t.Fatalf("writer must be async: Publish is fire-and-forget-with-audit")
	}
	if w.RequiredAcks != kafka.RequireAll {
		t.Fatalf("required acks: got=%v want=RequireAll", w.RequiredAcks)
	}
	if w.AllowAutoTopicCreation {
		t.Fatalf("auto topic creation must be off")
	}
	if w.BatchTimeout != 10*time.Millisecond {
		t.Fatalf("batch timeout default: got=%v", w.BatchTimeout)
	}
	if w.WriteTimeout != 10*time.Second {
		t.Fatalf("write timeout default: got=%v", w.WriteTimeout)
	}
	if _, ok := w.Balancer.(*kafka.Hash); !ok {
		t.Fatalf("balancer: got=%T want=*kafka.Hash", w.Balancer)
	}
}

func TestWriterConfig_ExplicitTimeouts(t *testing.T) {
	cfg := &ProducerConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "orders",
		BatchTimeout: 25 * time.Millisecond,
		WriteTimeout: 3 * time.Second,
	}
	w := cfg.writerConfig()

	if w.BatchTimeout != 25*time.Millisecond {
		t.Fatalf("batch timeout: got=%v", w.BatchTimeout)
	}
	if w.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout: got=%v", w.WriteTimeout)
	}
}
