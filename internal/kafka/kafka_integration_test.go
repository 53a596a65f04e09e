//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/6gunner/eshop/internal/domain"
	ikafka "github.com/6gunner/eshop/internal/kafka"
	"github.com/6gunner/eshop/internal/testutil"
	"github.com/6gunner/eshop/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// 1) Заказ доходит до брокера и подтверждается completion-колбэком
func TestProducer_PublishAndConfirm_TC(t *testing.T) {
	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	confirmed := make(chan kafka.Message, 1)
	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		OnConfirm: func(msg kafka.Message, err error) {
			require.NoError(t, err)
			confirmed <- msg
		},
		OnReturn: func(msg kafka.Message, err error) {
			t.Errorf("unexpected return: key=%s err=%v", msg.Key, err)
		},
	}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	req := testutil.MakeOrderRequest(testutil.WithProduct(42))
	require.NoError(t, producer.Publish(ctx, &req))

	// подтверждение брокера приходит асинхронно
	select {
	case msg := <-confirmed:
		require.Equal(t, "42", string(msg.Key))
	case <-time.After(20 * time.Second):
		t.Fatal("confirm callback not fired in time")
	}

	// сообщение читается из топика и совпадает с заявкой
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, "42", string(msg.Key))

	var got domain.OrderRequest
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, req, got)
}

// 2) Заказы одного товара идут в одну партицию (ключ — product_id)
func TestProducer_SameProductSamePartition_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		BatchTimeout: 10 * time.Millisecond,
	}, logg)
	t.Cleanup(func() { _ = producer.Close() })

	const orders = 5
	for i := 0; i < orders; i++ {
		req := testutil.MakeOrderRequest(testutil.WithProduct(42))
		require.NoError(t, producer.Publish(ctx, &req))
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	partitions := make(map[int]int)
	for i := 0; i < orders; i++ {
		msg, err := r.ReadMessage(ctx)
		require.NoError(t, err)
		partitions[msg.Partition]++
	}
	require.Len(t, partitions, 1, "все заказы товара должны попасть в одну партицию")
}
