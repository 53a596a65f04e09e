package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/6gunner/eshop/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.OrderPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его заглушками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — постановка принятых заказов в очередь orders.
// Publish возвращается после передачи сообщения writer-у; подтверждение
// брокера приходит асинхронно в completion-колбэк. Потеря сообщения
// наблюдаема (лог + метрика + внедрённый колбэк), даже если Publish
// уже вернул успех.
type Producer struct {
	writer    writer
	log       ports.Logger
	topic     string
	onConfirm DeliveryCallback
	onReturn  DeliveryCallback
	closeOnce sync.Once
}

// NewProducer — конструктор. Completion writer-а заводится на handleDelivery.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	p := &Producer{
		log:       log,
		topic:     cfg.Topic,
		onConfirm: cfg.OnConfirm,
		onReturn:  cfg.OnReturn,
	}
	w := cfg.writerConfig()
	w.Completion = p.handleDelivery
	p.writer = w
	return p
}

// Publish — сериализует заказ и ставит его в отправку.
// Ошибка означает, что сообщение не принято writer-ом (очередь закрыта,
// контекст отменён); ошибки доставки сюда не попадают никогда.
func (p *Producer) Publish(ctx context.Context, order *domain.OrderRequest) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	msg := kafka.Message{
		// Ключ — product_id: заказы одного товара идут в одну партицию.
		Key:   []byte(strconv.FormatInt(order.ProductID, 10)),
		Value: raw,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("enqueue order: %w", err)
	}

	metrics.KafkaOrdersPublished.WithLabelValues(p.topic).Inc()
	return nil
}

// handleDelivery — completion-колбэк writer-а: подтверждения и потери.
// Немаршрутизируемые сообщения (нет топика/партиции) считаем «return»,
// остальные ошибки — негативным подтверждением.
func (p *Producer) handleDelivery(msgs []kafka.Message, err error) {
	ctx := context.Background()
	for _, msg := range msgs {
		switch {
		case err == nil:
			metrics.KafkaOrdersConfirmed.WithLabelValues(p.topic).Inc()
			p.log.Infof(ctx, "order confirmed topic=%s key=%s", p.topic, msg.Key)
			if p.onConfirm != nil {
				p.onConfirm(msg, nil)
			}
		case isUnroutable(err):
			metrics.KafkaOrdersLost.WithLabelValues(p.topic).Inc()
			p.log.Errorf(ctx, "order unroutable topic=%s key=%s err=%v", p.topic, msg.Key, err)
			if p.onReturn != nil {
				p.onReturn(msg, err)
			}
		default:
			metrics.KafkaOrdersLost.WithLabelValues(p.topic).Inc()
			p.log.Errorf(ctx, "order nacked topic=%s key=%s err=%v", p.topic, msg.Key, err)
			if p.onConfirm != nil {
				p.onConfirm(msg, err)
			}
		}
	}
}

// Close — останавливает writer (дожидается отправки буфера).
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// isUnroutable — сообщение не удалось направить ни в одну партицию.
func isUnroutable(err error) bool {
	return errors.Is(err, kafka.UnknownTopicOrPartition) ||
		errors.Is(err, kafka.InvalidTopic)
}
