package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// DeliveryCallback — колбэк подтверждения/потери сообщения.
// Вызывается из фонового потока writer-а после ответа брокера.
type DeliveryCallback func(msg kafka.Message, err error)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration

	// OnConfirm/OnReturn — внедряемая пара наблюдателей доставки.
	// Не возвращаемое значение Publish, а побочный канал: confirm — брокер
	// подтвердил (или отверг) долговечный приём, return — сообщение
	// не удалось смаршрутизировать. Nil — остаются только лог и метрики.
	OnConfirm DeliveryCallback
	OnReturn  DeliveryCallback
}

func (c *ProducerConfig) writerConfig() *kafka.Writer {
	bt := c.BatchTimeout
	if bt <= 0 {
		bt = 10 * time.Millisecond
	}
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}

	return &kafka.Writer{
		Addr:     kafka.TCP(c.Brokers...),
		Topic:    c.Topic,
		Balancer: &kafka.Hash{},
		// Долговечная постановка: ждём подтверждения всех реплик.
		RequiredAcks: kafka.RequireAll,
		// Publish не блокируется до подтверждения — доставка наблюдается
		// через Completion (fire-and-forget-with-audit).
		Async:                  true,
		AllowAutoTopicCreation: false,
		BatchTimeout:           bt,
		WriteTimeout:           wt,
	}
}
