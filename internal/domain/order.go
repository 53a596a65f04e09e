package domain

import "errors"

// StockInsufficient — сентинел-значение декремента остатков:
// товара нет в наличии (или товар неизвестен).
const StockInsufficient int64 = -1

// OrderStatus — статус обработки заказа воркером очереди.
type OrderStatus int

const (
	StatusPending   OrderStatus = iota // заказ принят, ждёт обработки
	StatusSucceeded                    // заказ успешно оформлен
	StatusFailed                       // оформить заказ не удалось
)

// String — человекочитаемое представление статуса для ответов API и логов.
func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Доменные ошибки. Транспортный слой транслирует их в пользовательские
// сообщения; «сырые» инфраструктурные ошибки наружу не выходят.
var (
	// ErrSoldOut — товар распродан (или неизвестен источнику остатков).
	ErrSoldOut = errors.New("product sold out")
	// ErrServiceBusy — временная недоступность кэша/брокера; покупка отклоняется.
	ErrServiceBusy = errors.New("service is busy, try again later")
)

// OrderRequest — заявка на покупку. Создаётся вызывающей стороной,
// неизменяема; после успешной постановки в очередь владение переходит брокеру.
type OrderRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	OrderUUID string  `json:"order_uuid"`
	UserID    string  `json:"user_id"`
}

// OrderResult — результат приёма заявки (статус на момент ответа API).
type OrderResult struct {
	OrderUUID string      `json:"order_uuid"`
	Status    OrderStatus `json:"-"`
}
