package usecase

import (
	"context"

	"github.com/6gunner/eshop/internal/domain"
	"github.com/6gunner/eshop/internal/ports"
	"github.com/google/uuid"
)

// stockDecrementer — контракт на контроллер остатков
// (минимальный, чтобы подменять его в тестах).
type stockDecrementer interface {
	Decrement(ctx context.Context, productID, quantity int64) (int64, error)
}

// SeckillService — прикладная логика покупки: списание остатка,
// постановка принятого заказа в очередь и чтение статуса обработки.
// Пропускной контроль выполняется выше (middleware транспортного слоя).
type SeckillService struct {
	stock     stockDecrementer
	publisher ports.OrderPublisher
	outcomes  ports.OutcomeReader
	validator ports.OrderRequestValidator
	log       ports.Logger
}

// NewSeckillService — DI-конструктор.
func NewSeckillService(
	stock stockDecrementer,
	publisher ports.OrderPublisher,
	outcomes ports.OutcomeReader,
	validator ports.OrderRequestValidator,
	log ports.Logger,
) *SeckillService {
	return &SeckillService{
		stock:     stock,
		publisher: publisher,
		outcomes:  outcomes,
		validator: validator,
		log:       log,
	}
}

// CreateOrder — приём заявки на покупку.
// Шаги:
//  1. валидация заявки (вернёт validate.ErrInvalidOrder при проблемах);
//  2. атомарное списание остатка (сентинел → ErrSoldOut);
//  3. публикация заказа в очередь; «заказ принят API» ≠ «заказ в очереди»:
//     подтверждение брокера наблюдается асинхронно через колбэки паблишера.
//
// Возвращаемый результат всегда со статусом pending — финальный исход
// записывает воркер очереди, клиент опрашивает OrderStatus.
func (s *SeckillService) CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.log.Warnf(ctx, "order validation failed product_id=%d err=%v", req.ProductID, err)
		return nil, err
	}
	if req.OrderUUID == "" {
		req.OrderUUID = uuid.New().String()
	}

	remain, err := s.stock.Decrement(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if remain == domain.StockInsufficient {
		return nil, domain.ErrSoldOut
	}

	if err := s.publisher.Publish(ctx, req); err != nil {
		// Остаток уже списан, а заказ в отправку не встал — фиксируем в логе
		// для сверки; клиенту отказываем.
		s.log.Errorf(ctx, "order publish failed order_uuid=%s product_id=%d err=%v", req.OrderUUID, req.ProductID, err)
		return nil, domain.ErrServiceBusy
	}

	s.log.Infof(ctx, "order accepted order_uuid=%s product_id=%d qty=%d remain=%d",
		req.OrderUUID, req.ProductID, req.Quantity, remain)
	return &domain.OrderResult{OrderUUID: req.OrderUUID, Status: domain.StatusPending}, nil
}

// OrderStatus — статус обработки заказа; (status, true, nil), если воркер
// уже записал исход, (0, false, nil) — ещё нет, клиент опрашивает дальше.
func (s *SeckillService) OrderStatus(ctx context.Context, userID, orderUUID string) (domain.OrderStatus, bool, error) {
	status, found, err := s.outcomes.OrderStatus(ctx, userID, orderUUID)
	if err != nil {
		s.log.Errorf(ctx, "order status read failed user_id=%s order_uuid=%s err=%v", userID, orderUUID, err)
		return 0, false, domain.ErrServiceBusy
	}
	return status, found, nil
}
