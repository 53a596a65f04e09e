package ports

import "context"

// StockCache — разделяемый кэш остатков (Redis во всех инстансах).
// Требование к реализации: DecrStock обязан выполняться как одна
// атомарная серверная операция (скрипт), а не как пара read-then-write.
type StockCache interface {
	// DecrStock — условный декремент: если ключ есть и remain-quantity >= 0,
	// уменьшает и возвращает (новый остаток, true, nil); если остатка не
	// хватает — (StockInsufficient, true, nil); если ключа нет — (0, false, nil).
	DecrStock(ctx context.Context, productID, quantity int64) (int64, bool, error)

	// GetStock — текущее закэшированное значение; (qty, true, nil) при попадании.
	GetStock(ctx context.Context, productID int64) (int64, bool, error)

	// SetStock — посев начального остатка (только под распределённой блокировкой).
	SetStock(ctx context.Context, productID, quantity int64) error
}
