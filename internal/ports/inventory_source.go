package ports

import "context"

// InventorySource — источник авторитетных остатков (только чтение).
// Используется единственный раз на продукт — для посева кэша при cold start.
type InventorySource interface {
	// GetQuantity — остаток по товару; (qty, true, nil) если запись есть,
	// (0, false, nil) если товара нет в источнике.
	GetQuantity(ctx context.Context, productID int64) (int64, bool, error)
}
