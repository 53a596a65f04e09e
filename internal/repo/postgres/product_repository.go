package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/6gunner/eshop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу InventorySource.
var _ ports.InventorySource = (*ProductRepository)(nil)

// ProductRepository — авторитетный источник остатков (только чтение).
// Ядро обращается сюда один раз на товар — для посева кэша при cold start.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetQuantity — остаток по товару; (0, false, nil), если записи нет.
// Отсутствие строки и нулевой остаток различимы: (0, true, nil) — товар
// есть, но распродан ещё в источнике.
func (r *ProductRepository) GetQuantity(ctx context.Context, productID int64) (int64, bool, error) {
	var qty int64
	err := r.pool.QueryRow(ctx, `
		SELECT quantity FROM product_quantity WHERE product_id = $1
	`, productID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select product quantity: %w", err)
	}
	return qty, true, nil
}

// UpsertQuantity — установка остатка товара. Нужна CLI-утилите загрузки
// каталога и интеграционным тестам; ядро пишущий путь не использует.
func (r *ProductRepository) UpsertQuantity(ctx context.Context, productID, quantity int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO product_quantity (product_id, quantity) VALUES ($1, $2)
		ON CONFLICT (product_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`, productID, quantity)
	if err != nil {
		return fmt.Errorf("upsert product quantity: %w", err)
	}
	return nil
}
