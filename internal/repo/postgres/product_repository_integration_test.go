//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/6gunner/eshop/internal/repo/postgres"
	"github.com/6gunner/eshop/internal/testutil"
)

// 1) Запись и чтение остатка
func TestProductRepo_UpsertAndGet_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewProductRepository(pool)

	require.NoError(t, repo.UpsertQuantity(ctx, 42, 100))

	qty, found, err := repo.GetQuantity(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 100, qty)

	// повторный Upsert — перезапись значения
	require.NoError(t, repo.UpsertQuantity(ctx, 42, 7))

	qty, found, err = repo.GetQuantity(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 7, qty)
}

// 2) Отсутствие записи и нулевой остаток различимы
func TestProductRepo_MissingVsZero_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewProductRepository(pool)

	// товара нет в каталоге
	_, found, err := repo.GetQuantity(ctx, 9999)
	require.NoError(t, err)
	require.False(t, found)

	// товар есть, но распродан ещё в источнике
	require.NoError(t, repo.UpsertQuantity(ctx, 1, 0))

	qty, found, err := repo.GetQuantity(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 0, qty)
}
