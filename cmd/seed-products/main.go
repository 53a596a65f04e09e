package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/6gunner/eshop/config"
	"github.com/6gunner/eshop/internal/repo/postgres"
	"github.com/joho/godotenv"
)

// CLI-утилита загрузки остатков товаров в авторитетный источник.
// Используется при подготовке распродажи: сервис сам пишущий путь не имеет.
func main() {
	productID := flag.Int64("product", 0, "product id")
	quantity := flag.Int64("quantity", -1, "quantity to set")
	flag.Parse()

	if *productID <= 0 || *quantity < 0 {
		fmt.Fprintln(os.Stderr, "usage: seed-products -product <id> -quantity <n>")
		os.Exit(2)
	}

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	if err := repo.UpsertQuantity(ctx, *productID, *quantity); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("product %d quantity set to %d\n", *productID, *quantity)
}
