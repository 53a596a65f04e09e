//go:generate mockgen -source=../inventory_source.go -destination=./mock_inventory_source.go -package=mocks
//go:generate mockgen -source=../stock_cache.go      -destination=./mock_stock_cache.go      -package=mocks
//go:generate mockgen -source=../locker.go           -destination=./mock_locker.go           -package=mocks
//go:generate mockgen -source=../order_publisher.go  -destination=./mock_order_publisher.go  -package=mocks
//go:generate mockgen -source=../outcome_reader.go   -destination=./mock_outcome_reader.go   -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../seckill_service.go  -destination=./mock_seckill_service.go  -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks

package mocks
