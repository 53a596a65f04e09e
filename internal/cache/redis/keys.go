package redis

import "strconv"

// Пространства ключей разделяемого кэша.
const (
	stockKeyPrefix  = "seckill_num:"    // остаток по товару (string → int)
	resultKeyPrefix = "seckill_result:" // hash: order_uuid → статус заказа
)

func stockKey(productID int64) string {
	return stockKeyPrefix + strconv.FormatInt(productID, 10)
}

func resultKey(userID string) string {
	return resultKeyPrefix + userID
}
