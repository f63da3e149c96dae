package handler

import (
	"strconv"

	"github.com/google/wire"
)

// ProviderSet Provider 对象集合
var ProviderSet = wire.NewSet(
	NewHealthHandler,
	NewAnalyticsHandler,
)

// intQueryDefault 寬鬆解析：非整數或缺值一律回退預設值
func intQueryDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
