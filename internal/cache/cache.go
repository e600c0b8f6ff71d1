// Package cache хранит готовые результаты расчета, ключом служит значение параметров.
package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

// Store - хранилище результатов расчета
type Store interface {
	Get(ctx context.Context, key string) (*financing.Result, bool)
	Set(ctx context.Context, key string, result *financing.Result) error
	Backend() string
}

// Key возвращает ключ кэша для набора параметров. Равные по значению
// параметры дают одинаковый ключ.
func Key(p financing.Parameters) string {
	// Parameters содержит только числа и флаги, Marshal не может завершиться ошибкой
	raw, _ := json.Marshal(p)
	return "financing:" + strconv.FormatUint(xxhash.Sum64(raw), 16)
}
