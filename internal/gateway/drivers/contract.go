//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_test
package drivers

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type client interface {
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
}
