package memcachefx

import (
	"go.uber.org/fx"

	"planmyitinerary/pkg/memcache"
)

var Module = fx.Provide(provideVerifyTokens)

func provideVerifyTokens() memcache.VerifyTokenStore {
	return memcache.NewVerifyTokens()
}
