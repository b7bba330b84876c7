package memcache_fx

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

var Module = fx.Provide(provideCatalogCache)

func provideCatalogCache() *mem.CatalogCache {
	cache := mem.NewCatalogCache(5 * time.Minute)
	cache.Subscribe(mem.AnyEntity, func(entity string) {
		logrus.WithField("entity", entity).Debug("catalog cache invalidated")
	})
	return cache
}
