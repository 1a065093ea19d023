package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var StateCache = cache.New(cache.NoExpiration, 0)
var CommodityCache = cache.New(cache.NoExpiration, 0)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
