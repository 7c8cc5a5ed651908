package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sportivox/sportivox-api/internal/models"
)

const couponTTL = 5 * time.Minute

// CouponCache is a cache-aside layer for coupon-by-code lookups. A nil
// cache (Redis not configured) behaves as a permanent miss.
type CouponCache struct {
	rdb *redis.Client
}

func NewCouponCache(rdb *redis.Client) *CouponCache {
	if rdb == nil {
		return nil
	}
	return &CouponCache{rdb: rdb}
}

func key(code string) string {
	return "coupon:" + code
}

func (c *CouponCache) Get(ctx context.Context, code string) (*models.Coupon, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(code)).Bytes()
	if err != nil {
		return nil, false
	}

	var coupon models.Coupon
	if err := json.Unmarshal(raw, &coupon); err != nil {
		return nil, false
	}

	return &coupon, true
}

func (c *CouponCache) Set(ctx context.Context, coupon *models.Coupon) {
	if c == nil || coupon == nil {
		return
	}

	raw, err := json.Marshal(coupon)
	if err != nil {
		return
	}

	// Best effort; a failed write just means the next lookup misses.
	c.rdb.Set(ctx, key(coupon.Code), raw, couponTTL)
}

func (c *CouponCache) Invalidate(ctx context.Context, code string) {
	if c == nil || code == "" {
		return
	}
	c.rdb.Del(ctx, key(code))
}
