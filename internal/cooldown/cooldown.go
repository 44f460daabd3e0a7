// Package cooldown gates repeated behavior per (user, channel) key.
package cooldown

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Gate tracks the last firing of a behavior per (user, channel) key.
// A key that fired less than the configured duration ago is suppressed.
type Gate struct {
	c   *cache.Cache
	ttl time.Duration
}

// New creates a Gate with the given cooldown duration. Expired keys are
// swept by the cache janitor, so no separate cleaner goroutine is needed.
func New(ttl time.Duration) *Gate {
	cleanup := ttl
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Gate{
		c:   cache.New(ttl, cleanup),
		ttl: ttl,
	}
}

// Allow reports whether the behavior may fire for the key right now.
// When it returns true the firing timestamp is already recorded, so the
// check and the refresh are a single atomic step per key.
func (g *Gate) Allow(userID, channelID string) bool {
	if g.ttl <= 0 {
		return true
	}
	err := g.c.Add(key(userID, channelID), time.Now(), g.ttl)
	return err == nil
}

// Release clears the key recorded by Allow. Callers whose firing is
// vetoed after the gate (e.g. by a chance roll) use it so the key stays
// eligible for the next qualifying event.
func (g *Gate) Release(userID, channelID string) {
	g.c.Delete(key(userID, channelID))
}

// Remaining returns how long until the key may fire again.
// Zero means the key is clear.
func (g *Gate) Remaining(userID, channelID string) time.Duration {
	_, expiry, ok := g.c.GetWithExpiration(key(userID, channelID))
	if !ok {
		return 0
	}
	left := time.Until(expiry)
	if left < 0 {
		return 0
	}
	return left
}

func key(userID, channelID string) string {
	return userID + ":" + channelID
}
