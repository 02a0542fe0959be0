// Package loginguard tracks failed login attempts in redis and temporarily
// bans a username+IP pair that keeps failing. When no redis client is
// configured the guard is a no-op.
package loginguard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxStrikes = 5
	strikeTTL  = 10 * time.Minute
	banTTL     = 15 * time.Minute
)

var (
	rdb *redis.Client
	ctx = context.Background()
)

func SetRedisClient(c *redis.Client) {
	rdb = c
}

func strikeKey(username, ip string) string {
	return fmt.Sprintf("loginguard:strikes:%s:%s", username, ip)
}

func banKey(username, ip string) string {
	return fmt.Sprintf("loginguard:ban:%s:%s", username, ip)
}

// Banned reports whether the pair is currently locked out.
func Banned(username, ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(username, ip)).Result()
	if err != nil {
		log.Printf("loginguard: redis exists failed: %v", err)
		return false
	}
	return n > 0
}

// RecordFailure bumps the strike counter and converts it into a ban once the
// limit is reached. Strikes expire on their own if the caller backs off.
func RecordFailure(username, ip string) {
	if rdb == nil {
		return
	}
	key := strikeKey(username, ip)
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("loginguard: redis incr failed: %v", err)
		return
	}
	rdb.Expire(ctx, key, strikeTTL)

	if strikes >= maxStrikes {
		if err := rdb.Set(ctx, banKey(username, ip), strikes, banTTL).Err(); err != nil {
			log.Printf("loginguard: redis set failed: %v", err)
			return
		}
		rdb.Del(ctx, key)
		log.Printf("loginguard: banned %s from %s after %d failed logins", username, ip, strikes)
	}
}

// ClearStrikes resets the counter after a successful login.
func ClearStrikes(username, ip string) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, strikeKey(username, ip))
}
