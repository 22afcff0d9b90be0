package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Flourish-Campus/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// GetCachedAnalytics อ่าน analytics ที่ cache ไว้ของ tenant
// Returns false if Redis is not available (development mode)
func GetCachedAnalytics(slug string) (string, bool) {
	client := ensureClient()
	if client == nil {
		return "", false
	}

	key := fmt.Sprintf("analytics:%s", slug)
	payload, err := client.Get(Ctx, key).Result()
	if err != nil {
		return "", false // ไม่มีใน cache หรือ Redis ล่ม — คำนวณใหม่เอง
	}
	return payload, true
}

// CacheAnalytics เก็บ analytics JSON ของ tenant พร้อม TTL
// cache พังไม่ถือว่า error — แค่เสีย cache ไป
func CacheAnalytics(slug, payload string, ttl time.Duration) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Set(Ctx, fmt.Sprintf("analytics:%s", slug), payload, ttl)
}

// InvalidateAnalytics ลบ cache ของ tenant (เรียกตอนมี survey จบใหม่)
func InvalidateAnalytics(slug string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("analytics:%s", slug))
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Set(Ctx, key, refreshToken, expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้ใน Redis หรือไม่
// Returns true if Redis is not available (development mode - skip validation)
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ (อนุญาตให้ผ่าน)
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Token ไม่มีใน Redis
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token จาก Redis (ใช้ตอน logout)
// Returns nil if Redis is not available (development mode)
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Del(Ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}
