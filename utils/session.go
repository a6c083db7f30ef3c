package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// SaveSession records a login session keyed by the token hash. The TTL
// matches the token lifetime so stale sessions expire on their own.
func SaveSession(client *redis.Client, tokenHash, userID string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, sessionKeyPrefix+tokenHash, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSessionUserID resolves a token hash to the user ID it was issued for.
// Returns an empty string when no session exists (revoked or expired).
func GetSessionUserID(client *redis.Client, tokenHash string) (string, error) {
	ctx := context.Background()
	userID, err := client.Get(ctx, sessionKeyPrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch session: %w", err)
	}
	return userID, nil
}

// DropSession removes a login session (logout / token revocation).
func DropSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	if err := client.Del(ctx, sessionKeyPrefix+tokenHash).Err(); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	return nil
}
