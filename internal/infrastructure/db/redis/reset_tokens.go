package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redemptionTTL matches the reset token lifetime; once the token has
// expired on its own the marker is dead weight.
const redemptionTTL = 20 * time.Minute

// ResetTokenStore records redeemed password-reset tokens so each token is
// honoured at most once. Keys hold a digest of the token, never the token
// itself.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// IsRedeemed reports whether this token has already been used.
func (s *ResetTokenStore) IsRedeemed(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redemption check: %w", err)
	}
	return n > 0, nil
}

// MarkRedeemed records that this token has been used (expires after redemptionTTL).
func (s *ResetTokenStore) MarkRedeemed(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key(token), "1", redemptionTTL).Err()
}

func (s *ResetTokenStore) key(token string) string {
	return fmt.Sprintf("reset:redeemed:%x", sha256.Sum256([]byte(token)))
}
