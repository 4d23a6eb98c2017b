package recovery

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	codeTTL    = 15 * time.Minute
	codeDigits = 6
)

// Store keeps short-lived password recovery codes in redis, keyed by email.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(email string) string {
	return "recovery:" + email
}

// Issue generates a fresh numeric code for the account and stores it with a
// 15-minute TTL, replacing any previous one.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, key(email), code, codeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the submitted code and consumes it on success.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, key(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	_ = s.rdb.Del(ctx, key(email)).Err()
	return true, nil
}

func randomCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
