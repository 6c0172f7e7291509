package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pattern_edu_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

var (
	ErrSessionMissing    = errors.New("session not found")
	ErrResetTokenMissing = errors.New("reset token not found")
)

// SessionRepository stores sessions in redis. One JSON blob per session plus a
// per-account index set so force-logout can invalidate every session at once.
type SessionRepository struct {
	RDB *redis.Client
	// TTL bounds how long an abandoned session record lingers; the idle
	// timeout itself is enforced from LastActivity, not the key expiry.
	TTL time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{RDB: rdb, TTL: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

func accountSessionsKey(accountID uint) string {
	return fmt.Sprintf("account_sessions:%d", accountID)
}

func (r *SessionRepository) Create(ctx context.Context, sess *model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	pipe := r.RDB.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), data, r.TTL)
	pipe.SAdd(ctx, accountSessionsKey(sess.AccountID), sess.ID)
	pipe.Expire(ctx, accountSessionsKey(sess.AccountID), r.TTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.RDB.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionMissing
	}
	if err != nil {
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Touch refreshes the last-activity timestamp and slides the key expiry.
func (r *SessionRepository) Touch(ctx context.Context, id string, at time.Time) error {
	sess, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.LastActivity = at

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, sessionKey(id), data, r.TTL).Err()
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	sess, err := r.Get(ctx, id)
	if err == ErrSessionMissing {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.RDB.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, accountSessionsKey(sess.AccountID), id)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByAccount removes every session the account holds (force-logout).
func (r *SessionRepository) DeleteByAccount(ctx context.Context, accountID uint) error {
	ids, err := r.RDB.SMembers(ctx, accountSessionsKey(accountID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := r.RDB.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, sessionKey(id))
	}
	pipe.Del(ctx, accountSessionsKey(accountID))
	_, err = pipe.Exec(ctx)
	return err
}

// ResetTokenRepository stores single-use password reset tokens with a TTL.
type ResetTokenRepository struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewResetTokenRepository(rdb *redis.Client, ttl time.Duration) *ResetTokenRepository {
	return &ResetTokenRepository{RDB: rdb, TTL: ttl}
}

func resetTokenKey(token string) string {
	return "password_reset:" + token
}

func (r *ResetTokenRepository) Create(ctx context.Context, token string, accountID uint) error {
	return r.RDB.Set(ctx, resetTokenKey(token), accountID, r.TTL).Err()
}

// Consume returns the account the token belongs to and deletes it; a token is
// good for exactly one reset.
func (r *ResetTokenRepository) Consume(ctx context.Context, token string) (uint, error) {
	accountID, err := r.RDB.GetDel(ctx, resetTokenKey(token)).Uint64()
	if err == redis.Nil {
		return 0, ErrResetTokenMissing
	}
	if err != nil {
		return 0, err
	}
	return uint(accountID), nil
}
