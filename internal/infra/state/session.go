package state

import (
	"context"
	"encoding/json"
	"errors"

	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Login writes the session into the tier chosen by remember and deletes
// any copy in the other tier. A session lives in exactly one tier at a
// time; that invariant is enforced here, never by callers. A payload
// without a token is silently ignored.
func (s *Store) Login(ctx context.Context, visitorID uuid.UUID, sess session.AuthSession, remember bool) error {
	if sess.Token == "" {
		return nil
	}

	encoded, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}

	target, other := durableKey(visitorID), ephemeralKey(visitorID)
	ttl := s.durableTTL
	if !remember {
		target, other = other, target
		ttl = s.sessionTTL
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, target, encoded, ttl)
		pipe.Del(ctx, other)
		return nil
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to persist session"), errs.ErrStateFailed)
	}
	return nil
}

// Current probes the durable tier first, then the ephemeral one, and
// returns a snapshot of whichever holds a token. Durable wins if both
// somehow do. Returns (nil, nil) when no session exists.
func (s *Store) Current(ctx context.Context, visitorID uuid.UUID) (*session.AuthSession, error) {
	if sess, err := s.readTier(ctx, durableKey(visitorID), session.TierDurable); err != nil || sess != nil {
		return sess, err
	}
	return s.readTier(ctx, ephemeralKey(visitorID), session.TierEphemeral)
}

// Logout removes the session from both tiers. Search state and pending
// intent are cleared by the auth command, not here.
func (s *Store) Logout(ctx context.Context, visitorID uuid.UUID) error {
	err := s.rdb.Del(ctx, durableKey(visitorID), ephemeralKey(visitorID)).Err()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to clear session"), errs.ErrStateFailed)
	}
	return nil
}

// UpdateUser merges the name fields into the tier that currently owns the
// session and re-persists it there, keeping the tier's remaining TTL.
// No-op without a current session; token and role never change here.
func (s *Store) UpdateUser(ctx context.Context, visitorID uuid.UUID, firstName, lastName string) (*session.AuthSession, error) {
	sess, err := s.Current(ctx, visitorID)
	if err != nil || sess == nil {
		return nil, err
	}

	sess.FirstName = firstName
	sess.LastName = lastName

	encoded, err := json.Marshal(sess)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode session")
	}

	key := ephemeralKey(visitorID)
	if sess.Tier == session.TierDurable {
		key = durableKey(visitorID)
	}
	// XX: if the session expired since the read above, writing it back
	// unconditionally would resurrect it without any TTL. An expired
	// session stays expired.
	err = s.rdb.SetArgs(ctx, key, encoded, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to persist session"), errs.ErrStateFailed)
	}
	return sess, nil
}

func (s *Store) readTier(ctx context.Context, key string, tier session.Tier) (*session.AuthSession, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read session"), errs.ErrStateFailed)
	}

	var sess session.AuthSession
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		// A corrupt or tokenless record is treated as no session.
		return nil, nil
	}
	sess.Tier = tier
	return &sess, nil
}
