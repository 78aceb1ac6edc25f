package state

import (
	"time"

	"rental-front/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps all per-visitor browser-session state in Redis: the two
// auth session tiers, the search state, the pending booking intent and
// the booking submission guard. Keys are namespaced by visitor ID; the
// visitor can never address another visitor's keys because the ID only
// travels inside a signed cookie.
type Store struct {
	rdb        *redis.Client
	durableTTL time.Duration
	sessionTTL time.Duration
}

func NewStore(rdb *redis.Client, cfg config.SessionConfig) *Store {
	return &Store{
		rdb:        rdb,
		durableTTL: cfg.DurableTTL,
		sessionTTL: cfg.SessionTTL,
	}
}

func durableKey(visitorID uuid.UUID) string {
	return "sess:durable:" + visitorID.String()
}

func ephemeralKey(visitorID uuid.UUID) string {
	return "sess:ephemeral:" + visitorID.String()
}

func searchKey(visitorID uuid.UUID) string {
	return "search:" + visitorID.String()
}

func pendingKey(visitorID uuid.UUID) string {
	return "pending:" + visitorID.String()
}

func guardKey(visitorID uuid.UUID, requestHash string) string {
	return "guard:" + visitorID.String() + ":" + requestHash
}
