// Package session holds the per-session scratch records of the loan flow.
// Exactly two named records exist per session: the trust-score result and the
// loan acceptance. Nothing here outlives the session TTL and nothing is
// durable; abandoning the flow simply lets the keys expire.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/flow"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

type Store struct {
	ops  RedisOperations
	keys *RedisKeyBuilder
	ttl  time.Duration
}

func NewStore(ops RedisOperations, ttl time.Duration) *Store {
	return &Store{
		ops:  ops,
		keys: NewRedisKeyBuilder(),
		ttl:  ttl,
	}
}

// PutTrustScore stores the scoring result for the session, replacing any
// previous one.
func (s *Store) PutTrustScore(ctx context.Context, sessionID string, response *models.TrustScoreResponse) error {
	return s.put(ctx, s.keys.TrustScoreKey(sessionID), response)
}

// GetTrustScore returns the stored scoring result. A missing key or a payload
// that no longer parses both read as absent; only a transport failure is an
// error.
func (s *Store) GetTrustScore(ctx context.Context, sessionID string) (*models.TrustScoreResponse, bool, error) {
	var response models.TrustScoreResponse
	found, err := s.get(ctx, s.keys.TrustScoreKey(sessionID), &response)
	if err != nil || !found {
		return nil, false, err
	}
	return &response, true, nil
}

func (s *Store) RemoveTrustScore(ctx context.Context, sessionID string) error {
	return s.ops.Delete(ctx, s.keys.TrustScoreKey(sessionID))
}

// PutAcceptance overwrites any previous acceptance record, last write wins.
func (s *Store) PutAcceptance(ctx context.Context, sessionID string, acceptance *models.LoanAcceptance) error {
	return s.put(ctx, s.keys.AcceptanceKey(sessionID), acceptance)
}

func (s *Store) GetAcceptance(ctx context.Context, sessionID string) (*models.LoanAcceptance, bool, error) {
	var acceptance models.LoanAcceptance
	found, err := s.get(ctx, s.keys.AcceptanceKey(sessionID), &acceptance)
	if err != nil || !found {
		return nil, false, err
	}
	return &acceptance, true, nil
}

func (s *Store) RemoveAcceptance(ctx context.Context, sessionID string) error {
	return s.ops.Delete(ctx, s.keys.AcceptanceKey(sessionID))
}

// BeginAcceptance marks an acceptance in flight for the session. Returns false
// when one is already pending. The marker carries its own short TTL so a
// crashed simulation never wedges the session.
func (s *Store) BeginAcceptance(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return s.ops.SetNX(ctx, s.keys.AcceptingKey(sessionID), "1", ttl)
}

func (s *Store) EndAcceptance(ctx context.Context, sessionID string) error {
	return s.ops.Delete(ctx, s.keys.AcceptingKey(sessionID))
}

func (s *Store) AcceptanceInFlight(ctx context.Context, sessionID string) (bool, error) {
	return s.ops.Exists(ctx, s.keys.AcceptingKey(sessionID))
}

// Reset clears both records and the in-flight marker, returning the session to
// the entry screen.
func (s *Store) Reset(ctx context.Context, sessionID string) error {
	if err := s.RemoveTrustScore(ctx, sessionID); err != nil {
		return err
	}
	if err := s.RemoveAcceptance(ctx, sessionID); err != nil {
		return err
	}
	return s.EndAcceptance(ctx, sessionID)
}

// Snapshot builds the flow-controller view of the session from the stored
// records.
func (s *Store) Snapshot(ctx context.Context, sessionID string) (flow.Snapshot, error) {
	var snap flow.Snapshot

	response, found, err := s.GetTrustScore(ctx, sessionID)
	if err != nil {
		return snap, consts.ErrorSessionStoreUnavailable
	}
	snap.HasTrustScore = found
	if found {
		snap.Approved = response.Approved
	}

	_, found, err = s.GetAcceptance(ctx, sessionID)
	if err != nil {
		return snap, consts.ErrorSessionStoreUnavailable
	}
	snap.HasAcceptance = found

	inFlight, err := s.AcceptanceInFlight(ctx, sessionID)
	if err != nil {
		return snap, consts.ErrorSessionStoreUnavailable
	}
	snap.AcceptanceInFlight = inFlight

	return snap, nil
}

func (s *Store) put(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.ops.Set(ctx, key, payload, s.ttl)
}

func (s *Store) get(ctx context.Context, key string, out interface{}) (bool, error) {
	payload, err := s.ops.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		// Unreadable records count as absent so the flow controller sends the
		// session back to the application screen instead of failing.
		logger.Warn(ctx, "Discarding unparseable session record %s: %v", key, err)
		return false, nil
	}
	return true, nil
}
