package tableview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
)

// Store persists view sessions between stateless HTTP requests.
type Store interface {
	SaveState(ctx context.Context, viewID string, state *State) error
	LoadState(ctx context.Context, viewID string) (*State, error)
	SaveSnapshot(ctx context.Context, viewID string, data []byte) error
	LoadSnapshot(ctx context.Context, viewID string) ([]byte, error)
	// BeginRefresh hands out the next refresh sequence number for a view.
	BeginRefresh(ctx context.Context, viewID string) (int64, error)
	// LatestRefresh returns the highest sequence number handed out so far.
	LatestRefresh(ctx context.Context, viewID string) (int64, error)
	Delete(ctx context.Context, viewID string) error
}

// RedisStore is the production Store. Keys share one TTL so a session's
// state, snapshot and refresh counter expire together.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a RedisStore with the given session TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

func stateKey(viewID string) string    { return "view:" + viewID + ":state" }
func snapshotKey(viewID string) string { return "view:" + viewID + ":snapshot" }
func refreshKey(viewID string) string  { return "view:" + viewID + ":refresh" }

// SaveState stores the serialized session state.
func (s *RedisStore) SaveState(ctx context.Context, viewID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode view state")
	}
	if err := s.client.Set(ctx, stateKey(viewID), raw, s.ttl).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store view state")
	}
	return nil
}

// LoadState retrieves the session state, or ErrViewNotFound when expired.
func (s *RedisStore) LoadState(ctx context.Context, viewID string) (*State, error) {
	raw, err := s.client.Get(ctx, stateKey(viewID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrViewNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load view state")
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode view state")
	}
	return &state, nil
}

// SaveSnapshot stores the serialized dataset snapshot.
func (s *RedisStore) SaveSnapshot(ctx context.Context, viewID string, data []byte) error {
	if err := s.client.Set(ctx, snapshotKey(viewID), data, s.ttl).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store view snapshot")
	}
	return nil
}

// LoadSnapshot retrieves the dataset snapshot, or ErrViewNotFound.
func (s *RedisStore) LoadSnapshot(ctx context.Context, viewID string) ([]byte, error) {
	raw, err := s.client.Get(ctx, snapshotKey(viewID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrViewNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load view snapshot")
	}
	return raw, nil
}

// BeginRefresh increments and returns the view's refresh sequence.
func (s *RedisStore) BeginRefresh(ctx context.Context, viewID string) (int64, error) {
	seq, err := s.client.Incr(ctx, refreshKey(viewID)).Result()
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "issue refresh sequence")
	}
	_ = s.client.Expire(ctx, refreshKey(viewID), s.ttl).Err()
	return seq, nil
}

// LatestRefresh reads the current refresh sequence without advancing it.
func (s *RedisStore) LatestRefresh(ctx context.Context, viewID string) (int64, error) {
	seq, err := s.client.Get(ctx, refreshKey(viewID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "read refresh sequence")
	}
	return seq, nil
}

// Delete drops all keys belonging to a view session.
func (s *RedisStore) Delete(ctx context.Context, viewID string) error {
	if err := s.client.Del(ctx, stateKey(viewID), snapshotKey(viewID), refreshKey(viewID)).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "delete view session")
	}
	return nil
}
