package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"frontend/internal/booking"
	"frontend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Store keeps wizard sessions alive between requests. One booking attempt,
// one session; sessions expire after the configured TTL.
type Store interface {
	Get(ctx context.Context, id string) (*booking.Wizard, error)
	Save(ctx context.Context, w *booking.Wizard) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is the single-instance fallback when Redis is not configured.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*booking.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, domain.NotFoundError{Resource: "sesi booking"}
	}

	var w booking.Wizard
	if err := json.Unmarshal(entry.data, &w); err != nil {
		return nil, domain.InternalError{Msg: "sesi booking rusak", Err: err}
	}
	return &w, nil
}

func (s *MemoryStore) Save(ctx context.Context, w *booking.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return domain.InternalError{Msg: "gagal simpan sesi booking", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// opportunistic sweep so abandoned sessions do not pile up
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[w.ID] = memoryEntry{data: data, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// RedisStore keeps sessions in Redis so the gateway can run more than one
// replica. Sessions are stored as JSON under booking:session:<id>.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func sessionKey(id string) string { return "booking:session:" + id }

func (s *RedisStore) Get(ctx context.Context, id string) (*booking.Wizard, error) {
	data, err := s.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NotFoundError{Resource: "sesi booking"}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal baca sesi booking", Err: err}
	}

	var w booking.Wizard
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, domain.InternalError{Msg: "sesi booking rusak", Err: err}
	}
	return &w, nil
}

func (s *RedisStore) Save(ctx context.Context, w *booking.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return domain.InternalError{Msg: "gagal simpan sesi booking", Err: err}
	}
	if err := s.Client.Set(ctx, sessionKey(w.ID), data, s.TTL).Err(); err != nil {
		return domain.InternalError{Msg: "gagal simpan sesi booking", Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return domain.InternalError{Msg: "gagal hapus sesi booking", Err: err}
	}
	return nil
}
