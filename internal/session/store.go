// Package session holds the current authenticated Identity. The store is a
// two-state machine — Anonymous and Authenticated — mirrored into durable
// storage: written on login, erased on logout, read back exactly once at
// startup.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/core/ports"
)

// Store is the single owner of the in-memory Identity. The persisted copy is
// a mirror, not a second owner. Only the auth service mutates the store; all
// other components read through Current, Token and IsAuthenticated.
type Store struct {
	mu      sync.RWMutex
	storage ports.SessionStorage
	log     zerolog.Logger
	ident   *domain.Identity
	loading bool
}

func NewStore(storage ports.SessionStorage, log zerolog.Logger) *Store {
	return &Store{storage: storage, log: log, loading: true}
}

// Open performs the one-time recovery read from durable storage. A missing
// value leaves the store Anonymous. A value that fails to deserialize is
// logged, erased, and treated as "no session" — never surfaced as an error.
// Consumers must treat the Authenticated/Anonymous distinction as unreliable
// until Open has returned (see Loading).
func (s *Store) Open(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	raw, err := s.storage.Read(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: recovery read failed, starting anonymous")
		return
	}
	if raw == nil {
		return
	}

	var ident domain.Identity
	if err := json.Unmarshal(raw, &ident); err != nil || ident.Token == "" {
		s.log.Warn().Err(err).Msg("session: corrupt persisted session, erasing")
		if err := s.storage.Erase(ctx); err != nil {
			s.log.Warn().Err(err).Msg("session: failed to erase corrupt value")
		}
		return
	}

	s.mu.Lock()
	s.ident = &ident
	s.mu.Unlock()
}

// Loading reports whether the startup recovery read is still pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated reports whether the store holds an Identity.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ident != nil
}

// Current returns a copy of the current Identity, if any.
func (s *Store) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ident == nil {
		return domain.Identity{}, false
	}
	return *s.ident, true
}

// Token implements ports.TokenSource for the gateway.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ident == nil {
		return "", false
	}
	return s.ident.Token, true
}

// Set transitions the store to Authenticated(ident), persisting the identity
// as a side effect of entering the state. A persistence failure is logged but
// does not prevent the in-memory transition: the in-memory copy is
// authoritative while the process runs. Concurrent calls resolve
// last-writer-wins.
func (s *Store) Set(ctx context.Context, ident domain.Identity) {
	raw, err := json.Marshal(ident)
	if err != nil {
		s.log.Error().Err(err).Msg("session: failed to serialize identity")
	} else if err := s.storage.Write(ctx, raw); err != nil {
		s.log.Warn().Err(err).Msg("session: failed to persist identity")
	}

	s.mu.Lock()
	s.ident = &ident
	s.mu.Unlock()
}

// Clear transitions the store to Anonymous, erasing the durable entry. It
// always succeeds from the caller's point of view: an erase failure is logged
// and the in-memory state is cleared regardless.
func (s *Store) Clear(ctx context.Context) {
	if err := s.storage.Erase(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session: failed to erase persisted session")
	}

	s.mu.Lock()
	s.ident = nil
	s.mu.Unlock()
}
