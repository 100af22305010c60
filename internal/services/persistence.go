package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

// Persistable is a state holder that can be saved and restored as one unit
type Persistable interface {
	Key() string
	Snapshot() ([]byte, error)
	Restore(data []byte) error
	Watch(fn func()) (unsubscribe func())
}

// PersistenceService keeps state holders in sync with the session store:
// it restores each holder when bound and saves it after every mutation
type PersistenceService struct {
	sessionID string
	store     ports.SessionStore

	mu      sync.Mutex
	bound   map[string]Persistable
	lastErr error
	unwatch map[string]func()
}

// NewPersistenceService creates a service persisting under sessionID
func NewPersistenceService(store ports.SessionStore, sessionID string) *PersistenceService {
	return &PersistenceService{
		sessionID: sessionID,
		store:     store,
		bound:     make(map[string]Persistable),
		unwatch:   make(map[string]func()),
	}
}

// SessionID returns the session the service persists under
func (s *PersistenceService) SessionID() string {
	return s.sessionID
}

// Bind restores p from the store and saves it after each later mutation.
// A stored value p rejects is discarded, and p keeps its current value.
func (s *PersistenceService) Bind(ctx context.Context, p Persistable) error {
	key := p.Key()

	s.mu.Lock()
	_, exists := s.bound[key]
	s.mu.Unlock()
	if exists {
		return fmt.Errorf("%s is already bound", key)
	}

	if err := s.restore(ctx, p); err != nil {
		return err
	}

	unwatch := p.Watch(func() {
		// Watch callbacks carry no context; saves are short local writes
		if err := s.Save(context.Background(), p); err != nil {
			logging.Logger.Error("Failed to auto-save state", "key", key, "session", s.sessionID, "error", err)
			s.setLastErr(err)
		}
	})

	s.mu.Lock()
	s.bound[key] = p
	s.unwatch[key] = unwatch
	s.mu.Unlock()

	logging.Logger.Debug("State bound", "key", key, "session", s.sessionID)
	return nil
}

func (s *PersistenceService) restore(ctx context.Context, p Persistable) error {
	key := p.Key()

	data, err := s.store.Get(ctx, s.sessionID, key)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			logging.Logger.Debug("No stored state", "key", key, "session", s.sessionID)
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := p.Restore(data); err != nil {
		logging.Logger.Warn("Discarding incompatible stored state",
			"key", key,
			"session", s.sessionID,
			"error", err)
		if err := s.store.Delete(ctx, s.sessionID, key); err != nil {
			return fmt.Errorf("failed to discard %s: %w", key, err)
		}
		return nil
	}

	logging.Logger.Info("State restored", "key", key, "session", s.sessionID)
	return nil
}

// Save writes p's current snapshot to the store
func (s *PersistenceService) Save(ctx context.Context, p Persistable) error {
	data, err := p.Snapshot()
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.sessionID, p.Key(), data); err != nil {
		return fmt.Errorf("failed to save %s: %w", p.Key(), err)
	}
	logging.Logger.Debug("State saved", "key", p.Key(), "session", s.sessionID, "bytes", len(data))
	return nil
}

// SaveAll saves every bound holder
func (s *PersistenceService) SaveAll(ctx context.Context) error {
	s.mu.Lock()
	holders := make([]Persistable, 0, len(s.bound))
	for _, p := range s.bound {
		holders = append(holders, p)
	}
	s.mu.Unlock()

	var errs []error
	for _, p := range holders {
		if err := s.Save(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset deletes the stored value for key. The holder, if bound, keeps its
// in-memory value until its next mutation.
func (s *PersistenceService) Reset(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, s.sessionID, key); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	logging.Logger.Info("Stored state reset", "key", key, "session", s.sessionID)
	return nil
}

// LastError returns the most recent auto-save failure, if any
func (s *PersistenceService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close stops auto-saving; stored values are left in place
func (s *PersistenceService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, unwatch := range s.unwatch {
		unwatch()
		delete(s.unwatch, key)
		delete(s.bound, key)
	}
}

func (s *PersistenceService) setLastErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
