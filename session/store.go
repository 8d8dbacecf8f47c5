// Package session is the single source of truth for the current user's
// identity and credentials. Every mutation is mirrored synchronously to
// durable storage so the session survives process restarts.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/learnly/learnly-go/models"
	"github.com/learnly/learnly-go/utils/logger"
)

type Store struct {
	mu      sync.RWMutex
	sess    models.Session
	storage Storage
}

// NewStore creates a store rehydrated from the given storage. A nil
// storage gives a purely in-memory store. A corrupt or unreadable record
// starts the store logged out rather than failing.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if storage == nil {
		return s
	}

	sess, ok, err := storage.Load()
	if err != nil {
		logger.LogWarn("discarding unreadable session record", zap.Error(err))
		return s
	}
	if ok {
		s.sess = sess
	}
	return s
}

// SetAuth atomically replaces the whole session from a token response.
// All three fields are overwritten unconditionally.
func (s *Store) SetAuth(tr models.TokenResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = models.Session{
		User:         tr.User,
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
	}
	s.persistLocked()
}

// Logout clears the session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = models.Session{}
	if s.storage != nil {
		if err := s.storage.Clear(); err != nil {
			logger.LogWarn("clearing persisted session", zap.Error(err))
		}
	}
}

// UpdateUser shallow-merges the patch into the current user. It is a no-op
// while logged out, so a patch can never manufacture a user without tokens.
func (s *Store) UpdateUser(patch models.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.User == nil || s.sess.AccessToken == "" {
		return
	}

	u := *s.sess.User
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Semester != nil {
		u.Semester = patch.Semester
	}
	if patch.DegreeType != nil {
		u.DegreeType = *patch.DegreeType
	}
	if patch.CompetencyScore != nil {
		u.CompetencyScore = patch.CompetencyScore
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	if patch.IsVerified != nil {
		u.IsVerified = *patch.IsVerified
	}
	s.sess.User = &u
	s.persistLocked()
}

// Session returns a snapshot safe to read without further locking.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sess
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.AccessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.RefreshToken
}

func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.sess); err != nil {
		logger.LogWarn("persisting session", zap.Error(err))
	}
}
