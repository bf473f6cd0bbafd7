package services

import (
	"sync"
	"time"

	"github.com/Dosada05/prediction-game/game"
	"github.com/google/uuid"
)

// sessionStore владеет всеми живыми прогнозами. Ровно один мутатор на
// сессию: каждая операция выполняется под замком своей сессии, так что
// мутации одного прогноза никогда не перекрываются.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu         sync.Mutex
	prediction *game.Prediction
	lastActive time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) create(p *game.Prediction) string {
	id := uuid.NewString()
	p.ID = id

	s.mu.Lock()
	s.sessions[id] = &session{prediction: p, lastActive: time.Now()}
	s.mu.Unlock()
	return id
}

// with runs fn while holding the session's lock.
func (s *sessionStore) with(id string, fn func(*game.Prediction) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = time.Now()
	return fn(sess.prediction)
}

// pruneIdle drops sessions idle longer than maxIdle and returns how many.
func (s *sessionStore) pruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

func (s *sessionStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
