// internal/app/features/adminpanel/sessions.go
package adminpanel

import (
	"sync"

	"github.com/Krill-lover/welccom/internal/app/system/subjects"
)

// Step is the wizard's position in the submission dialogue.
type Step int

const (
	StepSubject Step = iota
	StepGroup
	StepType
	StepTitle
	StepDescription
	StepFile
)

// Session is one admin's in-progress material draft. It lives only in
// memory: a restart discards open drafts, which is acceptable for a
// short-lived dialogue.
type Session struct {
	Step         Step
	Subject      subjects.Subject
	Group        string
	MaterialType string
	Title        string
	Description  string
}

// Sessions is the per-admin wizard session table.
type Sessions struct {
	mu     sync.Mutex
	byUser map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byUser: make(map[int64]*Session)}
}

// Start opens a fresh session for the user, discarding any previous one.
func (s *Sessions) Start(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{Step: StepSubject}
	s.byUser[userID] = sess
	return sess
}

// Get returns the user's open session, if any.
func (s *Sessions) Get(userID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byUser[userID]
	return sess, ok
}

// Active reports whether the user has an open session.
func (s *Sessions) Active(userID int64) bool {
	_, ok := s.Get(userID)
	return ok
}

// Clear drops the user's session.
func (s *Sessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
