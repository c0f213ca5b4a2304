// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/mintzukunft/mintelligent-tui/internal/util"
)

// Store owns the current session and mirrors every change to durable storage
// as one full JSON object under a fixed file. An unparseable stored session is
// discarded silently: guest mode is the safe default.
type Store struct {
	mu      sync.Mutex
	path    string
	current *Session
}

// NewStore creates a store backed by path and rehydrates any persisted
// session.
func NewStore(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.AccessToken == "" {
		return s
	}
	s.current = &sess
	return s
}

// Current returns a copy of the active session, or nil in guest mode.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.Conversations = append([]Conversation(nil), s.current.Conversations...)
	return &cp
}

// IsLoggedIn reports whether a session exists (personalized mode).
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Set installs sess as the active session and persists it.
func (s *Store) Set(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	return s.persistLocked()
}

// Clear drops the session unconditionally and removes the storage entry.
// No backend call is involved; the server contracts no invalidation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	os.Remove(s.path)
}

// AddConversation appends {id, title} to the known conversations and
// persists. Idempotent: a known id is a no-op. Does nothing in guest mode.
func (s *Store) AddConversation(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.HasConversation(id) {
		return nil
	}
	s.current.Conversations = append(s.current.Conversations, Conversation{ID: id, Title: title})
	return s.persistLocked()
}

// RemoveConversation removes id if present and persists. Absence is not an
// error.
func (s *Store) RemoveConversation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	kept := s.current.Conversations[:0]
	removed := false
	for _, c := range s.current.Conversations {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}
	s.current.Conversations = kept
	return s.persistLocked()
}

// persistLocked writes the full session object to disk. Callers hold s.mu.
func (s *Store) persistLocked() error {
	if s.current == nil {
		os.Remove(s.path)
		return nil
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return err
	}
	// Token material: owner-only permissions.
	return util.AtomicWriteFile(s.path, data, 0600)
}
