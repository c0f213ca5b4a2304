// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the authenticated user session and persists it to
// durable client storage. A session exists if and only if the UI is in
// personalized mode; its absence means guest mode.
package session

// Conversation is an opaque backend-owned handle the client only displays
// and routes by.
type Conversation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Session is the authenticated user identity plus the list of known
// conversations, persisted in full on every mutation.
type Session struct {
	UserID        int64          `json:"user_id"`
	Username      string         `json:"username"`
	AccessToken   string         `json:"access_token"`
	TokenType     string         `json:"token_type"`
	Conversations []Conversation `json:"conversations"`
}

// AuthScheme returns the Authorization scheme for requests, defaulting to
// Bearer when the backend omitted the token type.
func (s *Session) AuthScheme() string {
	if s == nil || s.TokenType == "" {
		return "Bearer"
	}
	return s.TokenType
}

// HasConversation reports whether id is already known.
func (s *Session) HasConversation(id string) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Conversations {
		if c.ID == id {
			return true
		}
	}
	return false
}
