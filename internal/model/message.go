// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and the
// optional activity visualization attachment.
package model

import (
	"sync/atomic"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat message as displayed. Messages are immutable once
// created; ordering is insertion order within a conversation. IDs are only
// unique within the process lifetime (guest transcripts do not survive a
// restart).
type Message struct {
	ID            int64          `json:"id"`
	Sender        Sender         `json:"sender"`
	Text          string         `json:"text"`
	Personalized  bool           `json:"personalized"`
	Timestamp     string         `json:"timestamp"`
	Visualization *Visualization `json:"visualization,omitempty"`
}

// idCounter backs NextID. Monotonic within the process, which is all the
// locally-unique contract requires.
var idCounter atomic.Int64

// NextID returns a fresh locally-unique message id.
func NextID() int64 {
	return idCounter.Add(1)
}

// Clock returns the display timestamp for a message created now.
func Clock() string {
	return time.Now().Format("15:04:05")
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(text string, personalized bool) Message {
	return Message{
		ID:           NextID(),
		Sender:       SenderUser,
		Text:         text,
		Personalized: personalized,
		Timestamp:    Clock(),
	}
}

// NewAssistantMessage creates an assistant message stamped with the current
// time. The visualization may be nil.
func NewAssistantMessage(text string, personalized bool, viz *Visualization) Message {
	return Message{
		ID:            NextID(),
		Sender:        SenderAssistant,
		Text:          text,
		Personalized:  personalized,
		Timestamp:     Clock(),
		Visualization: viz,
	}
}

// IsAssistant reports whether the message came from the assistant.
func (m Message) IsAssistant() bool {
	return m.Sender == SenderAssistant
}
