// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat holds the pure view state of a conversation: the visible
// transcript, which backend conversation it belongs to, and the load state.
// It performs no I/O; the UI drives it with results from the api package.
package chat

import (
	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

// Transcript is the message list currently on screen. A user message is
// appended only together with the reply it earned; a failed send leaves the
// transcript untouched so nothing on screen misrepresents what the backend
// accepted.
type Transcript struct {
	messages  []model.Message
	currentID string
	loading   bool
	loadingID string

	// greetingID tracks the locale-dependent greeting so a language toggle
	// can rewrite it in place. Zero once real history replaces it.
	greetingID int64
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// StartNew resets the transcript to a fresh conversation opened by the
// greeting. The conversation has no backend id until the first reply names
// one.
func (t *Transcript) StartNew(greeting string, personalized bool) {
	msg := model.NewAssistantMessage(greeting, personalized, nil)
	t.messages = []model.Message{msg}
	t.currentID = ""
	t.loading = false
	t.loadingID = ""
	t.greetingID = msg.ID
}

// SetGreeting rewrites the tracked greeting in place, used when the language
// toggles while the greeting is still on screen. A transcript whose greeting
// was replaced by loaded history is left alone.
func (t *Transcript) SetGreeting(text string) {
	if t.greetingID == 0 {
		return
	}
	for i := range t.messages {
		if t.messages[i].ID == t.greetingID {
			t.messages[i].Text = text
			return
		}
	}
}

// Messages returns a copy of the visible messages, oldest first.
func (t *Transcript) Messages() []model.Message {
	return append([]model.Message(nil), t.messages...)
}

// Len returns the number of visible messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// CurrentID returns the backend conversation id, or "" for an unsaved
// conversation.
func (t *Transcript) CurrentID() string {
	return t.currentID
}

// Loading reports whether a history load is in flight.
func (t *Transcript) Loading() bool {
	return t.loading
}

// AppendExchange appends the user message and the personalized reply as one
// unit and adopts chatID as the conversation id when the transcript had none
// yet. Returns true when the id was newly adopted, which is the caller's cue
// to record the conversation in the session.
func (t *Transcript) AppendExchange(userText, replyText string, viz *model.Visualization, chatID string) bool {
	t.messages = append(t.messages,
		model.NewUserMessage(userText, true),
		model.NewAssistantMessage(replyText, true, viz),
	)

	adopted := false
	if t.currentID == "" && chatID != "" {
		t.currentID = chatID
		adopted = true
	}
	return adopted
}

// AppendGuestExchange appends a guest question and the static guest answer.
// Guest conversations never touch the backend and never gain an id.
func (t *Transcript) AppendGuestExchange(userText, replyText string) {
	t.messages = append(t.messages,
		model.NewUserMessage(userText, false),
		model.NewAssistantMessage(replyText, false, nil),
	)
}

// BeginLoad marks a history load for chatID as in flight. The visible
// transcript stays untouched until the load completes.
func (t *Transcript) BeginLoad(chatID string) {
	t.loading = true
	t.loadingID = chatID
}

// CompleteLoad replaces the transcript with loaded history. A completion for
// a conversation other than the one last requested is stale and ignored.
func (t *Transcript) CompleteLoad(chatID string, messages []model.Message) {
	if !t.loading || chatID != t.loadingID {
		return
	}
	t.messages = append([]model.Message(nil), messages...)
	t.currentID = chatID
	t.loading = false
	t.loadingID = ""
	t.greetingID = 0
}

// FailLoad clears the in-flight state and keeps whatever was on screen.
func (t *Transcript) FailLoad() {
	t.loading = false
	t.loadingID = ""
}

// DropConversation resets to a fresh conversation if the deleted id is the
// one on screen; otherwise the transcript is unaffected. The greeting for the
// fresh conversation is the caller's, already localized.
func (t *Transcript) DropConversation(deletedID, greeting string, personalized bool) {
	if deletedID != "" && deletedID == t.currentID {
		t.StartNew(greeting, personalized)
	}
}
