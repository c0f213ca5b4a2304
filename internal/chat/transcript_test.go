// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

func TestTranscript_StartNew(t *testing.T) {
	tr := New()
	tr.StartNew("Willkommen!", true)

	msgs := tr.Messages()
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsAssistant())
	assert.Equal(t, "Willkommen!", msgs[0].Text)
	assert.Empty(t, tr.CurrentID())
	assert.False(t, tr.Loading())
}

func TestTranscript_SetGreetingRewritesInPlace(t *testing.T) {
	tr := New()
	tr.StartNew("Willkommen!", false)
	tr.AppendGuestExchange("Hallo", "Bitte anmelden.")

	tr.SetGreeting("Welcome!")

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "Welcome!", msgs[0].Text, "only the greeting changes")
	assert.Equal(t, "Hallo", msgs[1].Text)
	assert.Equal(t, "Bitte anmelden.", msgs[2].Text)
}

func TestTranscript_SetGreetingIgnoredAfterHistoryLoad(t *testing.T) {
	tr := New()
	tr.StartNew("Willkommen!", true)

	tr.BeginLoad("42")
	tr.CompleteLoad("42", []model.Message{
		model.NewAssistantMessage("Alte Antwort", true, nil),
	})

	tr.SetGreeting("Welcome!")
	assert.Equal(t, "Alte Antwort", tr.Messages()[0].Text)
}

func TestTranscript_AppendExchangeAdoptsID(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)

	adopted := tr.AppendExchange("Frage", "Antwort", nil, "42")
	assert.True(t, adopted)
	assert.Equal(t, "42", tr.CurrentID())

	// A second reply for the same conversation adopts nothing.
	adopted = tr.AppendExchange("Noch eine Frage", "Noch eine Antwort", nil, "42")
	assert.False(t, adopted)
	assert.Equal(t, "42", tr.CurrentID())

	msgs := tr.Messages()
	require.Len(t, msgs, 5)
	assert.False(t, msgs[1].IsAssistant())
	assert.True(t, msgs[2].IsAssistant())
	assert.True(t, msgs[1].Personalized)
}

func TestTranscript_AppendExchangeKeepsExistingID(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)
	tr.AppendExchange("a", "b", nil, "42")

	// A reply that names a different id must not rebind the transcript.
	adopted := tr.AppendExchange("c", "d", nil, "99")
	assert.False(t, adopted)
	assert.Equal(t, "42", tr.CurrentID())
}

func TestTranscript_GuestExchange(t *testing.T) {
	tr := New()
	tr.StartNew("Willkommen!", false)
	tr.AppendGuestExchange("Hallo", "Bitte melden Sie sich an.")

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.False(t, msgs[1].Personalized)
	assert.False(t, msgs[2].Personalized)
	assert.Empty(t, tr.CurrentID(), "guest conversations never gain an id")
}

func TestTranscript_LoadLifecycle(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)

	tr.BeginLoad("42")
	assert.True(t, tr.Loading())
	assert.Equal(t, 1, tr.Len(), "screen unchanged while loading")

	history := []model.Message{
		model.NewUserMessage("Alte Frage", true),
		model.NewAssistantMessage("Alte Antwort", true, nil),
	}
	tr.CompleteLoad("42", history)

	assert.False(t, tr.Loading())
	assert.Equal(t, "42", tr.CurrentID())
	assert.Equal(t, 2, tr.Len())
}

func TestTranscript_StaleLoadCompletionIgnored(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)

	tr.BeginLoad("42")
	tr.BeginLoad("99")

	// The completion for the superseded request must not win.
	tr.CompleteLoad("42", []model.Message{model.NewUserMessage("alt", true)})
	assert.True(t, tr.Loading())
	assert.Empty(t, tr.CurrentID())

	tr.CompleteLoad("99", []model.Message{model.NewUserMessage("neu", true)})
	assert.False(t, tr.Loading())
	assert.Equal(t, "99", tr.CurrentID())
}

func TestTranscript_FailLoadKeepsScreen(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)
	tr.AppendExchange("Frage", "Antwort", nil, "42")

	tr.BeginLoad("99")
	tr.FailLoad()

	assert.False(t, tr.Loading())
	assert.Equal(t, "42", tr.CurrentID())
	assert.Equal(t, 3, tr.Len())
}

func TestTranscript_DropConversation(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)
	tr.AppendExchange("Frage", "Antwort", nil, "42")

	// Deleting another conversation leaves the screen alone.
	tr.DropConversation("99", "Willkommen!", true)
	assert.Equal(t, "42", tr.CurrentID())
	assert.Equal(t, 3, tr.Len())

	// Deleting the open conversation resets to a fresh greeting.
	tr.DropConversation("42", "Willkommen!", true)
	assert.Empty(t, tr.CurrentID())
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, "Willkommen!", tr.Messages()[0].Text)
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	tr := New()
	tr.StartNew("Hi", true)

	msgs := tr.Messages()
	msgs[0].Text = "mutated"
	assert.Equal(t, "Hi", tr.Messages()[0].Text)
}
