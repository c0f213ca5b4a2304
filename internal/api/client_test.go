// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintzukunft/mintelligent-tui/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, testLogger()).WithHTTPClient(srv.Client())
}

func authedSession() *session.Session {
	return &session.Session{
		UserID:      7,
		Username:    "erika@example.org",
		AccessToken: "token-abc",
	}
}

// =============================================================================
// LOGIN
// =============================================================================

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "erika@example.org", req["username"])
		assert.Equal(t, "geheim", req["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-abc",
			"token_type":   "bearer",
			"user_id":      7,
			"history": []map[string]any{
				{"chat_id": 3, "title": "Robotik"},
				{"chat_id": "9", "title": "Chemie"},
			},
		})
	})

	sess, err := c.Login(context.Background(), "erika@example.org", "geheim")
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, "erika@example.org", sess.Username, "username falls back to the identifier")
	assert.Equal(t, "token-abc", sess.AccessToken)
	require.Len(t, sess.Conversations, 2)
	assert.Equal(t, "3", sess.Conversations[0].ID, "numeric chat ids are normalized to strings")
	assert.Equal(t, "9", sess.Conversations[1].ID)
}

func TestLogin_UnknownUserIsNotRegistered(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := c.Login(context.Background(), "nobody@example.org", "x")
		assert.ErrorIs(t, err, ErrNotRegistered, "status %d", status)
	}
}

func TestLogin_ServerErrorIsLoginFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Login(context.Background(), "erika@example.org", "x")
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.NotErrorIs(t, err, ErrNotRegistered)
}

func TestLogin_MissingTokenIsLoginFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"user_id": 7})
	})
	_, err := c.Login(context.Background(), "erika@example.org", "x")
	assert.ErrorIs(t, err, ErrLoginFailed)
}

// =============================================================================
// REGISTER
// =============================================================================

func TestRegister_SplitsNameAndAutoLogsIn(t *testing.T) {
	var registered map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&registered))
			w.WriteHeader(http.StatusCreated)
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "token-new",
				"user_id":      11,
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	sess, err := c.Register(context.Background(), "Erika Maria Musterfrau", "erika@example.org", "geheim", RoleTeacher)
	require.NoError(t, err)

	assert.Equal(t, "Erika", registered["first_name"])
	assert.Equal(t, "Maria Musterfrau", registered["last_name"])
	assert.Equal(t, "erika@example.org", registered["username"])
	assert.Equal(t, "erika@example.org", registered["email"])
	_, hasRole := registered["role"]
	assert.False(t, hasRole, "the role stays client-side")

	assert.Equal(t, "token-new", sess.AccessToken)
	assert.Equal(t, int64(11), sess.UserID)
}

func TestRegister_FailureShortCircuitsLogin(t *testing.T) {
	loginCalled := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			loginCalled = true
		}
		w.WriteHeader(http.StatusConflict)
	})

	_, err := c.Register(context.Background(), "Erika", "erika@example.org", "x", RoleOther)
	assert.ErrorIs(t, err, ErrRegisterFailed)
	assert.False(t, loginCalled)
}

// =============================================================================
// SEND MESSAGE
// =============================================================================

func TestSendMessage_NewConversation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.False(t, r.URL.Query().Has("chat_id"), "no chat_id when starting a conversation")
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Wie starte ich eine Robotik-AG?", req["content"])

		json.NewEncoder(w).Encode(map[string]any{
			"chat_id": 42,
			"content": "Gerne!",
			"status":  "ok",
		})
	})

	reply, err := c.SendMessage(context.Background(), authedSession(), "", "Wie starte ich eine Robotik-AG?")
	require.NoError(t, err)
	assert.Equal(t, "42", reply.ChatID)
	assert.Equal(t, "Gerne!", reply.Content)
	assert.Nil(t, reply.Visualization)
}

func TestSendMessage_ExistingConversationAndVisualization(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("chat_id"))
		json.NewEncoder(w).Encode(map[string]any{
			"chat_id": 42,
			"content": "Hier ein Vorschlag.",
			"status":  "ok",
			"visualization_data": map[string]any{
				"activity_name":     "Robotik-AG",
				"engagement_score":  8,
				"difficulty_score":  5,
				"cost_estimation":   "Low",
				"prep_time_minutes": 30,
			},
		})
	})

	reply, err := c.SendMessage(context.Background(), authedSession(), "42", "Mehr Details bitte")
	require.NoError(t, err)
	require.NotNil(t, reply.Visualization)
	assert.Equal(t, "Robotik-AG", reply.Visualization.ActivityName)
}

func TestSendMessage_MalformedVisualizationDropsAttachmentOnly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"chat_id":            1,
			"content":            "Text bleibt erhalten",
			"status":             "ok",
			"visualization_data": map[string]any{"engagement_score": "hoch"},
		})
	})

	reply, err := c.SendMessage(context.Background(), authedSession(), "1", "x")
	require.NoError(t, err)
	assert.Equal(t, "Text bleibt erhalten", reply.Content)
	assert.Nil(t, reply.Visualization)
}

func TestSendMessage_BackendError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SendMessage(context.Background(), authedSession(), "1", "x")
	assert.ErrorIs(t, err, ErrRequestFailed)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadGateway, be.Status)
}

func TestSendMessage_GuestHasNoAuthHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"chat_id": 1, "content": "Hi", "status": "ok"})
	})

	_, err := c.SendMessage(context.Background(), nil, "", "Hallo")
	require.NoError(t, err)
}

// =============================================================================
// HISTORY
// =============================================================================

func TestFetchHistory_MixedShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/open", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode(map[string]any{
			"chat_id": 42,
			"history": []map[string]any{
				{"sender": "user", "text": "Hallo"},
				{"role": "assistant", "content": "Hi!"},
				{"garbage": true},
				{"sender": "bot", "text": "Noch etwas?"},
			},
		})
	})

	msgs, err := c.FetchHistory(context.Background(), authedSession(), "42")
	require.NoError(t, err)
	require.Len(t, msgs, 3, "unparseable entries are dropped, not guessed")
	assert.Equal(t, "Hallo", msgs[0].Text)
	assert.False(t, msgs[0].IsAssistant())
	assert.True(t, msgs[1].IsAssistant())
	assert.Equal(t, "Noch etwas?", msgs[2].Text)
	for _, m := range msgs {
		assert.True(t, m.Personalized)
	}
}

func TestFetchHistory_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.FetchHistory(context.Background(), authedSession(), "42")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

// =============================================================================
// DELETE
// =============================================================================

func TestDeleteChat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteChat(context.Background(), authedSession(), "42"))
}

func TestDeleteChat_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	err := c.DeleteChat(context.Background(), authedSession(), "42")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

// =============================================================================
// TRANSPORT DETAILS
// =============================================================================

func TestClient_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Login(ctx, "erika@example.org", "x")
	require.Error(t, err)
}

func TestClient_CustomTokenType(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token token-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"chat_id": 1, "content": "x", "status": "ok"})
	})

	sess := authedSession()
	sess.TokenType = "token"
	_, err := c.SendMessage(context.Background(), sess, "1", "x")
	require.NoError(t, err)
}
