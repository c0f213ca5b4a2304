// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file holds the tea.Cmd constructors. Every backend call runs in its
// own goroutine under a bounded context and reports back with exactly one
// result message.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintzukunft/mintelligent-tui/internal/export"
	"github.com/mintzukunft/mintelligent-tui/internal/model"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
)

// opTimeout bounds a single backend operation from the UI.
func (m *Model) opTimeout() time.Duration {
	if m.cfg != nil && m.cfg.API.TimeoutSecs > 0 {
		return time.Duration(m.cfg.API.TimeoutSecs) * time.Second
	}
	return 60 * time.Second
}

// sendMessageCmd posts content to the backend for the given conversation.
func (m *Model) sendMessageCmd(sess *session.Session, chatID, content string) tea.Cmd {
	client, timeout := m.client, m.opTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := client.SendMessage(ctx, sess, chatID, content)
		return SendResultMsg{UserText: content, Reply: reply, Err: err}
	}
}

// loginCmd authenticates the credentials.
func (m *Model) loginCmd(identifier, password string) tea.Cmd {
	client, timeout := m.client, m.opTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sess, err := client.Login(ctx, identifier, password)
		return LoginResultMsg{Session: sess, Err: err}
	}
}

// registerCmd creates an account and logs in.
func (m *Model) registerCmd(name, email, password string) tea.Cmd {
	client, timeout := m.client, m.opTimeout()
	role := roles[m.roleIndex]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sess, err := client.Register(ctx, name, email, password, role)
		return RegisterResultMsg{Session: sess, Err: err}
	}
}

// fetchHistoryCmd loads a conversation's history.
func (m *Model) fetchHistoryCmd(sess *session.Session, chatID string) tea.Cmd {
	client, timeout := m.client, m.opTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msgs, err := client.FetchHistory(ctx, sess, chatID)
		return HistoryResultMsg{ChatID: chatID, Messages: msgs, Err: err}
	}
}

// deleteChatCmd deletes a conversation on the backend.
func (m *Model) deleteChatCmd(sess *session.Session, chatID string) tea.Cmd {
	client, timeout := m.client, m.opTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.DeleteChat(ctx, sess, chatID)
		return DeleteResultMsg{ChatID: chatID, Err: err}
	}
}

// exportCmd writes the visible transcript to a Markdown file in the working
// directory.
func (m *Model) exportCmd(title string, messages []model.Message) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ToFile(title, messages, export.NewMarkdownExporter(nil), nil)
		return ExportResultMsg{Path: path, Err: err}
	}
}

// clearToastCmd removes the alert after a short delay.
func clearToastCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return ClearToastMsg{}
	})
}
