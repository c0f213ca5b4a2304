// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the chat interface.
// Each backend operation ends in exactly one result message; the update loop
// maps failures to localized alerts.
package chat

import (
	"github.com/mintzukunft/mintelligent-tui/internal/api"
	"github.com/mintzukunft/mintelligent-tui/internal/config"
	"github.com/mintzukunft/mintelligent-tui/internal/model"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
)

// =============================================================================
// BACKEND RESULT MESSAGES
// =============================================================================

// SendResultMsg carries the outcome of a message send. UserText travels with
// the result because the user message is only appended once the reply exists.
type SendResultMsg struct {
	UserText string
	Reply    *api.BotReply
	Err      error
}

// LoginResultMsg carries the outcome of a login attempt.
type LoginResultMsg struct {
	Session *session.Session
	Err     error
}

// RegisterResultMsg carries the outcome of a registration (including the
// follow-up login).
type RegisterResultMsg struct {
	Session *session.Session
	Err     error
}

// HistoryResultMsg carries a loaded conversation history.
type HistoryResultMsg struct {
	ChatID   string
	Messages []model.Message
	Err      error
}

// DeleteResultMsg carries the outcome of a conversation deletion.
type DeleteResultMsg struct {
	ChatID string
	Err    error
}

// ExportResultMsg carries the outcome of a transcript export.
type ExportResultMsg struct {
	Path string
	Err  error
}

// =============================================================================
// UI MESSAGES
// =============================================================================

// ClearToastMsg removes the current alert from the status area.
type ClearToastMsg struct{}

// ConfigReloadedMsg delivers a live-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}
