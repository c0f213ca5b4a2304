// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the client-side gateway to the MINTelligent backend. Each
// operation is a single HTTP round trip with no automatic retry; failures
// surface as sentinel errors the UI maps to one localized alert.
package api

import (
	"encoding/json"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

// Role is the self-declared role collected during registration. It is shown
// in the form but not forwarded to the backend.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleOther   Role = "other"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
}

// chatDTO is a conversation reference as the login endpoint reports it.
// chat_id has been observed both as a number and as a string.
type chatDTO struct {
	ChatID json.Number `json:"chat_id"`
	Title  string      `json:"title"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	History     []chatDTO `json:"history"`
}

type sendRequest struct {
	Content string `json:"content"`
}

type botResponse struct {
	ChatID            json.Number     `json:"chat_id"`
	Content           string          `json:"content"`
	Status            string          `json:"status"`
	VisualizationData json.RawMessage `json:"visualization_data"`
}

type historyEnvelope struct {
	ChatID  json.Number       `json:"chat_id"`
	History []json.RawMessage `json:"history"`
}

// =============================================================================
// PUBLIC RESULT TYPES
// =============================================================================

// BotReply is the mapped result of a send operation.
type BotReply struct {
	ChatID        string
	Content       string
	Status        string
	Visualization *model.Visualization
}

// =============================================================================
// HISTORY ITEM DECODING
// =============================================================================

// HistoryKind discriminates the decoded history item variants.
type HistoryKind int

const (
	// HistoryUser is a message written by the user.
	HistoryUser HistoryKind = iota
	// HistoryAssistant is a message written by the assistant.
	HistoryAssistant
	// HistoryUnparseable matched neither contracted shape. The caller drops
	// it explicitly instead of guessing.
	HistoryUnparseable
)

// HistoryItem is one decoded entry of a conversation history.
type HistoryItem struct {
	Kind          HistoryKind
	Text          string
	Timestamp     string
	Visualization *model.Visualization
}

// DecodeHistoryItem normalizes the two contracted history shapes —
// {sender: user|bot, text} and {role: user|assistant, content} — into a
// HistoryItem. The discriminator is the field set that is present, checked
// explicitly; anything else decodes to HistoryUnparseable.
func DecodeHistoryItem(raw json.RawMessage) HistoryItem {
	var probe struct {
		Sender            *string         `json:"sender"`
		Text              *string         `json:"text"`
		Role              *string         `json:"role"`
		Content           *string         `json:"content"`
		Timestamp         *string         `json:"timestamp"`
		VisualizationData json.RawMessage `json:"visualization_data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return HistoryItem{Kind: HistoryUnparseable}
	}

	item := HistoryItem{Kind: HistoryUnparseable}
	if probe.Timestamp != nil {
		item.Timestamp = *probe.Timestamp
	}

	switch {
	case probe.Sender != nil && probe.Text != nil:
		item.Text = *probe.Text
		switch *probe.Sender {
		case "user":
			item.Kind = HistoryUser
		case "bot", "assistant":
			item.Kind = HistoryAssistant
		default:
			return HistoryItem{Kind: HistoryUnparseable}
		}
	case probe.Role != nil && probe.Content != nil:
		item.Text = *probe.Content
		switch *probe.Role {
		case "user":
			item.Kind = HistoryUser
		case "assistant":
			item.Kind = HistoryAssistant
		default:
			return HistoryItem{Kind: HistoryUnparseable}
		}
	default:
		return HistoryItem{Kind: HistoryUnparseable}
	}

	if item.Kind == HistoryAssistant {
		item.Visualization = model.DecodeVisualization(probe.VisualizationData)
	}
	return item
}

// Message converts a decoded item to the view model. Only valid for the user
// and assistant kinds; history entries are always personalized.
func (h HistoryItem) Message() model.Message {
	sender := model.SenderUser
	if h.Kind == HistoryAssistant {
		sender = model.SenderAssistant
	}
	return model.Message{
		ID:            model.NextID(),
		Sender:        sender,
		Text:          h.Text,
		Personalized:  true,
		Timestamp:     h.Timestamp,
		Visualization: h.Visualization,
	}
}
