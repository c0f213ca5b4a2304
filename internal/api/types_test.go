// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

func TestDecodeHistoryItem_SenderShape(t *testing.T) {
	item := DecodeHistoryItem(json.RawMessage(`{"sender":"user","text":"Hallo"}`))
	assert.Equal(t, HistoryUser, item.Kind)
	assert.Equal(t, "Hallo", item.Text)

	item = DecodeHistoryItem(json.RawMessage(`{"sender":"bot","text":"Hi","timestamp":"10:15:00"}`))
	assert.Equal(t, HistoryAssistant, item.Kind)
	assert.Equal(t, "Hi", item.Text)
	assert.Equal(t, "10:15:00", item.Timestamp)
}

func TestDecodeHistoryItem_RoleShape(t *testing.T) {
	item := DecodeHistoryItem(json.RawMessage(`{"role":"user","content":"Frage"}`))
	assert.Equal(t, HistoryUser, item.Kind)
	assert.Equal(t, "Frage", item.Text)

	item = DecodeHistoryItem(json.RawMessage(`{"role":"assistant","content":"Antwort"}`))
	assert.Equal(t, HistoryAssistant, item.Kind)
	assert.Equal(t, "Antwort", item.Text)
}

func TestDecodeHistoryItem_AssistantVisualization(t *testing.T) {
	raw := `{"sender":"bot","text":"Vorschlag","visualization_data":` + `{
		"activity_name":"Robotik-AG","engagement_score":8,"difficulty_score":5,
		"cost_estimation":"Medium","prep_time_minutes":45}}`
	item := DecodeHistoryItem(json.RawMessage(raw))
	require.Equal(t, HistoryAssistant, item.Kind)
	require.NotNil(t, item.Visualization)
	assert.Equal(t, model.CostMedium, item.Visualization.CostEstimation)
}

func TestDecodeHistoryItem_UserNeverCarriesVisualization(t *testing.T) {
	raw := `{"sender":"user","text":"x","visualization_data":{
		"activity_name":"y","engagement_score":1,"difficulty_score":1,
		"cost_estimation":"Low","prep_time_minutes":1}}`
	item := DecodeHistoryItem(json.RawMessage(raw))
	require.Equal(t, HistoryUser, item.Kind)
	assert.Nil(t, item.Visualization)
}

func TestDecodeHistoryItem_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"empty object", `{}`},
		{"sender without text", `{"sender":"user"}`},
		{"role without content", `{"role":"assistant"}`},
		{"unknown sender", `{"sender":"system","text":"x"}`},
		{"unknown role", `{"role":"system","content":"x"}`},
		{"mixed fields", `{"sender":"user","content":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := DecodeHistoryItem(json.RawMessage(tt.raw))
			assert.Equal(t, HistoryUnparseable, item.Kind)
		})
	}
}

func TestHistoryItem_Message(t *testing.T) {
	msg := HistoryItem{Kind: HistoryAssistant, Text: "Hi", Timestamp: "09:00:00"}.Message()
	assert.Equal(t, model.SenderAssistant, msg.Sender)
	assert.Equal(t, "Hi", msg.Text)
	assert.Equal(t, "09:00:00", msg.Timestamp)
	assert.True(t, msg.Personalized, "history only exists in personalized mode")

	other := HistoryItem{Kind: HistoryUser, Text: "Hallo"}.Message()
	assert.Equal(t, model.SenderUser, other.Sender)
	assert.NotEqual(t, msg.ID, other.ID)
}
