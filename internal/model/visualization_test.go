// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validViz = `{
	"activity_name": "Roberta Robotik-AG",
	"engagement_score": 8,
	"difficulty_score": 5,
	"cost_estimation": "Medium",
	"prep_time_minutes": 45
}`

func TestDecodeVisualization_Valid(t *testing.T) {
	viz := DecodeVisualization(json.RawMessage(validViz))
	require.NotNil(t, viz)

	assert.Equal(t, "Roberta Robotik-AG", viz.ActivityName)
	assert.Equal(t, 8, viz.EngagementScore)
	assert.Equal(t, 5, viz.DifficultyScore)
	assert.Equal(t, CostMedium, viz.CostEstimation)
	assert.Equal(t, 45, viz.PrepTimeMinutes)
}

func TestDecodeVisualization_AllTiers(t *testing.T) {
	for _, tier := range []CostTier{CostLow, CostMedium, CostHigh} {
		raw := []byte(`{"activity_name":"x","engagement_score":0,"difficulty_score":10,` +
			`"cost_estimation":"` + string(tier) + `","prep_time_minutes":0}`)
		viz := DecodeVisualization(raw)
		require.NotNil(t, viz, "tier %s", tier)
		assert.Equal(t, tier, viz.CostEstimation)
	}
}

func TestDecodeVisualization_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"null", `null`},
		{"not an object", `"bars"`},
		{"missing name", `{"engagement_score":8,"difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":45}`},
		{"missing prep time", `{"activity_name":"x","engagement_score":8,"difficulty_score":5,"cost_estimation":"Low"}`},
		{"score as string", `{"activity_name":"x","engagement_score":"8","difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":45}`},
		{"score above range", `{"activity_name":"x","engagement_score":11,"difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":45}`},
		{"score negative", `{"activity_name":"x","engagement_score":-1,"difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":45}`},
		{"score fractional", `{"activity_name":"x","engagement_score":7.5,"difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":45}`},
		{"unknown cost tier", `{"activity_name":"x","engagement_score":8,"difficulty_score":5,"cost_estimation":"Free","prep_time_minutes":45}`},
		{"cost as number", `{"activity_name":"x","engagement_score":8,"difficulty_score":5,"cost_estimation":2,"prep_time_minutes":45}`},
		{"negative prep time", `{"activity_name":"x","engagement_score":8,"difficulty_score":5,"cost_estimation":"Low","prep_time_minutes":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// All-or-nothing: any defect drops the whole attachment.
			assert.Nil(t, DecodeVisualization(json.RawMessage(tt.raw)))
		})
	}
}

func TestDecodeVisualization_RoundTrip(t *testing.T) {
	viz := DecodeVisualization(json.RawMessage(validViz))
	require.NotNil(t, viz)

	encoded, err := json.Marshal(viz)
	require.NoError(t, err)

	again := DecodeVisualization(encoded)
	require.NotNil(t, again)
	assert.Equal(t, viz, again)
}

func TestNextID_Unique(t *testing.T) {
	a := NextID()
	b := NextID()
	assert.NotEqual(t, a, b)
	assert.Greater(t, b, a)
}

func TestNewMessages(t *testing.T) {
	u := NewUserMessage("Hallo", false)
	assert.Equal(t, SenderUser, u.Sender)
	assert.False(t, u.Personalized)
	assert.False(t, u.IsAssistant())
	assert.NotEmpty(t, u.Timestamp)

	a := NewAssistantMessage("Hi", true, nil)
	assert.Equal(t, SenderAssistant, a.Sender)
	assert.True(t, a.Personalized)
	assert.True(t, a.IsAssistant())
	assert.Nil(t, a.Visualization)
	assert.NotEqual(t, u.ID, a.ID)
}
