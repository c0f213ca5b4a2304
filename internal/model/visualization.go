// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"math"
)

// =============================================================================
// COST TIER
// =============================================================================

// CostTier is the backend's cost estimate for an activity.
type CostTier string

const (
	CostLow    CostTier = "Low"
	CostMedium CostTier = "Medium"
	CostHigh   CostTier = "High"
)

// Valid reports whether c is one of the three contracted tiers.
func (c CostTier) Valid() bool {
	return c == CostLow || c == CostMedium || c == CostHigh
}

// =============================================================================
// VISUALIZATION ATTACHMENT
// =============================================================================

// Visualization is the optional structured metadata attached to an assistant
// message: activity scores, a cost tier and a preparation time.
type Visualization struct {
	ActivityName    string   `json:"activity_name"`
	EngagementScore int      `json:"engagement_score"`
	DifficultyScore int      `json:"difficulty_score"`
	CostEstimation  CostTier `json:"cost_estimation"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
}

// DecodeVisualization validates raw field by field and returns the attachment,
// or nil when raw is absent or any required field is missing, mistyped, or
// outside its domain. The attachment is all-or-nothing: a partially valid
// payload is never rendered partially.
func DecodeVisualization(raw json.RawMessage) *Visualization {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var probe struct {
		ActivityName    *string  `json:"activity_name"`
		EngagementScore *float64 `json:"engagement_score"`
		DifficultyScore *float64 `json:"difficulty_score"`
		CostEstimation  *string  `json:"cost_estimation"`
		PrepTimeMinutes *float64 `json:"prep_time_minutes"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}

	if probe.ActivityName == nil ||
		probe.EngagementScore == nil ||
		probe.DifficultyScore == nil ||
		probe.CostEstimation == nil ||
		probe.PrepTimeMinutes == nil {
		return nil
	}

	engagement, ok := scoreValue(*probe.EngagementScore)
	if !ok {
		return nil
	}
	difficulty, ok := scoreValue(*probe.DifficultyScore)
	if !ok {
		return nil
	}

	cost := CostTier(*probe.CostEstimation)
	if !cost.Valid() {
		return nil
	}

	prep, ok := wholeMinutes(*probe.PrepTimeMinutes)
	if !ok {
		return nil
	}

	return &Visualization{
		ActivityName:    *probe.ActivityName,
		EngagementScore: engagement,
		DifficultyScore: difficulty,
		CostEstimation:  cost,
		PrepTimeMinutes: prep,
	}
}

// scoreValue accepts integral values in 0..10.
func scoreValue(f float64) (int, bool) {
	if f != math.Trunc(f) || f < 0 || f > 10 {
		return 0, false
	}
	return int(f), true
}

// wholeMinutes accepts integral values >= 0.
func wholeMinutes(f float64) (int, bool) {
	if f != math.Trunc(f) || f < 0 {
		return 0, false
	}
	return int(f), true
}
