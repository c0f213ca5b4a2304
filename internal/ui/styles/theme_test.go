// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	require.NotNil(t, theme)

	// A few load-bearing styles must come out configured.
	assert.True(t, theme.HeaderTitle.GetBold())
	assert.Equal(t, 4, theme.UserBubble.GetMarginLeft())
	assert.Equal(t, 4, theme.AssistantBubble.GetMarginRight())
	assert.True(t, theme.BadgePersonalized.GetBold())
}

func TestScoreBar(t *testing.T) {
	theme := NewTheme()

	bar := theme.ScoreBar(7, BarEngagement)
	assert.Equal(t, 7, strings.Count(bar, "█"))
	assert.Equal(t, 3, strings.Count(bar, "░"))

	// Deterministic layout: the same score renders the same bar.
	assert.Equal(t, bar, theme.ScoreBar(7, BarEngagement))

	// Out-of-range scores are clamped.
	assert.Equal(t, 0, strings.Count(theme.ScoreBar(-3, BarDifficulty), "█"))
	assert.Equal(t, 10, strings.Count(theme.ScoreBar(99, BarDifficulty), "█"))
}
