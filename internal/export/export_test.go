// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

func sampleTranscript() []model.Message {
	viz := &model.Visualization{
		ActivityName:    "Robotik-AG",
		EngagementScore: 8,
		DifficultyScore: 5,
		CostEstimation:  model.CostMedium,
		PrepTimeMinutes: 45,
	}
	return []model.Message{
		model.NewAssistantMessage("Willkommen!", true, nil),
		model.NewUserMessage("Wie starte ich eine Robotik-AG?", true),
		model.NewAssistantMessage("Hier ein Vorschlag.", true, viz),
	}
}

func TestMarkdownExport(t *testing.T) {
	e := NewMarkdownExporter(nil)
	out, err := e.Export("Robotik", sampleTranscript())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Robotik")
	assert.Contains(t, md, "**You**")
	assert.Contains(t, md, "**MINTelligent**")
	assert.Contains(t, md, "Wie starte ich eine Robotik-AG?")
	assert.Contains(t, md, "| Engagement | 8/10 |")
	assert.Contains(t, md, "| Cost | Medium |")
	assert.Contains(t, md, "generator: mintelligent-tui")
}

func TestMarkdownExport_EmptyTranscript(t *testing.T) {
	e := NewMarkdownExporter(nil)
	_, err := e.Export("x", nil)
	assert.Error(t, err)
}

func TestMarkdownExport_WithoutTimestamps(t *testing.T) {
	e := NewMarkdownExporter(&Options{IncludeTimestamps: false})
	out, err := e.Export("x", sampleTranscript())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<sub>")
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := ToFile("Robotik AG!", sampleTranscript(), NewMarkdownExporter(nil), &Options{
		OutputDir:         dir,
		IncludeTimestamps: true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".md"))
	assert.Contains(t, path, "chat_robotik_ag_")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Willkommen!")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Robotik AG", "robotik_ag"},
		{"", "untitled"},
		{"!!!", "untitled"},
		{"Chemie & Co: Teil 2", "chemie__co_teil_2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
