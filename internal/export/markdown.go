// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports a transcript to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// Export converts the messages to Markdown.
func (e *MarkdownExporter) Export(title string, messages []model.Message) ([]byte, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("transcript has no messages")
	}
	if title == "" {
		title = "MINTelligent Chat"
	}

	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("title: %s\n", escapeYAML(title)))
	sb.WriteString(fmt.Sprintf("messages: %d\n", len(messages)))
	sb.WriteString(fmt.Sprintf("exported: %s\n", time.Now().Format(time.RFC3339)))
	sb.WriteString("generator: mintelligent-tui\n")
	sb.WriteString("---\n\n")

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	for i, msg := range messages {
		label := "**You**"
		if msg.IsAssistant() {
			label = "**MINTelligent**"
		}
		if e.options.IncludeTimestamps && msg.Timestamp != "" {
			sb.WriteString(fmt.Sprintf("### %s <sub>%s</sub>\n\n", label, msg.Timestamp))
		} else {
			sb.WriteString(fmt.Sprintf("### %s\n\n", label))
		}

		sb.WriteString(msg.Text)
		sb.WriteString("\n\n")

		if msg.Visualization != nil {
			sb.WriteString(formatVisualization(msg.Visualization))
			sb.WriteString("\n")
		}

		if i < len(messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return []byte(sb.String()), nil
}

// formatVisualization renders an activity attachment as a Markdown table.
func formatVisualization(viz *model.Visualization) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("> **%s**\n>\n", viz.ActivityName))
	sb.WriteString("> | | |\n> |---|---|\n")
	sb.WriteString(fmt.Sprintf("> | Engagement | %d/10 |\n", viz.EngagementScore))
	sb.WriteString(fmt.Sprintf("> | Difficulty | %d/10 |\n", viz.DifficultyScore))
	sb.WriteString(fmt.Sprintf("> | Cost | %s |\n", viz.CostEstimation))
	sb.WriteString(fmt.Sprintf("> | Preparation | %d min |\n", viz.PrepTimeMinutes))
	return sb.String()
}

// escapeYAML quotes a value when it would break the frontmatter.
func escapeYAML(s string) string {
	if strings.ContainsAny(s, ":#{}[]&*!|>'\"%@`") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
