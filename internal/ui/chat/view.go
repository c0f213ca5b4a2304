// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file renders the chat interface. Rendering is pure: it reads the
// model and produces a string, with all state changes confined to Update.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/pages"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/styles"
	"github.com/mintzukunft/mintelligent-tui/internal/util"
)

const (
	sidebarWidth  = 28
	minimumWidth  = 40
	minimumHeight = 10
)

// =============================================================================
// LAYOUT
// =============================================================================

// resize recomputes component dimensions after a terminal size change.
func (m *Model) resize() {
	contentWidth := m.width
	if m.showSidebar() {
		contentWidth -= sidebarWidth
	}
	if contentWidth < minimumWidth {
		contentWidth = minimumWidth
	}

	// Header, input box, and status bar each take vertical space.
	viewportHeight := m.height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = viewportHeight
	m.input.Width = contentWidth - 6
}

// showSidebar reports whether the conversation sidebar is visible. Guests
// have no stored conversations so the sidebar only renders a hint.
func (m *Model) showSidebar() bool {
	return m.width >= 80
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// =============================================================================
// TOP-LEVEL VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minimumWidth || m.height < minimumHeight {
		return "Terminal too small.\n"
	}

	switch m.screen {
	case ScreenLogin:
		return m.viewLoginForm()
	case ScreenRegister:
		return m.viewRegisterForm()
	case ScreenPage:
		return m.viewPage()
	default:
		return m.viewChat()
	}
}

func (m *Model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := m.viewport.View()
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.confirmDelete != "" {
		b.WriteString(m.renderConfirm())
		b.WriteString("\n")
	}

	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// =============================================================================
// HEADER AND SIDEBAR
// =============================================================================

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render(m.text.HeaderTitle)

	var badge, hint string
	if m.sessions.IsLoggedIn() {
		badge = m.theme.BadgePersonalized.Render(m.text.ModePersonal)
		hint = m.text.ModeHintPersonal
		if sess := m.sessions.Current(); sess != nil && sess.Username != "" {
			hint = sess.Username
		}
	} else {
		badge = m.theme.BadgeGuest.Render(m.text.ModeGuest)
		hint = m.text.ModeHintGuest
	}

	line := title + "  " + badge + "  " + m.theme.HeaderSubtitle.Render(hint)
	return m.theme.Header.Width(m.width).Render(line)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(m.theme.SidebarTitle.Render(m.text.AssistantTitle))
	b.WriteString("\n\n")

	if !m.sessions.IsLoggedIn() {
		b.WriteString(m.theme.SidebarEmpty.Width(sidebarWidth - 4).Render(m.text.GuestHintSidebar))
		return m.theme.Sidebar.Width(sidebarWidth).Height(m.viewport.Height).Render(b.String())
	}

	newChat := "+ " + m.text.NewChat
	if m.focus == FocusSidebar && m.sidebarIndex == -1 {
		b.WriteString(m.theme.SidebarItemSelected.Render(newChat))
	} else {
		b.WriteString(m.theme.SidebarItem.Render(newChat))
	}
	b.WriteString("\n")

	sess := m.sessions.Current()
	if sess != nil {
		for i, conv := range sess.Conversations {
			title := util.TruncateWidth(conv.Title, sidebarWidth-4)
			style := m.theme.SidebarItem
			if m.focus == FocusSidebar && m.sidebarIndex == i {
				style = m.theme.SidebarItemSelected
			} else if conv.ID == m.transcript.CurrentID() {
				style = m.theme.SidebarTitle
			}
			b.WriteString(style.Render(title))
			b.WriteString("\n")
		}
	}

	return m.theme.Sidebar.Width(sidebarWidth).Height(m.viewport.Height).Render(b.String())
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func (m *Model) renderTranscript() string {
	var b strings.Builder

	if m.transcript.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.text.LoadingChat)
		return b.String()
	}

	for _, msg := range m.transcript.Messages() {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}

	if m.sending {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.theme.Timestamp.Render(m.text.LoadingChat))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderMessage(msg model.Message) string {
	bubbleWidth := m.viewport.Width - 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	if msg.IsAssistant() {
		label := m.theme.Timestamp.Render(m.text.SenderAssistant + " " + msg.Timestamp)
		if msg.Personalized {
			label += " " + m.theme.BadgePersonalized.Render(m.text.PersonalizedTag)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(msg.Text))
		if msg.Visualization != nil {
			b.WriteString("\n")
			b.WriteString(m.renderVisualization(msg.Visualization))
		}
	} else {
		label := m.theme.Timestamp.Render(m.text.SenderYou + " " + msg.Timestamp)
		b.WriteString(lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, label))
		b.WriteString("\n")
		bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		b.WriteString(lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, bubble))
	}
	b.WriteString("\n")
	return b.String()
}

// renderVisualization draws the activity metadata card attached to an
// assistant reply.
func (m *Model) renderVisualization(viz *model.Visualization) string {
	var b strings.Builder
	b.WriteString(m.theme.VizTitle.Render(viz.ActivityName))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s %s\n",
		m.theme.VizLabel.Render(m.text.VizEngagement),
		m.theme.ScoreBar(viz.EngagementScore, styles.BarEngagement),
		m.theme.VizValue.Render(fmt.Sprintf("%d/10", viz.EngagementScore))))

	b.WriteString(fmt.Sprintf("%s %s %s\n",
		m.theme.VizLabel.Render(m.text.VizDifficulty),
		m.theme.ScoreBar(viz.DifficultyScore, styles.BarDifficulty),
		m.theme.VizValue.Render(fmt.Sprintf("%d/10", viz.DifficultyScore))))

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.theme.VizLabel.Render(m.text.VizCosts),
		m.theme.VizValue.Render(m.costLabel(viz.CostEstimation))))

	b.WriteString(fmt.Sprintf("%s %s",
		m.theme.VizLabel.Render(m.text.VizPrepTime),
		m.theme.VizValue.Render(fmt.Sprintf("%d min", viz.PrepTimeMinutes))))

	return m.theme.VizBox.Render(b.String())
}

func (m *Model) costLabel(tier model.CostTier) string {
	switch tier {
	case model.CostLow:
		return m.text.CostLow
	case model.CostMedium:
		return m.text.CostMedium
	case model.CostHigh:
		return m.text.CostHigh
	}
	return string(tier)
}

// =============================================================================
// INPUT, STATUS BAR, OVERLAYS
// =============================================================================

func (m *Model) renderInput() string {
	return m.theme.InputContainer.Width(m.viewport.Width).Render(m.input.View())
}

func (m *Model) renderConfirm() string {
	prompt := m.text.DeleteConfirm + " " + m.theme.ConfirmKeys.Render("[y/n]")
	return m.theme.ConfirmBox.Render(prompt)
}

func (m *Model) renderStatusBar() string {
	if m.errorText != "" {
		return m.theme.ErrorToast.Render(m.errorText)
	}
	if m.infoText != "" {
		return m.theme.InfoToast.Render(m.infoText)
	}

	type shortcut struct{ key, desc string }
	items := []shortcut{
		{"Enter", m.text.ChatPlaceholder},
		{"C-l", m.text.LangSwitch},
		{"C-p", m.text.NavAbout},
	}
	if m.sessions.IsLoggedIn() {
		items = append(items,
			shortcut{"Tab", m.text.NewChat},
			shortcut{"C-n", m.text.NewChat},
			shortcut{"C-e", "Export"},
			shortcut{"C-a", m.text.Logout},
		)
	} else {
		items = append(items, shortcut{"C-a", m.text.Login})
	}

	parts := make([]string, 0, len(items))
	for _, s := range items {
		parts = append(parts,
			m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}

// =============================================================================
// AUTH FORMS
// =============================================================================

func (m *Model) viewLoginForm() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render(m.text.LoginTitle))
	b.WriteString("\n")
	b.WriteString(m.theme.FormLabel.Render(m.text.LoginDescription))
	b.WriteString("\n\n")

	for i := range m.loginInputs {
		b.WriteString(m.loginInputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render(m.text.LoginNoAccount + " " + m.text.LoginGoRegister))
	if m.errorText != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.ErrorToast.Render(m.errorText))
	}

	return m.centered(m.theme.FormBox.Render(b.String()))
}

func (m *Model) viewRegisterForm() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render(m.text.RegisterTitle))
	b.WriteString("\n")
	b.WriteString(m.theme.FormLabel.Render(m.text.RegisterDesc))
	b.WriteString("\n\n")

	for i := range m.registerInputs {
		b.WriteString(m.registerInputs[i].View())
		b.WriteString("\n")
	}

	roleLabel := m.theme.FormLabel.Render(m.text.RegisterRole)
	roleValue := m.roleLabel(m.roleIndex)
	if m.formFocus == registerFieldCount-1 {
		roleValue = m.theme.FormFocused.Render("< " + roleValue + " >")
	}
	b.WriteString(roleLabel + " " + roleValue)
	b.WriteString("\n")

	if m.errorText != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorToast.Render(m.errorText))
	}

	return m.centered(m.theme.FormBox.Render(b.String()))
}

func (m *Model) roleLabel(idx int) string {
	switch idx {
	case 0:
		return m.text.RoleTeacher
	case 1:
		return m.text.RoleAdmin
	}
	return m.text.RoleOther
}

// =============================================================================
// STATIC PAGES
// =============================================================================

func (m *Model) viewPage() string {
	page := m.currentPage()
	lang := m.langs.Get()

	body := pages.Render(page, lang, m.width-6)

	var b strings.Builder
	b.WriteString(m.theme.PageTitle.Render(page.Title(lang)))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render(m.text.Footer))
	return m.theme.PageBox.Render(b.String())
}

func (m *Model) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
