// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintzukunft/mintelligent-tui/internal/api"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/pages"
	"github.com/mintzukunft/mintelligent-tui/internal/util"
)

// sidebarTitleWidth bounds conversation titles in the sidebar.
const sidebarTitleWidth = 24

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SendResultMsg:
		return m.handleSendResult(msg)

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case RegisterResultMsg:
		return m.handleRegisterResult(msg)

	case HistoryResultMsg:
		return m.handleHistoryResult(msg)

	case DeleteResultMsg:
		return m.handleDeleteResult(msg)

	case ExportResultMsg:
		if msg.Err != nil {
			m.logger.Error("transcript export failed", "error", msg.Err)
			return m.showError(m.text.AlertSendFailed)
		}
		m.infoText = msg.Path
		return m, clearToastCmd()

	case ClearToastMsg:
		m.errorText = ""
		m.infoText = ""
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.cfg = msg.Config
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first.
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.ToggleLang):
		m.toggleLanguage()
		return m, nil
	}

	// The delete prompt swallows everything until answered.
	if m.confirmDelete != "" {
		return m.handleConfirmKey(msg)
	}

	switch m.screen {
	case ScreenLogin, ScreenRegister:
		return m.handleFormKey(msg)
	case ScreenPage:
		return m.handlePageKey(msg)
	default:
		return m.handleChatKey(msg)
	}
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Account):
		if m.sessions.IsLoggedIn() {
			m.logout()
			return m, nil
		}
		m.openLogin()
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.transcript.StartNew(m.text.InitialAssistant, m.sessions.IsLoggedIn())
		m.sidebarIndex = -1
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Pages):
		m.screen = ScreenPage
		m.pageIndex = 0
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		if m.transcript.Len() > 1 {
			return m, m.exportCmd(m.conversationTitle(), m.transcript.Messages())
		}
		return m, nil

	case key.Matches(msg, m.keyMap.FocusNext):
		if m.sessions.IsLoggedIn() {
			if m.focus == FocusInput {
				m.focus = FocusSidebar
				m.input.Blur()
			} else {
				m.focus = FocusInput
				m.input.Focus()
			}
		}
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitMessage()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.sessions.Current()
	count := 0
	if sess != nil {
		count = len(sess.Conversations)
	}

	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.sidebarIndex > -1 {
			m.sidebarIndex--
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		if m.sidebarIndex < count-1 {
			m.sidebarIndex++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Delete):
		if sess != nil && m.sidebarIndex >= 0 && m.sidebarIndex < count {
			m.confirmDelete = sess.Conversations[m.sidebarIndex].ID
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if m.sidebarIndex == -1 {
			m.transcript.StartNew(m.text.InitialAssistant, true)
			m.refreshViewport()
			return m, nil
		}
		if sess != nil && m.sidebarIndex < count {
			id := sess.Conversations[m.sidebarIndex].ID
			m.transcript.BeginLoad(id)
			m.refreshViewport()
			return m, m.fetchHistoryCmd(sess, id)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmDelete
		m.confirmDelete = ""
		return m, m.deleteChatCmd(m.sessions.Current(), id)
	case "n", "esc":
		m.confirmDelete = ""
		return m, nil
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fieldCount := loginFieldCount
	if m.screen == ScreenRegister {
		fieldCount = registerFieldCount
	}

	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.screen = ScreenChat
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.FocusNext), key.Matches(msg, m.keyMap.Down):
		m.setFormFocus((m.formFocus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.setFormFocus((m.formFocus - 1 + fieldCount) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitForm()
	}

	// The role selector is a cycle, not a text field.
	if m.screen == ScreenRegister && m.formFocus == registerFieldCount-1 {
		if msg.String() == "left" || msg.String() == "right" || msg.String() == " " {
			delta := 1
			if msg.String() == "left" {
				delta = len(roles) - 1
			}
			m.roleIndex = (m.roleIndex + delta) % len(roles)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.screen == ScreenLogin {
		m.loginInputs[m.formFocus], cmd = m.loginInputs[m.formFocus].Update(msg)
	} else {
		m.registerInputs[m.formFocus], cmd = m.registerInputs[m.formFocus].Update(msg)
	}
	return m, cmd
}

func (m *Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.screen = ScreenChat
		return m, nil
	case key.Matches(msg, m.keyMap.Pages), key.Matches(msg, m.keyMap.Down):
		m.pageIndex = (m.pageIndex + 1) % len(pages.All)
		return m, nil
	case key.Matches(msg, m.keyMap.Up):
		m.pageIndex = (m.pageIndex + len(pages.All) - 1) % len(pages.All)
		return m, nil
	}
	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

// submitMessage sends the input field content. While a send is outstanding
// the control is disabled; the typed text stays put.
func (m *Model) submitMessage() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" || m.sending || m.transcript.Loading() {
		return m, nil
	}

	if !m.sessions.IsLoggedIn() {
		// Guest mode never touches the backend: the exchange is local and
		// the answer is the static localized sample.
		m.input.SetValue("")
		m.transcript.AppendGuestExchange(content, m.text.GuestReply)
		m.refreshViewport()
		return m, nil
	}

	// The field is cleared only once the backend accepts the message; a
	// failed send leaves the typed text in place for retry.
	m.sending = true
	return m, tea.Batch(
		m.spinner.Tick,
		m.sendMessageCmd(m.sessions.Current(), m.transcript.CurrentID(), content),
	)
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	if m.screen == ScreenLogin {
		identifier := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if identifier == "" || password == "" {
			return m, nil
		}
		return m, m.loginCmd(identifier, password)
	}

	name := strings.TrimSpace(m.registerInputs[0].Value())
	email := strings.TrimSpace(m.registerInputs[1].Value())
	password := m.registerInputs[2].Value()
	if name == "" || email == "" || password == "" {
		return m, nil
	}
	return m, m.registerCmd(name, email, password)
}

func (m *Model) openLogin() {
	m.screen = ScreenLogin
	m.formFocus = 0
	m.setFormFocus(0)
	m.input.Blur()
}

func (m *Model) logout() {
	// Purely local: the session is dropped and the backend is not told.
	m.sessions.Clear()
	m.transcript.StartNew(m.text.InitialAssistant, false)
	m.sidebarIndex = -1
	m.focus = FocusInput
	m.input.Focus()
	m.refreshViewport()
	m.logger.Info("logged out")
}

// toggleLanguage flips the locale, swaps every label, and rewrites the
// greeting in place when it is still on screen.
func (m *Model) toggleLanguage() {
	lang := m.langs.Toggle()
	m.text = m.langs.Text()

	m.input.Placeholder = m.text.ChatPlaceholder
	m.loginInputs[0].Placeholder = m.text.LoginEmail
	m.loginInputs[1].Placeholder = m.text.LoginPassword
	m.registerInputs[0].Placeholder = m.text.RegisterName
	m.registerInputs[1].Placeholder = m.text.RegisterEmail
	m.registerInputs[2].Placeholder = m.text.RegisterPassword
	m.transcript.SetGreeting(m.text.InitialAssistant)
	m.refreshViewport()
	m.logger.Debug("language toggled", "lang", lang)
}

func (m *Model) setFormFocus(idx int) {
	m.formFocus = idx
	for i := range m.loginInputs {
		if m.screen == ScreenLogin && i == idx {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
	for i := range m.registerInputs {
		if m.screen == ScreenRegister && i == idx {
			m.registerInputs[i].Focus()
		} else {
			m.registerInputs[i].Blur()
		}
	}
}

func (m *Model) showError(text string) (tea.Model, tea.Cmd) {
	m.errorText = text
	return m, clearToastCmd()
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (m *Model) handleSendResult(msg SendResultMsg) (tea.Model, tea.Cmd) {
	m.sending = false
	if msg.Err != nil {
		m.logger.Error("send failed", "error", msg.Err)
		return m.showError(m.text.AlertSendFailed)
	}

	if strings.TrimSpace(m.input.Value()) == msg.UserText {
		m.input.SetValue("")
	}

	adopted := m.transcript.AppendExchange(
		msg.UserText, msg.Reply.Content, msg.Reply.Visualization, msg.Reply.ChatID)
	if adopted {
		// First reply of a new conversation: the first question becomes the
		// sidebar title.
		title := util.TruncateWidth(msg.UserText, sidebarTitleWidth)
		if err := m.sessions.AddConversation(msg.Reply.ChatID, title); err != nil {
			m.logger.Warn("could not persist conversation", "error", err)
		}
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

func (m *Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("login failed", "error", msg.Err)
		if errors.Is(msg.Err, api.ErrNotRegistered) {
			// Unknown identity: steer to registration with the email kept.
			m.screen = ScreenRegister
			m.registerInputs[1].SetValue(m.loginInputs[0].Value())
			m.setFormFocus(0)
		}
		return m.showError(m.text.AlertLoginFailed)
	}
	return m.enterPersonalizedMode(msg.Session)
}

func (m *Model) handleRegisterResult(msg RegisterResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("registration failed", "error", msg.Err)
		return m.showError(m.text.AlertRegisterFailed)
	}
	return m.enterPersonalizedMode(msg.Session)
}

func (m *Model) enterPersonalizedMode(sess *session.Session) (tea.Model, tea.Cmd) {
	if err := m.sessions.Set(sess); err != nil {
		m.logger.Warn("could not persist session", "error", err)
	}
	m.screen = ScreenChat
	m.focus = FocusInput
	m.input.Focus()
	m.sidebarIndex = -1
	m.transcript.StartNew(m.text.InitialAssistant, true)
	m.refreshViewport()
	m.logger.Info("logged in", "user", sess.Username)
	return m, nil
}

func (m *Model) handleHistoryResult(msg HistoryResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.transcript.FailLoad()
		m.refreshViewport()
		m.logger.Error("history load failed", "chat_id", msg.ChatID, "error", msg.Err)
		return m.showError(m.text.AlertLoadFailed)
	}
	m.transcript.CompleteLoad(msg.ChatID, msg.Messages)
	m.focus = FocusInput
	m.input.Focus()
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

func (m *Model) handleDeleteResult(msg DeleteResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("delete failed", "chat_id", msg.ChatID, "error", msg.Err)
		return m.showError(m.text.AlertDeleteFailed)
	}
	if err := m.sessions.RemoveConversation(msg.ChatID); err != nil {
		m.logger.Warn("could not persist conversation removal", "error", err)
	}
	m.transcript.DropConversation(msg.ChatID, m.text.InitialAssistant, true)
	m.sidebarIndex = -1
	m.refreshViewport()
	return m, nil
}
