// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintzukunft/mintelligent-tui/internal/api"
	chatstate "github.com/mintzukunft/mintelligent-tui/internal/chat"
	"github.com/mintzukunft/mintelligent-tui/internal/config"
	"github.com/mintzukunft/mintelligent-tui/internal/locale"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/pages"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies the active view.
type Screen int

const (
	ScreenChat Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenPage
)

// Focus identifies which pane receives key input on the chat screen.
type Focus int

const (
	FocusInput Focus = iota
	FocusSidebar
)

// loginFieldCount and registerFieldCount size the auth forms. The register
// form has an extra virtual field for the role selector.
const (
	loginFieldCount    = 2
	registerFieldCount = 4
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the whole client UI.
type Model struct {
	// Collaborators
	cfg      *config.Config
	logger   *slog.Logger
	client   *api.Client
	sessions *session.Store
	langs    *locale.Store

	// Styling and keys
	theme  *styles.Theme
	keyMap KeyMap

	// Localized strings for the active language.
	text *locale.Text

	// View state
	screen     Screen
	focus      Focus
	transcript *chatstate.Transcript
	pageIndex  int

	// Dimensions
	width  int
	height int

	// Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// In-flight state. While sending is true the send control is disabled;
	// input typed in the meantime stays in the field.
	sending bool

	// confirmDelete holds the conversation id awaiting delete confirmation,
	// or "" when no prompt is shown.
	confirmDelete string

	// Sidebar selection index into the session's conversations. -1 selects
	// the "new chat" entry.
	sidebarIndex int

	// Alerts
	errorText string
	infoText  string

	// Auth forms
	loginInputs    [loginFieldCount]textinput.Model
	registerInputs [registerFieldCount - 1]textinput.Model
	formFocus      int
	roleIndex      int

	quitting bool
}

// roles is the register form's role cycle, in display order.
var roles = []api.Role{api.RoleTeacher, api.RoleAdmin, api.RoleOther}

// New creates the UI model. The greeting matches the stored language and the
// stored session decides between guest and personalized mode.
func New(cfg *config.Config, logger *slog.Logger, client *api.Client, sessions *session.Store, langs *locale.Store) *Model {
	theme := styles.NewTheme()
	text := langs.Text()

	input := textinput.New()
	input.Placeholder = text.ChatPlaceholder
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := &Model{
		cfg:          cfg,
		logger:       logger,
		client:       client,
		sessions:     sessions,
		langs:        langs,
		theme:        theme,
		keyMap:       DefaultKeyMap(),
		text:         text,
		screen:       ScreenChat,
		focus:        FocusInput,
		transcript:   chatstate.New(),
		viewport:     viewport.New(80, 20),
		input:        input,
		spinner:      sp,
		sidebarIndex: -1,
	}

	m.initForms()
	m.transcript.StartNew(text.InitialAssistant, sessions.IsLoggedIn())
	return m
}

// initForms builds the login and register inputs with localized labels.
func (m *Model) initForms() {
	for i := range m.loginInputs {
		ti := textinput.New()
		ti.CharLimit = 200
		m.loginInputs[i] = ti
	}
	m.loginInputs[0].Placeholder = m.text.LoginEmail
	m.loginInputs[1].Placeholder = m.text.LoginPassword
	m.loginInputs[1].EchoMode = textinput.EchoPassword

	for i := range m.registerInputs {
		ti := textinput.New()
		ti.CharLimit = 200
		m.registerInputs[i] = ti
	}
	m.registerInputs[0].Placeholder = m.text.RegisterName
	m.registerInputs[1].Placeholder = m.text.RegisterEmail
	m.registerInputs[2].Placeholder = m.text.RegisterPassword
	m.registerInputs[2].EchoMode = textinput.EchoPassword
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// currentPage returns the static page selected on the page screen.
func (m *Model) currentPage() pages.Page {
	if m.pageIndex < 0 || m.pageIndex >= len(pages.All) {
		return pages.All[0]
	}
	return pages.All[m.pageIndex]
}

// conversationTitle returns the sidebar title for the open conversation, or
// the localized "new chat" label.
func (m *Model) conversationTitle() string {
	id := m.transcript.CurrentID()
	if id == "" {
		return m.text.NewChat
	}
	if sess := m.sessions.Current(); sess != nil {
		for _, c := range sess.Conversations {
			if c.ID == id {
				return c.Title
			}
		}
	}
	return m.text.NewChat
}
