// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the mintelligent CLI.
//
// Handles the "mintelligent chat" command which provides a line-based REPL
// for talking to the assistant without the full-screen UI.
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /login              Log in (switches to personalized mode)
//   /register           Create an account and log in
//   /logout             Drop the stored session
//   /language [de|en]   Show or switch language
//   /list               List stored conversations
//   /open N             Open conversation N from the list
//   /new                Start a fresh conversation
//   /delete N           Delete conversation N
//   /export             Write the transcript to a Markdown file
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/mintzukunft/mintelligent-tui/internal/api"
	"github.com/mintzukunft/mintelligent-tui/internal/config"
	"github.com/mintzukunft/mintelligent-tui/internal/export"
	"github.com/mintzukunft/mintelligent-tui/internal/locale"
	"github.com/mintzukunft/mintelligent-tui/internal/model"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI(dataDir string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	if dataDir == "" {
		dataDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dataDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// ReadSecret reads a line without echo. Secrets never enter the history.
func (c *ChatCLI) ReadSecret(prompt string) (string, error) {
	return c.line.PasswordPrompt(prompt)
}

// SaveHistory persists command history to file with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for an interactive chat session.
type ChatSession struct {
	Env *Env

	// Transcript as displayed, including the greeting.
	Messages []model.Message

	// Open backend conversation, "" for a fresh one.
	ChatID string

	StartTime time.Time
	InputCLI  *ChatCLI
}

// NewChatSession creates a new chat session in the stored language and mode.
func NewChatSession(env *Env) *ChatSession {
	text := env.Text()
	greeting := model.NewAssistantMessage(text.InitialAssistant, env.Sessions.IsLoggedIn(), nil)

	dataDir := env.Config.DataDir
	if dataDir == "" {
		if dir, err := config.ConfigDir(); err == nil {
			dataDir = dir
		}
	}

	return &ChatSession{
		Env:       env,
		Messages:  []model.Message{greeting},
		StartTime: time.Now(),
		InputCLI:  NewChatCLI(dataDir),
	}
}

// reset starts a fresh conversation with a localized greeting.
func (s *ChatSession) reset() {
	text := s.Env.Text()
	s.ChatID = ""
	s.Messages = []model.Message{
		model.NewAssistantMessage(text.InitialAssistant, s.Env.Sessions.IsLoggedIn(), nil),
	}
}

// opCtx returns a context bounded by the configured API timeout.
func (s *ChatSession) opCtx() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if s.Env.Config != nil && s.Env.Config.API.TimeoutSecs > 0 {
		timeout = time.Duration(s.Env.Config.API.TimeoutSecs) * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand handles the "chat" command with full interactive support.
func HandleChatCommand(env *Env) error {
	session := NewChatSession(env)
	defer session.InputCLI.Close()

	printWelcome(session)

	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("mint> "))
		if err != nil {
			// Ctrl+C (ErrPromptAborted) and Ctrl+D both exit gracefully.
			fmt.Println()
			fmt.Println(infoStyle.Render(env.Text().Footer))
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			shouldContinue, err := handleSlashCommand(input, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !shouldContinue {
				fmt.Println(infoStyle.Render(env.Text().Footer))
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			fmt.Println(infoStyle.Render(env.Text().Footer))
			return nil
		}

		if err := processMessage(session, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage answers one user input. Guests get the static localized
// sample without any backend traffic; the exchange only lands in the
// transcript once an answer exists.
func processMessage(session *ChatSession, input string) error {
	env := session.Env
	text := env.Text()

	if !env.Sessions.IsLoggedIn() {
		session.Messages = append(session.Messages,
			model.NewUserMessage(input, false),
			model.NewAssistantMessage(text.GuestReply, false, nil))

		fmt.Println()
		fmt.Println(assistantStyle.Render(text.SenderAssistant))
		displayResponse(text.GuestReply)
		fmt.Println()
		fmt.Println(warningStyle.Render(text.ModeHintGuest))
		fmt.Println()
		return nil
	}

	ctx, cancel := session.opCtx()
	defer cancel()

	reply, err := env.Client.SendMessage(ctx, env.Sessions.Current(), session.ChatID, input)
	if err != nil {
		return fmt.Errorf("%s: %w", text.AlertSendFailed, err)
	}

	if session.ChatID == "" && reply.ChatID != "" {
		session.ChatID = reply.ChatID
		title := input
		if len([]rune(title)) > 40 {
			title = string([]rune(title)[:40])
		}
		if err := env.Sessions.AddConversation(reply.ChatID, title); err != nil {
			env.Logger.Warn("could not persist conversation", "error", err)
		}
	}

	session.Messages = append(session.Messages,
		model.NewUserMessage(input, true),
		model.NewAssistantMessage(reply.Content, true, reply.Visualization))

	fmt.Println()
	fmt.Println(assistantStyle.Render(text.SenderAssistant + " " + text.PersonalizedTag))
	displayResponse(reply.Content)
	if reply.Visualization != nil {
		printVisualization(text, reply.Visualization)
	}
	fmt.Println()
	return nil
}

// printVisualization prints the activity metadata card as plain lines.
func printVisualization(text *locale.Text, viz *model.Visualization) {
	fmt.Println()
	fmt.Println(commandStyle.Render(viz.ActivityName))
	fmt.Printf("  %s %d/10\n", infoStyle.Render(text.VizEngagement), viz.EngagementScore)
	fmt.Printf("  %s %d/10\n", infoStyle.Render(text.VizDifficulty), viz.DifficultyScore)
	fmt.Printf("  %s %s\n", infoStyle.Render(text.VizCosts), costLabel(text, viz.CostEstimation))
	fmt.Printf("  %s %d min\n", infoStyle.Render(text.VizPrepTime), viz.PrepTimeMinutes)
}

func costLabel(text *locale.Text, tier model.CostTier) string {
	switch tier {
	case model.CostLow:
		return text.CostLow
	case model.CostMedium:
		return text.CostMedium
	case model.CostHigh:
		return text.CostHigh
	}
	return string(tier)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (shouldContinue, error) where shouldContinue=false means exit.
func handleSlashCommand(cmd string, session *ChatSession) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "/help", "/h", "/?", "/":
		printHelp()
		return true, nil

	case "/login":
		return true, handleLogin(session)

	case "/register":
		return true, handleRegister(session)

	case "/logout":
		err := HandleLogoutCommand(session.Env)
		session.reset()
		return true, err

	case "/language", "/lang":
		err := HandleLanguageCommand(session.Env, args)
		if err == nil && len(args) > 0 {
			// Rewrite the greeting when it is still the only message.
			if len(session.Messages) == 1 {
				session.reset()
			}
		}
		return true, err

	case "/new", "/n":
		session.reset()
		fmt.Println(commandStyle.Render("[" + session.Env.Text().NewChat + "]"))
		return true, nil

	case "/list", "/l":
		printConversations(session)
		return true, nil

	case "/open", "/o":
		return true, handleOpen(session, args)

	case "/delete", "/d":
		return true, handleDelete(session, args)

	case "/export", "/e":
		return true, handleExport(session)

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// handleLogin prompts for credentials and switches to personalized mode.
func handleLogin(session *ChatSession) error {
	env := session.Env
	text := env.Text()

	identifier, err := session.InputCLI.ReadInput(text.LoginEmail + ": ")
	if err != nil {
		return nil
	}
	password, err := session.InputCLI.ReadSecret(text.LoginPassword + ": ")
	if err != nil {
		return nil
	}

	ctx, cancel := session.opCtx()
	defer cancel()

	sess, err := env.Client.Login(ctx, strings.TrimSpace(identifier), password)
	if err != nil {
		if errors.Is(err, api.ErrNotRegistered) {
			fmt.Println(warningStyle.Render("[" + text.LoginNoAccount + " " + text.LoginGoRegister + "]"))
			return nil
		}
		return fmt.Errorf("%s: %w", text.AlertLoginFailed, err)
	}

	if err := env.Sessions.Set(sess); err != nil {
		env.Logger.Warn("could not persist session", "error", err)
	}
	session.reset()
	fmt.Printf("%s %s\n", commandStyle.Render("[OK]"), sess.Username)
	return nil
}

// handleRegister prompts for account details, creates the account, and logs
// in.
func handleRegister(session *ChatSession) error {
	env := session.Env
	text := env.Text()

	name, err := session.InputCLI.ReadInput(text.RegisterName + ": ")
	if err != nil {
		return nil
	}
	email, err := session.InputCLI.ReadInput(text.RegisterEmail + ": ")
	if err != nil {
		return nil
	}
	password, err := session.InputCLI.ReadSecret(text.RegisterPassword + ": ")
	if err != nil {
		return nil
	}

	roleInput, err := session.InputCLI.ReadInput(text.RegisterRole + " [1=" +
		text.RoleTeacher + " 2=" + text.RoleAdmin + " 3=" + text.RoleOther + "]: ")
	if err != nil {
		return nil
	}
	role := api.RoleTeacher
	switch strings.TrimSpace(roleInput) {
	case "2":
		role = api.RoleAdmin
	case "3":
		role = api.RoleOther
	}

	ctx, cancel := session.opCtx()
	defer cancel()

	sess, err := env.Client.Register(ctx,
		strings.TrimSpace(name), strings.TrimSpace(email), password, role)
	if err != nil {
		return fmt.Errorf("%s: %w", text.AlertRegisterFailed, err)
	}

	if err := env.Sessions.Set(sess); err != nil {
		env.Logger.Warn("could not persist session", "error", err)
	}
	session.reset()
	fmt.Printf("%s %s\n", commandStyle.Render("[OK]"), sess.Username)
	return nil
}

// conversationAt resolves a 1-based /list index argument.
func conversationAt(session *ChatSession, args []string) (id, title string, err error) {
	sess := session.Env.Sessions.Current()
	if sess == nil || len(sess.Conversations) == 0 {
		return "", "", errors.New("no stored conversations (log in first)")
	}
	if len(args) == 0 {
		return "", "", errors.New("missing conversation number (see /list)")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(sess.Conversations) {
		return "", "", fmt.Errorf("no conversation %q (see /list)", args[0])
	}
	conv := sess.Conversations[n-1]
	return conv.ID, conv.Title, nil
}

// handleOpen loads a stored conversation into the transcript.
func handleOpen(session *ChatSession, args []string) error {
	env := session.Env
	text := env.Text()

	id, title, err := conversationAt(session, args)
	if err != nil {
		return err
	}

	ctx, cancel := session.opCtx()
	defer cancel()

	msgs, err := env.Client.FetchHistory(ctx, env.Sessions.Current(), id)
	if err != nil {
		return fmt.Errorf("%s: %w", text.AlertLoadFailed, err)
	}

	session.ChatID = id
	session.Messages = msgs

	fmt.Println()
	fmt.Println(commandStyle.Render(title))
	for _, msg := range msgs {
		if msg.IsAssistant() {
			fmt.Println(assistantStyle.Render(text.SenderAssistant))
			displayResponse(msg.Text)
			if msg.Visualization != nil {
				printVisualization(text, msg.Visualization)
			}
		} else {
			fmt.Printf("%s %s\n", promptStyle.Render(text.SenderYou+":"), msg.Text)
		}
	}
	fmt.Println()
	return nil
}

// handleDelete deletes a stored conversation after a confirmation prompt.
func handleDelete(session *ChatSession, args []string) error {
	env := session.Env
	text := env.Text()

	id, title, err := conversationAt(session, args)
	if err != nil {
		return err
	}

	answer, err := session.InputCLI.ReadInput(text.DeleteConfirm + " [y/N]: ")
	if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return nil
	}

	ctx, cancel := session.opCtx()
	defer cancel()

	if err := env.Client.DeleteChat(ctx, env.Sessions.Current(), id); err != nil {
		return fmt.Errorf("%s: %w", text.AlertDeleteFailed, err)
	}
	if err := env.Sessions.RemoveConversation(id); err != nil {
		env.Logger.Warn("could not persist conversation removal", "error", err)
	}
	if session.ChatID == id {
		session.reset()
	}
	fmt.Printf("%s %s\n", commandStyle.Render("[Deleted]"), title)
	return nil
}

// handleExport writes the transcript to a Markdown file in the working
// directory.
func handleExport(session *ChatSession) error {
	if len(session.Messages) < 2 {
		return errors.New("nothing to export yet")
	}

	title := session.Env.Text().NewChat
	if sess := session.Env.Sessions.Current(); sess != nil {
		for _, c := range sess.Conversations {
			if c.ID == session.ChatID {
				title = c.Title
			}
		}
	}

	path, err := export.ToFile(title, session.Messages, export.NewMarkdownExporter(nil), nil)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", commandStyle.Render("[Exported]"), path)
	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession) {
	env := session.Env
	text := env.Text()

	fmt.Println()
	fmt.Println(welcomeStyle.Render(text.HeaderTitle))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))

	if env.Sessions.IsLoggedIn() {
		name := ""
		if sess := env.Sessions.Current(); sess != nil {
			name = sess.Username
		}
		fmt.Printf("%s %s (%s)\n",
			infoStyle.Render("Mode:"),
			commandStyle.Render(text.ModePersonal),
			name)
	} else {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Mode:"),
			warningStyle.Render(text.ModeGuest))
		fmt.Println(infoStyle.Render(text.ModeHintGuest))
	}

	fmt.Println()
	fmt.Println(assistantStyle.Render(text.SenderAssistant))
	displayResponse(text.InitialAssistant)
	fmt.Println()
	fmt.Println(infoStyle.Render("Commands: /help, /login, /quit"))
	fmt.Println()
}

// printHelp prints available commands.
func printHelp() {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/login", "Log in (personalized mode)"},
		{"/register", "Create an account and log in"},
		{"/logout", "Drop the stored session"},
		{"/language [de|en]", "Show or switch language"},
		{"/list, /l", "List stored conversations"},
		{"/open N, /o N", "Open conversation N"},
		{"/new, /n", "Start a fresh conversation"},
		{"/delete N, /d N", "Delete conversation N"},
		{"/export, /e", "Export transcript to Markdown"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-18s", c.cmd)),
			infoStyle.Render(c.desc))
	}
	fmt.Println()
}

// printConversations prints the stored conversation list, newest first as
// stored.
func printConversations(session *ChatSession) {
	sess := session.Env.Sessions.Current()
	if sess == nil || len(sess.Conversations) == 0 {
		fmt.Println(infoStyle.Render("[No stored conversations]"))
		return
	}

	fmt.Println()
	for i, conv := range sess.Conversations {
		marker := "  "
		if conv.ID == session.ChatID {
			marker = commandStyle.Render("> ")
		}
		fmt.Printf("%s%d. %s\n", marker, i+1, conv.Title)
	}
	fmt.Println()
}
