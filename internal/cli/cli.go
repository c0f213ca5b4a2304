// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the plain terminal interface: a line-based chat
// REPL for environments where the full-screen UI is unwanted (pipes, dumb
// terminals, scripted use), plus the small one-shot commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mintzukunft/mintelligent-tui/internal/api"
	"github.com/mintzukunft/mintelligent-tui/internal/config"
	"github.com/mintzukunft/mintelligent-tui/internal/export"
	"github.com/mintzukunft/mintelligent-tui/internal/locale"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/styles"
)

// Version is the client version reported by the version command.
const Version = "0.1.0"

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)
)

// =============================================================================
// ENVIRONMENT
// =============================================================================

// Env bundles the collaborators every CLI command needs.
type Env struct {
	Config   *config.Config
	Logger   *slog.Logger
	Client   *api.Client
	Sessions *session.Store
	Langs    *locale.Store
}

// Text returns the localized strings for the active language.
func (e *Env) Text() *locale.Text {
	return e.Langs.Text()
}

// =============================================================================
// ONE-SHOT COMMANDS
// =============================================================================

// HandleVersionCommand prints the client version.
func HandleVersionCommand() error {
	fmt.Printf("mintelligent %s\n", Version)
	return nil
}

// HandleLogoutCommand drops the stored session. The backend is not told;
// the token simply stops being used.
func HandleLogoutCommand(env *Env) error {
	if !env.Sessions.IsLoggedIn() {
		fmt.Println(infoStyle.Render("[Not logged in]"))
		return nil
	}
	env.Sessions.Clear()
	env.Logger.Info("logged out")
	fmt.Println(commandStyle.Render("[Logged out]"))
	return nil
}

// HandleExportCommand fetches a stored conversation and writes it to a
// Markdown file in the working directory. With no argument it lists the
// stored conversations.
func HandleExportCommand(env *Env, args []string) error {
	sess := env.Sessions.Current()
	if sess == nil {
		return errors.New("not logged in (stored conversations live on the backend)")
	}
	if len(args) == 0 {
		if len(sess.Conversations) == 0 {
			fmt.Println(infoStyle.Render("[No stored conversations]"))
			return nil
		}
		for i, conv := range sess.Conversations {
			fmt.Printf("  %d. %s\n", i+1, conv.Title)
		}
		fmt.Println(infoStyle.Render("Usage: mintelligent export N"))
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(sess.Conversations) {
		return fmt.Errorf("no conversation %q (run without arguments to list)", args[0])
	}
	conv := sess.Conversations[n-1]

	timeout := 60 * time.Second
	if env.Config != nil && env.Config.API.TimeoutSecs > 0 {
		timeout = time.Duration(env.Config.API.TimeoutSecs) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	msgs, err := env.Client.FetchHistory(ctx, sess, conv.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", env.Text().AlertLoadFailed, err)
	}

	path, err := export.ToFile(conv.Title, msgs, export.NewMarkdownExporter(nil), nil)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", commandStyle.Render("[Exported]"), path)
	return nil
}

// HandleLanguageCommand shows or switches the stored language.
func HandleLanguageCommand(env *Env, args []string) error {
	if len(args) == 0 {
		fmt.Printf("%s %s\n", infoStyle.Render("[Language]"), env.Langs.Get())
		return nil
	}
	lang := locale.Language(args[0])
	if !lang.Valid() {
		return fmt.Errorf("unsupported language %q (use de or en)", args[0])
	}
	env.Langs.Set(lang)
	fmt.Printf("%s %s\n", commandStyle.Render("[Language]"), lang)
	return nil
}
