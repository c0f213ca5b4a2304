// MINTelligent - terminal client for the MINT Zukunft assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mintzukunft/mintelligent-tui/internal/api"
	"github.com/mintzukunft/mintelligent-tui/internal/cli"
	"github.com/mintzukunft/mintelligent-tui/internal/config"
	"github.com/mintzukunft/mintelligent-tui/internal/locale"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
	"github.com/mintzukunft/mintelligent-tui/internal/ui/chat"
)

func main() {
	// A local .env is optional; environment wins over file values either way.
	_ = godotenv.Load()

	env, cleanup, err := buildEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cmd := ""
	args := []string{}
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		args = os.Args[2:]
	}

	switch cmd {
	case "", "tui":
		err = runTUI(env)
	case "chat":
		err = cli.HandleChatCommand(env)
	case "export":
		err = cli.HandleExportCommand(env, args)
	case "logout":
		err = cli.HandleLogoutCommand(env)
	case "language", "lang":
		err = cli.HandleLanguageCommand(env, args)
	case "version", "--version", "-v":
		err = cli.HandleVersionCommand()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEnv loads configuration and wires the shared collaborators. The
// returned cleanup flushes the log file.
func buildEnv() (*cli.Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}

	// Stderr stays quiet: both interfaces own the terminal.
	logger, closeLog, err := config.SetupLogger(logPath, config.ParseLevel(cfg.Logging.Level), false)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = closeLog() }
	slog.SetDefault(logger)

	sessionPath, err := cfg.SessionPath()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	languagePath, err := cfg.LanguagePath()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	langs := locale.NewStore(languagePath)
	if cfg.UI.Language != "" {
		if lang := locale.Language(cfg.UI.Language); lang.Valid() {
			langs.Set(lang)
		}
	}

	env := &cli.Env{
		Config:   cfg,
		Logger:   logger,
		Client:   api.NewClient(cfg.API.BaseURL, logger),
		Sessions: session.NewStore(sessionPath),
		Langs:    langs,
	}
	return env, cleanup, nil
}

// runTUI starts the full-screen interface.
func runTUI(env *cli.Env) error {
	if !cli.IsStdinTTY() {
		return fmt.Errorf("not a terminal (use 'mintelligent chat' for piped input)")
	}

	m := chat.New(env.Config, env.Logger, env.Client, env.Sessions, env.Langs)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Live config reload feeds the running program.
	if configPath, err := config.ConfigPathTOML(); err == nil {
		if watcher, werr := config.NewWatcher(configPath, 200*time.Millisecond); werr == nil {
			defer watcher.Close()
			if werr := watcher.Watch(); werr == nil {
				go func() {
					for cfg := range watcher.Changes() {
						p.Send(chat.ConfigReloadedMsg{Config: cfg})
					}
				}()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Println(`mintelligent - chat client for the MINT Zukunft assistant

Usage:
  mintelligent             Start the full-screen interface
  mintelligent chat        Line-based chat (works in pipes and dumb terminals)
  mintelligent export [N]  Export stored conversation N as Markdown
  mintelligent language    Show or switch the language (de/en)
  mintelligent logout      Drop the stored session
  mintelligent version     Print the client version
  mintelligent help        Show this help`)
}
