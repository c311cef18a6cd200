package session

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// TUISession runs the REPL as a Bubble Tea program.
// Falls back to PlainSession if the program fails to start.
type TUISession struct {
	r        Responder
	in       io.Reader
	out      io.Writer
	prompt   string
	banner   string
	history  int
	logger   *slog.Logger
	fallback Session
}

// Run starts the Bubble Tea program and blocks until it exits.
// Cancelling ctx stops the program without error.
func (s *TUISession) Run(ctx context.Context) error {
	model := NewModel(s.r, s.prompt, WithBanner(s.banner), WithHistory(s.history))
	p := tea.NewProgram(model,
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if ctx.Err() != nil {
		s.logger.Info("session ended", "reason", "cancelled")
		return nil
	}
	if err != nil {
		s.logger.Warn("tui failed, falling back to plain", "error", err)
		return s.fallback.Run(ctx)
	}

	reason := "interrupt"
	if m, ok := final.(Model); ok && m.Farewell() {
		reason = "quit"
	}
	s.logger.Info("session ended", "reason", reason)
	return nil
}
