// Package session runs the interactive contact-book loop: a Bubble Tea REPL
// on a terminal, or a plain prompt/response line loop otherwise.
package session

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/contactbook/internal/command"
	"github.com/smileynet/contactbook/internal/config"
)

// Responder turns one input line into display text.
// *command.Interpreter is the production implementation.
type Responder interface {
	Respond(line string) command.Response
}

// Session runs until the user quits, input ends, or ctx is cancelled.
type Session interface {
	Run(ctx context.Context) error
}

// Options configures session creation.
type Options struct {
	In      io.Reader    // Input source (default: os.Stdin).
	Out     io.Writer    // Output destination (default: os.Stdout).
	Mode    string       // config.ModeAuto, ModeTUI or ModePlain.
	Prompt  string       // Shown before each input line.
	Banner  string       // Printed once before the first prompt; empty skips it.
	History int          // Input lines recalled with up/down (TUI only).
	Logger  *slog.Logger // Session lifecycle records (default: discard).
}

// New returns a TUI session when both ends are terminals (or the mode forces
// it), and a plain line session otherwise.
func New(r Responder, opts Options) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	var useTUI bool
	switch opts.Mode {
	case config.ModeTUI:
		useTUI = true
	case config.ModePlain:
	default:
		useTUI = isTTY(opts.In) && isTTY(opts.Out)
	}

	plain := &PlainSession{r: r, in: opts.In, out: opts.Out, prompt: opts.Prompt, banner: opts.Banner, logger: opts.Logger}
	if !useTUI {
		return plain
	}
	return &TUISession{
		r:        r,
		in:       opts.In,
		out:      opts.Out,
		prompt:   opts.Prompt,
		banner:   opts.Banner,
		history:  opts.History,
		logger:   opts.Logger,
		fallback: plain,
	}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
