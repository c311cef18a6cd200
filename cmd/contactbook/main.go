package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook"
	"github.com/smileynet/contactbook/internal/command"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/logging"
	"github.com/smileynet/contactbook/internal/session"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// resourceDir holds local overrides for embedded resources (banner.txt).
const resourceDir = ".contactbook"

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Extra config file applied after the user and project files." type:"path" placeholder:"PATH"`
}

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Run      RunCmd           `cmd:"" default:"withargs" help:"Start the interactive contact book."`
	Commands CommandsCmd      `cmd:"" help:"List the commands the contact book understands."`
}

// RunCmd starts an interactive session.
type RunCmd struct {
	Plain    bool   `help:"Force plain text output even if stdin and stdout are terminals." default:"false"`
	NoBanner bool   `help:"Skip the startup banner." default:"false"`
	Debug    bool   `help:"Log every dispatched command at debug level." default:"false"`
	LogFile  string `help:"Write structured logs to this file (rotated)." type:"path" placeholder:"PATH"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the run command.
func (r *RunCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return r.run(ctx, os.Stdin, os.Stdout, cfg)
}

// apply folds CLI flag overrides into cfg.
func (r *RunCmd) apply(cfg *config.Config) {
	if r.Plain {
		cfg.UI.Mode = config.ModePlain
	}
	if r.NoBanner {
		cfg.UI.Banner = false
	}
	if r.Debug {
		cfg.Log.Level = "debug"
	}
	if r.LogFile != "" {
		cfg.Log.File = r.LogFile
	}
}

// run wires the book, interpreter, and session, enabling testable wiring.
func (r *RunCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	r.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() { _ = closer.Close() }()

	banner, err := contactbook.Banner(resourceDir)
	if err != nil {
		return fmt.Errorf("run: loading banner: %w", err)
	}

	interp := command.NewInterpreter(contact.NewBook(),
		command.WithBanner(banner),
		command.WithSuggestions(cfg.UI.Suggest),
		command.WithLogger(logger),
	)

	opts := session.Options{
		In:      in,
		Out:     out,
		Mode:    cfg.UI.Mode,
		Prompt:  cfg.UI.Prompt,
		History: cfg.UI.History,
		Logger:  logger,
	}
	if cfg.UI.Banner {
		opts.Banner = banner
	}

	logger.Info("session started", "mode", cfg.UI.Mode, "version", version)
	err = session.New(interp, opts).Run(ctx)
	if errors.Is(err, context.Canceled) {
		// Interrupt is an ordinary way to leave the session.
		return nil
	}
	return err
}

// CommandsCmd prints the command table.
type CommandsCmd struct{}

// Run executes the commands command.
func (c *CommandsCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CommandsCmd) run(w io.Writer) error {
	for _, line := range command.Usage() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("commands: %w", err)
		}
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("An interactive contact book."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
