package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// PlainSession prints the prompt, reads a line, and prints the response,
// until a quit phrase or end of input.
type PlainSession struct {
	r      Responder
	in     io.Reader
	out    io.Writer
	prompt string
	banner string
	logger *slog.Logger
}

// Run loops over input lines. End of input ends the session without error.
func (s *PlainSession) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.banner != "" {
		_, _ = fmt.Fprintln(s.out, s.banner)
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		// bufio.Reader rather than Scanner: lines have no length limit.
		br := bufio.NewReader(s.in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				select {
				case lines <- trimEOL(line):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	for {
		_, _ = fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(s.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(s.out)
				s.logger.Info("session ended", "reason", "eof")
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("session: reading input: %w", err)
					}
				default:
				}
				return nil
			}

			resp := s.r.Respond(line)
			_, _ = fmt.Fprintln(s.out, resp.Text)
			if resp.Hint != "" {
				_, _ = fmt.Fprintln(s.out, resp.Hint)
			}
			if resp.Quit {
				s.logger.Info("session ended", "reason", "quit")
				return nil
			}
		}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
