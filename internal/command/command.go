// Package command turns raw input lines into typed contact-book commands,
// executes them against a contact.Book, and translates every failure into the
// fixed user-facing messages shown by the session.
package command

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smileynet/contactbook/internal/contact"
)

// Kind identifies a parsed command.
type Kind int

const (
	KindUnknown Kind = iota
	KindHello
	KindAdd
	KindChange
	KindPhone
	KindShowAll
	KindDelete
	KindHelp
	KindQuit
)

// keyword is one entry of the command table. Words are matched exactly
// against the leading tokens of a title-cased line.
type keyword struct {
	kind  Kind
	words []string
	usage string
	help  string
}

// table lists the recognised keywords. Matching is by whole tokens, so the
// order only matters for help output.
var table = []keyword{
	{KindHello, []string{"Hello"}, "hello", "start work with the bot"},
	{KindAdd, []string{"Add"}, "add <name> <phone>...", "create or replace a contact"},
	{KindChange, []string{"Change"}, "change <name> <phone>...", "check phones of an existing contact"},
	{KindPhone, []string{"Phone"}, "phone <name>", "show one contact"},
	{KindShowAll, []string{"Show", "All"}, "show all", "show every contact"},
	{KindDelete, []string{"Del"}, "del <name>", "delete a contact"},
	{KindHelp, []string{"Help"}, "help", "print this help"},
}

// quitPhrases end the session. Compared lowercased with inner whitespace collapsed.
var quitPhrases = map[string]bool{
	"exit":     true,
	"close":    true,
	"good bye": true,
}

func (k Kind) String() string {
	switch k {
	case KindHello:
		return "hello"
	case KindAdd:
		return "add"
	case KindChange:
		return "change"
	case KindPhone:
		return "phone"
	case KindShowAll:
		return "show all"
	case KindDelete:
		return "del"
	case KindHelp:
		return "help"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed input line.
type Command struct {
	Kind Kind
	Args []string
	Raw  string
}

// Arg returns the i-th positional argument.
// Returns an error wrapping contact.ErrMissingArgument if it was not supplied.
func (c Command) Arg(i int) (string, error) {
	if i < 0 || i >= len(c.Args) {
		return "", fmt.Errorf("%w: %s needs argument %d", contact.ErrMissingArgument, c.Kind, i+1)
	}
	return c.Args[i], nil
}

// Rest returns the positional arguments from index i on.
func (c Command) Rest(i int) []string {
	if i >= len(c.Args) {
		return nil
	}
	return c.Args[i:]
}

// Parse converts a raw input line into a Command.
//
// The line is title-cased word by word, so keywords match case-insensitively
// and arguments (contact names) arrive title-cased. Lines that match no
// keyword yield KindUnknown with no arguments.
//
// Title casing follows Unicode word boundaries: apostrophes and digits stay
// inside a word, so "o'brien" becomes "O'brien" and "bob2x" becomes "Bob2x".
func Parse(line string) Command {
	if IsQuit(line) {
		return Command{Kind: KindQuit, Raw: line}
	}

	tokens := strings.Fields(cases.Title(language.Und).String(line))
	for _, kw := range table {
		if hasWords(tokens, kw.words) {
			return Command{Kind: kw.kind, Args: tokens[len(kw.words):], Raw: line}
		}
	}
	return Command{Kind: KindUnknown, Raw: line}
}

// IsQuit reports whether line is one of the session-ending phrases.
// Case is ignored, and so are leading, trailing and repeated spaces
// (" exit ", "good   bye").
func IsQuit(line string) bool {
	return quitPhrases[strings.Join(strings.Fields(strings.ToLower(line)), " ")]
}

func hasWords(tokens, words []string) bool {
	if len(tokens) < len(words) {
		return false
	}
	for i, w := range words {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

// Usage returns one "usage - description" line per keyword, plus the quit phrases.
func Usage() []string {
	lines := make([]string, 0, len(table)+1)
	for _, kw := range table {
		lines = append(lines, fmt.Sprintf("%-26s %s", kw.usage, kw.help))
	}
	lines = append(lines, fmt.Sprintf("%-26s %s", "good bye | close | exit", "end the session"))
	return lines
}
