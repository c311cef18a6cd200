package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Exchange is one submitted line and the response it produced.
type Exchange struct {
	Input string
	Text  string
	Hint  string
}

// Model is the Bubble Tea model for the contact-book REPL.
// Finished exchanges are printed above the program with tea.Println, so the
// view only holds the input line and the help bar.
type Model struct {
	r          Responder
	input      textinput.Model
	help       help.Model
	keys       replKeys
	prompt     string
	banner     string
	history    []string
	historyMax int
	histIdx    int // len(history) when not browsing.
	transcript []Exchange
	quitting   bool
	farewell   bool
	width      int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithBanner prints text once when the program starts.
func WithBanner(text string) ModelOption {
	return func(m *Model) { m.banner = text }
}

// WithHistory sets how many submitted lines up/down can recall.
func WithHistory(n int) ModelOption {
	return func(m *Model) { m.historyMax = n }
}

// NewModel creates a REPL model that sends each submitted line to r.
func NewModel(r Responder, prompt string, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "hello"
	ti.Focus()

	m := Model{
		r:      r,
		input:  ti,
		help:   help.New(),
		keys:   REPLKeyMap(),
		prompt: prompt,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blink and prints the banner.
func (m Model) Init() tea.Cmd {
	if m.banner == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, tea.Println(bannerStyle.Render(m.banner)))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and prints the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.remember(line)

	resp := m.r.Respond(line)
	m.transcript = append(m.transcript, Exchange{Input: line, Text: resp.Text, Hint: resp.Hint})

	cmds := []tea.Cmd{
		tea.Println(promptStyle.Render(m.prompt) + line),
		tea.Println(renderResponse(resp.Text, resp.Hint, resp.Err != nil)),
	}
	if resp.Quit {
		m.quitting = true
		m.farewell = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

// remember appends line to the recall history, dropping the oldest entry
// once historyMax is reached. Blank lines and immediate repeats are skipped.
func (m *Model) remember(line string) {
	defer func() { m.histIdx = len(m.history) }()
	if m.historyMax <= 0 || strings.TrimSpace(line) == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		return
	}
	m.history = append(m.history, line)
	if len(m.history) > m.historyMax {
		m.history = m.history[len(m.history)-m.historyMax:]
	}
}

// recall moves through history by delta; stepping past the newest entry
// clears the input.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	idx := m.histIdx + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.history) {
		m.histIdx = len(m.history)
		m.input.SetValue("")
		return
	}
	m.histIdx = idx
	m.input.SetValue(m.history[idx])
	m.input.CursorEnd()
}

// Transcript returns the exchanges submitted so far.
func (m Model) Transcript() []Exchange {
	out := make([]Exchange, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// Farewell reports whether the session ended through a quit phrase rather
// than an interrupt.
func (m Model) Farewell() bool { return m.farewell }

// View renders the input line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + m.help.View(m.keys) + "\n"
}
