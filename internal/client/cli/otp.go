package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/sitekeeper/internal/client/auth"
)

// otpResult is how the two-factor screen was left.
type otpResult int

const (
	otpCancelled otpResult = iota
	otpVerified
	otpBack
)

// otpModel is the six-slot two-factor screen. Keystrokes go straight to the
// flow; the model only remembers the last error and how it ended.
type otpModel struct {
	ctx    context.Context
	flow   *auth.Flow
	st     styles
	err    error
	result otpResult
}

func newOTPModel(ctx context.Context, flow *auth.Flow, st styles) *otpModel {
	return &otpModel{ctx: ctx, flow: flow, st: st}
}

func (m *otpModel) Init() tea.Cmd { return nil }

func (m *otpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.result = otpCancelled
		return m, tea.Quit
	case tea.KeyEsc:
		m.err = m.flow.Back()
		m.result = otpBack
		return m, tea.Quit
	case tea.KeyEnter:
		if m.err = m.flow.Verify(m.ctx); m.err != nil {
			return m, nil
		}
		m.result = otpVerified
		return m, tea.Quit
	case tea.KeyBackspace:
		m.err = m.flow.Backspace(m.flow.Focus())
	case tea.KeyRunes:
		m.err = nil
		for _, r := range key.Runes {
			if m.codeFull() {
				break
			}
			if m.err = m.flow.EnterDigit(m.flow.Focus(), string(r)); m.err != nil {
				break
			}
		}
	}
	return m, nil
}

// codeFull reports whether focus sits on the filled last slot; further
// digits are dropped until a backspace.
func (m *otpModel) codeFull() bool {
	focus := m.flow.Focus()
	return focus == auth.CodeLength-1 && m.flow.Slots()[focus] != ""
}

func (m *otpModel) View() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("Two-factor verification") + "\n")
	if acc, ok := m.flow.Pending(); ok {
		b.WriteString(m.st.muted.Render("Enter the 6-digit code sent to "+acc.Email) + "\n\n")
	}

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(3).Align(lipgloss.Center)
	focus := m.flow.Focus()
	boxes := make([]string, 0, auth.CodeLength)
	for i, d := range m.flow.Slots() {
		s := box
		if i == focus {
			s = s.BorderForeground(m.st.accent.GetForeground())
		}
		boxes = append(boxes, s.Render(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n")

	if m.err != nil {
		b.WriteString(m.st.err.Render(describeError(m.err)) + "\n")
	}
	b.WriteString(m.st.muted.Render("enter: verify  esc: back  ctrl+c: cancel") + "\n")
	return b.String()
}

// runOTPProgram runs the screen to completion. Swapped in tests.
var runOTPProgram = func(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
}

func (a *App) enterCodeInteractive(ctx context.Context) error {
	final, err := runOTPProgram(newOTPModel(ctx, a.flow, a.styles()), a.tty, a.out)
	if err != nil {
		return err
	}
	m, ok := final.(*otpModel)
	if !ok {
		return errors.New("unexpected two-factor screen result")
	}

	switch m.result {
	case otpVerified:
		a.welcome()
	case otpBack:
		a.println("Back to sign-in.")
	default:
		a.println(a.styles().muted.Render("Code entry paused; use 'code' to resume or 'back' to leave."))
	}
	return nil
}
