package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/henrilemoine/fitpro/internal/account"
	"github.com/henrilemoine/fitpro/internal/config"
	"github.com/henrilemoine/fitpro/internal/debug"
	"github.com/henrilemoine/fitpro/internal/signup"
	"github.com/henrilemoine/fitpro/internal/ui"
)

// Focus targets, in tab order.
const (
	focusName     = ui.FocusName
	focusEmail    = ui.FocusEmail
	focusPassword = ui.FocusPassword
	focusButton   = ui.FocusButton
	focusCount    = focusButton + 1
)

// Model is the main application model.
type Model struct {
	// Configuration
	config  *config.Config
	service account.Service

	// Controller
	form *signup.Form

	// Inputs, indexed by focus target
	inputs [focusButton]textinput.Model
	focus  int

	// UI
	spinner  spinner.Model
	help     help.Model
	keys     KeyMap
	showHelp bool
	width    int
	height   int

	// Exit behavior
	shouldQuit bool
	created    int
}

// New creates a new Model.
func New(cfg *config.Config, form *signup.Form, svc account.Service) Model {
	name := textinput.New()
	name.Placeholder = "Enter your full name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "Enter your email address"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ui.ColorOnPrimary)),
	)

	m := Model{
		config:  cfg,
		service: svc,
		form:    form,
		inputs:  [focusButton]textinput.Model{name, email, password},
		spinner: s,
		help:    help.New(),
		keys:    KeyMapFromConfig(&cfg.Keys),
	}
	m.setFocus(focusName)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.form.State().IsSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SignupResolvedMsg:
		return m.handleResolved(msg)

	case ReloadMsg:
		if msg.Attempt != m.form.Attempt() {
			return m, nil
		}
		if m.config.Form.ExitAfterSignup {
			m.shouldQuit = true
			return m, tea.Quit
		}
		debug.Log("form reset after signup")
		m.form.Reset()
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.setFocus(focusName)
		return m, textinput.Blink
	}

	// Cursor blink and other input messages go to the focused input.
	if m.focus < focusButton {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles key presses.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % focusCount)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Confirm):
		if m.focus == focusButton {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, textinput.Blink
	}

	if m.focus == focusButton {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.form.SetField(signup.Field(m.focus), m.inputs[m.focus].Value()); err != nil {
		debug.Warn("set field", "err", err)
	}
	return m, cmd
}

// setFocus moves focus to target, focusing its input if it has one.
func (m *Model) setFocus(target int) {
	m.focus = target
	for i := range m.inputs {
		if i == target {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// submit starts a signup attempt unless the form refuses it.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, err := m.form.Submit()
	if err != nil {
		var verr *signup.ValidationError
		if errors.As(err, &verr) {
			debug.Log("submission rejected", "reason", verr.Detail())
		} else {
			debug.Log("submission suppressed", "reason", err)
		}
		return m, nil
	}

	debug.Log("submission started", "attempt", req.Attempt)
	return m, tea.Batch(m.spinner.Tick, signUp(m.service, req, m.config.Timeout()))
}

// handleResolved applies a service outcome to the form.
func (m Model) handleResolved(msg SignupResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		debug.Log("signup failed", "attempt", msg.Attempt, "err", msg.Err)
	}

	ev, err := m.form.Resolve(msg.Attempt, msg.Result)
	if err != nil {
		if errors.Is(err, signup.ErrStaleAttempt) {
			debug.Log("dropped stale outcome", "attempt", msg.Attempt)
		} else {
			debug.Warn("signup outcome", "attempt", msg.Attempt, "err", err)
		}
		return m, nil
	}

	if ev.Kind != signup.EventReload {
		return m, nil
	}

	m.created++
	attempt := m.form.Attempt()
	debug.Log("account created", "attempt", attempt, "reset_in", ev.After)
	return m, tea.Tick(ev.After, func(time.Time) tea.Msg {
		return ReloadMsg{Attempt: attempt}
	})
}

// View renders the UI.
func (m Model) View() string {
	state := m.form.State()

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	}

	return ui.Render(ui.RenderParams{
		Width:             m.width,
		Height:            m.height,
		Title:             m.config.Form.Title,
		Subtitle:          m.config.Form.Subtitle,
		NameInput:         m.inputs[focusName].View(),
		EmailInput:        m.inputs[focusEmail].View(),
		PasswordInput:     m.inputs[focusPassword].View(),
		Focus:             m.focus,
		Strength:          state.PasswordStrength,
		ShowStrengthLabel: m.config.UI.ShowStrengthLabel,
		EmailHint:         m.emailHint(state.Email),
		Err:               state.Error,
		Success:           state.Success,
		Submitting:        state.IsSubmitting,
		ButtonVariant:     ui.ParseButtonVariant(m.config.UI.ButtonStyle),
		SpinnerFrame:      m.spinner.View(),
		Help:              helpView,
		ShowHelp:          m.showHelp,
	})
}

// emailHint returns the corrected address to suggest, or "".
func (m Model) emailHint(email string) string {
	if !m.config.UI.SuggestDomains {
		return ""
	}
	domain := signup.SuggestEmailDomain(email, m.config.UI.KnownDomains)
	if domain == "" {
		return ""
	}
	return email[:strings.LastIndexByte(email, '@')+1] + domain
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Created returns how many accounts were created in this session.
func (m Model) Created() int {
	return m.created
}

// Commands

func signUp(svc account.Service, req signup.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		acc, err := svc.SignUp(ctx, req)
		return SignupResolvedMsg{
			Attempt: req.Attempt,
			Result:  signup.ResultOf(acc, err),
			Err:     err,
		}
	}
}
