package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katzedaze/portfolio/pkg/apiclient"
)

type loggedInMsg struct {
	name string
}

type loginScreen struct {
	client *apiclient.Client

	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errText  string
	width    int
	height   int
}

func newLoginScreen(client *apiclient.Client) *loginScreen {
	email := textinput.New()
	email.Placeholder = "admin@example.com"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	return &loginScreen{
		client:   client,
		email:    email,
		password: password,
	}
}

func (s *loginScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *loginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateInputs(msg)
	}
	if s.busy {
		return nil
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		if s.focus == 0 {
			s.focus = 1
			s.email.Blur()
			return s.password.Focus()
		}
		s.focus = 0
		s.password.Blur()
		return s.email.Focus()
	case "enter":
		if s.focus == 0 {
			s.focus = 1
			s.email.Blur()
			return s.password.Focus()
		}
		return s.submit()
	}
	return s.updateInputs(msg)
}

func (s *loginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	if email == "" || password == "" {
		s.errText = "メールアドレスとパスワードを入力してください"
		return nil
	}

	s.busy = true
	s.errText = ""
	client := s.client
	return func() tea.Msg {
		var out struct {
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		err := client.Post(context.Background(), "/api/auth/login", map[string]any{
			"email":    email,
			"password": password,
		}, &out)
		if err != nil {
			if apiErr, ok := apiclient.AsError(err); ok {
				return loginFailedMsg{text: apiErr.Message}
			}
			return loginFailedMsg{text: err.Error()}
		}
		return loggedInMsg{name: out.User.Name}
	}
}

type loginFailedMsg struct {
	text string
}

func (s *loginScreen) handleResult(msg tea.Msg) {
	switch m := msg.(type) {
	case loginFailedMsg:
		s.busy = false
		s.errText = m.text
	case loggedInMsg:
		s.busy = false
	}
}

func (s *loginScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return cmd
}

func (s *loginScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ログイン"))
	b.WriteString("\n")
	b.WriteString("メールアドレス\n")
	b.WriteString(s.email.View())
	b.WriteString("\n")
	b.WriteString("パスワード\n")
	b.WriteString(s.password.View())
	b.WriteString("\n")
	if s.busy {
		b.WriteString(dimStyle.Render("認証中..."))
		b.WriteString("\n")
	}
	if s.errText != "" {
		b.WriteString(errorStyle.Render(s.errText))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter login · ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}
