package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katzedaze/portfolio/pkg/apiclient"
)

type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	// Capturing reports whether the screen wants raw key input, which
	// suppresses the app-level tab and quit bindings.
	Capturing() bool
}

// App is the admin terminal client. It shows the login screen until a
// session cookie is obtained, then tabs across one screen per resource.
type App struct {
	login   *loginScreen
	tabs    []string
	screens []screen
	active  int
	authed  bool
	width   int
	height  int
}

func NewApp(client *apiclient.Client) *App {
	return &App{
		login: newLoginScreen(client),
		tabs:  []string{"スキル", "自己PR", "企業", "プロジェクト"},
		screens: []screen{
			newSkillsScreen(client),
			newIntroductionsScreen(client),
			newCompaniesScreen(client),
			newProjectsScreen(client),
		},
	}
}

func (a *App) Init() tea.Cmd {
	return a.login.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.login.SetSize(msg.Width, msg.Height)
		for _, s := range a.screens {
			s.SetSize(msg.Width, msg.Height)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case loggedInMsg, loginFailedMsg:
		a.login.handleResult(msg)
		if _, ok := msg.(loggedInMsg); ok {
			a.authed = true
			a.active = 0
			return a, a.screens[a.active].Init()
		}
		return a, nil
	}

	if !a.authed {
		return a, a.login.Update(msg)
	}

	active := a.screens[a.active]
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !active.Capturing() {
		switch keyMsg.String() {
		case "q":
			return a, tea.Quit
		case "tab", "right":
			a.active = (a.active + 1) % len(a.screens)
			return a, a.screens[a.active].Init()
		case "shift+tab", "left":
			a.active = (a.active + len(a.screens) - 1) % len(a.screens)
			return a, a.screens[a.active].Init()
		}
	}
	return a, active.Update(msg)
}

func (a *App) View() string {
	if !a.authed {
		return a.login.View()
	}

	var b strings.Builder
	for i, tab := range a.tabs {
		if i == a.active {
			b.WriteString(activeTabStyle.Render(tab))
		} else {
			b.WriteString(tabStyle.Render(tab))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(a.screens[a.active].View())
	return b.String()
}
