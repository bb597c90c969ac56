// Package tui is the terminal admin client. It signs in against the auth
// API, keeps the session cookie in the shared API client, and manages the
// portfolio resources through the generic CRUD and reorder controllers.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katzedaze/portfolio/pkg/apiclient"
)

// Run starts the admin client against the server at baseURL and blocks until
// the user quits.
func Run(baseURL string) error {
	client := apiclient.New(baseURL)
	program := tea.NewProgram(NewApp(client), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
