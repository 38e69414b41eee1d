package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one full-screen view of the browser.
type Page interface {
	// Title names the page in the tab bar.
	Title() string
	// Init returns the command to run when the page first becomes active.
	Init() tea.Cmd
	// Update handles a message and returns the follow-up command.
	Update(msg tea.Msg) (Page, tea.Cmd)
	// View renders the page.
	View() string
	// Busy reports whether the page has a request in flight; the app will
	// not quit or switch tabs away from a busy page.
	Busy() bool
}
