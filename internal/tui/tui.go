// Package tui is the terminal front end: a tabbed application with one list
// page per resource kind, a file-upload page, and a backend status page.
// Pages follow the Elm shape bubbletea expects; all network I/O runs inside
// commands and comes back as messages.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"adminctl/internal/resources"
	"adminctl/pkg/api"
	"adminctl/pkg/listview"
	"adminctl/pkg/models"
)

type model struct {
	pages  []Page
	active int
	width  int
}

func newModel(client *api.Client) model {
	return model{
		pages: []Page{
			newHomePage(client),
			newUserPage(client),
			newRolePage(client),
			newProductPage(client),
			newUploadPage(client),
		},
	}
}

func (m model) Init() tea.Cmd {
	return m.pages[m.active].Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if !m.pages[m.active].Busy() {
				return m.switchTo((m.active + 1) % len(m.pages))
			}
		case "shift+tab":
			if !m.pages[m.active].Busy() {
				return m.switchTo((m.active + len(m.pages) - 1) % len(m.pages))
			}
		}
	}

	page, cmd := m.pages[m.active].Update(msg)
	m.pages[m.active] = page
	return m, cmd
}

// switchTo activates a page and runs its Init so it refreshes on entry.
func (m model) switchTo(idx int) (tea.Model, tea.Cmd) {
	m.active = idx
	return m, m.pages[idx].Init()
}

func (m model) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		label := " " + p.Title() + " "
		if i == m.active {
			label = color.New(color.Bold, color.FgCyan).Sprint(label)
		}
		tabs[i] = label
	}
	b.WriteString(strings.Join(tabs, "|") + "\n")
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	b.WriteString(m.pages[m.active].View())
	b.WriteString("\ntab switch page · ctrl+c quit\n")
	return b.String()
}

// Run starts the terminal application against the given API client and
// blocks until the user quits.
func Run(client *api.Client) error {
	_, err := tea.NewProgram(newModel(client), tea.WithAltScreen()).Run()
	return err
}

func newUserPage(client *api.Client) Page {
	users := client.Users()
	return newResourcePage(resources.Users(), resourceOps[models.User]{
		list: users.List,
		get: func(ctx context.Context, u models.User) (models.User, error) {
			return users.Get(ctx, u.ID)
		},
		create: func(ctx context.Context, d listview.Draft) error {
			_, err := users.Create(ctx, resources.UserCreate(d))
			return err
		},
		update: func(ctx context.Context, u models.User, d listview.Draft) error {
			_, err := users.Update(ctx, u.ID, resources.UserUpdate(d))
			return err
		},
		remove: func(ctx context.Context, u models.User) error {
			return users.Delete(ctx, u.ID)
		},
		detail: func(u models.User) []string {
			return []string{"Name: " + u.Name}
		},
	})
}

func newRolePage(client *api.Client) Page {
	roles := client.Roles()
	return newResourcePage(resources.Roles(), resourceOps[models.Role]{
		list: roles.List,
		get: func(ctx context.Context, r models.Role) (models.Role, error) {
			return roles.Get(ctx, r.ID)
		},
		create: func(ctx context.Context, d listview.Draft) error {
			_, err := roles.Create(ctx, resources.RoleCreate(d))
			return err
		},
		update: func(ctx context.Context, r models.Role, d listview.Draft) error {
			_, err := roles.Update(ctx, r.ID, resources.RoleUpdate(d))
			return err
		},
		remove: func(ctx context.Context, r models.Role) error {
			return roles.Delete(ctx, r.ID)
		},
		detail: func(r models.Role) []string {
			return []string{
				"Name: " + r.Name,
				"Description: " + orNA(r.Description),
			}
		},
	})
}

func newProductPage(client *api.Client) Page {
	products := client.Products()
	return newResourcePage(resources.Products(), resourceOps[models.Product]{
		list: products.List,
		get: func(ctx context.Context, p models.Product) (models.Product, error) {
			return products.Get(ctx, p.ID)
		},
		create: func(ctx context.Context, d listview.Draft) error {
			payload, err := resources.ProductCreate(ctx, client, d)
			if err != nil {
				return err
			}
			_, err = products.Create(ctx, payload)
			return err
		},
		update: func(ctx context.Context, p models.Product, d listview.Draft) error {
			payload, err := resources.ProductUpdate(ctx, client, d)
			if err != nil {
				return err
			}
			_, err = products.Update(ctx, p.ID, payload)
			return err
		},
		remove: func(ctx context.Context, p models.Product) error {
			return products.Delete(ctx, p.ID)
		},
		detail: func(p models.Product) []string {
			return []string{
				"Name: " + p.Name,
				fmt.Sprintf("Price: %d", p.Price),
				"Description: " + orNA(p.Description),
				"Image: " + orNA(p.ImagePath),
			}
		},
	})
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
