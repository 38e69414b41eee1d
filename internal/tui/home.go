package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"adminctl/pkg/api"
	"adminctl/pkg/models"
)

type healthMsg struct {
	gen    int
	health models.Health
	err    error
}

// homePage probes the API root and reports whether the backend is reachable.
type homePage struct {
	client *api.Client

	gen    int
	busy   bool
	loaded bool
	health models.Health
	err    error
}

func newHomePage(client *api.Client) *homePage {
	return &homePage{client: client}
}

func (p *homePage) Title() string { return "Home" }

func (p *homePage) Busy() bool { return p.busy }

func (p *homePage) Init() tea.Cmd { return p.probe() }

func (p *homePage) probe() tea.Cmd {
	p.busy = true
	p.gen++
	gen := p.gen
	client := p.client
	return func() tea.Msg {
		health, err := client.Health(context.Background())
		return healthMsg{gen: gen, health: health, err: err}
	}
}

func (p *homePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case healthMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		p.busy = false
		p.loaded = true
		p.health = msg.health
		p.err = msg.err
		return p, nil

	case tea.KeyMsg:
		if !p.busy && msg.String() == "r" {
			return p, p.probe()
		}
	}
	return p, nil
}

func (p *homePage) View() string {
	var b strings.Builder
	b.WriteString(color.CyanString("Admin Console") + "\n\n")
	b.WriteString("Manage users, roles, and products from the tabs above.\n\n")

	switch {
	case p.busy:
		b.WriteString("Checking backend status...\n")
	case p.err != nil:
		b.WriteString(color.RedString("Backend unreachable: %v", p.err) + "\n")
	case p.loaded && p.health.Status:
		b.WriteString(color.GreenString("Backend OK") + "  " + p.health.Message + "\n")
	case p.loaded:
		b.WriteString(color.YellowString("Backend degraded") + "  " + p.health.Message + "\n")
	}
	b.WriteString("\nr recheck\n")
	return b.String()
}
