package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"adminctl/pkg/api"
	"adminctl/pkg/models"
)

type uploadDoneMsg struct {
	gen    int
	stored []models.StoredFile
	err    error
}

// uploadPage posts one or many local files and shows the stored-file
// metadata the server reports back.
type uploadPage struct {
	client *api.Client

	input  string
	busy   bool
	gen    int
	stored []models.StoredFile
	errMsg string
}

func newUploadPage(client *api.Client) *uploadPage {
	return &uploadPage{client: client}
}

func (p *uploadPage) Title() string { return "File Upload" }

func (p *uploadPage) Busy() bool { return p.busy }

func (p *uploadPage) Init() tea.Cmd { return nil }

func (p *uploadPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		p.busy = false
		if msg.err != nil {
			p.errMsg = "Failed to upload the selected files."
			return p, nil
		}
		p.stored = msg.stored
		p.input = ""
		return p, nil

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			return p, p.upload()
		case tea.KeyBackspace:
			p.input = trimLastRune(p.input)
		case tea.KeyRunes, tea.KeySpace:
			p.input += string(msg.Runes)
		}
	}
	return p, nil
}

// upload posts the whitespace-separated paths currently in the input: one
// path through the single endpoint, several through the multiple endpoint.
func (p *uploadPage) upload() tea.Cmd {
	paths := strings.Fields(p.input)
	if len(paths) == 0 {
		p.errMsg = "Please select a file for upload."
		return nil
	}
	p.busy = true
	p.errMsg = ""
	p.gen++
	gen := p.gen

	return func() tea.Msg {
		ctx := context.Background()
		if len(paths) == 1 {
			f, err := os.Open(paths[0])
			if err != nil {
				return uploadDoneMsg{gen: gen, err: err}
			}
			defer f.Close()
			stored, err := p.client.UploadSingle(ctx, filepath.Base(paths[0]), f)
			if err != nil {
				return uploadDoneMsg{gen: gen, err: err}
			}
			return uploadDoneMsg{gen: gen, stored: []models.StoredFile{stored}}
		}

		files := make([]api.UploadFile, 0, len(paths))
		handles := make([]*os.File, 0, len(paths))
		defer func() {
			for _, h := range handles {
				h.Close()
			}
		}()
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return uploadDoneMsg{gen: gen, err: err}
			}
			handles = append(handles, f)
			files = append(files, api.UploadFile{Name: filepath.Base(path), Reader: f})
		}
		stored, err := p.client.UploadMultiple(ctx, files)
		return uploadDoneMsg{gen: gen, stored: stored, err: err}
	}
}

func (p *uploadPage) View() string {
	var b strings.Builder
	b.WriteString(color.CyanString("File Upload") + "\n\n")
	b.WriteString("Enter one or more file paths separated by spaces.\n\n")

	if p.busy {
		b.WriteString(fmt.Sprintf("Files: %s\n\nUploading...\n", p.input))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Files: %s_\n", p.input))

	if p.errMsg != "" {
		b.WriteString("\n" + color.RedString(p.errMsg) + "\n")
	}
	for _, s := range p.stored {
		b.WriteString(fmt.Sprintf("\n%s\n", color.GreenString("Uploaded %s", s.FileName)))
		b.WriteString(fmt.Sprintf("  Path: %s\n  Size: %d bytes\n", s.Path, s.Size))
	}
	b.WriteString("\nenter upload\n")
	return b.String()
}
