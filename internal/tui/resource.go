package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"adminctl/pkg/listview"
)

// resourceOps is the I/O edge of one resource page. The closures wrap the
// typed API accessors plus any pre-submit work such as image uploads.
type resourceOps[R any] struct {
	list   func(ctx context.Context) ([]R, error)
	get    func(ctx context.Context, r R) (R, error)
	create func(ctx context.Context, draft listview.Draft) error
	update func(ctx context.Context, target R, draft listview.Draft) error
	remove func(ctx context.Context, target R) error
	detail func(r R) []string
}

// Messages carry the outcome of a command back into Update. The generation
// counter makes stale responses recognizable: a response tagged with an old
// generation is discarded instead of overwriting newer state.
type listLoadedMsg[R any] struct {
	gen     int
	records []R
	err     error
}

type mutationDoneMsg[R any] struct {
	gen int
	err error
}

type deleteDoneMsg[R any] struct {
	gen int
	err error
}

type detailLoadedMsg[R any] struct {
	gen    int
	record R
	err    error
}

// resourcePage is the list screen for one resource kind. All list-state
// transitions go through the controller; the page adds terminal concerns
// only: row selection, key handling, input focus, and rendering.
type resourcePage[R any] struct {
	ctrl *listview.Controller[R]
	ops  resourceOps[R]

	gen       int
	selected  int
	searching bool
	field     int

	viewing    bool
	detail     R
	detailErr  string
	detailBusy bool
}

func newResourcePage[R any](desc listview.Descriptor[R], ops resourceOps[R]) *resourcePage[R] {
	return &resourcePage[R]{ctrl: listview.New(desc), ops: ops}
}

func (p *resourcePage[R]) Title() string { return p.ctrl.Descriptor().Title }

func (p *resourcePage[R]) Busy() bool {
	return p.ctrl.State() == listview.StateLoading || p.ctrl.Mutating() || p.detailBusy
}

func (p *resourcePage[R]) Init() tea.Cmd { return p.load() }

// load starts a reload and returns the command performing it.
func (p *resourcePage[R]) load() tea.Cmd {
	p.ctrl.StartLoad()
	p.gen++
	gen := p.gen
	return func() tea.Msg {
		records, err := p.ops.list(context.Background())
		return listLoadedMsg[R]{gen: gen, records: records, err: err}
	}
}

func (p *resourcePage[R]) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg[R]:
		if msg.gen != p.gen {
			return p, nil
		}
		p.ctrl.FinishLoad(msg.records, msg.err)
		p.selected = 0
		return p, nil

	case mutationDoneMsg[R]:
		if msg.gen != p.gen {
			return p, nil
		}
		if p.ctrl.FinishMutation(msg.err) {
			return p, p.load()
		}
		return p, nil

	case deleteDoneMsg[R]:
		if msg.gen != p.gen {
			return p, nil
		}
		if p.ctrl.FinishDelete(msg.err) {
			return p, p.load()
		}
		return p, nil

	case detailLoadedMsg[R]:
		// The view owning this fetch may be gone; drop stale results.
		if msg.gen != p.gen || !p.detailBusy {
			return p, nil
		}
		p.detailBusy = false
		if msg.err != nil {
			p.detailErr = "Failed to fetch " + p.ctrl.Descriptor().Name
			p.viewing = false
			return p, nil
		}
		p.detail = msg.record
		p.viewing = true
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *resourcePage[R]) handleKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	// Nothing is interactive while a reload is in flight; the dialog and form
	// state it will invalidate must not react to input either.
	if p.ctrl.State() == listview.StateLoading {
		return p, nil
	}

	if alert := p.ctrl.Alert(); alert != nil {
		switch msg.String() {
		case "enter", "esc":
			alert.Dismiss()
		}
		return p, nil
	}

	if confirm := p.ctrl.Confirm(); confirm != nil {
		switch msg.String() {
		case "enter", "y":
			return p, p.confirmDelete()
		case "esc", "n":
			confirm.Dismiss()
		}
		return p, nil
	}

	if p.viewing {
		switch msg.String() {
		case "esc", "q", "enter":
			p.viewing = false
		}
		return p, nil
	}

	switch p.ctrl.Mode() {
	case listview.ModeCreate, listview.ModeEdit:
		return p.handleFormKey(msg)
	default:
		return p.handleListKey(msg)
	}
}

func (p *resourcePage[R]) handleListKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			p.searching = false
		case tea.KeyBackspace:
			if term := p.ctrl.Search(); term != "" {
				p.ctrl.SetSearch(trimLastRune(term))
				p.selected = 0
			}
		case tea.KeyRunes, tea.KeySpace:
			p.ctrl.SetSearch(p.ctrl.Search() + string(msg.Runes))
			p.selected = 0
		}
		return p, nil
	}

	switch msg.String() {
	case "/":
		p.searching = true
	case "r":
		return p, p.load()
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.ctrl.Rows())-1 {
			p.selected++
		}
	case "left", "h", "p":
		p.ctrl.GoToPage(p.ctrl.Window().Prev())
		p.selected = 0
	case "right", "l", "n":
		p.ctrl.GoToPage(p.ctrl.Window().Next())
		p.selected = 0
	case "c":
		p.ctrl.EnterCreate()
		p.field = 0
	case "e":
		if r, ok := p.selectedRow(); ok {
			p.ctrl.EnterEdit(r)
			p.field = 0
		}
	case "d":
		if r, ok := p.selectedRow(); ok {
			p.ctrl.RequestDelete(r)
		}
	case "enter":
		if r, ok := p.selectedRow(); ok {
			return p, p.loadDetail(r)
		}
	}
	return p, nil
}

func (p *resourcePage[R]) handleFormKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.ctrl.Mutating() {
		return p, nil
	}
	fields := p.ctrl.Descriptor().Fields

	switch msg.Type {
	case tea.KeyEsc:
		p.ctrl.CancelForm()
	case tea.KeyUp:
		if p.field > 0 {
			p.field--
		}
	case tea.KeyDown:
		if p.field < len(fields)-1 {
			p.field++
		}
	case tea.KeyEnter:
		return p, p.submit()
	case tea.KeyBackspace:
		f := fields[p.field]
		if value := p.ctrl.Draft().Get(f.Name); value != "" {
			p.ctrl.SetField(f.Name, trimLastRune(value))
		}
	case tea.KeyRunes, tea.KeySpace:
		f := fields[p.field]
		p.ctrl.SetField(f.Name, p.ctrl.Draft().Get(f.Name)+string(msg.Runes))
	}
	return p, nil
}

// submit validates the draft locally; a violation opens the alert without
// any network interaction. On success the edge command runs the create or
// update, including any file upload that feeds the payload.
func (p *resourcePage[R]) submit() tea.Cmd {
	if !p.ctrl.SubmitDraft() {
		return nil
	}
	gen := p.gen
	draft := p.ctrl.Draft()
	if target, ok := p.ctrl.EditTarget(); ok {
		return func() tea.Msg {
			return mutationDoneMsg[R]{gen: gen, err: p.ops.update(context.Background(), target, draft)}
		}
	}
	return func() tea.Msg {
		return mutationDoneMsg[R]{gen: gen, err: p.ops.create(context.Background(), draft)}
	}
}

func (p *resourcePage[R]) confirmDelete() tea.Cmd {
	target, ok := p.ctrl.ConfirmDelete()
	if !ok {
		return nil
	}
	gen := p.gen
	return func() tea.Msg {
		return deleteDoneMsg[R]{gen: gen, err: p.ops.remove(context.Background(), target)}
	}
}

func (p *resourcePage[R]) loadDetail(r R) tea.Cmd {
	p.detailBusy = true
	p.detailErr = ""
	gen := p.gen
	return func() tea.Msg {
		record, err := p.ops.get(context.Background(), r)
		return detailLoadedMsg[R]{gen: gen, record: record, err: err}
	}
}

func (p *resourcePage[R]) selectedRow() (R, bool) {
	rows := p.ctrl.Rows()
	if p.selected < 0 || p.selected >= len(rows) {
		var zero R
		return zero, false
	}
	return rows[p.selected], true
}

func (p *resourcePage[R]) View() string {
	desc := p.ctrl.Descriptor()
	var b strings.Builder

	switch p.ctrl.State() {
	case listview.StateIdle, listview.StateLoading:
		b.WriteString("Loading...\n")
		return b.String()
	case listview.StateLoadError:
		b.WriteString(color.RedString(p.ctrl.LoadError()) + "\n")
		b.WriteString("Press r to retry.\n")
		return b.String()
	}

	if p.viewing {
		b.WriteString(color.CyanString("%s Detail", capitalize(desc.Name)) + "\n\n")
		b.WriteString(fmt.Sprintf("ID: %s\n", desc.ID(p.detail)))
		for _, line := range p.ops.detail(p.detail) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\nPress esc to go back.\n")
		return b.String()
	}

	switch p.ctrl.Mode() {
	case listview.ModeCreate, listview.ModeEdit:
		p.viewForm(&b)
	default:
		p.viewList(&b)
	}

	if confirm := p.ctrl.Confirm(); confirm != nil {
		b.WriteString("\n" + renderDialog(confirm))
	}
	if alert := p.ctrl.Alert(); alert != nil {
		b.WriteString("\n" + renderDialog(alert))
	}
	return b.String()
}

func (p *resourcePage[R]) viewList(b *strings.Builder) {
	desc := p.ctrl.Descriptor()

	search := p.ctrl.Search()
	if p.searching {
		b.WriteString(fmt.Sprintf("Search: %s_\n", search))
	} else if search != "" {
		b.WriteString(fmt.Sprintf("Search: %s\n", search))
	}
	if p.detailErr != "" {
		b.WriteString(color.RedString(p.detailErr) + "\n")
	}

	rows := p.ctrl.Rows()
	if len(rows) == 0 {
		if strings.TrimSpace(search) != "" {
			b.WriteString(fmt.Sprintf("No %s match the search.\n", desc.Plural()))
		} else {
			b.WriteString(fmt.Sprintf("No %s yet. Press c to create one.\n", desc.Plural()))
		}
	}
	for i, r := range rows {
		cursor := "  "
		line := fmt.Sprintf("[%s] %s", desc.ID(r), desc.DisplayName(r))
		if i == p.selected {
			cursor = "> "
			line = color.New(color.Bold).Sprint(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	w := p.ctrl.Window()
	if w.Total > 0 {
		b.WriteString(fmt.Sprintf("\nShowing %d-%d of %d", w.Start, w.End, w.Total))
	}
	b.WriteString(fmt.Sprintf("  Page %d of %d\n", w.Page, w.TotalPages))
	b.WriteString("\n/ search · enter view · c create · e edit · d delete · r reload\n")
}

func (p *resourcePage[R]) viewForm(b *strings.Builder) {
	desc := p.ctrl.Descriptor()
	titleVerb := "Create"
	if p.ctrl.Mode() == listview.ModeEdit {
		titleVerb = "Edit"
	}
	b.WriteString(color.CyanString("%s %s", titleVerb, capitalize(desc.Name)) + "\n\n")

	for i, f := range desc.Fields {
		marker := "  "
		if i == p.field {
			marker = "> "
		}
		value := p.ctrl.Draft().Get(f.Name)
		if i == p.field && !p.ctrl.Mutating() {
			value += "_"
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, f.Label, value))
	}

	if p.ctrl.Mutating() {
		b.WriteString("\nSaving...\n")
	} else {
		b.WriteString("\nenter submit · esc cancel · up/down move\n")
	}
}
