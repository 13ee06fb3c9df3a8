// Package tui is the interactive notification-center dashboard. It paints
// the five buckets, lets the cursor walk the tasks, and toggles completion
// optimistically: the checkbox flips before the network call, and flips back
// with an error in the status line if the commit fails.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/completion"
	"tableflip.dev/notify/pkg/dates"
	"tableflip.dev/notify/pkg/task"
)

// Source is the remote view the dashboard needs.
type Source interface {
	completion.Source
	CourseLookup(ctx context.Context) (task.Lookup, error)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	countStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	metaStyle     = lipgloss.NewStyle().Faint(true)
	noneStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type line struct {
	header string // non-empty for section header lines
	taskID string // non-empty for task lines
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	source   Source
	filter   buckets.Filter
	later    bool
	location *time.Location

	lookup  task.Lookup
	tasks   []task.Task
	bucketd buckets.Buckets
	lines   []line
	cursor  int

	loading  bool
	inflight string // task id with a commit in progress
	status   string
	err      error
}

// New builds the dashboard model.
func New(source Source, filter buckets.Filter, later bool, loc *time.Location) *Model {
	return &Model{
		source:   source,
		filter:   filter,
		later:    later,
		location: loc,
		loading:  true,
	}
}

type fetchedMsg struct {
	tasks  []task.Task
	lookup task.Lookup
}

type fetchFailedMsg struct{ err error }

type committedMsg struct{ tasks []task.Task }

type rolledBackMsg struct {
	id  string
	err error
}

func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

func (m *Model) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		lookup, err := m.source.CourseLookup(ctx)
		if err != nil {
			lookup = task.Lookup{}
		}
		recs, err := m.source.FetchTasks(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return fetchedMsg{tasks: task.NormalizeAll(recs, lookup), lookup: lookup}
	}
}

// commit pushes one completion change and resyncs from the source. Rollback
// on failure happens back in Update so the paint and the state stay in one
// place.
func (m *Model) commit(id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.source.UpdateCompletion(ctx, id, completed); err != nil {
			return rolledBackMsg{id: id, err: err}
		}
		recs, err := m.source.FetchTasks(ctx)
		if err != nil {
			// Commit landed; keep the optimistic state until the
			// next refresh.
			return committedMsg{tasks: nil}
		}
		return committedMsg{tasks: task.NormalizeAll(recs, m.lookup)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			m.status = ""
			return m, m.fetch()
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case " ", "enter":
			return m, m.toggleSelected()
		}

	case fetchedMsg:
		m.loading = false
		m.err = nil
		m.tasks = msg.tasks
		m.lookup = msg.lookup
		m.rebucket()

	case fetchFailedMsg:
		m.loading = false
		m.err = msg.err

	case committedMsg:
		m.inflight = ""
		m.status = ""
		if msg.tasks != nil {
			m.tasks = msg.tasks
			m.rebucket()
		}

	case rolledBackMsg:
		m.inflight = ""
		for i := range m.tasks {
			if m.tasks[i].ID == msg.id {
				m.tasks[i].Completed = !m.tasks[i].Completed
				break
			}
		}
		syncErr := &completion.SyncError{TaskID: msg.id, Err: msg.err}
		m.status = errorStyle.Render(syncErr.Error())
		m.rebucket()
	}
	return m, nil
}

// toggleSelected applies the optimistic flip and starts the commit. A second
// toggle on the same task is refused while one is in flight.
func (m *Model) toggleSelected() tea.Cmd {
	id := m.selectedID()
	if id == "" || m.loading {
		return nil
	}
	if m.inflight == id {
		m.status = metaStyle.Render("still syncing, hold on")
		return nil
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Completed = !m.tasks[i].Completed
			m.inflight = id
			m.status = metaStyle.Render("syncing…")
			m.rebucket()
			return m.commit(id, m.tasks[i].Completed)
		}
	}
	return nil
}

func (m *Model) selectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return ""
	}
	return m.lines[m.cursor].taskID
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.lines) {
			return
		}
		if m.lines[next].taskID != "" {
			m.cursor = next
			return
		}
	}
}

// rebucket recomputes the partition and the flattened line list. Cheap and
// pure, so it runs on every state change.
func (m *Model) rebucket() {
	filtered := m.filter.Apply(m.tasks)
	var opts []buckets.Option
	if m.later {
		opts = append(opts, buckets.WithLater())
	}
	m.bucketd = buckets.Categorize(filtered, dates.RangesAt(time.Now(), m.location), opts...)

	m.lines = m.lines[:0]
	for _, s := range m.bucketd.Sections() {
		m.lines = append(m.lines, line{header: s.Title})
		for _, t := range s.Tasks {
			m.lines = append(m.lines, line{taskID: t.ID})
		}
	}
	if m.selectedID() == "" {
		m.cursor = 0
		m.moveCursor(1)
	}
}

func (m *Model) View() string {
	out := titleStyle.Render("Notification Center") + "\n"

	if m.loading {
		return out + metaStyle.Render("Loading tasks from Notion...") + "\n"
	}
	if m.err != nil {
		return out + errorStyle.Render("Error loading tasks: "+m.err.Error()) + "\n" +
			helpStyle.Render("r refresh · q quit") + "\n"
	}

	i := 0
	for _, s := range m.bucketd.Sections() {
		out += sectionStyle.Render(s.Title) + countStyle.Render(fmt.Sprintf(" - %d", len(s.Tasks))) + "\n"
		i++
		if len(s.Tasks) == 0 {
			out += noneStyle.Render("  none") + "\n"
			continue
		}
		for _, t := range s.Tasks {
			out += m.renderTask(t, i == m.cursor, s.Countdown) + "\n"
			i++
		}
	}

	if m.status != "" {
		out += "\n" + m.status
	}
	out += "\n" + helpStyle.Render("↑/↓ move · space toggle · r refresh · q quit") + "\n"
	return out
}

func (m *Model) renderTask(t task.Task, selected bool, countdown bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	row := fmt.Sprintf("  %s %s", check, t.Name)
	meta := ""
	if t.Type != "" {
		meta += "  " + t.Type
	}
	if t.Course != "" {
		meta += "  " + t.Course
	}
	if countdown && t.Countdown != "" {
		meta += "  (" + t.Countdown + ")"
	}
	if selected {
		return selectedStyle.Render(row) + metaStyle.Render(meta)
	}
	return row + metaStyle.Render(meta)
}
