// Package tui implements the interactive task list view.
//
// The view holds the task collection, the title input and a busy flag.
// It loads the list once on startup and again on a fixed interval, and
// re-renders on every state change. Remote failures are logged and
// swallowed; the previous state stays on screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syncdo/internal/logging"
	"syncdo/internal/service"
)

type focusArea int

const (
	focusList focusArea = iota
	focusInput
)

// Operation names used in failure logging.
const (
	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
)

type tasksLoadedMsg struct {
	tasks []service.Task
}

type taskCreatedMsg struct {
	task service.Task
}

type taskToggledMsg struct {
	task service.Task
}

type remoteFailureMsg struct {
	op  string
	err error
}

type pollMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	doneStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	busyStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)
)

// Model is the task list view.
type Model struct {
	svc       service.Service
	pollEvery time.Duration

	tasks []service.Task
	input textinput.Model
	busy  bool

	cursor int
	focus  focusArea
	width  int
	height int
}

// New creates the view. pollEvery is the refresh interval; the first
// load fires immediately on startup.
func New(svc service.Service, pollEvery time.Duration) Model {
	input := textinput.New()
	input.Placeholder = "new task title"
	input.Prompt = "> "
	input.CharLimit = 140

	return Model{
		svc:       svc,
		pollEvery: pollEvery,
		input:     input,
	}
}

// Init implements tea.Model: load immediately, then start the poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.scheduleRefresh())
}

// scheduleRefresh arms the next poll tick. The tick stops when the
// program exits, which is the only teardown this view needs.
func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.pollEvery, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m Model) loadCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		tasks, err := svc.ListTasks(context.Background())
		if err != nil {
			return remoteFailureMsg{op: opList, err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		task, err := svc.CreateTask(context.Background(), title)
		if err != nil {
			return remoteFailureMsg{op: opCreate, err: err}
		}
		return taskCreatedMsg{task: task}
	}
}

func (m Model) toggleCmd(task service.Task) tea.Cmd {
	svc := m.svc
	completed := !task.Completed
	return func() tea.Msg {
		updated, err := svc.UpdateTask(context.Background(), task.ID, service.TaskPatch{Completed: &completed})
		if err != nil {
			return remoteFailureMsg{op: opUpdate, err: err}
		}
		return taskToggledMsg{task: updated}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pollMsg:
		return m, tea.Batch(m.loadCmd(), m.scheduleRefresh())

	case tasksLoadedMsg:
		tasks := append([]service.Task(nil), msg.tasks...)
		service.SortNewestFirst(tasks)
		m.tasks = tasks
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		m.busy = false
		m.tasks = append([]service.Task{msg.task}, m.tasks...)
		m.input.SetValue("")
		return m, nil

	case taskToggledMsg:
		for i, t := range m.tasks {
			if t.ID == msg.task.ID {
				m.tasks[i] = msg.task
				break
			}
		}
		return m, nil

	case remoteFailureMsg:
		logging.Logger.WithError(msg.err).Errorf("%s failed", msg.op)
		if msg.op == opCreate {
			m.busy = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.focus == focusInput {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyTab:
			m.focus = focusList
			m.input.Blur()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
		// Busy guards only the input control.
		if m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case " ", "enter":
		if m.cursor < len(m.tasks) {
			// No busy guard on toggle: concurrent toggles on
			// different tasks may be in flight.
			return m, m.toggleCmd(m.tasks[m.cursor])
		}
	case "a", "i", "tab":
		m.focus = focusInput
		return m, m.input.Focus()
	case "r":
		return m, m.loadCmd()
	}
	return m, nil
}

// submit starts a create for the trimmed input. Empty input and an
// in-flight create are both no-ops.
func (m Model) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.input.Value())
	if title == "" || m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.createCmd(title)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("syncdo"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(busyStyle.Render("no tasks"))
		b.WriteString("\n")
	}
	for i, task := range m.tasks {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		title := task.Title
		if task.Completed {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, title)
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.busy {
		b.WriteString(" ")
		b.WriteString(busyStyle.Render("adding..."))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("a: add  space: toggle  j/k: move  r: refresh  q: quit"))
	b.WriteString("\n")

	return b.String()
}
