// Package boardtui renders the interactive kanban board.
//
// A card is grabbed with space, carried across columns with the movement
// keys, and dropped with space again. The drop commits through the kanban
// controller, so a failed round trip snaps the card back to its source
// column and reports the error in the status line.
package boardtui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/taskflowhq/taskflow/kanban"
	"github.com/taskflowhq/taskflow/tracker"
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type tasksLoadedMsg struct {
	tasks []tracker.Task
	err   error
}

type storeChangedMsg struct{}

type moveDoneMsg struct {
	target tracker.TaskStatus
	err    error
}

type model struct {
	ctx        context.Context
	store      *tracker.Store
	controller *kanban.Controller
	projectID  string

	keys keyMap
	help help.Model

	width  int
	height int

	columns []kanban.Column
	col     int
	row     int

	grabbedID   string
	grabbedTask tracker.Task

	status      string
	statusLevel statusLevel

	changes chan tracker.Change
}

// Run renders the board until the user quits. When projectID is non-empty
// the board shows only that project's tasks.
func Run(ctx context.Context, store *tracker.Store, projectID string) error {
	m := newModel(ctx, store, projectID)

	unsubscribe := store.Subscribe(func(tracker.Change) {
		select {
		case m.changes <- tracker.Change{}:
		default:
		}
	})
	defer unsubscribe()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, store *tracker.Store, projectID string) model {
	return model{
		ctx:        ctx,
		store:      store,
		controller: kanban.NewController(store),
		projectID:  projectID,
		keys:       defaultKeyMap(),
		help:       help.New(),
		columns:    kanban.Columns(nil),
		changes:    make(chan tracker.Change, 1),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.waitForChangeCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)
	case storeChangedMsg:
		return m, tea.Batch(m.loadTasksCmd(), m.waitForChangeCmd())
	case moveDoneMsg:
		return m.handleMoveDone(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Reload):
		return m, m.loadTasksCmd()
	case key.Matches(msg, keys.Left):
		m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, keys.Right):
		m.moveCursor(1, 0)
		return m, nil
	case key.Matches(msg, keys.Up):
		m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveCursor(0, 1)
		return m, nil
	case key.Matches(msg, keys.Cancel):
		return m.cancelGrab()
	case key.Matches(msg, keys.Grab):
		return m.grabOrDrop()
	}
	return m, nil
}

func (m model) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "load failed: " + msg.err.Error()
		m.statusLevel = statusError
		return m, nil
	}

	tasks := msg.tasks
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tracker.PriorityRank(tasks[i].Priority), tracker.PriorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	m.columns = kanban.Columns(tasks)
	m.clampCursor()
	return m, nil
}

func (m model) handleMoveDone(msg moveDoneMsg) (tea.Model, tea.Cmd) {
	grabbed := m.grabbedTask
	m.grabbedID = ""
	m.grabbedTask = tracker.Task{}

	if msg.err != nil {
		m.status = fmt.Sprintf("move failed, %s stays in %s: %s", grabbed.ID, grabbed.Status, msg.err)
		m.statusLevel = statusError
		return m, m.loadTasksCmd()
	}

	m.status = fmt.Sprintf("moved %s to %s", grabbed.ID, msg.target)
	m.statusLevel = statusInfo
	return m, m.loadTasksCmd()
}

func (m model) grabOrDrop() (tea.Model, tea.Cmd) {
	if m.grabbedID == "" {
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.controller.BeginDrag(m.ctx, task.ID); err != nil {
			m.status = err.Error()
			m.statusLevel = statusError
			return m, nil
		}
		m.grabbedID = task.ID
		m.grabbedTask = task
		m.status = fmt.Sprintf("carrying %s, drop with space", task.ID)
		m.statusLevel = statusInfo
		return m, nil
	}

	target := m.columns[m.col].Status
	return m, m.dropCmd(target)
}

func (m model) cancelGrab() (tea.Model, tea.Cmd) {
	if m.grabbedID == "" {
		return m, nil
	}
	if err := m.controller.CancelDrag(); err != nil {
		m.status = err.Error()
		m.statusLevel = statusError
		return m, nil
	}
	m.status = "move cancelled"
	m.statusLevel = statusInfo
	m.grabbedID = ""
	m.grabbedTask = tracker.Task{}
	return m, nil
}

func (m *model) moveCursor(dCol, dRow int) {
	m.col += dCol
	m.row += dRow
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(m.columns) {
		m.col = len(m.columns) - 1
	}
	count := len(m.columns[m.col].Tasks)
	if m.row >= count {
		m.row = count - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m model) selectedTask() (tracker.Task, bool) {
	tasks := m.columns[m.col].Tasks
	if len(tasks) == 0 {
		return tracker.Task{}, false
	}
	return tasks[m.row], true
}

func (m model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.Tasks(m.ctx, tracker.TaskFilter{ProjectID: m.projectID})
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m model) waitForChangeCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changes:
			return storeChangedMsg{}
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m model) dropCmd(target tracker.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.Drop(m.ctx, target)
		return moveDoneMsg{target: target, err: err}
	}
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading board..."
	}

	columnWidth := m.width/len(m.columns) - 4
	if columnWidth < 12 {
		columnWidth = 12
	}

	helpLine := m.help.View(m.keys)
	statusLine := m.renderStatusLine()
	columnHeight := m.height - lipgloss.Height(helpLine) - lipgloss.Height(statusLine) - 3
	if columnHeight < 3 {
		columnHeight = 3
	}

	rendered := make([]string, 0, len(m.columns))
	for i, column := range m.columns {
		rendered = append(rendered, m.renderColumn(i, column, columnWidth, columnHeight))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return strings.Join([]string{board, statusLine, helpLine}, "\n")
}

func (m model) renderColumn(index int, column kanban.Column, width, height int) string {
	title := columnTitleStyle.Render(string(column.Status)) +
		columnCountStyle.Render(fmt.Sprintf(" (%d)", len(column.Tasks)))

	lines := []string{title, ""}
	for i, task := range column.Tasks {
		lines = append(lines, m.renderCard(task, index == m.col && i == m.row, width))
	}

	style := columnStyle
	if index == m.col {
		style = columnActiveStyle
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (m model) renderCard(task tracker.Task, selected bool, width int) string {
	title := wordwrap.String(task.Title, width-2)

	style := cardStyle
	switch {
	case task.ID == m.grabbedID:
		style = cardGrabbedStyle
	case selected:
		style = cardSelectedStyle
	}

	meta := task.ID
	switch task.Priority {
	case tracker.PriorityUrgent:
		meta += " " + urgentStyle.Render(string(task.Priority))
	case tracker.PriorityHigh:
		meta += " " + highStyle.Render(string(task.Priority))
	}

	return style.Render(title) + "\n" + cardMetaStyle.Render(meta) + "\n"
}

func (m model) renderStatusLine() string {
	switch m.statusLevel {
	case statusError:
		return statusErrorStyle.Render(m.status)
	case statusInfo:
		return statusInfoStyle.Render(m.status)
	default:
		return ""
	}
}
