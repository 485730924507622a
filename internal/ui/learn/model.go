// Package learn is the terminal learn session: a module list, the selected
// lesson, and a query box backed by the tutor service.
package learn

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// Tutor is the service the session talks to.
type Tutor interface {
	Modules() []curriculum.Module
	SelectModule(ctx context.Context, title string) curriculum.Lesson
	RunQuery(ctx context.Context, text string) evaluator.QueryResult
}

// Options configures the learn session.
type Options struct {
	NoColor bool
	Context context.Context
}

// Model renders the learn session using Bubble Tea.
type Model struct {
	state   State
	tutor   Tutor
	ctx     context.Context
	input   textinput.Model
	table   table.Model
	width   int
	noColor bool
}

// NewModel constructs a learn session over tutor.
func NewModel(tutor Tutor, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	input := textinput.New()
	input.Placeholder = "SELECT * FROM students..."
	input.Prompt = "> "
	input.CharLimit = 1024

	t := table.New(
		table.WithColumns([]table.Column{}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(8),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		state:   State{Modules: tutor.Modules()},
		tutor:   tutor,
		ctx:     ctx,
		input:   input,
		table:   t,
		noColor: opts.NoColor,
	}
}

// State returns the current session state.
func (m Model) State() State {
	return m.state
}

// Init loads the lesson for the first module.
func (m Model) Init() tea.Cmd {
	if len(m.state.Modules) == 0 {
		return nil
	}
	return func() tea.Msg {
		return startLessonMsg{}
	}
}

// startLessonMsg asks the model to load the module under the cursor.
type startLessonMsg struct{}

// Update handles key presses and service answers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.input.Width = max(typed.Width-sidebarWidth-8, 10)
		m.table.SetWidth(max(typed.Width-sidebarWidth-4, 10))
		m.table.SetHeight(max(typed.Height/3, 3))
		return m, nil
	case startLessonMsg:
		return m.selectModule()
	case lessonMsg:
		m.state = applyLesson(m.state, typed)
		return m, nil
	case resultMsg:
		m.state = applyResult(m.state, typed)
		m.table.SetRows(nil)
		m.table.SetColumns(columnsForResult(m.state.Result))
		m.table.SetRows(rowsForResult(m.state.Result))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.toggleFocus()
	}
	if m.state.Focus == FocusQuery {
		switch msg.String() {
		case "esc":
			return m.toggleFocus()
		case "enter":
			return m.runQuery()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.state = moveCursor(m.state, -1)
	case "down", "j":
		m.state = moveCursor(m.state, 1)
	case "enter":
		return m.selectModule()
	case "e":
		if m.state.Lesson != nil {
			m.input.SetValue(m.state.Lesson.ExampleQuery)
			m.input.CursorEnd()
			return m.toggleFocus()
		}
	}
	return m, nil
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.state.Focus == FocusQuery {
		m.state.Focus = FocusModules
		m.input.Blur()
		return m, nil
	}
	m.state.Focus = FocusQuery
	return m, m.input.Focus()
}

func (m Model) selectModule() (tea.Model, tea.Cmd) {
	var seq int
	m.state, seq = beginLesson(m.state)
	module, ok := m.state.activeModule()
	if !ok {
		return m, nil
	}
	tutor, ctx := m.tutor, m.ctx
	return m, func() tea.Msg {
		return lessonMsg{seq: seq, lesson: tutor.SelectModule(ctx, module.Title)}
	}
}

func (m Model) runQuery() (tea.Model, tea.Cmd) {
	query := m.input.Value()
	if strings.TrimSpace(query) == "" || m.state.Running {
		return m, nil
	}
	var seq int
	m.state, seq = beginQuery(m.state)
	tutor, ctx := m.tutor, m.ctx
	return m, func() tea.Msg {
		return resultMsg{seq: seq, result: tutor.RunQuery(ctx, query)}
	}
}

// View renders the learn session.
func (m Model) View() string {
	sidebar := renderSidebar(m.state, m.noColor)
	body := lipgloss.JoinVertical(lipgloss.Left,
		renderLesson(m.state, m.noColor),
		"",
		renderEditorHeader(m.state, m.noColor),
		m.input.View(),
		"",
		renderResult(m.state, m.table.View(), m.noColor),
		renderHelp(m.state, m.noColor),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
}

// Run starts an interactive session and blocks until the learner quits.
func Run(ctx context.Context, tutor Tutor, in io.Reader, out io.Writer, opts Options) error {
	opts.Context = ctx
	program := tea.NewProgram(
		NewModel(tutor, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
