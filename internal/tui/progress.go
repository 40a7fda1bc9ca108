package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressUpdate is one progress event from a workflow run
type ProgressUpdate struct {
	Percent int
	Message string
}

// ProgressUI renders workflow progress with a live progress bar. The
// executor's synchronous callback feeds it through a buffered channel, so the
// run itself never blocks on the terminal.
type ProgressUI struct {
	updates chan ProgressUpdate
	once    sync.Once
}

// NewProgressUI creates a progress UI ready to receive updates
func NewProgressUI() *ProgressUI {
	return &ProgressUI{updates: make(chan ProgressUpdate, 100)}
}

// Report is the progress callback handed to the workflow executor
func (ui *ProgressUI) Report(percent int, message string) {
	ui.updates <- ProgressUpdate{Percent: percent, Message: message}
}

// Close signals that no more updates will arrive (safe to call multiple times)
func (ui *ProgressUI) Close() {
	ui.once.Do(func() {
		close(ui.updates)
	})
}

// Run renders the UI until Close is called
func (ui *ProgressUI) Run() error {
	_, err := tea.NewProgram(newProgressModel(ui.updates)).Run()
	return err
}

type progressUpdateMsg ProgressUpdate

type progressDoneMsg struct{}

type progressModel struct {
	updates  <-chan ProgressUpdate
	bar      progress.Model
	percent  int
	lines    []string
	done     bool
	quitting bool
	width    int
}

func newProgressModel(updates <-chan ProgressUpdate) progressModel {
	return progressModel{
		updates: updates,
		bar:     progress.New(progress.WithDefaultGradient()),
		width:   60,
	}
}

func (m progressModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updates
		if !ok {
			return progressDoneMsg{}
		}
		return progressUpdateMsg(update)
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressUpdateMsg:
		m.percent = msg.Percent
		if msg.Message != "" {
			m.lines = append(m.lines, msg.Message)
		}
		return m, m.waitForUpdate()

	case progressDoneMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// The run itself keeps going; only the view is abandoned.
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(Dim(truncateLine(line, m.width)) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.bar.ViewAs(float64(m.percent)/100.0),
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d%%", m.percent))))
	return b.String()
}

func truncateLine(line string, width int) string {
	line = strings.SplitN(line, "\n", 2)[0]
	if width > 3 && len(line) > width {
		return line[:width-3] + "..."
	}
	return line
}
