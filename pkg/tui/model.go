// Package tui implements the build progress display
package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user quits before all jobs finish
var ErrInterrupted = errors.New("interrupted")

// Job is one unit of work shown in the display. Run returns the path it wrote.
type Job struct {
	Name string
	Run  func() (string, error)
}

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// StartBanner is printed before the first job
func StartBanner() string {
	return bannerStyle.Render("Generating game audio...")
}

// DoneBanner is printed after the last job
func DoneBanner() string {
	return bannerStyle.Render("Done!")
}

// ProgressLine reports one written file
func ProgressLine(path string) string {
	return "  -> " + pathStyle.Render(path)
}

// Model runs jobs one at a time, printing a line as each finishes
type Model struct {
	Jobs    []Job
	Current int // index of the running job
	Written []string
	Err     error
}

// NewModel creates a new progress model
func NewModel(jobs []Job) Model {
	return Model{Jobs: jobs}
}

// jobDoneMsg is sent when a job returns
type jobDoneMsg struct {
	index int
	path  string
	err   error
}

func (m Model) runJob(i int) tea.Cmd {
	job := m.Jobs[i]
	return func() tea.Msg {
		path, err := job.Run()
		return jobDoneMsg{index: i, path: path, err: err}
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if len(m.Jobs) == 0 {
		return tea.Sequence(tea.Println(StartBanner()), tea.Println(DoneBanner()), tea.Quit)
	}
	return tea.Sequence(tea.Println(StartBanner()), m.runJob(0))
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobDoneMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, tea.Quit
		}
		m.Written = append(m.Written, msg.path)
		m.Current = msg.index + 1

		line := tea.Println(ProgressLine(msg.path))
		if m.Done() {
			return m, tea.Sequence(line, tea.Println(DoneBanner()), tea.Quit)
		}
		return m, tea.Sequence(line, m.runJob(m.Current))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Err = ErrInterrupted
			return m, tea.Quit
		}
	}

	return m, nil
}

// Done reports whether every job has finished
func (m Model) Done() bool {
	return m.Current >= len(m.Jobs)
}

// View implements tea.Model
func (m Model) View() string {
	if m.Err != nil || m.Done() {
		return ""
	}
	status := fmt.Sprintf("  rendering %s (%d/%d)", m.Jobs[m.Current].Name, m.Current+1, len(m.Jobs))
	return statusStyle.Render(status) + "\n"
}

// Run shows the jobs in a bubbletea program and returns the first job error
func Run(jobs []Job, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(jobs), opts...)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err
	}
	return nil
}

// RunPlain runs the jobs printing one line per job to w, for output
// that is not a terminal
func RunPlain(w io.Writer, jobs []Job) error {
	fmt.Fprintln(w, StartBanner())
	for _, job := range jobs {
		path, err := job.Run()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, ProgressLine(path))
	}
	fmt.Fprintln(w, DoneBanner())
	return nil
}
