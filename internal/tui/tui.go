// Package tui provides a Bubble Tea terminal user interface for the
// artist-list generator.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jtreveset/arrlist/internal/arrio"
	"github.com/jtreveset/arrlist/internal/config"
	"github.com/jtreveset/arrlist/internal/http"
	"github.com/jtreveset/arrlist/internal/model"
	"github.com/jtreveset/arrlist/internal/musicbrainz"
	"github.com/jtreveset/arrlist/internal/resolver"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateResolving
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   resolver.ProgressLevel
}

// eventLog collects resolver progress events across goroutines; the
// model drains it on every tick.
type eventLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (l *eventLog) append(entry LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *eventLog) drain() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := l.entries
	l.entries = nil
	return entries
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Resolution context
	ctx    context.Context
	cancel context.CancelFunc

	// Active resolver and its event buffer
	resolver *resolver.Resolver
	events   *eventLog

	// Resolution progress
	resolved   int32
	failed     int32
	total      int32
	outputPath string

	// Options
	strict  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "artists.txt"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
		events:    &eventLog{},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ResolveDoneMsg is sent when the whole batch has been processed
	// and the output file written.
	ResolveDoneMsg struct {
		Results    []model.Resolution
		OutputPath string
		Err        error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateResolving {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateResolving
				resolveCmd := m.startResolution()
				return m, tea.Batch(resolveCmd, m.tickProgress(), m.spinner.Tick)
			}

		case "s":
			if m.state == StateInput {
				m.strict = !m.strict
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.resolver = nil
				m.events = &eventLog{}
				m.resolved, m.failed, m.total = 0, 0, 0
				m.outputPath = ""
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ResolveDoneMsg:
		m.appendLogs(m.events.drain())
		if msg.OutputPath != "" {
			m.outputPath = msg.OutputPath
		}
		if m.resolver != nil {
			m.resolved, m.failed, m.total = m.resolver.Progress()
		}
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.state == StateResolving {
			m.appendLogs(m.events.drain())
			if m.resolver != nil {
				m.resolved, m.failed, m.total = m.resolver.Progress()

				var percent float64
				if m.total > 0 {
					percent = float64(m.resolved+m.failed) / float64(m.total)
				}
				cmds = append(cmds, m.progress.SetPercent(percent))
			}
			cmds = append(cmds, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// appendLogs adds entries to the log ring, honoring the verbose toggle.
func (m *Model) appendLogs(entries []LogEntry) {
	for _, entry := range entries {
		if entry.Level == resolver.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, entry)
	}
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("arrlist"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Resolve artist names to MusicBrainz IDs"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter path to artist list:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	strictCheck := "[ ]"
	if m.strict {
		strictCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Strict mode, fail on unresolved names (s)\n", strictCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Delay: %.1fs between requests | Retries: %d",
		m.settings.RequestDelay, m.settings.MaxRetries,
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResolving() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Resolving artists..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.resolved+m.failed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Artists: %d/%d | Unresolved: %d",
		m.resolved+m.failed,
		m.total,
		m.failed,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Resolution Complete\n\n"+
			"Resolved: %d/%d\n"+
			"Unresolved (omitted): %d\n"+
			"Output: %s",
		m.resolved,
		m.total,
		m.failed,
		m.outputPath,
	))
	b.WriteString(box)

	if m.failed > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch log.Level {
		case resolver.LevelError:
			style = errorStyle
			prefix = "x"
		case resolver.LevelWarning:
			style = warningStyle
			prefix = "!"
		case resolver.LevelSuccess:
			style = successStyle
			prefix = "+"
		case resolver.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start - s: strict - v: verbose - esc: quit"
	case StateResolving:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run - q: quit"
	}
	return ""
}

// startResolution reads the input list and runs the whole batch in the
// background, writing the output file when it succeeds.
func (m *Model) startResolution() tea.Cmd {
	inputPath := m.textInput.Value()
	ctx := m.ctx
	events := m.events

	settings := m.settings
	settings.Strict = m.strict

	httpClient := http.NewClient(settings.UserAgent, settings.Timeout())
	mbClient := musicbrainz.NewClient(httpClient, settings.BaseURL, settings.SearchLimit)

	res := resolver.New(settings, mbClient, func(event resolver.ProgressEvent) {
		events.append(LogEntry{Message: event.Message, Level: event.Level})
	})
	m.resolver = res

	outputPath := filepath.Join(filepath.Dir(inputPath), settings.OutputFileName)
	m.outputPath = outputPath

	return func() tea.Msg {
		names, err := arrio.ReadArtistNames(inputPath)
		if err != nil {
			return ResolveDoneMsg{Err: err}
		}

		results, err := res.Resolve(ctx, names)
		if err != nil {
			return ResolveDoneMsg{Results: results, Err: err}
		}

		var ids []string
		for _, r := range results {
			if r.Resolved() {
				ids = append(ids, r.MBID)
			}
		}
		if err := arrio.WriteArtistsJSON(outputPath, ids); err != nil {
			return ResolveDoneMsg{Results: results, Err: err}
		}

		return ResolveDoneMsg{Results: results, OutputPath: outputPath}
	}
}

// Run starts the TUI program.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
