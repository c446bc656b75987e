// Package tui is an interactive viewer for parsed diffs: one patched file
// at a time, re-serialized with its hunks colorized inside a viewport.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/asynkron/unidiff/pkg/unidiff"
)

type styles struct {
	fileHeader lipgloss.Style
	hunkHeader lipgloss.Style
	added      lipgloss.Style
	removed    lipgloss.Style
	marker     lipgloss.Style
	statusBar  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		fileHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		hunkHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		added:      lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		removed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		statusBar:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
	}
}

type model struct {
	patch  *unidiff.PatchSet
	index  int
	vp     viewport.Model
	width  int
	height int
	ready  bool
	st     styles
}

func newModel(patch *unidiff.PatchSet) *model {
	return &model{patch: patch, st: defaultStyles()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		// One row for the status bar.
		m.vp.Height = msg.Height - 1
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.ready = true
		m.setContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.selectFile(m.index - 1)
			return m, nil
		case "right", "l", "tab":
			m.selectFile(m.index + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Initializing…"
	}
	bar := statusLine(m.patch, m.index)
	if m.width > 0 {
		bar = m.st.statusBar.Width(m.width).Render(bar)
	}
	return bar + "\n" + m.vp.View()
}

func (m *model) selectFile(index int) {
	if index < 0 || index >= m.patch.Len() {
		return
	}
	m.index = index
	m.setContent()
}

func (m *model) setContent() {
	file, err := m.patch.File(m.index)
	if err != nil {
		m.vp.SetContent("(empty patch)")
		return
	}
	m.vp.SetContent(renderPatchedFile(file, m.st))
	m.vp.GotoTop()
}

// statusLine summarizes the selected file for the status bar.
func statusLine(patch *unidiff.PatchSet, index int) string {
	file, err := patch.File(index)
	if err != nil {
		return "unidiff: empty patch, q to quit"
	}
	return fmt.Sprintf(" %s  (+%d -%d)  [%d/%d]  ←/→ files, q quits", file.Path(), file.Added(), file.Removed(), index+1, patch.Len())
}

// renderPatchedFile colorizes the re-serialized form of one file. The
// no-newline marker is shown with its original annotation text rather than
// the newline marker used by the canonical serialization.
func renderPatchedFile(file *unidiff.PatchedFile, st styles) string {
	var b strings.Builder
	b.WriteString(st.fileHeader.Render("--- "+file.SourceFile) + "\n")
	b.WriteString(st.fileHeader.Render("+++ "+file.TargetFile) + "\n")
	for _, hunk := range file.Hunks() {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@ %s", hunk.SourceStart, hunk.SourceLength, hunk.TargetStart, hunk.TargetLength, hunk.SectionHeader)
		b.WriteString(st.hunkHeader.Render(header) + "\n")
		for _, line := range hunk.Lines() {
			switch line.Type {
			case unidiff.LineAdded:
				b.WriteString(st.added.Render("+" + line.Value))
			case unidiff.LineRemoved:
				b.WriteString(st.removed.Render("-" + line.Value))
			case unidiff.LineEmpty:
				b.WriteString(st.marker.Render(`\ No newline at end of file`))
			default:
				b.WriteString(" " + line.Value)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Run launches the viewer and blocks until the user exits. Returns a
// POSIX-style exit code.
func Run(ctx context.Context, patch *unidiff.PatchSet) int {
	// Pin the color profile so terminal background queries cannot
	// contaminate stdin, matching the rest of the charmbracelet setup.
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)

	p := tea.NewProgram(newModel(patch), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui error:", err)
		return 1
	}
	return 0
}
