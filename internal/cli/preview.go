package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/railyard/railyard/pkg/rail"
)

// Preview styles
var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	previewDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// previewCommand creates the preview command, an interactive text-diagram
// viewer.
func (c *CLI) previewCommand() *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "preview INPUT",
		Short: "Preview a diagram interactively in the terminal",
		Long: `Show the text rendering of a diagram in an interactive viewer. Press "a" or
tab to toggle between Unicode box drawing and ASCII glyphs, "q" to quit. The
input format is picked by extension like the text command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			m := newPreviewModel(args[0], data, ascii)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "start with ASCII glyphs")

	return cmd
}

// previewModel is the bubbletea model for the diagram preview.
type previewModel struct {
	path   string
	source []byte
	ascii  bool
	lines  []string
	err    error
}

// newPreviewModel creates a preview model with the diagram already rendered.
func newPreviewModel(path string, source []byte, ascii bool) previewModel {
	m := previewModel{path: path, source: source, ascii: ascii}
	m.render()
	return m
}

// render rebuilds the diagram with the current glyph set. Parameters are
// immutable once captured, so toggling means building a fresh tree.
func (m *previewModel) render() {
	p := rail.DefaultParams()
	p.Type = rail.TypeComplex
	if m.ascii {
		p.Formatting = rail.FormattingASCII
	}
	d, err := buildDiagram(p, m.path, m.source)
	if err != nil {
		m.lines, m.err = nil, err
		return
	}
	m.lines, m.err = d.TextDiagram().Lines(), nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "a", "tab":
			m.ascii = !m.ascii
			m.render()
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(previewTitleStyle.Render("Railroad preview: " + m.path))
	b.WriteString("\n")
	glyphs := "unicode"
	if m.ascii {
		glyphs = "ascii"
	}
	b.WriteString(previewDimStyle.Render("a/tab toggle glyphs (" + glyphs + ")  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range m.lines {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return b.String()
}
