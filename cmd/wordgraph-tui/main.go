package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/cluso-wordgraph/pkg/analysis"
	"github.com/dd0wney/cluso-wordgraph/pkg/gml"
	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
	"github.com/dd0wney/cluso-wordgraph/pkg/search"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	similarView
	pathsView
	searchView
	viewCount
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Quit},
	}
}

type model struct {
	graph       *graph.Store
	engine      *search.Engine
	index       *search.DefinitionIndex
	report      analysis.Report
	currentView view
	input       textinput.Model
	results     string
	help        help.Model
	keys        keyMap
	width       int
	height      int
	message     string
	messageErr  bool
}

func initialModel(g *graph.Store) model {
	ti := textinput.New()
	ti.Placeholder = "state"
	ti.CharLimit = 120
	ti.Width = 60

	return model{
		graph:       g,
		engine:      search.NewEngine(g),
		index:       search.NewDefinitionIndex(g),
		report:      analysis.Analyze(g),
		currentView: dashboardView,
		input:       ti,
		help:        help.New(),
		keys:        keys,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.switchView((m.currentView + 1) % viewCount)

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.switchView(viewCount - 1)
			} else {
				m.switchView(m.currentView - 1)
			}

		case key.Matches(msg, m.keys.Enter):
			if m.currentView != dashboardView && m.input.Focused() {
				m.runQuery()
			}
		}
	}

	if m.currentView != dashboardView {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *model) switchView(v view) {
	m.currentView = v
	m.results = ""
	m.message = ""
	m.input.SetValue("")
	switch v {
	case similarView:
		m.input.Placeholder = "state"
		m.input.Focus()
	case pathsView:
		m.input.Placeholder = "state ease"
		m.input.Focus()
	case searchView:
		m.input.Placeholder = "freedom effort"
		m.input.Focus()
	default:
		m.input.Blur()
	}
}

func (m *model) runQuery() {
	raw := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if raw == "" {
		m.message = "Enter a query first"
		m.messageErr = true
		return
	}
	fields := strings.Fields(raw)

	switch m.currentView {
	case similarView:
		m.runSimilar(fields[0])
	case pathsView:
		if len(fields) < 2 {
			m.message = "Need two words, e.g. 'state ease'"
			m.messageErr = true
			return
		}
		m.runPaths(fields[0], fields[1])
	case searchView:
		m.runSearch(raw)
	}
}

func (m *model) runSimilar(word string) {
	if !m.graph.HasNode(word) {
		m.message = fmt.Sprintf("%q is not in the graph", word)
		m.messageErr = true
		return
	}
	similar := m.engine.FindSimilarWords(word, 10)
	if len(similar) == 0 {
		m.message = fmt.Sprintf("No words reachable from %q", word)
		m.messageErr = true
		return
	}

	var s strings.Builder
	for i, r := range similar {
		bar := strings.Repeat("█", int(r.Score*30))
		fmt.Fprintf(&s, "  %2d. %-18s %.4f %s\n", i+1, r.Word, r.Score, bar)
	}
	m.results = s.String()
	m.message = fmt.Sprintf("%d similar words", len(similar))
	m.messageErr = false
}

func (m *model) runPaths(word1, word2 string) {
	paths := m.engine.FindConnectingPaths(word1, word2, 5)
	if len(paths) == 0 {
		m.message = fmt.Sprintf("No path between %q and %q", word1, word2)
		m.messageErr = true
		return
	}

	var s strings.Builder
	for i, path := range paths {
		fmt.Fprintf(&s, "  %d. %s\n", i+1, strings.Join(path, " → "))
	}
	m.results = s.String()
	m.message = fmt.Sprintf("%d shortest paths, %d hops", len(paths), len(paths[0])-1)
	m.messageErr = false
}

func (m *model) runSearch(query string) {
	hits := m.index.Search(query)
	if len(hits) == 0 {
		m.message = fmt.Sprintf("No definitions mention %q", query)
		m.messageErr = true
		return
	}

	var s strings.Builder
	for i, h := range hits {
		if i >= 15 {
			fmt.Fprintf(&s, "  ... and %d more\n", len(hits)-i)
			break
		}
		node := m.graph.GetNode(h.Word)
		def := ""
		if node != nil {
			def = node.Definition
			if len(def) > 50 {
				def = def[:50] + "…"
			}
		}
		fmt.Fprintf(&s, "  %-18s %.1f  %s\n", h.Word, h.Score, def)
	}
	m.results = s.String()
	m.message = fmt.Sprintf("%d matching words", len(hits))
	m.messageErr = false
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🕸  Word Graph Explorer"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case similarView:
		s.WriteString(m.renderQueryView("Similar Words", "Which words sit closest to yours?"))
	case pathsView:
		s.WriteString(m.renderQueryView("Connecting Paths", "How do two words relate?"))
	case searchView:
		s.WriteString(m.renderQueryView("Definition Search", "Which definitions mention your terms?"))
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Dashboard", "Similar", "Paths", "Search"}
	var renderedTabs []string

	for i, tab := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderDashboard() string {
	statsContent := fmt.Sprintf(`📊 Graph Statistics
━━━━━━━━━━━━━━━
Words:       %d
Connections: %d
Density:     %.4f
Avg Degree:  %.2f
Components:  %d
Largest:     %d
Clustering:  %.4f`,
		m.report.Nodes,
		m.report.Edges,
		m.report.Density,
		m.report.AverageDegree,
		m.report.ConnectedComponents,
		m.report.LargestComponentSize,
		m.report.AverageClustering,
	)

	var hubs strings.Builder
	hubs.WriteString("🏆 Most Connected\n━━━━━━━━━━━━━━━\n")
	for i, e := range m.report.TopDegree {
		if i >= 7 {
			break
		}
		fmt.Fprintf(&hubs, "%-14s %d\n", e.Word, e.Degree)
	}

	statsBox := statsBoxStyle.Render(statsContent)
	hubsBox := statsBoxStyle.Render(hubs.String())

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, statsBox, hubsBox),
	)
}

func (m model) renderQueryView(title, prompt string) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n\n")
	s.WriteString(prompt + "\n\n")
	s.WriteString(m.input.View())

	if m.results != "" {
		s.WriteString("\n\n")
		s.WriteString(m.results)
	}

	return contentStyle.Render(s.String())
}

func main() {
	graphPath := "graph.gml"
	if len(os.Args) > 1 {
		graphPath = os.Args[1]
	}

	f, err := os.Open(graphPath)
	if err != nil {
		log.Fatalf("Failed to open graph: %v", err)
	}
	g, err := gml.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to parse graph: %v", err)
	}

	p := tea.NewProgram(initialModel(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
