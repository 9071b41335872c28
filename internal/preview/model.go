// Package preview is an interactive terminal view of the colors native
// toolkits receive from the theme bridge.
package preview

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/theme"
)

// Model is the bubbletea model for the preview.
type Model struct {
	builder *bridge.Builder
	mode    theme.Mode
	keys    KeyMap

	roles   bridge.Roles
	visible []int
	cursor  int

	filter    textinput.Model
	filtering bool

	status string
	copy   func(string) error
}

// New creates a preview that loads mode into builder's cache.
func New(builder *bridge.Builder, mode theme.Mode) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 32
	ti.Width = 32

	m := &Model{
		builder: builder,
		keys:    DefaultKeyMap(),
		filter:  ti,
		copy:    clipboard.WriteAll,
	}
	m.load(mode)

	return m
}

func (m *Model) load(mode theme.Mode) {
	m.mode = mode
	m.builder.Cache().Load(mode)
	m.roles = m.builder.Roles()
	m.applyFilter()
}

func (m *Model) applyFilter() {
	query := m.filter.Value()

	m.visible = m.visible[:0]
	if query == "" {
		for i := range m.roles {
			m.visible = append(m.visible, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(query, m.roles) {
			m.visible = append(m.visible, match.Index)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// Selected returns the highlighted role, if any.
func (m *Model) Selected() (bridge.Role, bool) {
	if len(m.visible) == 0 {
		return bridge.Role{}, false
	}

	return m.roles[m.visible[m.cursor]], true
}

// Mode returns the mode currently loaded.
func (m *Model) Mode() theme.Mode {
	return m.mode
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.System):
		m.load(theme.ModeSystemPreference)
		m.status = ""
	case key.Matches(keyMsg, m.keys.Dark):
		m.load(theme.ModeDark)
		m.status = ""
	case key.Matches(keyMsg, m.keys.Light):
		m.load(theme.ModeLight)
		m.status = ""
	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(keyMsg, m.keys.Escape):
		m.filter.SetValue("")
		m.applyFilter()
	case key.Matches(keyMsg, m.keys.Copy):
		m.copySelected()
	}

	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()

	return m, cmd
}

func (m *Model) copySelected() {
	role, ok := m.Selected()
	if !ok {
		return
	}

	hex := role.Color.Hex()
	if err := m.copy(hex); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}

	m.status = "Copied " + hex
}

// View implements tea.Model.
func (m *Model) View() string {
	var s strings.Builder

	th := m.builder.Cache().Theme()
	s.WriteString(titleStyle.Render("cutecosmic") + " ")
	s.WriteString(subtitleStyle.Render(fmt.Sprintf("%s (%s)", th.Name, m.mode)))
	s.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		s.WriteString(m.filter.View() + "\n\n")
	}

	if len(m.visible) == 0 {
		s.WriteString(subtitleStyle.Render("  no matching roles") + "\n")
	}

	for i, idx := range m.visible {
		role := m.roles[idx]

		line := fmt.Sprintf("%-24s %s", role.Name, role.Color.Hex())
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = normalStyle.Render("  " + line)
		}

		s.WriteString(Swatch(role.Color.RGBHex(), 4) + " " + line + "\n")
	}

	if m.status != "" {
		s.WriteString("\n" + subtitleStyle.Render(m.status) + "\n")
	}

	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, "["+h.Key+"] "+h.Desc)
	}
	s.WriteString("\n" + helpStyle.Render(strings.Join(help, "  ")))

	return s.String()
}
