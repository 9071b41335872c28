package preview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/testutil"
	"github.com/kyleking/cutecosmic/internal/theme"
)

func newTestModel(t *testing.T) (*Model, *[]string) {
	t.Helper()

	b := bridge.NewBuilder(bridge.NewCache(testutil.NewMockProvider(), nil))
	m := New(b, theme.ModeDark)

	var copied []string
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	return m, &copied
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func TestNew_LoadsMode(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, theme.ModeDark, m.Mode())
	assert.Len(t, m.visible, 20)

	role, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "window", role.Name)
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("k"))
	role, _ := m.Selected()
	assert.Equal(t, "window_text", role.Name)

	press(m, runes("k"), runes("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_ModeSwitch(t *testing.T) {
	m, _ := newTestModel(t)

	dark, _ := m.Selected()

	press(m, runes("l"))
	assert.Equal(t, theme.ModeLight, m.Mode())
	assert.False(t, m.builder.IsDark())

	light, _ := m.Selected()
	assert.NotEqual(t, dark.Color, light.Color)

	press(m, runes("s"))
	assert.Equal(t, theme.ModeSystemPreference, m.Mode())

	press(m, runes("d"))
	assert.Equal(t, theme.ModeDark, m.Mode())
	assert.True(t, m.builder.IsDark())
}

func TestUpdate_Filter(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("/"))
	require.True(t, m.filtering)

	press(m, runes("a"), runes("c"), runes("c"))
	for _, idx := range m.visible {
		assert.Contains(t, m.roles[idx].Name, "a")
	}
	role, ok := m.Selected()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(role.Name, "accent"), "best match %q", role.Name)

	// Keys are routed to the input while filtering.
	press(m, runes("q"))
	assert.True(t, m.filtering)
	assert.Equal(t, "accq", m.filter.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)
	assert.Equal(t, "accq", m.filter.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.filter.Value())
	assert.Len(t, m.visible, 20)
}

func TestUpdate_FilterNoMatches(t *testing.T) {
	m, copied := newTestModel(t)

	press(m, runes("/"), runes("z"), runes("z"), runes("z"), tea.KeyMsg{Type: tea.KeyEnter})

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "no matching roles")

	press(m, runes("y"))
	assert.Empty(t, *copied)
}

func TestUpdate_Copy(t *testing.T) {
	m, copied := newTestModel(t)

	press(m, runes("y"))

	role, _ := m.Selected()
	require.Len(t, *copied, 1)
	assert.Equal(t, role.Color.Hex(), (*copied)[0])
	assert.Contains(t, m.View(), "Copied "+role.Color.Hex())
}

func TestUpdate_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m.copy = func(string) error { return errors.New("no clipboard") }

	press(m, runes("y"))
	assert.Contains(t, m.View(), "Copy failed: no clipboard")
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "cosmic-dark (dark)")
	assert.Contains(t, view, "window_component")
	assert.Contains(t, view, "[y] copy hex")
}
