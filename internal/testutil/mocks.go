package testutil

import (
	"sync/atomic"

	"github.com/kyleking/cutecosmic/internal/theme"
)

// MockProvider implements theme.Provider with fixed results.
type MockProvider struct {
	Themes     map[theme.Mode]*theme.Theme
	ToolkitVal theme.Toolkit
	ToolkitErr error

	themeCalls   atomic.Int64
	toolkitCalls atomic.Int64
}

// NewMockProvider returns a provider serving the default dark and light
// themes (system preference resolves to dark) and the default toolkit.
func NewMockProvider() *MockProvider {
	dark := theme.DarkBuilder().Build()

	return &MockProvider{
		Themes: map[theme.Mode]*theme.Theme{
			theme.ModeSystemPreference: dark,
			theme.ModeDark:             dark,
			theme.ModeLight:            theme.LightBuilder().Build(),
		},
		ToolkitVal: theme.DefaultToolkit(),
	}
}

// WithTheme sets the theme returned for mode.
func (m *MockProvider) WithTheme(mode theme.Mode, t *theme.Theme) *MockProvider {
	m.Themes[mode] = t
	return m
}

// WithToolkit sets the toolkit and error returned by Toolkit.
func (m *MockProvider) WithToolkit(tk theme.Toolkit, err error) *MockProvider {
	m.ToolkitVal = tk
	m.ToolkitErr = err

	return m
}

func (m *MockProvider) Theme(mode theme.Mode) *theme.Theme {
	m.themeCalls.Add(1)
	return m.Themes[mode]
}

func (m *MockProvider) Toolkit() (theme.Toolkit, error) {
	m.toolkitCalls.Add(1)
	return m.ToolkitVal, m.ToolkitErr
}

// ThemeCalls returns how many times Theme was called.
func (m *MockProvider) ThemeCalls() int64 {
	return m.themeCalls.Load()
}

// ToolkitCalls returns how many times Toolkit was called.
func (m *MockProvider) ToolkitCalls() int64 {
	return m.toolkitCalls.Load()
}
