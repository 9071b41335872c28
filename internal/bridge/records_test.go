package bridge

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/kyleking/cutecosmic/internal/testutil"
	"github.com/kyleking/cutecosmic/internal/theme"
)

func TestRecordLayout(t *testing.T) {
	assert.EqualValues(t, 4, unsafe.Sizeof(Color{}))
	assert.EqualValues(t, 17*4, unsafe.Sizeof(Palette{}))
	assert.EqualValues(t, 3*4, unsafe.Sizeof(ExtendedPalette{}))
	assert.EqualValues(t, 4, unsafe.Sizeof(FontStyle(0)))
	assert.EqualValues(t, 4, unsafe.Sizeof(FontKind(0)))

	var f Font
	ptr := unsafe.Sizeof(f.Family)
	assert.EqualValues(t, 0, unsafe.Offsetof(f.Family))
	assert.EqualValues(t, ptr, unsafe.Offsetof(f.Style))
	assert.EqualValues(t, ptr+4, unsafe.Offsetof(f.Weight))
	assert.EqualValues(t, ptr+8, unsafe.Offsetof(f.Stretch))
}

func TestPaletteRoles(t *testing.T) {
	p := Palette{Window: Color{Red: 1}, AccentDisabled: Color{Blue: 2}}

	roles := p.Roles()
	assert.Len(t, roles, 17)
	assert.Equal(t, Role{"window", Color{Red: 1}}, roles[0])
	assert.Equal(t, "tooltip", roles[13].Name)
	assert.Equal(t, Role{"accent_disabled", Color{Blue: 2}}, roles[16])

	seen := map[string]bool{}
	for _, r := range roles {
		assert.False(t, seen[r.Name], "duplicate role %s", r.Name)
		seen[r.Name] = true
	}
}

func TestExtendedPaletteRoles(t *testing.T) {
	ext := ExtendedPalette{Success: Color{Green: 255, Alpha: 255}}

	roles := ext.Roles()
	assert.Equal(t, []string{"success", "destructive", "warning"}, []string{roles[0].Name, roles[1].Name, roles[2].Name})
	assert.Equal(t, "#00ff00ff", roles[0].Color.Hex())
	assert.Equal(t, "#00ff00", roles[0].Color.RGBHex())
}

func TestBuilderRoles(t *testing.T) {
	cache := NewCache(testutil.NewMockProvider(), nil)
	cache.Load(theme.ModeDark)

	roles := NewBuilder(cache).Roles()
	assert.Equal(t, 20, roles.Len())
	assert.Equal(t, "window", roles.String(0))
	assert.Equal(t, "warning", roles.String(19))
}

func TestFontStyleString(t *testing.T) {
	assert.Equal(t, "italic", FontStyleItalic.String())
	assert.Equal(t, "FontStyle(9)", FontStyle(9).String())
}
