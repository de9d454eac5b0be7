package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, [3]float32{5, 5, 5}, cfg.Camera.Position)
	assert.Equal(t, 5, cfg.World.GroundRadius)
	require.Len(t, cfg.Palette, 5)
	assert.Equal(t, PaletteEntry{Name: "Grass", Color: "#7cb342"}, cfg.Palette[0])
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockcraft.yaml")
	body := `
window:
  width: 800
  height: 600
camera:
  panSpeed: 0.02
palette:
  - name: Snow
    color: "#fffafa"
  - name: Ice
    color: "#a5f2f3"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Minecraft Craft", cfg.Window.Title, "unset keys keep defaults")
	assert.Equal(t, float32(0.02), cfg.Camera.PanSpeed)
	assert.Equal(t, float32(0.1), cfg.Camera.ZoomSpeed)
	assert.Equal(t, "debug", cfg.Log.Level)

	p, err := cfg.BuildPalette()
	require.NoError(t, err)
	assert.Equal(t, "Snow", p.First().Name)
	assert.Equal(t, 2, p.Len())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "window:\n  depth: 3\n",
		"bad yaml":        "window: [",
		"zero width":      "window:\n  width: 0\n",
		"empty palette":   "palette: []\n",
		"bad color":       "palette:\n  - name: X\n    color: blue\n",
		"duplicate entry": "palette:\n  - {name: A, color: \"#000000\"}\n  - {name: A, color: \"#ffffff\"}\n",
		"bad level":       "log:\n  level: shouty\n",
		"bad fovy":        "camera:\n  fovy: 200\n",
		"negative radius": "world:\n  groundRadius: -1\n",
		"zero pan speed":  "camera:\n  panSpeed: 0\n",
		"negative zoom":   "camera:\n  zoomSpeed: -0.1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
