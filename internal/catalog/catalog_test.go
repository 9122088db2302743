package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glamstack/glamql/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
- name: Night Runner
  theme: cyberpunk
  items: [jacket, boots]
  colors: [neon blue]
  image: night_runner.png
  steps:
    - start with the jacket
    - add the boots
- name: Chrome Drifter
  theme: Cyberpunk
  items: [visor]
  colors: [black, magenta]
  image: chrome_drifter.png
- name: Rose Court
  theme: coquette
  items: [ribbon dress]
  colors: [blush pink]
  image: rose_court.png
`

const jsonDoc = `[
  {"name": "Night Runner", "theme": "cyberpunk", "items": ["jacket"], "colors": ["neon blue"], "image": "nr.png", "steps": ["wear it"]}
]`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	c, err := catalog.Load(writeDoc(t, "library.yaml", yamlDoc))
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	first := c.Outfits()[0]
	assert.Equal(t, "Night Runner", first.Name)
	assert.Equal(t, "cyberpunk", first.Theme)
	assert.Equal(t, []string{"jacket", "boots"}, first.Items)
	assert.Equal(t, []string{"neon blue"}, first.Colors)
	assert.Equal(t, "night_runner.png", first.Image)
	assert.Len(t, first.Steps, 2)
}

func TestLoadJSON(t *testing.T) {
	// JSON is a YAML subset, so JSON library documents decode too.
	c, err := catalog.Load(writeDoc(t, "library.json", jsonDoc))
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Night Runner", c.Outfits()[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseDefaultsForMissingFields(t *testing.T) {
	c, err := catalog.Parse([]byte(`[{"name": "Bare"}]`))
	require.NoError(t, err)

	o := c.Outfits()[0]
	assert.Equal(t, "Bare", o.Name)
	assert.Empty(t, o.Theme)
	assert.Nil(t, o.Items)
	assert.Nil(t, o.Colors)
	assert.Empty(t, o.Image)
	assert.Nil(t, o.Steps)
}

func TestForThemeIsCaseInsensitive(t *testing.T) {
	c, err := catalog.Parse([]byte(yamlDoc))
	require.NoError(t, err)

	matched := c.ForTheme("CYBERPUNK")
	require.Len(t, matched, 2)
	assert.Equal(t, "Night Runner", matched[0].Name)
	assert.Equal(t, "Chrome Drifter", matched[1].Name)

	assert.Empty(t, c.ForTheme("dark fantasy"))
}

func TestThemes(t *testing.T) {
	c, err := catalog.Parse([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"cyberpunk", "coquette"}, c.Themes())
}

func TestImagePath(t *testing.T) {
	o := catalog.Outfit{Theme: "dark fantasy", Image: "crown.png"}
	want := filepath.Join("cosmetics_images", "dark_fantasy", "crown.png")
	assert.Equal(t, want, catalog.ImagePath("cosmetics_images", o))
}
