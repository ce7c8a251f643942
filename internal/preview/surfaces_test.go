package preview

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospekt/internal/brochure"
	"prospekt/internal/logging"
)

func TestFileSurfaceWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.json")
	surface := NewFileSurface(path)

	doc := brochure.Default()
	doc.ProjectName = "Azure Bay Residences"
	surface.Render(doc, palette[1])
	require.NoError(t, surface.Print())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	document, ok := out["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Azure Bay Residences", document["projectName"])

	theme, ok := out["theme"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, palette[1].Name, theme["name"])
	assert.Equal(t, palette[1].Primary, theme["primary"])
}

func TestFileSurfaceRequiresRender(t *testing.T) {
	surface := NewFileSurface(filepath.Join(t.TempDir(), "print.json"))
	assert.Error(t, surface.Print())
}

func TestFileSurfaceThroughController(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.json")
	surface := NewFileSurface(path)
	c := NewController(&fakeSurface{}, surface, logging.Nop(), testTimings)
	t.Cleanup(c.Stop)

	require.NoError(t, c.Show(map[string]any{"projectName": "Printable"}))
	require.NoError(t, c.Print())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	document := out["document"].(map[string]any)
	assert.Equal(t, "Printable", document["projectName"])
}
