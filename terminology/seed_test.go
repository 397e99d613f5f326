package terminology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedXML = `<CodeSystem xmlns="http://hl7.org/fhir">
  <url value="http://example.com/fhir/CodeSystem/colors"/>
  <concept>
    <code value="red"/>
    <concept>
      <code value="dark-red"/>
    </concept>
  </concept>
  <concept>
    <code value="blue"/>
  </concept>
</CodeSystem>`

const seedJSON = `{
  "resourceType": "CodeSystem",
  "url": "http://example.com/fhir/CodeSystem/shapes",
  "concept": [
    {"code": "circle"},
    {"code": "polygon", "concept": [{"code": "square"}]}
  ]
}`

func writeSeedProject(t *testing.T, flat bool) string {
	t.Helper()
	root := t.TempDir()

	dir := filepath.Join(root, "src", "main", "resources", "fhir", "CodeSystem")
	if flat {
		dir = filepath.Join(root, "fhir", "CodeSystem")
	}
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.xml"), []byte(seedXML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.json"), []byte(seedJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	return root
}

func TestSeedFromProject_NestedLayout(t *testing.T) {
	cache := NewCache()
	stats := cache.SeedFromProject(writeSeedProject(t, false))

	assert.Equal(t, 2, stats.SystemsLoaded)
	assert.Equal(t, []string{"blue", "dark-red", "red"},
		cache.Codes("http://example.com/fhir/CodeSystem/colors"))
	assert.Equal(t, []string{"circle", "polygon", "square"},
		cache.Codes("http://example.com/fhir/CodeSystem/shapes"))
	assert.False(t, cache.IsUnknown("http://example.com/fhir/CodeSystem/colors", "dark-red"))
}

func TestSeedFromProject_FlatLayout(t *testing.T) {
	cache := NewCache()
	stats := cache.SeedFromProject(writeSeedProject(t, true))

	assert.Equal(t, 2, stats.SystemsLoaded)
	assert.False(t, cache.IsUnknown("http://example.com/fhir/CodeSystem/shapes", "square"))
}

func TestSeedFromProject_MissingFolder(t *testing.T) {
	cache := NewCache()
	stats := cache.SeedFromProject(t.TempDir())

	assert.Zero(t, stats.SystemsLoaded)
}

func TestSeedFromProject_EmptyRoot(t *testing.T) {
	cache := NewCache()
	assert.Zero(t, cache.SeedFromProject("").FilesScanned)
}
