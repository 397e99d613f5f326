package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pv "github.com/careproc/validator"
)

func TestFindProjectRoot_MarkerWalk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, MarkerFile), []byte("<project/>"), 0o644))

	nested := filepath.Join(root, "src", "main", "resources", "bpe")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "demo.bpmn")
	require.NoError(t, os.WriteFile(file, []byte("<definitions/>"), 0o644))

	assert.Equal(t, root, FindProjectRoot(file))
	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Equal(t, root, FindProjectRoot(root))
}

func TestFindProjectRoot_NoMarker(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "work")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	file := filepath.Join(sub, "demo.bpmn")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	// Without a marker the immediate parent directory is used.
	assert.Equal(t, sub, FindProjectRoot(file))
}

func TestDetectGeneration(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   pv.Generation
	}{
		{"current api", "<artifactId>process-api-v2</artifactId>", pv.Gen2},
		{"legacy api", "<artifactId>process-api-v1</artifactId>", pv.Gen1},
		{"neither", "<artifactId>something-else</artifactId>", pv.Gen2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, MarkerFile), []byte(tt.marker), 0o644))
			assert.Equal(t, tt.want, DetectGeneration(root))
		})
	}
}

func TestDetectGeneration_MissingMarker(t *testing.T) {
	assert.Equal(t, pv.Gen2, DetectGeneration(t.TempDir()))
}
