package reflection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	var n Nop
	assert.False(t, n.ClassExists("org.demo.DoWork", "/tmp"))
	assert.False(t, n.ImplementsCapability("org.demo.DoWork", "Activity", "/tmp"))
	assert.False(t, n.IsDescendantOf("org.demo.DoWork", "Base", "/tmp"))
}

func TestDirInspector_ClassExists(t *testing.T) {
	root := t.TempDir()
	classDir := filepath.Join(root, "target", "classes", "org", "demo")
	require.NoError(t, os.MkdirAll(classDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(classDir, "DoWork.class"), []byte{0xCA, 0xFE}, 0o644))

	insp := NewDirInspector("target/classes")
	assert.True(t, insp.ClassExists("org.demo.DoWork", root))
	assert.False(t, insp.ClassExists("org.demo.Missing", root))
	assert.False(t, insp.ClassExists("", root))
	assert.False(t, insp.ClassExists("org.demo.DoWork", ""))
}

func TestDirInspector_Manifest(t *testing.T) {
	root := t.TempDir()
	classDir := filepath.Join(root, "target", "classes", "org", "demo")
	require.NoError(t, os.MkdirAll(classDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(classDir, "DoWork.class"), []byte{0xCA}, 0o644))

	insp := NewDirInspector("target/classes")
	insp.Capabilities = map[string][]string{"org.demo.DoWork": {"ActivityInterface"}}
	insp.Ancestors = map[string][]string{"org.demo.DoWork": {"org.demo.Base"}}

	assert.True(t, insp.ImplementsCapability("org.demo.DoWork", "ActivityInterface", root))
	assert.False(t, insp.ImplementsCapability("org.demo.DoWork", "Other", root))
	assert.True(t, insp.IsDescendantOf("org.demo.DoWork", "org.demo.Base", root))
	assert.False(t, insp.IsDescendantOf("org.demo.Missing", "org.demo.Base", root))
}
