package resolve

import (
	"os"
	"path/filepath"
	"strings"

	pv "github.com/careproc/validator"
)

// MarkerFile anchors a plugin project; the root is the closest
// ancestor directory containing it.
const MarkerFile = "pom.xml"

// FindProjectRoot walks upward from start (a file or directory) until
// it finds a directory containing the project marker file. Failing
// that, it returns the immediate parent directory of start.
func FindProjectRoot(start string) string {
	dir := start
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		dir = filepath.Dir(start)
	}
	fallback := dir

	for {
		if _, err := os.Stat(filepath.Join(dir, MarkerFile)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fallback
		}
		dir = parent
	}
}

// DetectGeneration reads the project marker file and detects which API
// generation the plugin is built against. An unreadable marker or one
// naming neither generation defaults to the current generation.
func DetectGeneration(root string) pv.Generation {
	data, err := os.ReadFile(filepath.Join(root, MarkerFile))
	if err != nil {
		return pv.Gen2
	}
	content := string(data)
	switch {
	case strings.Contains(content, "process-api-v2"):
		return pv.Gen2
	case strings.Contains(content, "process-api-v1"):
		return pv.Gen1
	default:
		return pv.Gen2
	}
}
