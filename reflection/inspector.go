// Package reflection is the collaborator interface through which the
// validators ask about a target project's compiled implementation
// classes. The validation core only depends on three boolean queries;
// any implementation satisfies the contract, and an internal failure is
// always reported as a negative answer, never as an error.
package reflection

import (
	"os"
	"path/filepath"
	"strings"
)

// Inspector answers class queries against a target project. All three
// queries treat internal failures as "no".
type Inspector interface {
	// ClassExists reports whether the named class exists in the
	// project rooted at root.
	ClassExists(name, root string) bool

	// ImplementsCapability reports whether the named class implements
	// the given capability interface.
	ImplementsCapability(name, capability, root string) bool

	// IsDescendantOf reports whether the named class descends from the
	// given ancestor class.
	IsDescendantOf(name, ancestor, root string) bool
}

// Nop denies every query. It satisfies the contract for runs that skip
// class inspection.
type Nop struct{}

func (Nop) ClassExists(string, string) bool                  { return false }
func (Nop) ImplementsCapability(string, string, string) bool { return false }
func (Nop) IsDescendantOf(string, string, string) bool       { return false }

// DirInspector answers ClassExists from raw class-file presence under
// the project's build-output directory and the other two queries from
// an optional side manifest. It deliberately does not reproduce
// classloading; presence checks are enough for document validation.
type DirInspector struct {
	// BuildOutputDir is the relative directory holding compiled
	// classes, e.g. "target/classes".
	BuildOutputDir string

	// Capabilities maps class name to the capability interfaces it
	// implements, when known.
	Capabilities map[string][]string

	// Ancestors maps class name to its known ancestor classes.
	Ancestors map[string][]string
}

// NewDirInspector creates an inspector over the given relative
// build-output directory.
func NewDirInspector(buildOutputDir string) *DirInspector {
	return &DirInspector{BuildOutputDir: buildOutputDir}
}

// ClassExists checks for the compiled class file of name.
func (d *DirInspector) ClassExists(name, root string) bool {
	if name == "" || root == "" {
		return false
	}
	rel := strings.ReplaceAll(name, ".", string(filepath.Separator)) + ".class"
	path := filepath.Join(root, d.BuildOutputDir, rel)
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ImplementsCapability consults the side manifest; unknown classes are
// a negative answer.
func (d *DirInspector) ImplementsCapability(name, capability, root string) bool {
	if !d.ClassExists(name, root) {
		return false
	}
	for _, c := range d.Capabilities[name] {
		if c == capability {
			return true
		}
	}
	return false
}

// IsDescendantOf consults the side manifest; unknown classes are a
// negative answer.
func (d *DirInspector) IsDescendantOf(name, ancestor, root string) bool {
	if !d.ClassExists(name, root) {
		return false
	}
	for _, a := range d.Ancestors[name] {
		if a == ancestor {
			return true
		}
	}
	return false
}

var (
	_ Inspector = Nop{}
	_ Inspector = (*DirInspector)(nil)
)
