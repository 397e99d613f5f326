package resolve

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/careproc/validator/element"
)

// Kind names a clinical-resource kind. The task-template family is
// split: activity templates and structural profiles resolve
// differently.
type Kind string

// Resource kinds, named after their conventional subdirectory.
const (
	KindTaskTemplate      Kind = "Task"
	KindActivityTemplate  Kind = "ActivityDefinition"
	KindStructuralProfile Kind = "StructureDefinition"
	KindValueSet          Kind = "ValueSet"
	KindCodeSystem        Kind = "CodeSystem"
	KindFormTemplate      Kind = "Questionnaire"
)

// Dir returns the conventional subdirectory name for the kind.
func (k Kind) Dir() string {
	return string(k)
}

// Resolver answers existence and lookup queries for clinical-resource
// documents under a project root. Matching is content-based: files are
// parsed and compared by their canonical-identifier fields, never by
// filename. All queries are best-effort; unreadable files and missing
// directories mean "not found", never an error.
type Resolver struct {
	root string
}

// New creates a resolver anchored at the given project root.
func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the project root the resolver is anchored at.
func (r *Resolver) Root() string {
	return r.root
}

// DefinitionExists reports whether a document of the given kind defines
// the target. Activity templates match when the target occurs as their
// canonical URL or anywhere inside an annotation (extension) block;
// every other kind matches by canonical-URL equality after stripping
// the version suffix.
func (r *Resolver) DefinitionExists(kind Kind, target string) bool {
	return r.FindFile(kind, target) != ""
}

// FindFile returns the first file of the given kind matching the
// target, or "" if none matches.
func (r *Resolver) FindFile(kind Kind, target string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		return ""
	}
	want := StripVersion(target)

	var found string
	for _, dir := range r.kindDirs(kind) {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || found != "" {
				return nil
			}
			doc, perr := ParseDocument(path)
			if perr != nil || doc.Name != string(kind) {
				return nil
			}
			if matches(kind, doc, target, want) {
				found = path
			}
			return nil
		})
		if found != "" {
			break
		}
	}
	return found
}

// FindDefinitionFile returns the file defining the structural profile
// with the given canonical URL, or "" if none exists.
func (r *Resolver) FindDefinitionFile(profile string) string {
	return r.FindFile(KindStructuralProfile, profile)
}

// matches applies the per-kind matching rule.
func matches(kind Kind, doc *element.Element, target, want string) bool {
	if StripVersion(doc.ValueOf("url")) == want {
		return true
	}
	if kind != KindActivityTemplate {
		return false
	}
	// Activity templates are additionally matched by a free-text
	// search for the symbolic name inside their annotation blocks.
	for _, ext := range doc.Named("extension") {
		if ext.Contains(target) {
			return true
		}
	}
	return false
}

// DeclaresMessageName reports whether the activity-template file at
// path mentions the symbolic message name in one of its annotation
// blocks.
func (r *Resolver) DeclaresMessageName(path, name string) bool {
	if name == "" {
		return false
	}
	doc, err := ParseDocument(path)
	if err != nil || doc.Name != string(KindActivityTemplate) {
		return false
	}
	for _, ext := range doc.Named("extension") {
		if ext.Contains(name) {
			return true
		}
	}
	return false
}

// Differential element ids of the fixed values a task profile must
// declare for message correlation.
const (
	TaskInstantiatesElement = "Task.instantiatesCanonical"
	TaskMessageNameElement  = "Task.input:message-name.value[x]"
)

// FindProfileFixingMessage returns the first structural-profile file
// that fixes the given symbolic message name in its message-name input
// slice, or "" if none does.
func (r *Resolver) FindProfileFixingMessage(name string) string {
	if name == "" {
		return ""
	}
	var found string
	for _, dir := range r.kindDirs(KindStructuralProfile) {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || found != "" {
				return nil
			}
			doc, perr := ParseDocument(path)
			if perr != nil || doc.Name != string(KindStructuralProfile) {
				return nil
			}
			if FixedValue(doc, TaskMessageNameElement) == name {
				found = path
			}
			return nil
		})
		if found != "" {
			break
		}
	}
	return found
}

// FixedValue extracts the fixed value a structural profile declares for
// the differential element with the given id, or "" if the element or
// its fixed value is absent.
func FixedValue(doc *element.Element, elementID string) string {
	for _, el := range doc.All("differential", "element") {
		if elementIdentifier(el) != elementID {
			continue
		}
		for _, child := range el.Children {
			if strings.HasPrefix(child.Name, "fixed") {
				return child.Value()
			}
		}
	}
	return ""
}

// elementIdentifier reads an element id in either serialization form:
// an attribute in XML, a child element after JSON normalization.
func elementIdentifier(el *element.Element) string {
	if id := el.Attr("id"); id != "" {
		return id
	}
	return el.ValueOf("id")
}

// ParseDocument parses an XML or JSON resource file into an element
// tree, chosen by file extension.
func ParseDocument(path string) (*element.Element, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return element.ParseJSONFile(path)
	}
	return element.ParseXMLFile(path)
}

// StripVersion removes the |version suffix of a canonical identifier.
func StripVersion(canonical string) string {
	if idx := strings.LastIndex(canonical, "|"); idx != -1 {
		return canonical[:idx]
	}
	return canonical
}

// kindDirs returns the candidate directories for a kind, covering the
// nested conventional layout and the flat layout.
func (r *Resolver) kindDirs(kind Kind) []string {
	if r.root == "" {
		return nil
	}
	candidates := []string{
		filepath.Join(r.root, "src", "main", "resources", "fhir", kind.Dir()),
		filepath.Join(r.root, "fhir", kind.Dir()),
	}
	var dirs []string
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
