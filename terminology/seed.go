package terminology

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofhir/fhir/r4"

	"github.com/careproc/validator/element"
)

// codeSystemDirSuffix is the relative-path suffix of the vocabulary
// folder, matched in both the nested conventional layout
// (src/main/resources/fhir/CodeSystem) and the flat layout
// (fhir/CodeSystem).
const codeSystemDirSuffix = "fhir/CodeSystem"

// SeedStats summarizes what a project seeding pass found.
type SeedStats struct {
	FilesScanned  int
	SystemsLoaded int
	Skipped       int
}

// SeedFromProject scans the project's code-system folders and registers
// every code-system definition found, keyed by its canonical URL, with
// all leaf codes including nested child concepts. Seeding is
// best-effort: files that fail to parse are skipped silently and never
// fail the run.
func (c *Cache) SeedFromProject(root string) SeedStats {
	var stats SeedStats
	if root == "" {
		return stats
	}

	for _, dir := range findCodeSystemDirs(root) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			system, codes, ok := loadCodeSystemFile(path)
			stats.FilesScanned++
			if !ok {
				stats.Skipped++
				continue
			}
			c.Register(system, codes...)
			stats.SystemsLoaded++
		}
	}
	return stats
}

// findCodeSystemDirs walks root for directories whose path ends with
// the vocabulary folder suffix. Walk errors are swallowed; a missing or
// unreadable tree simply yields nothing.
func findCodeSystemDirs(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if d.IsDir() && strings.HasSuffix(filepath.ToSlash(path), codeSystemDirSuffix) {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// loadCodeSystemFile extracts (system URL, codes) from one XML or JSON
// code-system file. ok is false for anything that is not a well-formed
// code-system definition.
func loadCodeSystemFile(path string) (system string, codes []string, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		doc, err := element.ParseXMLFile(path)
		if err != nil || doc.Name != "CodeSystem" {
			return "", nil, false
		}
		system = doc.ValueOf("url")
		if system == "" {
			return "", nil, false
		}
		for _, concept := range doc.Named("concept") {
			codes = append(codes, collectXMLCodes(concept)...)
		}
		return system, codes, true

	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, false
		}
		var probe struct {
			ResourceType string `json:"resourceType"`
		}
		if err := json.Unmarshal(data, &probe); err != nil || probe.ResourceType != "CodeSystem" {
			return "", nil, false
		}
		var cs r4.CodeSystem
		if err := json.Unmarshal(data, &cs); err != nil || cs.Url == nil || *cs.Url == "" {
			return "", nil, false
		}
		return *cs.Url, collectR4Codes(cs.Concept), true

	default:
		return "", nil, false
	}
}

func collectXMLCodes(concept *element.Element) []string {
	var codes []string
	if code := concept.ValueOf("code"); code != "" {
		codes = append(codes, code)
	}
	for _, child := range concept.Named("concept") {
		codes = append(codes, collectXMLCodes(child)...)
	}
	return codes
}

func collectR4Codes(concepts []r4.CodeSystemConcept) []string {
	var codes []string
	for i := range concepts {
		if concepts[i].Code != nil && *concepts[i].Code != "" {
			codes = append(codes, *concepts[i].Code)
		}
		codes = append(codes, collectR4Codes(concepts[i].Concept)...)
	}
	return codes
}
