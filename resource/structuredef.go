package resource

import (
	"fmt"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
)

// ProfileValidator checks structural-profile documents.
type ProfileValidator struct{}

// NewProfileValidator creates a structural-profile validator.
func NewProfileValidator() *ProfileValidator {
	return &ProfileValidator{}
}

func (v *ProfileValidator) Name() string { return "structural-profile" }

func (v *ProfileValidator) CanHandle(doc *element.Element) bool {
	return doc != nil && doc.Name == "StructureDefinition"
}

// Validate checks metadata plus the profile body: a differential is
// required, a snapshot is discouraged (the release tooling generates
// it), and element ids must be unique.
func (v *ProfileValidator) Validate(doc *element.Element, file string) []pv.Finding {
	findings := metadataChecks(doc, file)

	if doc.First("differential") == nil {
		findings = append(findings, pv.Error(pv.RuleDifferentialRequired).
			Message("structural profile has no differential").
			In(file).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleDifferentialRequired).
			Message("differential present").
			In(file).Build())
	}

	if doc.First("snapshot") != nil {
		findings = append(findings, pv.Warning(pv.RuleSnapshotForbidden).
			Message("structural profile carries a snapshot; authored profiles should only ship a differential").
			In(file).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleSnapshotForbidden).
			Message("no snapshot section").
			In(file).Build())
	}

	seen := make(map[string]int)
	var order []string
	for _, el := range doc.All("differential", "element") {
		id := elementID(el)
		if id == "" {
			continue
		}
		if seen[id] == 0 {
			order = append(order, id)
		}
		seen[id]++
	}
	duplicates := 0
	for _, id := range order {
		if seen[id] > 1 {
			duplicates++
			findings = append(findings, pv.Error(pv.RuleElementIDUnique).
				Message(fmt.Sprintf("element id %q used %d times", id, seen[id])).
				In(file).Build())
		}
	}
	if duplicates == 0 {
		findings = append(findings, pv.Success(pv.RuleElementIDUnique).
			Message("element ids are unique").
			In(file).Build())
	}

	return findings
}
