package resource

import (
	"fmt"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
)

// CodeSystemValidator checks terminology code-system documents, the
// source files the terminology cache is seeded from.
type CodeSystemValidator struct{}

// NewCodeSystemValidator creates a code-system validator.
func NewCodeSystemValidator() *CodeSystemValidator {
	return &CodeSystemValidator{}
}

func (v *CodeSystemValidator) Name() string { return "code-system" }

func (v *CodeSystemValidator) CanHandle(doc *element.Element) bool {
	return doc != nil && doc.Name == "CodeSystem"
}

// Validate checks metadata plus the concept list: codes must be
// non-blank and unique, including nested child concepts.
func (v *CodeSystemValidator) Validate(doc *element.Element, file string) []pv.Finding {
	findings := metadataChecks(doc, file)

	seen := make(map[string]int)
	var order []string
	blank := 0
	var collect func(concepts []*element.Element)
	collect = func(concepts []*element.Element) {
		for _, concept := range concepts {
			code := concept.ValueOf("code")
			if code == "" {
				blank++
			} else {
				if seen[code] == 0 {
					order = append(order, code)
				}
				seen[code]++
			}
			collect(concept.Named("concept"))
		}
	}
	collect(doc.Named("concept"))

	if blank > 0 {
		findings = append(findings, pv.Error(pv.RuleConceptCode).
			Message(fmt.Sprintf("%d concept(s) without a code", blank)).
			In(file).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleConceptCode).
			Message(fmt.Sprintf("all %d concept(s) carry a code", len(order))).
			In(file).Build())
	}

	for _, code := range order {
		if seen[code] > 1 {
			findings = append(findings, pv.Error(pv.RuleCodeDuplicate).
				Message(fmt.Sprintf("concept code %q defined %d times", code, seen[code])).
				In(file).Build())
		}
	}

	return findings
}
