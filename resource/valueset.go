package resource

import (
	"fmt"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
	"github.com/careproc/validator/terminology"
)

// ValueSetValidator checks terminology value-set documents.
type ValueSetValidator struct {
	cache *terminology.Cache
}

// NewValueSetValidator creates a value-set validator backed by the
// given terminology cache.
func NewValueSetValidator(cache *terminology.Cache) *ValueSetValidator {
	return &ValueSetValidator{cache: cache}
}

func (v *ValueSetValidator) Name() string { return "value-set" }

func (v *ValueSetValidator) CanHandle(doc *element.Element) bool {
	return doc != nil && doc.Name == "ValueSet"
}

// Validate checks metadata plus the compose section: at least one
// include block, a system per include, and duplicate and unknown-code
// detection per include.
func (v *ValueSetValidator) Validate(doc *element.Element, file string) []pv.Finding {
	findings := metadataChecks(doc, file)

	includes := doc.All("compose", "include")
	if len(includes) == 0 {
		findings = append(findings, pv.Error(pv.RuleIncludeRequired).
			Message("value set has no include block").
			In(file).Build())
		return findings
	}
	findings = append(findings, pv.Success(pv.RuleIncludeRequired).
		Message(fmt.Sprintf("value set has %d include block(s)", len(includes))).
		In(file).Build())

	for _, include := range includes {
		findings = append(findings, v.checkInclude(include, file)...)
	}
	return findings
}

func (v *ValueSetValidator) checkInclude(include *element.Element, file string) []pv.Finding {
	var findings []pv.Finding

	system := include.ValueOf("system")
	if system == "" {
		findings = append(findings, pv.Error(pv.RuleIncludeSystem).
			Message("include block has no system").
			In(file).Build())
	}

	seen := make(map[string]int)
	var order []string
	for _, concept := range include.Named("concept") {
		code := concept.ValueOf("code")
		if seen[code] == 0 {
			order = append(order, code)
		}
		seen[code]++

		// Per-code terminology check, once per listed concept.
		if v.cache.IsUnknown(system, code) {
			findings = append(findings, pv.Warning(pv.RuleCodeUnknown).
				Message(fmt.Sprintf("code %q is not known in system %s", code, system)).
				In(file).Build())
		} else {
			findings = append(findings, pv.Success(pv.RuleCodeUnknown).
				Message(fmt.Sprintf("code %q accepted for system %s", code, system)).
				In(file).Build())
		}
	}

	// One duplicate finding per duplicated code, however often it
	// repeats.
	for _, code := range order {
		if seen[code] > 1 {
			findings = append(findings, pv.Error(pv.RuleCodeDuplicate).
				Message(fmt.Sprintf("code %q listed %d times for system %s", code, seen[code], system)).
				In(file).Build())
		}
	}

	return findings
}
