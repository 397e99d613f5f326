package resource

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
	"github.com/careproc/validator/resolve"
	"github.com/careproc/validator/terminology"
)

// TaskValidator checks task-template documents: the Task resources a
// process instantiation starts from.
type TaskValidator struct {
	cache    *terminology.Cache
	resolver *resolve.Resolver
}

// NewTaskValidator creates a task-template validator backed by the
// given terminology cache and project resolver. A nil resolver skips
// the activity-template lookup.
func NewTaskValidator(cache *terminology.Cache, resolver *resolve.Resolver) *TaskValidator {
	return &TaskValidator{cache: cache, resolver: resolver}
}

func (v *TaskValidator) Name() string { return "task-template" }

func (v *TaskValidator) CanHandle(doc *element.Element) bool {
	return doc != nil && doc.Name == "Task"
}

// Validate checks metadata, the canonical instantiation reference, the
// closed input-slice set and every coded element of the template.
func (v *TaskValidator) Validate(doc *element.Element, file string) []pv.Finding {
	findings := []pv.Finding{
		checkProfilePrefix(doc, file),
		checkReadAccessTag(doc, file),
	}
	findings = append(findings, v.checkInstantiates(doc, file)...)
	findings = append(findings, v.checkStatus(doc, file))
	findings = append(findings, v.checkSlices(doc, file)...)
	findings = append(findings, v.checkCodings(doc, file)...)
	return findings
}

// checkInstantiates verifies the canonical instantiation reference is
// present, still versioned with the placeholder and, when a resolver is
// available, backed by an activity template in the project.
func (v *TaskValidator) checkInstantiates(doc *element.Element, file string) []pv.Finding {
	canonical := doc.ValueOf("instantiatesCanonical")
	switch {
	case canonical == "":
		return []pv.Finding{pv.Error(pv.RuleCanonicalURL).
			Message("task template has no instantiatesCanonical").
			In(file).Build()}
	case !strings.Contains(canonical, pv.VersionPlaceholder):
		return []pv.Finding{pv.Error(pv.RuleVersionPlaceholder).
			Message(fmt.Sprintf("instantiatesCanonical %q does not contain %s", canonical, pv.VersionPlaceholder)).
			In(file).Ref(canonical).Build()}
	}

	findings := []pv.Finding{pv.Success(pv.RuleCanonicalURL).
		Message(fmt.Sprintf("instantiates %s", canonical)).
		In(file).Ref(canonical).Build()}
	if v.resolver == nil {
		return findings
	}
	if v.resolver.DefinitionExists(resolve.KindActivityTemplate, canonical) {
		findings = append(findings, pv.Success(pv.RuleActivityTemplateExists).
			Message(fmt.Sprintf("an activity template exists for %q", canonical)).
			In(file).Ref(resolve.StripVersion(canonical)).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleActivityTemplateExists).
			Message(fmt.Sprintf("no activity template exists for %q", canonical)).
			In(file).Ref(resolve.StripVersion(canonical)).Build())
	}
	return findings
}

func (v *TaskValidator) checkStatus(doc *element.Element, file string) pv.Finding {
	status := doc.ValueOf("status")
	if status != "" && !v.cache.IsUnknown(pv.SystemTaskStatus, status) {
		return pv.Success(pv.RuleStatusLiteral).
			Message(fmt.Sprintf("status is %q", status)).
			In(file).Build()
	}
	return pv.Error(pv.RuleStatusLiteral).
		Message(fmt.Sprintf("status %q is not a known task status", status)).
		In(file).Build()
}

// checkSlices enforces the closed input-slice set: message-name is
// mandatory, business-key is required only while the task is
// in-progress, correlation-key may not appear in a template at all.
// Duplicate slices are detected by counting (system, code) pairs.
func (v *TaskValidator) checkSlices(doc *element.Element, file string) []pv.Finding {
	var findings []pv.Finding

	counts := make(map[[2]string]int)
	order := make([][2]string, 0, 4)
	for _, input := range doc.Named("input") {
		for _, coding := range input.All("type", "coding") {
			key := [2]string{coding.ValueOf("system"), coding.ValueOf("code")}
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sliceCount := func(code string) int {
		return counts[[2]string{pv.SystemTaskInput, code}]
	}

	// message-name: mandatory.
	if sliceCount(pv.SliceMessageName) > 0 {
		findings = append(findings, pv.Success(pv.RuleSliceMessageName).
			Message("message-name input slice present").
			In(file).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleSliceMessageName).
			Message("task template has no message-name input slice").
			In(file).Build())
	}

	// business-key: required iff the task is in progress.
	status := doc.ValueOf("status")
	switch {
	case status == "in-progress" && sliceCount(pv.SliceBusinessKey) == 0:
		findings = append(findings, pv.Error(pv.RuleSliceBusinessKey).
			Message(`status "in-progress" requires a business-key input slice`).
			In(file).Build())
	case status != "in-progress" && sliceCount(pv.SliceBusinessKey) > 0:
		findings = append(findings, pv.Warning(pv.RuleSliceBusinessKey).
			Message(fmt.Sprintf("business-key input slice is unexpected while status is %q", status)).
			In(file).Build())
	default:
		findings = append(findings, pv.Success(pv.RuleSliceBusinessKey).
			Message("business-key input slice matches the task status").
			In(file).Build())
	}

	// correlation-key: never allowed in a template.
	if sliceCount(pv.SliceCorrelationKey) > 0 {
		findings = append(findings, pv.Error(pv.RuleSliceCorrelationKey).
			Message("task template must not carry a correlation-key input slice").
			In(file).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleSliceCorrelationKey).
			Message("no correlation-key input slice").
			In(file).Build())
	}

	for _, key := range order {
		system, code := key[0], key[1]
		if system == pv.SystemTaskInput {
			switch code {
			case pv.SliceMessageName, pv.SliceBusinessKey, pv.SliceCorrelationKey:
			default:
				findings = append(findings, pv.Warning(pv.RuleSliceUnknown).
					Message(fmt.Sprintf("unknown input slice %q", code)).
					In(file).Build())
			}
		}
		if counts[key] > 1 {
			findings = append(findings, pv.Error(pv.RuleSliceDuplicate).
				Message(fmt.Sprintf("input slice (%s, %s) appears %d times", system, code, counts[key])).
				In(file).Build())
		}
	}

	return findings
}

// checkCodings runs every coded element of the document through the
// terminology cache. Only unknown codes produce findings; blank codes
// and unregistered systems are not judged.
func (v *TaskValidator) checkCodings(doc *element.Element, file string) []pv.Finding {
	var findings []pv.Finding
	walkCodings(doc, func(system, code string) {
		if v.cache.IsUnknown(system, code) {
			findings = append(findings, pv.Warning(pv.RuleCodeUnknown).
				Message(fmt.Sprintf("code %q is not known in system %s", code, system)).
				In(file).Build())
		}
	})
	return findings
}

// walkCodings visits every coding element in the subtree.
func walkCodings(el *element.Element, visit func(system, code string)) {
	if el == nil {
		return
	}
	if el.Name == "coding" {
		visit(el.ValueOf("system"), el.ValueOf("code"))
	}
	for _, c := range el.Children {
		walkCodings(c, visit)
	}
}
