package resource

import (
	"fmt"
	"regexp"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
)

// Form-template items every user task relies on.
const (
	ItemBusinessKey = "business-key"
	ItemUserTaskID  = "user-task-id"
)

// linkIDPattern is the authoring convention for item link ids.
var linkIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*$`)

// QuestionnaireValidator checks form-template documents.
type QuestionnaireValidator struct{}

// NewQuestionnaireValidator creates a form-template validator.
func NewQuestionnaireValidator() *QuestionnaireValidator {
	return &QuestionnaireValidator{}
}

func (v *QuestionnaireValidator) Name() string { return "form-template" }

func (v *QuestionnaireValidator) CanHandle(doc *element.Element) bool {
	return doc != nil && doc.Name == "Questionnaire"
}

// Validate checks metadata plus the item list: the two mandatory items
// must exist as required strings, link ids must be unique and follow
// the naming convention.
func (v *QuestionnaireValidator) Validate(doc *element.Element, file string) []pv.Finding {
	findings := metadataChecks(doc, file)

	items := collectItems(doc)
	findings = append(findings, checkMandatoryItem(items, ItemBusinessKey, pv.RuleItemBusinessKey, file))
	findings = append(findings, checkMandatoryItem(items, ItemUserTaskID, pv.RuleItemUserTaskID, file))

	seen := make(map[string]int)
	var order []string
	for _, item := range items {
		linkID := item.ValueOf("linkId")
		if linkID == "" {
			continue
		}
		if seen[linkID] == 0 {
			order = append(order, linkID)
		}
		seen[linkID]++

		if !linkIDPattern.MatchString(linkID) {
			findings = append(findings, pv.Warning(pv.RuleLinkIDPattern).
				Message(fmt.Sprintf("linkId %q does not match %s", linkID, linkIDPattern.String())).
				In(file).Build())
		}
	}
	for _, linkID := range order {
		if seen[linkID] > 1 {
			findings = append(findings, pv.Error(pv.RuleLinkIDDuplicate).
				Message(fmt.Sprintf("linkId %q used %d times", linkID, seen[linkID])).
				In(file).Build())
		}
	}

	return findings
}

// checkMandatoryItem verifies one mandatory item exists, is of string
// type and is marked required. One finding per item, success or not.
func checkMandatoryItem(items []*element.Element, linkID string, rule pv.Rule, file string) pv.Finding {
	for _, item := range items {
		if item.ValueOf("linkId") != linkID {
			continue
		}
		if t := item.ValueOf("type"); t != "string" {
			return pv.Error(rule).
				Message(fmt.Sprintf("item %q must be of type string, is %q", linkID, t)).
				In(file).Build()
		}
		if item.ValueOf("required") != "true" {
			return pv.Error(rule).
				Message(fmt.Sprintf("item %q must be marked required", linkID)).
				In(file).Build()
		}
		return pv.Success(rule).
			Message(fmt.Sprintf("item %q is a required string", linkID)).
			In(file).Build()
	}
	return pv.Error(rule).
		Message(fmt.Sprintf("form template has no %q item", linkID)).
		In(file).Build()
}

// collectItems returns all items of the form, including nested groups.
func collectItems(el *element.Element) []*element.Element {
	var items []*element.Element
	for _, item := range el.Named("item") {
		items = append(items, item)
		items = append(items, collectItems(item)...)
	}
	return items
}
