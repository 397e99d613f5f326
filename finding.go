package procvalidator

import (
	"encoding/json"
	"fmt"
)

// Severity ranks a validation finding. Lower values sort first in the
// final report.
type Severity int

const (
	// SeverityError indicates a violation that makes the artifact invalid.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning
	// SeverityInformation indicates informational feedback.
	SeverityInformation
	// SeveritySuccess indicates a check that passed.
	SeveritySuccess
)

// String returns the severity name used in reports.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeveritySuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MarshalJSON writes the severity name rather than its rank.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON reads a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "information":
		*s = SeverityInformation
	case "success":
		*s = SeveritySuccess
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// Rule identifies the specific check that produced a finding. The set is
// closed; every distinct check has exactly one tag.
type Rule string

// Process-node rules.
const (
	RuleProcessID          Rule = "process-id"
	RuleProcessUnparsable  Rule = "process-unparsable"
	RuleNodeID             Rule = "node-id"
	RuleNodeName           Rule = "node-name"
	RuleMessageName        Rule = "message-name"
	RuleMessageActivityRef Rule = "message-activity-template"
	RuleMessageProfileRef  Rule = "message-structural-profile"
	RuleTimerExpression    Rule = "timer-expression"
	RuleConditionRequired  Rule = "condition-expression"
	RuleSignalRef          Rule = "signal-ref"
	RuleErrorRef           Rule = "error-ref"
	RuleBranchName         Rule = "branch-name"
	RuleBranchCondition    Rule = "branch-condition"
	RuleFlowEndpoints      Rule = "flow-endpoints"
	RuleClassExists        Rule = "class-exists"
	RuleClassCapability    Rule = "class-capability"
	RuleClassAncestry      Rule = "class-ancestry"
	RuleListenerClass      Rule = "listener-class"
	RuleFormKey            Rule = "form-key"
	RuleFormTemplateRef    Rule = "form-template-ref"
)

// Field-injection rules.
const (
	RuleFieldProfile           Rule = "field-profile"
	RuleFieldProfileResolves   Rule = "field-profile-resolves"
	RuleFieldMessageName       Rule = "field-message-name"
	RuleFieldInstantiates      Rule = "field-instantiates-canonical"
	RuleFieldUnknown           Rule = "field-unknown"
	RuleProfileFixesCanonical  Rule = "profile-fixes-canonical"
	RuleProfileFixesMessage    Rule = "profile-fixes-message-name"
	RuleActivityTemplateExists Rule = "activity-template-exists"
	RuleActivityDeclaresName   Rule = "activity-declares-message-name"
)

// Clinical-resource rules.
const (
	RuleResourceUnparsable   Rule = "resource-unparsable"
	RuleResourceUnhandled    Rule = "resource-unhandled"
	RuleProfilePrefix        Rule = "profile-prefix"
	RuleReadAccessTag        Rule = "read-access-tag"
	RuleCanonicalURL         Rule = "canonical-url"
	RuleStatusLiteral        Rule = "status-literal"
	RuleVersionPlaceholder   Rule = "version-placeholder"
	RuleDatePlaceholder      Rule = "date-placeholder"
	RuleSliceMessageName     Rule = "slice-message-name"
	RuleSliceBusinessKey     Rule = "slice-business-key"
	RuleSliceCorrelationKey  Rule = "slice-correlation-key"
	RuleSliceUnknown         Rule = "slice-unknown"
	RuleSliceDuplicate       Rule = "slice-duplicate"
	RuleCodeUnknown          Rule = "code-unknown"
	RuleIncludeRequired      Rule = "include-required"
	RuleIncludeSystem        Rule = "include-system"
	RuleCodeDuplicate        Rule = "code-duplicate"
	RuleConceptCode          Rule = "concept-code"
	RuleItemBusinessKey      Rule = "item-business-key"
	RuleItemUserTaskID       Rule = "item-user-task-id"
	RuleLinkIDDuplicate      Rule = "link-id-duplicate"
	RuleLinkIDPattern        Rule = "link-id-pattern"
	RuleDifferentialRequired Rule = "differential-required"
	RuleSnapshotForbidden    Rule = "snapshot-forbidden"
	RuleElementIDUnique      Rule = "element-id-unique"
)

// Location identifies where a finding was produced.
type Location struct {
	// File is the source file name.
	File string `json:"file,omitempty"`

	// ID is the enclosing process or node identifier, if any.
	ID string `json:"id,omitempty"`

	// Canonical is the canonical resource reference involved, if any.
	Canonical string `json:"canonical,omitempty"`
}

// Finding is a single validation outcome. Findings are immutable once
// built; the report never mutates or deduplicates them.
type Finding struct {
	// Severity of the finding
	Severity Severity `json:"severity"`

	// Rule identifying the check that fired
	Rule Rule `json:"rule"`

	// Message contains human-readable details
	Message string `json:"message"`

	// Location of the artifact the finding refers to
	Location Location `json:"location"`
}

// IsError returns true if this finding has error severity.
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}

// IsSuccess returns true if this finding reports a passed check.
func (f Finding) IsSuccess() bool {
	return f.Severity == SeveritySuccess
}

// String returns a human-readable representation of the finding.
func (f Finding) String() string {
	s := f.Severity.String() + " [" + string(f.Rule) + "] " + f.Message
	if f.Location.File != "" {
		s += " (" + f.Location.File + ")"
	}
	return s
}

// FindingBuilder provides a fluent API for building findings.
type FindingBuilder struct {
	finding Finding
}

// NewFinding creates a new FindingBuilder.
func NewFinding(severity Severity, rule Rule) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			Severity: severity,
			Rule:     rule,
		},
	}
}

// Error creates an error finding builder.
func Error(rule Rule) *FindingBuilder {
	return NewFinding(SeverityError, rule)
}

// Warning creates a warning finding builder.
func Warning(rule Rule) *FindingBuilder {
	return NewFinding(SeverityWarning, rule)
}

// Info creates an informational finding builder.
func Info(rule Rule) *FindingBuilder {
	return NewFinding(SeverityInformation, rule)
}

// Success creates a success finding builder.
func Success(rule Rule) *FindingBuilder {
	return NewFinding(SeveritySuccess, rule)
}

// Message sets the finding message.
func (b *FindingBuilder) Message(msg string) *FindingBuilder {
	b.finding.Message = msg
	return b
}

// In sets the source file.
func (b *FindingBuilder) In(file string) *FindingBuilder {
	b.finding.Location.File = file
	return b
}

// At sets the process or node identifier.
func (b *FindingBuilder) At(id string) *FindingBuilder {
	b.finding.Location.ID = id
	return b
}

// Ref sets the canonical resource reference.
func (b *FindingBuilder) Ref(canonical string) *FindingBuilder {
	b.finding.Location.Canonical = canonical
	return b
}

// Build returns the constructed finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
