package procvalidator

// Authoring conventions shared by the process-node and clinical-resource
// validators. Authored artifacts carry template placeholders that the
// release tooling substitutes at deployment time; validation enforces
// that the placeholders are still present.
const (
	// VersionPlaceholder must appear in version fields and versioned
	// canonical references of authored resources.
	VersionPlaceholder = "#{version}"

	// DatePlaceholder must appear in date fields of authored resources.
	DatePlaceholder = "#{date}"

	// ProfilePrefix is the required prefix of declared authoring
	// profiles in resource metadata.
	ProfilePrefix = "http://careproc.org/fhir/StructureDefinition/"

	// ExpectedStatus is the literal status authored metadata resources
	// must declare; the release tooling activates them.
	ExpectedStatus = "unknown"
)

// Built-in vocabulary systems.
const (
	// SystemReadAccessTag is the access-control tag vocabulary every
	// resource must carry a code from.
	SystemReadAccessTag = "http://careproc.org/fhir/CodeSystem/read-access-tag"

	// SystemProcessAuthorization enumerates requester/recipient
	// authorization codes.
	SystemProcessAuthorization = "http://careproc.org/fhir/CodeSystem/process-authorization"

	// SystemMessageNames is the reserved vocabulary of symbolic message
	// names. Message names are authored per plugin rather than
	// registered centrally, so lookups against this system fall back to
	// a heuristic: a code is considered known iff it starts with an
	// uppercase letter. This is a deliberate approximation, not a
	// strict check.
	SystemMessageNames = "http://careproc.org/fhir/CodeSystem/message-names"

	// SystemPublicationStatus is the standard publication status
	// vocabulary.
	SystemPublicationStatus = "http://hl7.org/fhir/publication-status"

	// SystemTaskStatus is the standard task status vocabulary.
	SystemTaskStatus = "http://hl7.org/fhir/task-status"

	// SystemTaskInput is the vocabulary naming the input slices of a
	// task template.
	SystemTaskInput = "http://careproc.org/fhir/CodeSystem/task-input"
)

// Task-template input slice codes. The slice set is closed.
const (
	SliceMessageName    = "message-name"
	SliceBusinessKey    = "business-key"
	SliceCorrelationKey = "correlation-key"
)
