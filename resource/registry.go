package resource

import (
	"fmt"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
	"github.com/careproc/validator/resolve"
	"github.com/careproc/validator/terminology"
)

// Validator checks one clinical-resource kind. Implementations are pure:
// (document, file) in, findings out.
type Validator interface {
	// Name identifies the validator in logs.
	Name() string

	// CanHandle reports whether this validator handles the document's
	// declared type.
	CanHandle(doc *element.Element) bool

	// Validate produces the findings for the document.
	Validate(doc *element.Element, file string) []pv.Finding
}

// Deps are the collaborators the built-in validators share.
type Deps struct {
	Cache    *terminology.Cache
	Resolver *resolve.Resolver
}

// Registry dispatches each document to the first validator whose
// capability predicate accepts it. Registration is static and explicit;
// there is no runtime plugin discovery.
type Registry struct {
	validators []Validator
	deps       Deps
}

// NewRegistry creates a registry over the given validators. When none
// are given, the fixed built-in list is used.
func NewRegistry(deps Deps, validators ...Validator) *Registry {
	return &Registry{validators: validators, deps: deps}
}

// Register appends a validator; it is consulted after those already
// registered.
func (r *Registry) Register(v Validator) {
	r.validators = append(r.validators, v)
}

// Validators returns the dispatch list, falling back to the built-in
// validators when nothing was registered.
func (r *Registry) Validators() []Validator {
	if len(r.validators) > 0 {
		return r.validators
	}
	return Builtin(r.deps)
}

// Dispatch routes the document to the first matching validator. A
// document no validator can handle yields a single warning finding.
func (r *Registry) Dispatch(doc *element.Element, file string) []pv.Finding {
	for _, v := range r.Validators() {
		if v.CanHandle(doc) {
			return v.Validate(doc, file)
		}
	}
	return []pv.Finding{
		pv.Warning(pv.RuleResourceUnhandled).
			Message(fmt.Sprintf("no validator handles resource type %q", doc.Name)).
			In(file).
			Build(),
	}
}

// Builtin returns the fixed built-in validator list, in dispatch order.
func Builtin(deps Deps) []Validator {
	return []Validator{
		NewTaskValidator(deps.Cache, deps.Resolver),
		NewValueSetValidator(deps.Cache),
		NewCodeSystemValidator(),
		NewQuestionnaireValidator(),
		NewProfileValidator(),
	}
}
