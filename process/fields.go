package process

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
	"github.com/careproc/validator/resolve"
)

// Recognized field injection names on message-sending nodes.
const (
	FieldProfile      = "profile"
	FieldMessageName  = "messageName"
	FieldInstantiates = "instantiatesCanonical"
)

// validateFields checks the field injections of a message-sending node
// and cross-checks them against the resolved structural profile. The
// cross-check step runs only when the profile field resolved; its
// failures would otherwise duplicate the profile finding for one root
// cause.
func (v *Validator) validateFields(n *bpmn.FlowNode, file string) []pv.Finding {
	var findings []pv.Finding

	var profileFile, messageName, instantiates string
	for _, f := range n.Extensions.Fields {
		switch f.Name {
		case FieldProfile:
			var resolved string
			resolved, findings = v.checkProfileField(f, n, file, findings)
			if resolved != "" {
				profileFile = resolved
			}
		case FieldMessageName:
			messageName = f.Value()
			if messageName == "" {
				findings = append(findings, pv.Error(pv.RuleFieldMessageName).
					Message(fmt.Sprintf("node %q injects a blank messageName", n.ID)).
					In(file).At(n.ID).Build())
			} else {
				findings = append(findings, pv.Success(pv.RuleFieldMessageName).
					Message(fmt.Sprintf("node %q injects messageName %q", n.ID, messageName)).
					In(file).At(n.ID).Build())
			}
		case FieldInstantiates:
			instantiates = f.Value()
			switch {
			case instantiates == "":
				findings = append(findings, pv.Error(pv.RuleFieldInstantiates).
					Message(fmt.Sprintf("node %q injects a blank instantiatesCanonical", n.ID)).
					In(file).At(n.ID).Build())
			case !strings.Contains(instantiates, pv.VersionPlaceholder):
				findings = append(findings, pv.Warning(pv.RuleFieldInstantiates).
					Message(fmt.Sprintf("instantiatesCanonical %q does not carry the %s placeholder", instantiates, pv.VersionPlaceholder)).
					In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())
			default:
				findings = append(findings, pv.Success(pv.RuleFieldInstantiates).
					Message(fmt.Sprintf("node %q injects instantiatesCanonical %q", n.ID, instantiates)).
					In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())
			}
		default:
			findings = append(findings, pv.Warning(pv.RuleFieldUnknown).
				Message(fmt.Sprintf("node %q injects unrecognized field %q", n.ID, f.Name)).
				In(file).At(n.ID).Build())
		}
	}

	if profileFile != "" {
		findings = append(findings, v.crossCheck(profileFile, messageName, instantiates, n, file)...)
	}
	return findings
}

// checkProfileField validates the profile injection and returns the
// resolved structural-profile file, or "" when nothing resolved.
func (v *Validator) checkProfileField(f bpmn.Field, n *bpmn.FlowNode, file string, findings []pv.Finding) (string, []pv.Finding) {
	profile := f.Value()
	if profile == "" {
		return "", append(findings, pv.Error(pv.RuleFieldProfile).
			Message(fmt.Sprintf("node %q injects a blank profile", n.ID)).
			In(file).At(n.ID).Build())
	}

	if !strings.Contains(profile, pv.VersionPlaceholder) {
		findings = append(findings, pv.Warning(pv.RuleFieldProfile).
			Message(fmt.Sprintf("profile %q does not carry the %s placeholder", profile, pv.VersionPlaceholder)).
			In(file).At(n.ID).Ref(resolve.StripVersion(profile)).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleFieldProfile).
			Message(fmt.Sprintf("node %q injects profile %q", n.ID, profile)).
			In(file).At(n.ID).Ref(resolve.StripVersion(profile)).Build())
	}

	resolved := v.Resolver.FindDefinitionFile(profile)
	if resolved == "" {
		return "", append(findings, pv.Error(pv.RuleFieldProfileResolves).
			Message(fmt.Sprintf("profile %q resolves to no structural profile", profile)).
			In(file).At(n.ID).Ref(resolve.StripVersion(profile)).Build())
	}
	return resolved, append(findings, pv.Success(pv.RuleFieldProfileResolves).
		Message(fmt.Sprintf("profile %q resolves to a structural profile", profile)).
		In(file).At(n.ID).Ref(resolve.StripVersion(profile)).Build())
}

// crossCheck loads the resolved profile document and verifies both
// fixed values against the remembered injections, then independently
// checks the activity template behind the canonical.
func (v *Validator) crossCheck(profileFile, messageName, instantiates string, n *bpmn.FlowNode, file string) []pv.Finding {
	var findings []pv.Finding

	doc, err := resolve.ParseDocument(profileFile)
	if err == nil {
		if fixed := resolve.FixedValue(doc, resolve.TaskInstantiatesElement); fixed == instantiates && fixed != "" {
			findings = append(findings, pv.Success(pv.RuleProfileFixesCanonical).
				Message(fmt.Sprintf("profile fixes %s to %q", resolve.TaskInstantiatesElement, fixed)).
				In(file).At(n.ID).Build())
		} else {
			findings = append(findings, pv.Error(pv.RuleProfileFixesCanonical).
				Message(fmt.Sprintf("profile fixes %s to %q, node injects %q", resolve.TaskInstantiatesElement, fixed, instantiates)).
				In(file).At(n.ID).Build())
		}

		if fixed := resolve.FixedValue(doc, resolve.TaskMessageNameElement); fixed == messageName && fixed != "" {
			findings = append(findings, pv.Success(pv.RuleProfileFixesMessage).
				Message(fmt.Sprintf("profile fixes the message name to %q", fixed)).
				In(file).At(n.ID).Build())
		} else {
			findings = append(findings, pv.Error(pv.RuleProfileFixesMessage).
				Message(fmt.Sprintf("profile fixes the message name to %q, node injects %q", fixed, messageName)).
				In(file).At(n.ID).Build())
		}
	}

	activityFile := v.Resolver.FindFile(resolve.KindActivityTemplate, instantiates)
	if activityFile == "" {
		findings = append(findings, pv.Error(pv.RuleActivityTemplateExists).
			Message(fmt.Sprintf("no activity template exists for %q", instantiates)).
			In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())
		return findings
	}
	findings = append(findings, pv.Success(pv.RuleActivityTemplateExists).
		Message(fmt.Sprintf("an activity template exists for %q", instantiates)).
		In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())

	if v.Resolver.DeclaresMessageName(activityFile, messageName) {
		findings = append(findings, pv.Success(pv.RuleActivityDeclaresName).
			Message(fmt.Sprintf("activity template declares message name %q", messageName)).
			In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleActivityDeclaresName).
			Message(fmt.Sprintf("activity template does not declare message name %q", messageName)).
			In(file).At(n.ID).Ref(resolve.StripVersion(instantiates)).Build())
	}
	return findings
}
