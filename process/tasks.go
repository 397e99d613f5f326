package process

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
	"github.com/careproc/validator/resolve"
)

func (v *Validator) validateServiceTask(t *bpmn.ServiceTask, file, procID string) []pv.Finding {
	findings := v.validateNode(&t.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&t.FlowNode, file, procID)...)
	findings = append(findings, v.validateStepClass(t.Class, t.DelegateExpression, &t.FlowNode, file)...)
	return findings
}

func (v *Validator) validateSendTask(t *bpmn.SendTask, file, procID string) []pv.Finding {
	findings := v.validateNode(&t.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&t.FlowNode, file, procID)...)
	findings = append(findings, v.validateStepClass(t.Class, "", &t.FlowNode, file)...)
	findings = append(findings, v.validateFields(&t.FlowNode, file)...)
	return findings
}

func (v *Validator) validateReceiveTask(defs *bpmn.Definitions, t *bpmn.ReceiveTask, file, procID string) []pv.Finding {
	findings := v.validateNode(&t.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&t.FlowNode, file, procID)...)
	findings = append(findings, v.validateMessageName(defs, t.MessageRef, &t.FlowNode, file)...)
	return findings
}

// validateUserTask requires a form key resolving to a form template.
// Form keys are canonical references and carry a version placeholder
// like every other authored reference.
func (v *Validator) validateUserTask(t *bpmn.UserTask, file, procID string) []pv.Finding {
	findings := v.validateNode(&t.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&t.FlowNode, file, procID)...)

	key := strings.TrimSpace(t.FormKey)
	if key == "" {
		findings = append(findings, pv.Error(pv.RuleFormKey).
			Message(fmt.Sprintf("user task %q has no form key", t.ID)).
			In(file).At(t.ID).Build())
		return findings
	}
	if !strings.Contains(key, pv.VersionPlaceholder) {
		findings = append(findings, pv.Warning(pv.RuleFormKey).
			Message(fmt.Sprintf("form key %q does not carry the %s placeholder", key, pv.VersionPlaceholder)).
			In(file).At(t.ID).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleFormKey).
			Message(fmt.Sprintf("user task %q has form key %q", t.ID, key)).
			In(file).At(t.ID).Build())
	}

	if v.Resolver.DefinitionExists(resolve.KindFormTemplate, key) {
		findings = append(findings, pv.Success(pv.RuleFormTemplateRef).
			Message(fmt.Sprintf("form key %q resolves to a form template", key)).
			In(file).At(t.ID).Ref(resolve.StripVersion(key)).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleFormTemplateRef).
			Message(fmt.Sprintf("form key %q resolves to no form template", key)).
			In(file).At(t.ID).Ref(resolve.StripVersion(key)).Build())
	}

	return findings
}

// validateStepClass checks a step implementation class through the
// reflection collaborator. A delegate expression is an accepted
// alternative to a class attribute; when both are blank the step has no
// implementation at all.
func (v *Validator) validateStepClass(class, delegate string, n *bpmn.FlowNode, file string) []pv.Finding {
	if !v.CheckClasses {
		return nil
	}

	if class == "" {
		if delegate != "" {
			return nil
		}
		return []pv.Finding{pv.Error(pv.RuleClassExists).
			Message(fmt.Sprintf("step %q names no implementation class", n.ID)).
			In(file).At(n.ID).Build()}
	}

	root := v.Resolver.Root()
	if !v.Inspector.ClassExists(class, root) {
		return []pv.Finding{pv.Error(pv.RuleClassExists).
			Message(fmt.Sprintf("step class %s not found", class)).
			In(file).At(n.ID).Build()}
	}

	findings := []pv.Finding{pv.Success(pv.RuleClassExists).
		Message(fmt.Sprintf("step class %s found", class)).
		In(file).At(n.ID).Build()}

	if v.Generation.IsCurrent() {
		if v.Inspector.ImplementsCapability(class, ActivityCapability, root) {
			findings = append(findings, pv.Success(pv.RuleClassCapability).
				Message(fmt.Sprintf("step class %s implements %s", class, ActivityCapability)).
				In(file).At(n.ID).Build())
		} else {
			findings = append(findings, pv.Error(pv.RuleClassCapability).
				Message(fmt.Sprintf("step class %s does not implement %s", class, ActivityCapability)).
				In(file).At(n.ID).Build())
		}
		return findings
	}

	if v.Inspector.IsDescendantOf(class, LegacyDelegateBase, root) {
		findings = append(findings, pv.Success(pv.RuleClassAncestry).
			Message(fmt.Sprintf("step class %s extends %s", class, LegacyDelegateBase)).
			In(file).At(n.ID).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleClassAncestry).
			Message(fmt.Sprintf("step class %s does not extend %s", class, LegacyDelegateBase)).
			In(file).At(n.ID).Build())
	}
	return findings
}
