package process

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
	"github.com/careproc/validator/resolve"
)

// validateCatchingEvent validates a start, intermediate-catch or
// boundary event. The attached event definitions determine which checks
// apply.
func (v *Validator) validateCatchingEvent(defs *bpmn.Definitions, c *bpmn.Container, ev *bpmn.Event, file, procID string) []pv.Finding {
	findings := v.validateNode(&ev.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&ev.FlowNode, file, procID)...)

	for _, md := range ev.MessageDefs {
		findings = append(findings, v.validateMessageName(defs, md.MessageRef, &ev.FlowNode, file)...)
	}
	for _, td := range ev.TimerDefs {
		findings = append(findings, v.validateTimer(td, &ev.FlowNode, file)...)
	}
	for _, cd := range ev.ConditionDefs {
		findings = append(findings, v.validateCondition(cd, &ev.FlowNode, file)...)
	}
	for _, sd := range ev.SignalDefs {
		findings = append(findings, v.validateSignalRef(defs, sd.SignalRef, &ev.FlowNode, file)...)
	}
	for _, ed := range ev.ErrorDefs {
		findings = append(findings, v.validateErrorRef(defs, ed.ErrorRef, &ev.FlowNode, file)...)
	}

	return findings
}

// validateThrowingEvent validates an end or intermediate-throw event.
// Message throw events carry their correlation in field injections.
func (v *Validator) validateThrowingEvent(defs *bpmn.Definitions, ev *bpmn.Event, file, procID string) []pv.Finding {
	findings := v.validateNode(&ev.FlowNode, file, procID)
	findings = append(findings, v.validateListeners(&ev.FlowNode, file, procID)...)

	if len(ev.MessageDefs) > 0 {
		findings = append(findings, v.validateFields(&ev.FlowNode, file)...)
	}
	for _, sd := range ev.SignalDefs {
		findings = append(findings, v.validateSignalRef(defs, sd.SignalRef, &ev.FlowNode, file)...)
	}
	for _, ed := range ev.ErrorDefs {
		findings = append(findings, v.validateErrorRef(defs, ed.ErrorRef, &ev.FlowNode, file)...)
	}

	return findings
}

// validateMessageName resolves a messageRef to its declared name and,
// under the current generation, checks the name against both an
// activity template and a structural profile. Each resolution reports
// independently.
func (v *Validator) validateMessageName(defs *bpmn.Definitions, ref string, n *bpmn.FlowNode, file string) []pv.Finding {
	var findings []pv.Finding

	name := defs.MessageName(ref)
	if name == "" {
		findings = append(findings, pv.Error(pv.RuleMessageName).
			Message(fmt.Sprintf("message event %q has no message name", n.ID)).
			In(file).At(n.ID).Build())
		return findings
	}
	findings = append(findings, pv.Success(pv.RuleMessageName).
		Message(fmt.Sprintf("message event %q carries message name %q", n.ID, name)).
		In(file).At(n.ID).Build())

	if !v.Generation.IsCurrent() {
		return findings
	}

	if v.Resolver.DefinitionExists(resolve.KindActivityTemplate, name) {
		findings = append(findings, pv.Success(pv.RuleMessageActivityRef).
			Message(fmt.Sprintf("message name %q matches an activity template", name)).
			In(file).At(n.ID).Build())
	} else {
		findings = append(findings, pv.Error(pv.RuleMessageActivityRef).
			Message(fmt.Sprintf("message name %q matches no activity template", name)).
			In(file).At(n.ID).Build())
	}

	if profile := v.Resolver.FindProfileFixingMessage(name); profile != "" {
		findings = append(findings, pv.Success(pv.RuleMessageProfileRef).
			Message(fmt.Sprintf("message name %q is fixed by a structural profile", name)).
			In(file).At(n.ID).Build())
	} else {
		findings = append(findings, pv.Warning(pv.RuleMessageProfileRef).
			Message(fmt.Sprintf("no structural profile fixes message name %q", name)).
			In(file).At(n.ID).Build())
	}

	return findings
}

// validateTimer requires exactly one timer expression on a timer event.
func (v *Validator) validateTimer(td bpmn.TimerEventDefinition, n *bpmn.FlowNode, file string) []pv.Finding {
	set := 0
	for _, expr := range []string{td.TimeDate, td.TimeDuration, td.TimeCycle} {
		if strings.TrimSpace(expr) != "" {
			set++
		}
	}
	if set == 1 {
		return []pv.Finding{pv.Success(pv.RuleTimerExpression).
			Message(fmt.Sprintf("timer event %q has one timer expression", n.ID)).
			In(file).At(n.ID).Build()}
	}
	return []pv.Finding{pv.Error(pv.RuleTimerExpression).
		Message(fmt.Sprintf("timer event %q must have exactly one of timeDate, timeDuration or timeCycle, found %d", n.ID, set)).
		In(file).At(n.ID).Build()}
}

func (v *Validator) validateCondition(cd bpmn.ConditionalEventDefinition, n *bpmn.FlowNode, file string) []pv.Finding {
	if strings.TrimSpace(cd.Condition) == "" {
		return []pv.Finding{pv.Error(pv.RuleConditionRequired).
			Message(fmt.Sprintf("conditional event %q has no condition", n.ID)).
			In(file).At(n.ID).Build()}
	}
	return []pv.Finding{pv.Success(pv.RuleConditionRequired).
		Message(fmt.Sprintf("conditional event %q has a condition", n.ID)).
		In(file).At(n.ID).Build()}
}

func (v *Validator) validateSignalRef(defs *bpmn.Definitions, ref string, n *bpmn.FlowNode, file string) []pv.Finding {
	if ref == "" {
		return []pv.Finding{pv.Error(pv.RuleSignalRef).
			Message(fmt.Sprintf("signal event %q has no signal reference", n.ID)).
			In(file).At(n.ID).Build()}
	}
	for _, s := range defs.Signals {
		if s.ID == ref {
			return []pv.Finding{pv.Success(pv.RuleSignalRef).
				Message(fmt.Sprintf("signal event %q references signal %q", n.ID, s.Name)).
				In(file).At(n.ID).Build()}
		}
	}
	return []pv.Finding{pv.Error(pv.RuleSignalRef).
		Message(fmt.Sprintf("signal event %q references undeclared signal %q", n.ID, ref)).
		In(file).At(n.ID).Build()}
}

func (v *Validator) validateErrorRef(defs *bpmn.Definitions, ref string, n *bpmn.FlowNode, file string) []pv.Finding {
	if ref == "" {
		return []pv.Finding{pv.Error(pv.RuleErrorRef).
			Message(fmt.Sprintf("error event %q has no error reference", n.ID)).
			In(file).At(n.ID).Build()}
	}
	for _, e := range defs.Errors {
		if e.ID == ref {
			return []pv.Finding{pv.Success(pv.RuleErrorRef).
				Message(fmt.Sprintf("error event %q references error %q", n.ID, e.Name)).
				In(file).At(n.ID).Build()}
		}
	}
	return []pv.Finding{pv.Error(pv.RuleErrorRef).
		Message(fmt.Sprintf("error event %q references undeclared error %q", n.ID, ref)).
		In(file).At(n.ID).Build()}
}
