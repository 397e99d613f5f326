package process

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
)

// validateDecisionGateway checks an exclusive gateway: condition
// expressions on every non-default branch. Branch naming is handled by
// the container-wide node pass.
func (v *Validator) validateDecisionGateway(c *bpmn.Container, g *bpmn.Gateway, file, procID string) []pv.Finding {
	findings := v.validateNode(&g.FlowNode, file, procID)

	for _, f := range c.FlowsFrom(g.ID) {
		if f.ID == g.Default {
			continue
		}
		if strings.TrimSpace(f.Condition) == "" {
			findings = append(findings, pv.Error(pv.RuleBranchCondition).
				Message(fmt.Sprintf("branch %q leaving decision node %q has no condition expression", f.ID, g.ID)).
				In(file).At(f.ID).Build())
		} else {
			findings = append(findings, pv.Success(pv.RuleBranchCondition).
				Message(fmt.Sprintf("branch %q leaving decision node %q is conditioned", f.ID, g.ID)).
				In(file).At(f.ID).Build())
		}
	}
	return findings
}

// validateForkGateway checks a parallel or event-based gateway.
func (v *Validator) validateForkGateway(c *bpmn.Container, g *bpmn.Gateway, file, procID string) []pv.Finding {
	return v.validateNode(&g.FlowNode, file, procID)
}

// validateBranchNames requires every outgoing branch of a node with
// multiple outgoing branches to be named. The rule applies to every
// node kind, not only gateways. Floating nodes are diagram clutter,
// not live branches, and are exempt.
func (v *Validator) validateBranchNames(c *bpmn.Container, n *bpmn.FlowNode, file string) []pv.Finding {
	if n.Floating() {
		return nil
	}
	flows := c.FlowsFrom(n.ID)
	if len(flows) < 2 {
		return nil
	}

	var findings []pv.Finding
	for _, f := range flows {
		if strings.TrimSpace(f.Name) == "" {
			findings = append(findings, pv.Warning(pv.RuleBranchName).
				Message(fmt.Sprintf("branch %q leaving node %q has no name", f.ID, n.ID)).
				In(file).At(f.ID).Build())
		} else {
			findings = append(findings, pv.Success(pv.RuleBranchName).
				Message(fmt.Sprintf("branch %q leaving node %q is named %q", f.ID, n.ID, f.Name)).
				In(file).At(f.ID).Build())
		}
	}
	return findings
}

func (v *Validator) validateSequenceFlow(f *bpmn.SequenceFlow, file, procID string) []pv.Finding {
	if f.SourceRef == "" || f.TargetRef == "" {
		return []pv.Finding{pv.Error(pv.RuleFlowEndpoints).
			Message(fmt.Sprintf("sequence flow %q must reference a source and a target node", f.ID)).
			In(file).At(f.ID).Build()}
	}
	return []pv.Finding{pv.Success(pv.RuleFlowEndpoints).
		Message(fmt.Sprintf("sequence flow %q connects %q to %q", f.ID, f.SourceRef, f.TargetRef)).
		In(file).At(f.ID).Build()}
}
