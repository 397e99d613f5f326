package process

import (
	"fmt"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/bpmn"
	"github.com/careproc/validator/reflection"
	"github.com/careproc/validator/resolve"
)

// Class contracts implementation classes are checked against.
const (
	// ActivityCapability is the capability interface every step class
	// must implement under the current API generation.
	ActivityCapability = "org.careproc.bpe.v2.activity.Activity"

	// LegacyDelegateBase is the base class step classes had to extend
	// under the legacy API generation.
	LegacyDelegateBase = "org.careproc.bpe.v1.delegate.AbstractServiceDelegate"
)

// Validator walks a parsed process graph node by node and produces
// findings. It holds only collaborators; each validate method is a pure
// function of its node.
type Validator struct {
	Resolver   *resolve.Resolver
	Inspector  reflection.Inspector
	Generation pv.Generation

	// CheckClasses disables the reflection collaborator entirely when
	// false.
	CheckClasses bool
}

// New creates a process validator.
func New(resolver *resolve.Resolver, inspector reflection.Inspector, generation pv.Generation) *Validator {
	if inspector == nil {
		inspector = reflection.Nop{}
	}
	return &Validator{
		Resolver:     resolver,
		Inspector:    inspector,
		Generation:   generation,
		CheckClasses: true,
	}
}

// ValidateDefinitions validates every process of a parsed document.
func (v *Validator) ValidateDefinitions(defs *bpmn.Definitions, file string) []pv.Finding {
	var findings []pv.Finding
	for i := range defs.Processes {
		findings = append(findings, v.validateProcess(defs, &defs.Processes[i], file)...)
	}
	return findings
}

func (v *Validator) validateProcess(defs *bpmn.Definitions, p *bpmn.Process, file string) []pv.Finding {
	var findings []pv.Finding

	if p.ID == "" {
		findings = append(findings, pv.Error(pv.RuleProcessID).
			Message("process has no id").
			In(file).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleProcessID).
			Message(fmt.Sprintf("process id %q", p.ID)).
			In(file).At(p.ID).Build())
	}

	findings = append(findings, v.validateContainer(defs, &p.Container, file, p.ID)...)
	return findings
}

func (v *Validator) validateContainer(defs *bpmn.Definitions, c *bpmn.Container, file, procID string) []pv.Finding {
	var findings []pv.Finding

	for i := range c.StartEvents {
		findings = append(findings, v.validateCatchingEvent(defs, c, &c.StartEvents[i], file, procID)...)
	}
	for i := range c.IntermediateCatchEvents {
		findings = append(findings, v.validateCatchingEvent(defs, c, &c.IntermediateCatchEvents[i], file, procID)...)
	}
	for i := range c.BoundaryEvents {
		findings = append(findings, v.validateCatchingEvent(defs, c, &c.BoundaryEvents[i], file, procID)...)
	}
	for i := range c.EndEvents {
		findings = append(findings, v.validateThrowingEvent(defs, &c.EndEvents[i], file, procID)...)
	}
	for i := range c.IntermediateThrowEvents {
		findings = append(findings, v.validateThrowingEvent(defs, &c.IntermediateThrowEvents[i], file, procID)...)
	}

	for i := range c.ExclusiveGateways {
		findings = append(findings, v.validateDecisionGateway(c, &c.ExclusiveGateways[i], file, procID)...)
	}
	for i := range c.ParallelGateways {
		findings = append(findings, v.validateForkGateway(c, &c.ParallelGateways[i], file, procID)...)
	}
	for i := range c.EventBasedGateways {
		findings = append(findings, v.validateForkGateway(c, &c.EventBasedGateways[i], file, procID)...)
	}

	for i := range c.SequenceFlows {
		findings = append(findings, v.validateSequenceFlow(&c.SequenceFlows[i], file, procID)...)
	}

	// Branch naming applies to every node kind with multiple outgoing
	// branches, gateway or not.
	for _, n := range c.Nodes() {
		findings = append(findings, v.validateBranchNames(c, n, file)...)
	}

	for i := range c.ServiceTasks {
		findings = append(findings, v.validateServiceTask(&c.ServiceTasks[i], file, procID)...)
	}
	for i := range c.UserTasks {
		findings = append(findings, v.validateUserTask(&c.UserTasks[i], file, procID)...)
	}
	for i := range c.SendTasks {
		findings = append(findings, v.validateSendTask(&c.SendTasks[i], file, procID)...)
	}
	for i := range c.ReceiveTasks {
		findings = append(findings, v.validateReceiveTask(defs, &c.ReceiveTasks[i], file, procID)...)
	}

	for i := range c.SubProcesses {
		sub := &c.SubProcesses[i]
		findings = append(findings, v.validateNode(&sub.FlowNode, file, procID)...)
		findings = append(findings, v.validateListeners(&sub.FlowNode, file, procID)...)
		findings = append(findings, v.validateContainer(defs, &sub.Container, file, procID)...)
	}

	return findings
}

// validateNode checks the textual attributes every node kind requires.
func (v *Validator) validateNode(n *bpmn.FlowNode, file, procID string) []pv.Finding {
	var findings []pv.Finding

	if n.ID == "" {
		findings = append(findings, pv.Error(pv.RuleNodeID).
			Message("node has no id").
			In(file).At(procID).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleNodeID).
			Message(fmt.Sprintf("node id %q", n.ID)).
			In(file).At(n.ID).Build())
	}

	if n.Name == "" {
		findings = append(findings, pv.Warning(pv.RuleNodeName).
			Message(fmt.Sprintf("node %q has no name", n.ID)).
			In(file).At(n.ID).Build())
	} else {
		findings = append(findings, pv.Success(pv.RuleNodeName).
			Message(fmt.Sprintf("node %q is named %q", n.ID, n.Name)).
			In(file).At(n.ID).Build())
	}

	return findings
}

// validateListeners checks the execution listener classes of a node
// through the reflection collaborator.
func (v *Validator) validateListeners(n *bpmn.FlowNode, file, procID string) []pv.Finding {
	if !v.CheckClasses {
		return nil
	}

	var findings []pv.Finding
	for _, l := range n.Extensions.Listeners {
		if l.Class == "" {
			continue
		}
		if v.Inspector.ClassExists(l.Class, v.Resolver.Root()) {
			findings = append(findings, pv.Success(pv.RuleListenerClass).
				Message(fmt.Sprintf("listener class %s found", l.Class)).
				In(file).At(n.ID).Build())
		} else {
			findings = append(findings, pv.Error(pv.RuleListenerClass).
				Message(fmt.Sprintf("listener class %s not found", l.Class)).
				In(file).At(n.ID).Build())
		}
	}
	return findings
}
