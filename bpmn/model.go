package bpmn

import "strings"

// Definitions is the root of a parsed process-definition document.
type Definitions struct {
	TargetNamespace string    `xml:"targetNamespace,attr"`
	Processes       []Process `xml:"process"`
	Messages        []Message `xml:"message"`
	Signals         []Signal  `xml:"signal"`
	Errors          []Error   `xml:"error"`
}

// Message declares a named message referenced by message events.
type Message struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Signal declares a named signal referenced by signal events.
type Signal struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Error declares a named error referenced by error events.
type Error struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	ErrorCode string `xml:"errorCode,attr"`
}

// MessageName resolves a messageRef to the declared message name, or ""
// if the reference is unknown.
func (d *Definitions) MessageName(ref string) string {
	for _, m := range d.Messages {
		if m.ID == ref {
			return m.Name
		}
	}
	return ""
}

// FlowNode carries the attributes shared by every node kind.
type FlowNode struct {
	ID         string            `xml:"id,attr"`
	Name       string            `xml:"name,attr"`
	Incoming   []string          `xml:"incoming"`
	Outgoing   []string          `xml:"outgoing"`
	Extensions ExtensionElements `xml:"extensionElements"`
}

// ExtensionElements holds the vendor extension block of a node.
type ExtensionElements struct {
	Fields    []Field             `xml:"field"`
	Listeners []ExecutionListener `xml:"executionListener"`
}

// Field is a named vendor field injection on a node.
type Field struct {
	Name       string `xml:"name,attr"`
	String     string `xml:"string"`
	Expression string `xml:"expression"`
}

// Value returns the injected value, whichever form it was written in.
func (f Field) Value() string {
	if s := strings.TrimSpace(f.String); s != "" {
		return s
	}
	return strings.TrimSpace(f.Expression)
}

// ExecutionListener is a vendor listener class attached to a node.
type ExecutionListener struct {
	Class string `xml:"class,attr"`
	Event string `xml:"event,attr"`
}

// Event is a start, end, intermediate or boundary event; the attached
// event definitions determine its sub-kind.
type Event struct {
	FlowNode
	AttachedToRef string                       `xml:"attachedToRef,attr"`
	MessageDefs   []MessageEventDefinition     `xml:"messageEventDefinition"`
	TimerDefs     []TimerEventDefinition       `xml:"timerEventDefinition"`
	SignalDefs    []SignalEventDefinition      `xml:"signalEventDefinition"`
	ErrorDefs     []ErrorEventDefinition       `xml:"errorEventDefinition"`
	ConditionDefs []ConditionalEventDefinition `xml:"conditionalEventDefinition"`
}

// MessageEventDefinition marks an event as a message event.
type MessageEventDefinition struct {
	MessageRef string `xml:"messageRef,attr"`
}

// TimerEventDefinition marks an event as a timer event. Exactly one of
// the three expressions must be set.
type TimerEventDefinition struct {
	TimeDate     string `xml:"timeDate"`
	TimeDuration string `xml:"timeDuration"`
	TimeCycle    string `xml:"timeCycle"`
}

// SignalEventDefinition marks an event as a signal event.
type SignalEventDefinition struct {
	SignalRef string `xml:"signalRef,attr"`
}

// ErrorEventDefinition marks an event as an error event.
type ErrorEventDefinition struct {
	ErrorRef string `xml:"errorRef,attr"`
}

// ConditionalEventDefinition marks an event as a conditional event.
type ConditionalEventDefinition struct {
	Condition string `xml:"condition"`
}

// Gateway is an exclusive, parallel or event-based gateway.
type Gateway struct {
	FlowNode
	Default string `xml:"default,attr"`
}

// SequenceFlow connects two flow nodes.
type SequenceFlow struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	SourceRef string `xml:"sourceRef,attr"`
	TargetRef string `xml:"targetRef,attr"`
	Condition string `xml:"conditionExpression"`
}

// ServiceTask is a step implemented by a class.
type ServiceTask struct {
	FlowNode
	Class              string `xml:"class,attr"`
	DelegateExpression string `xml:"delegateExpression,attr"`
}

// UserTask is a step completed by a person through a form.
type UserTask struct {
	FlowNode
	FormKey string `xml:"formKey,attr"`
}

// SendTask sends a message; the message correlation lives in its field
// injections.
type SendTask struct {
	FlowNode
	Class string `xml:"class,attr"`
}

// ReceiveTask waits for a message.
type ReceiveTask struct {
	FlowNode
	MessageRef string `xml:"messageRef,attr"`
}

// Container holds the flow elements shared by processes and
// sub-processes.
type Container struct {
	StartEvents             []Event        `xml:"startEvent"`
	EndEvents               []Event        `xml:"endEvent"`
	IntermediateCatchEvents []Event        `xml:"intermediateCatchEvent"`
	IntermediateThrowEvents []Event        `xml:"intermediateThrowEvent"`
	BoundaryEvents          []Event        `xml:"boundaryEvent"`
	ExclusiveGateways       []Gateway      `xml:"exclusiveGateway"`
	ParallelGateways        []Gateway      `xml:"parallelGateway"`
	EventBasedGateways      []Gateway      `xml:"eventBasedGateway"`
	SequenceFlows           []SequenceFlow `xml:"sequenceFlow"`
	ServiceTasks            []ServiceTask  `xml:"serviceTask"`
	UserTasks               []UserTask     `xml:"userTask"`
	SendTasks               []SendTask     `xml:"sendTask"`
	ReceiveTasks            []ReceiveTask  `xml:"receiveTask"`
	SubProcesses            []SubProcess   `xml:"subProcess"`
}

// Process is one executable process graph.
type Process struct {
	ID           string `xml:"id,attr"`
	Name         string `xml:"name,attr"`
	IsExecutable bool   `xml:"isExecutable,attr"`
	Container
}

// SubProcess is a nested container node.
type SubProcess struct {
	FlowNode
	TriggeredByEvent bool `xml:"triggeredByEvent,attr"`
	Container
}

// Nodes returns every flow node directly inside this container, in
// declaration-group order. Nested sub-process containers are not
// flattened; their nodes belong to the inner container.
func (c *Container) Nodes() []*FlowNode {
	var nodes []*FlowNode
	for i := range c.StartEvents {
		nodes = append(nodes, &c.StartEvents[i].FlowNode)
	}
	for i := range c.EndEvents {
		nodes = append(nodes, &c.EndEvents[i].FlowNode)
	}
	for i := range c.IntermediateCatchEvents {
		nodes = append(nodes, &c.IntermediateCatchEvents[i].FlowNode)
	}
	for i := range c.IntermediateThrowEvents {
		nodes = append(nodes, &c.IntermediateThrowEvents[i].FlowNode)
	}
	for i := range c.BoundaryEvents {
		nodes = append(nodes, &c.BoundaryEvents[i].FlowNode)
	}
	for i := range c.ExclusiveGateways {
		nodes = append(nodes, &c.ExclusiveGateways[i].FlowNode)
	}
	for i := range c.ParallelGateways {
		nodes = append(nodes, &c.ParallelGateways[i].FlowNode)
	}
	for i := range c.EventBasedGateways {
		nodes = append(nodes, &c.EventBasedGateways[i].FlowNode)
	}
	for i := range c.ServiceTasks {
		nodes = append(nodes, &c.ServiceTasks[i].FlowNode)
	}
	for i := range c.UserTasks {
		nodes = append(nodes, &c.UserTasks[i].FlowNode)
	}
	for i := range c.SendTasks {
		nodes = append(nodes, &c.SendTasks[i].FlowNode)
	}
	for i := range c.ReceiveTasks {
		nodes = append(nodes, &c.ReceiveTasks[i].FlowNode)
	}
	for i := range c.SubProcesses {
		nodes = append(nodes, &c.SubProcesses[i].FlowNode)
	}
	return nodes
}

// FlowsFrom returns the sequence flows leaving the node with the given
// id, within this container.
func (c *Container) FlowsFrom(nodeID string) []SequenceFlow {
	var out []SequenceFlow
	for _, f := range c.SequenceFlows {
		if f.SourceRef == nodeID {
			out = append(out, f)
		}
	}
	return out
}

// FlowsTo returns the sequence flows entering the node with the given
// id, within this container.
func (c *Container) FlowsTo(nodeID string) []SequenceFlow {
	var out []SequenceFlow
	for _, f := range c.SequenceFlows {
		if f.TargetRef == nodeID {
			out = append(out, f)
		}
	}
	return out
}

// Floating reports whether the node is connected to nothing: no
// incoming and no outgoing references at all. Floating nodes are
// diagram clutter, not live branches, and are exempted from branch
// naming rules.
func (n *FlowNode) Floating() bool {
	return len(n.Incoming) == 0 && len(n.Outgoing) == 0
}
