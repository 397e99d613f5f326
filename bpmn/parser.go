package bpmn

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Ext is the conventional file extension of process-definition
// documents.
const Ext = ".bpmn"

// Parse reads a process-definition document. Element matching ignores
// namespace prefixes, so both prefixed and default-namespace documents
// parse the same way.
func Parse(r io.Reader) (*Definitions, error) {
	var defs Definitions
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("malformed process definition: %w", err)
	}
	defs.trim()
	return &defs, nil
}

// ParseFile parses the process-definition file at path.
func ParseFile(path string) (*Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// trim normalizes whitespace in character-data fields; formatted BPMN
// files indent expression bodies.
func (d *Definitions) trim() {
	for i := range d.Processes {
		d.Processes[i].Container.trim()
	}
}

func (c *Container) trim() {
	for i := range c.SequenceFlows {
		c.SequenceFlows[i].Condition = strings.TrimSpace(c.SequenceFlows[i].Condition)
	}
	for _, events := range [][]Event{
		c.StartEvents, c.EndEvents, c.IntermediateCatchEvents,
		c.IntermediateThrowEvents, c.BoundaryEvents,
	} {
		for i := range events {
			for j := range events[i].TimerDefs {
				td := &events[i].TimerDefs[j]
				td.TimeDate = strings.TrimSpace(td.TimeDate)
				td.TimeDuration = strings.TrimSpace(td.TimeDuration)
				td.TimeCycle = strings.TrimSpace(td.TimeCycle)
			}
			for j := range events[i].ConditionDefs {
				cd := &events[i].ConditionDefs[j]
				cd.Condition = strings.TrimSpace(cd.Condition)
			}
		}
	}
	for i := range c.SubProcesses {
		c.SubProcesses[i].Container.trim()
	}
}
