package bpmn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProcess = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn"
    targetNamespace="http://careproc.org/bpe">
  <bpmn:process id="demoProcess" name="Demo" isExecutable="true">
    <bpmn:startEvent id="start" name="start demo">
      <bpmn:messageEventDefinition messageRef="msgStart"/>
    </bpmn:startEvent>
    <bpmn:serviceTask id="work" name="do work" camunda:class="org.demo.DoWork">
      <bpmn:extensionElements>
        <camunda:executionListener class="org.demo.Listener" event="start"/>
      </bpmn:extensionElements>
    </bpmn:serviceTask>
    <bpmn:exclusiveGateway id="decide" name="done?" default="flowYes">
      <bpmn:incoming>flowWork</bpmn:incoming>
      <bpmn:outgoing>flowYes</bpmn:outgoing>
      <bpmn:outgoing>flowNo</bpmn:outgoing>
    </bpmn:exclusiveGateway>
    <bpmn:intermediateCatchEvent id="wait" name="wait">
      <bpmn:timerEventDefinition>
        <bpmn:timeDuration xsi:type="bpmn:tFormalExpression"
            xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
          PT2H
        </bpmn:timeDuration>
      </bpmn:timerEventDefinition>
    </bpmn:intermediateCatchEvent>
    <bpmn:endEvent id="end" name="send result">
      <bpmn:extensionElements>
        <camunda:field name="messageName">
          <camunda:string>demoResult</camunda:string>
        </camunda:field>
        <camunda:field name="profile">
          <camunda:expression>${profile}</camunda:expression>
        </camunda:field>
      </bpmn:extensionElements>
      <bpmn:messageEventDefinition messageRef="msgResult"/>
    </bpmn:endEvent>
    <bpmn:sequenceFlow id="flowYes" name="yes" sourceRef="decide" targetRef="end"/>
    <bpmn:sequenceFlow id="flowNo" name="no" sourceRef="decide" targetRef="wait">
      <bpmn:conditionExpression>${!done}</bpmn:conditionExpression>
    </bpmn:sequenceFlow>
    <bpmn:subProcess id="sub" name="retry loop">
      <bpmn:startEvent id="subStart" name="enter"/>
    </bpmn:subProcess>
  </bpmn:process>
  <bpmn:message id="msgStart" name="demoStart"/>
  <bpmn:message id="msgResult" name="demoResult"/>
</bpmn:definitions>`

func TestParse(t *testing.T) {
	defs, err := Parse(strings.NewReader(sampleProcess))
	require.NoError(t, err)

	require.Len(t, defs.Processes, 1)
	p := defs.Processes[0]
	assert.Equal(t, "demoProcess", p.ID)
	assert.True(t, p.IsExecutable)

	require.Len(t, p.StartEvents, 1)
	require.Len(t, p.StartEvents[0].MessageDefs, 1)
	assert.Equal(t, "demoStart", defs.MessageName(p.StartEvents[0].MessageDefs[0].MessageRef))

	require.Len(t, p.ServiceTasks, 1)
	assert.Equal(t, "org.demo.DoWork", p.ServiceTasks[0].Class)
	require.Len(t, p.ServiceTasks[0].Extensions.Listeners, 1)
	assert.Equal(t, "org.demo.Listener", p.ServiceTasks[0].Extensions.Listeners[0].Class)

	require.Len(t, p.IntermediateCatchEvents, 1)
	require.Len(t, p.IntermediateCatchEvents[0].TimerDefs, 1)
	assert.Equal(t, "PT2H", p.IntermediateCatchEvents[0].TimerDefs[0].TimeDuration)

	require.Len(t, p.EndEvents, 1)
	fields := p.EndEvents[0].Extensions.Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "demoResult", fields[0].Value())
	assert.Equal(t, "${profile}", fields[1].Value())

	require.Len(t, p.SubProcesses, 1)
	assert.Equal(t, "enter", p.SubProcesses[0].StartEvents[0].Name)
}

func TestParse_Flows(t *testing.T) {
	defs, err := Parse(strings.NewReader(sampleProcess))
	require.NoError(t, err)
	p := defs.Processes[0]

	from := p.FlowsFrom("decide")
	require.Len(t, from, 2)
	assert.Equal(t, "${!done}", from[1].Condition)

	to := p.FlowsTo("end")
	require.Len(t, to, 1)
	assert.Equal(t, "flowYes", to[0].ID)

	assert.False(t, p.ExclusiveGateways[0].Floating())
	assert.True(t, p.ServiceTasks[0].Floating())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<definitions><process></definitions>"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.bpmn")
	require.NoError(t, os.WriteFile(path, []byte(sampleProcess), 0o644))

	defs, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demoProcess", defs.Processes[0].ID)

	_, err = ParseFile(filepath.Join(dir, "missing.bpmn"))
	assert.Error(t, err)
}
