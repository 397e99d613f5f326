package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pv "github.com/careproc/validator"
)

const sendTaskBPMN = `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <process id="demo">
    <sendTask id="notify" name="notify" camunda:class="com.example.demo.Send">
      <extensionElements>
        <camunda:field name="profile">
          <camunda:string>http://example.com/fhir/StructureDefinition/task-demo|#{version}</camunda:string>
        </camunda:field>
        <camunda:field name="messageName">
          <camunda:string>DemoStart</camunda:string>
        </camunda:field>
        <camunda:field name="instantiatesCanonical">
          <camunda:string>http://example.com/bpe/Process/demo|#{version}</camunda:string>
        </camunda:field>
      </extensionElements>
    </sendTask>
  </process>
</definitions>`

func TestFieldInjections_AllResolve(t *testing.T) {
	v := newTestValidator(t, pv.Gen2)
	v.CheckClasses = false

	fs := v.ValidateDefinitions(parseBPMN(t, sendTaskBPMN), "demo.bpmn")

	for _, rule := range []pv.Rule{
		pv.RuleFieldProfile,
		pv.RuleFieldProfileResolves,
		pv.RuleFieldMessageName,
		pv.RuleFieldInstantiates,
		pv.RuleProfileFixesCanonical,
		pv.RuleProfileFixesMessage,
		pv.RuleActivityTemplateExists,
		pv.RuleActivityDeclaresName,
	} {
		found := byRule(fs, rule)
		require.Len(t, found, 1, "rule %s", rule)
		assert.Equal(t, pv.SeveritySuccess, found[0].Severity, "rule %s", rule)
	}
	assert.Empty(t, byRule(fs, pv.RuleFieldUnknown))
}

func TestFieldInjections_MessageNameMismatch(t *testing.T) {
	v := newTestValidator(t, pv.Gen2)
	v.CheckClasses = false

	defs := parseBPMN(t, `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <process id="demo">
    <sendTask id="notify" name="notify">
      <extensionElements>
        <camunda:field name="profile">
          <camunda:string>http://example.com/fhir/StructureDefinition/task-demo|#{version}</camunda:string>
        </camunda:field>
        <camunda:field name="messageName">
          <camunda:string>WrongName</camunda:string>
        </camunda:field>
        <camunda:field name="instantiatesCanonical">
          <camunda:string>http://example.com/bpe/Process/demo|#{version}</camunda:string>
        </camunda:field>
      </extensionElements>
    </sendTask>
  </process>
</definitions>`)
	fs := v.ValidateDefinitions(defs, "demo.bpmn")

	fixes := byRule(fs, pv.RuleProfileFixesMessage)
	require.Len(t, fixes, 1)
	assert.Equal(t, pv.SeverityError, fixes[0].Severity)
	assert.Contains(t, fixes[0].Message, "WrongName")

	// The canonical fix still matches; the checks do not short-circuit
	// each other.
	canonical := byRule(fs, pv.RuleProfileFixesCanonical)
	require.Len(t, canonical, 1)
	assert.Equal(t, pv.SeveritySuccess, canonical[0].Severity)

	declares := byRule(fs, pv.RuleActivityDeclaresName)
	require.Len(t, declares, 1)
	assert.Equal(t, pv.SeverityError, declares[0].Severity)
}

// An unresolved profile skips the cross-check step entirely; its errors
// would only repeat the resolution failure.
func TestFieldInjections_UnresolvedProfileSkipsCrossCheck(t *testing.T) {
	v := newTestValidator(t, pv.Gen2)
	v.CheckClasses = false

	defs := parseBPMN(t, `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <process id="demo">
    <sendTask id="notify" name="notify">
      <extensionElements>
        <camunda:field name="profile">
          <camunda:string>http://example.com/fhir/StructureDefinition/gone|#{version}</camunda:string>
        </camunda:field>
        <camunda:field name="messageName">
          <camunda:string>DemoStart</camunda:string>
        </camunda:field>
      </extensionElements>
    </sendTask>
  </process>
</definitions>`)
	fs := v.ValidateDefinitions(defs, "demo.bpmn")

	resolves := byRule(fs, pv.RuleFieldProfileResolves)
	require.Len(t, resolves, 1)
	assert.Equal(t, pv.SeverityError, resolves[0].Severity)

	assert.Empty(t, byRule(fs, pv.RuleProfileFixesCanonical))
	assert.Empty(t, byRule(fs, pv.RuleProfileFixesMessage))
	assert.Empty(t, byRule(fs, pv.RuleActivityTemplateExists))
	assert.Empty(t, byRule(fs, pv.RuleActivityDeclaresName))
}

func TestFieldInjections_BlankAndMissingPlaceholder(t *testing.T) {
	v := newTestValidator(t, pv.Gen2)
	v.CheckClasses = false

	defs := parseBPMN(t, `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <process id="demo">
    <sendTask id="notify" name="notify">
      <extensionElements>
        <camunda:field name="profile">
          <camunda:string></camunda:string>
        </camunda:field>
        <camunda:field name="instantiatesCanonical">
          <camunda:string>http://example.com/bpe/Process/demo|1.0.0</camunda:string>
        </camunda:field>
      </extensionElements>
    </sendTask>
  </process>
</definitions>`)
	fs := v.ValidateDefinitions(defs, "demo.bpmn")

	profile := byRule(fs, pv.RuleFieldProfile)
	require.Len(t, profile, 1)
	assert.Equal(t, pv.SeverityError, profile[0].Severity)

	inst := byRule(fs, pv.RuleFieldInstantiates)
	require.Len(t, inst, 1)
	assert.Equal(t, pv.SeverityWarning, inst[0].Severity)
}

func TestFieldInjections_UnknownFieldFlagged(t *testing.T) {
	v := newTestValidator(t, pv.Gen2)
	v.CheckClasses = false

	defs := parseBPMN(t, `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
    xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <process id="demo">
    <endEvent id="done" name="done">
      <extensionElements>
        <camunda:field name="targetOrganization">
          <camunda:string>hospital-a</camunda:string>
        </camunda:field>
      </extensionElements>
      <messageEventDefinition/>
    </endEvent>
  </process>
</definitions>`)
	fs := v.ValidateDefinitions(defs, "demo.bpmn")

	unknown := byRule(fs, pv.RuleFieldUnknown)
	require.Len(t, unknown, 1)
	assert.Equal(t, pv.SeverityWarning, unknown[0].Severity)
	assert.Contains(t, unknown[0].Message, "targetOrganization")
}
