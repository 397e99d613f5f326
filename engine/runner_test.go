package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pv "github.com/careproc/validator"
)

const demoBPMN = `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <message id="m1" name="DemoStart"/>
  <process id="demo" isExecutable="true">
    <startEvent id="start" name="start">
      <messageEventDefinition messageRef="m1"/>
    </startEvent>
  </process>
</definitions>`

const demoProfile = `<StructureDefinition xmlns="http://hl7.org/fhir">
  <url value="http://example.com/fhir/StructureDefinition/task-demo"/>
  <version value="#{version}"/>
  <status value="unknown"/>
  <date value="#{date}"/>
  <meta>
    <tag>
      <system value="http://careproc.org/fhir/CodeSystem/read-access-tag"/>
      <code value="ALL"/>
    </tag>
  </meta>
  <differential>
    <element id="Task.input:message-name.value[x]">
      <fixedString value="DemoStart"/>
    </element>
  </differential>
</StructureDefinition>`

const demoActivity = `{
  "resourceType": "ActivityDefinition",
  "url": "http://example.com/bpe/Process/demo",
  "extension": [
    {"url": "message-name", "valueString": "DemoStart"}
  ]
}`

func writeRunProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pom.xml"),
		[]byte("<project>process-api-v2</project>"), 0o644))

	write := func(rel, content string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("bpe/demo.bpmn", demoBPMN)
	write("bpe/broken.bpmn", "<definitions")
	write("fhir/StructureDefinition/task-demo.xml", demoProfile)
	write("fhir/ActivityDefinition/demo.json", demoActivity)
	write("fhir/ActivityDefinition/notes.txt", "not a resource")
	return root
}

func TestRunner_Run(t *testing.T) {
	root := writeRunProject(t)
	r := New(pv.WithProjectRoot(root), pv.WithClassValidation(false))

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, root, res.Root)
	assert.Equal(t, pv.Gen2, res.Generation)

	byFile := res.Report.ByFile()
	assert.NotEmpty(t, byFile["bpe/demo.bpmn"])
	assert.NotEmpty(t, byFile["fhir/StructureDefinition/task-demo.xml"])
	// Non-resource files contribute nothing.
	assert.Empty(t, byFile["fhir/ActivityDefinition/notes.txt"])
}

// A broken file yields exactly one unparsable finding and nothing else.
func TestRunner_UnparsableProcessFile(t *testing.T) {
	root := writeRunProject(t)
	r := New(pv.WithProjectRoot(root), pv.WithClassValidation(false))

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	broken := res.Report.ByFile()["bpe/broken.bpmn"]
	require.Len(t, broken, 1)
	assert.Equal(t, pv.RuleProcessUnparsable, broken[0].Rule)
	assert.Equal(t, pv.SeverityError, broken[0].Severity)
}

func TestRunner_MessageNameResolvesThroughProjectTree(t *testing.T) {
	root := writeRunProject(t)
	r := New(pv.WithProjectRoot(root), pv.WithClassValidation(false))

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	var activityRefs []pv.Finding
	for _, f := range res.Report.Findings() {
		if f.Rule == pv.RuleMessageActivityRef {
			activityRefs = append(activityRefs, f)
		}
	}
	require.Len(t, activityRefs, 1)
	assert.Equal(t, pv.SeveritySuccess, activityRefs[0].Severity)
}

func TestRunner_SeedsTerminology(t *testing.T) {
	root := writeRunProject(t)
	cs := `<CodeSystem xmlns="http://hl7.org/fhir">
  <url value="http://example.com/fhir/CodeSystem/colors"/>
  <concept><code value="red"/></concept>
</CodeSystem>`
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fhir", "CodeSystem"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "fhir", "CodeSystem", "colors.xml"), []byte(cs), 0o644))

	r := New(pv.WithProjectRoot(root), pv.WithClassValidation(false))
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Seed.SystemsLoaded, 1)
}

func TestRunner_Cancelled(t *testing.T) {
	root := writeRunProject(t)
	r := New(pv.WithProjectRoot(root))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
